package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace": TRACE, "DEBUG": DEBUG, "warning": WARN, "critical": CRITICAL, "bogus": INFO,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLoggerFiltersAndTags(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, INFO)

	log.Debug("hidden")
	log.With("auton").Info("mode=%s", "TAXI_ONLY")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at INFO")
	}
	if !strings.Contains(out, "[INFO] auton: mode=TAXI_ONLY") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var log *Logger
	log.Info("nothing %d", 1)
}
