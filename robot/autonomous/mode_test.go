package auton

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":                  ModeNone,
		"none":              ModeNone,
		"TAXI_ONLY":         ModeTaxiOnly,
		"shoot_only":        ModeShootOnly,
		" Shoot_Then_Taxi ": ModeShootThenTaxi,
		"TAXI_INTAKE_SHOOT": ModeTaxiIntakeShoot,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %s, %v; want %s", in, got, err, want)
		}
	}

	if _, err := ParseMode("DANCE"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unknown mode error: %v", err)
	}
}

func TestModeJSON(t *testing.T) {
	var v struct {
		Mode Mode `json:"mode"`
	}
	if err := json.Unmarshal([]byte(`{"mode":"SHOOT_THEN_TAXI"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Mode != ModeShootThenTaxi {
		t.Errorf("got %s", v.Mode)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"mode":"SHOOT_THEN_TAXI"}` {
		t.Errorf("marshal: %s", out)
	}
}

func TestModeImplemented(t *testing.T) {
	if ModeTaxiIntakeShoot.Implemented() {
		t.Error("TAXI_INTAKE_SHOOT reported implemented")
	}
	for _, m := range []Mode{ModeNone, ModeTaxiOnly, ModeShootOnly, ModeShootThenTaxi} {
		if !m.Implemented() {
			t.Errorf("%s reported unimplemented", m)
		}
	}
}
