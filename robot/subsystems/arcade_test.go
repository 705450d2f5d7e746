package subsystems

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestApplyDeadband(t *testing.T) {
	if ApplyDeadband(0.01, 0.02) != 0 {
		t.Error("value inside band not zeroed")
	}
	if !near(ApplyDeadband(1, 0.02), 1) || !near(ApplyDeadband(-1, 0.02), -1) {
		t.Error("full scale not preserved")
	}
	if ApplyDeadband(0.5, 0.1) <= 0.4 {
		t.Error("deadband output not rescaled")
	}
}

func TestArcadeMix(t *testing.T) {
	cases := []struct {
		name            string
		speed, rotation float64
		left, right     float64
	}{
		{"idle", 0, 0, 0, 0},
		{"full forward", 1, 0, 1, 1},
		{"full reverse", -1, 0, -1, -1},
		{"spin ccw", 0, 1, -1, 1},
		{"forward and turn", 1, 1, 0, 1},
		{"clamped", 2, 0, 1, 1},
	}
	for _, tc := range cases {
		l, r := ArcadeMix(tc.speed, tc.rotation)
		if !near(l, tc.left) || !near(r, tc.right) {
			t.Errorf("%s: got (%.3f, %.3f), want (%.3f, %.3f)", tc.name, l, r, tc.left, tc.right)
		}
	}
}

func TestArcadeMixNeverSaturates(t *testing.T) {
	for s := -1.0; s <= 1.0; s += 0.1 {
		for z := -1.0; z <= 1.0; z += 0.1 {
			l, r := ArcadeMix(s, z)
			if math.Abs(l) > 1+1e-9 || math.Abs(r) > 1+1e-9 {
				t.Fatalf("ArcadeMix(%.1f, %.1f) = (%.3f, %.3f)", s, z, l, r)
			}
		}
	}
}
