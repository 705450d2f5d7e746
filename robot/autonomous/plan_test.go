package auton

import (
	"testing"
	"time"
)

func ms(v int64) time.Duration { return time.Duration(v) * time.Millisecond }

var (
	stop = DriveCommand{Action: DriveStop}
	taxi = DriveCommand{Action: DriveForward, Speed: 0.2}
	idle = DriveCommand{}
)

func TestPlanTaxiOnly(t *testing.T) {
	timing := DefaultTiming()
	for _, tc := range []struct {
		t    int64
		want DriveCommand
	}{
		{0, taxi}, {1, taxi}, {1999, taxi}, {2000, stop}, {2001, stop}, {15000, stop},
	} {
		cmd := Plan(ModeTaxiOnly, ms(tc.t), timing)
		if cmd.Drive != tc.want {
			t.Errorf("t=%d: drive=%s, want %s", tc.t, cmd.Drive, tc.want)
		}
		if cmd.Fire != FireNone {
			t.Errorf("t=%d: taxi only commanded catapult %s", tc.t, cmd.Fire)
		}
	}
}

func TestPlanShootOnly(t *testing.T) {
	timing := DefaultTiming()
	for _, tc := range []struct {
		t    int64
		want FireAction
	}{
		{0, FireNone}, {999, FireNone}, {1000, FireNone},
		{1001, FireActive}, {2500, FireActive}, {2999, FireActive},
		{3000, FireHold}, {9000, FireHold},
	} {
		cmd := Plan(ModeShootOnly, ms(tc.t), timing)
		if cmd.Fire != tc.want {
			t.Errorf("t=%d: fire=%s, want %s", tc.t, cmd.Fire, tc.want)
		}
		if cmd.Drive != idle {
			t.Errorf("t=%d: shoot only commanded drive %s", tc.t, cmd.Drive)
		}
	}
}

func TestPlanShootThenTaxi(t *testing.T) {
	timing := DefaultTiming()
	for _, tc := range []struct {
		t     int64
		fire  FireAction
		drive DriveCommand
	}{
		{500, FireNone, stop},
		{1000, FireNone, stop},
		{1500, FireActive, stop},
		{2999, FireActive, stop},
		{3000, FireHold, taxi},
		{3500, FireHold, taxi},
		{4999, FireHold, taxi},
		{5000, FireHold, stop},
		{5500, FireHold, stop},
	} {
		cmd := Plan(ModeShootThenTaxi, ms(tc.t), timing)
		if cmd.Fire != tc.fire || cmd.Drive != tc.drive {
			t.Errorf("t=%d: got %s, want fire=%s drive=%s", tc.t, cmd, tc.fire, tc.drive)
		}
	}
}

func TestPlanAlwaysExtendsIntake(t *testing.T) {
	modes := []Mode{ModeNone, ModeTaxiOnly, ModeShootOnly, ModeShootThenTaxi, ModeTaxiIntakeShoot, Mode(42)}
	for _, m := range modes {
		for _, t0 := range []int64{0, 1000, 3000, 20000} {
			if !Plan(m, ms(t0), DefaultTiming()).ExtendIntake {
				t.Errorf("%s t=%d: intake not extended", m, t0)
			}
		}
	}
}

func TestPlanNoTimedActionModes(t *testing.T) {
	want := CommandSet{ExtendIntake: true}
	for _, m := range []Mode{ModeNone, ModeTaxiIntakeShoot, Mode(-1), Mode(99)} {
		for _, t0 := range []int64{0, 1500, 3500} {
			if got := Plan(m, ms(t0), DefaultTiming()); got != want {
				t.Errorf("%s t=%d: got %s", m, t0, got)
			}
		}
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	for _, m := range []Mode{ModeTaxiOnly, ModeShootOnly, ModeShootThenTaxi} {
		for t0 := int64(0); t0 < 6000; t0 += 250 {
			a := Plan(m, ms(t0), DefaultTiming())
			b := Plan(m, ms(t0), DefaultTiming())
			if a != b {
				t.Errorf("%s t=%d: %s then %s", m, t0, a, b)
			}
		}
	}
}

func TestPlanTruncatesToMilliseconds(t *testing.T) {
	// 1000.9ms has not passed the 1000ms boundary.
	cmd := Plan(ModeShootOnly, ms(1000)+900*time.Microsecond, DefaultTiming())
	if cmd.Fire != FireNone {
		t.Errorf("fire=%s at 1000.9ms", cmd.Fire)
	}
}

func TestPlanCustomTiming(t *testing.T) {
	timing := Timing{ShootMS: 500, TaxiMS: 1000, IntakeExtendMS: 250, TaxiSpeed: 0.5}
	cmd := Plan(ModeShootThenTaxi, ms(750), timing)
	if cmd.Fire != FireHold || cmd.Drive != (DriveCommand{Action: DriveForward, Speed: 0.5}) {
		t.Errorf("got %s", cmd)
	}
}

func TestApplyOrderAndNoneActions(t *testing.T) {
	r := &robotLog{}

	CommandSet{ExtendIntake: true, Fire: FireActive, Drive: stop}.Apply(r, r, r)
	want := []string{"extend", "fire=true", "stop"}
	if got := r.take(); !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	CommandSet{ExtendIntake: true}.Apply(r, r, r)
	if got := r.take(); !equal(got, []string{"extend"}) {
		t.Errorf("none actions issued calls: %v", got)
	}

	CommandSet{ExtendIntake: true, Fire: FireHold, Drive: taxi}.Apply(r, r, r)
	if got := r.take(); !equal(got, []string{"extend", "fire=false", "forward@0.20"}) {
		t.Errorf("got %v", got)
	}
}

func TestTimingValidate(t *testing.T) {
	if err := DefaultTiming().Validate(); err != nil {
		t.Errorf("default timing invalid: %v", err)
	}
	if err := (Timing{ShootMS: -1}).Validate(); err == nil {
		t.Error("negative window accepted")
	}
	if err := (Timing{TaxiSpeed: 1.5}).Validate(); err == nil {
		t.Error("taxi speed above 1 accepted")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
