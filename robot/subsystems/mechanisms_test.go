package subsystems

import (
	"testing"

	"periph.io/x/periph/conn/gpio/gpiotest"
)

type mechRig struct {
	in       *OperatorState
	pin      *gpiotest.Pin
	latch    *LimitSwitch
	roller   *fakeMotor
	arm      *fakeSolenoid
	cataArm  *fakeSolenoid
	intake   *Intake
	catapult *Catapult
}

func newMechRig() *mechRig {
	r := &mechRig{
		in:      &OperatorState{},
		pin:     newSwitchPin(),
		roller:  &fakeMotor{},
		arm:     &fakeSolenoid{},
		cataArm: &fakeSolenoid{},
	}
	r.latch = NewLimitSwitch(r.in, r.pin)
	r.intake = NewIntake(r.roller, r.arm, r.in, r.latch, DefaultButtons(), nil)
	r.catapult = NewCatapult(r.cataArm, r.in, r.latch, DefaultButtons(), nil)
	return r
}

func TestIntakeExtendRetract(t *testing.T) {
	r := newMechRig()
	b := DefaultButtons()

	r.in.Press(b.IntakeForward)
	r.intake.Periodic()
	if r.arm.value != SolenoidForward || !r.intake.Extended() {
		t.Errorf("forward button: arm=%s", r.arm.value)
	}

	r.in.Clear()
	r.in.Press(b.IntakeBack)
	r.intake.Periodic()
	if r.arm.value != SolenoidReverse || r.intake.Extended() {
		t.Errorf("back button: arm=%s", r.arm.value)
	}
}

func TestIntakeRollerStopsWhenLoaded(t *testing.T) {
	r := newMechRig()
	b := DefaultButtons()

	r.in.Press(b.IntakeRun)
	r.intake.Periodic()
	if r.roller.out != IntakeSpeed {
		t.Errorf("run: roller=%.2f", r.roller.out)
	}

	press(r.pin)
	r.intake.Periodic()
	if r.roller.out != 0 {
		t.Errorf("loaded: roller=%.2f, want 0", r.roller.out)
	}

	r.in.Clear()
	r.in.Press(b.IntakeReverse)
	r.intake.Periodic()
	if r.roller.out != -IntakeSpeed {
		t.Errorf("reverse while loaded: roller=%.2f", r.roller.out)
	}

	r.in.Clear()
	r.intake.Periodic()
	if r.roller.out != 0 {
		t.Errorf("idle: roller=%.2f", r.roller.out)
	}
}

func TestCatapultFiresOnlyWhenLatched(t *testing.T) {
	r := newMechRig()
	b := DefaultButtons()

	r.in.Press(b.Catapult)
	r.catapult.Periodic()
	if r.catapult.Firing() || r.cataArm.value == SolenoidForward {
		t.Fatal("fired with no cargo latched")
	}

	// Cargo rolls over the switch and off again.
	r.in.Clear()
	press(r.pin)
	r.catapult.Periodic()
	release(r.pin)

	r.in.Press(b.Catapult)
	r.catapult.Periodic()
	if !r.catapult.Firing() || r.cataArm.value != SolenoidForward {
		t.Fatal("did not fire with cargo latched")
	}
	if r.latch.Get() {
		t.Error("firing did not acknowledge the latch")
	}
	if r.catapult.Shots() != 1 {
		t.Errorf("shots: got %d, want 1", r.catapult.Shots())
	}

	r.in.Clear()
	r.in.Press(b.CatapultDown)
	r.catapult.Periodic()
	if r.catapult.Firing() || r.cataArm.value != SolenoidReverse {
		t.Error("down button did not lower the arm")
	}
}

func TestCatapultAutoFireBypassesLatch(t *testing.T) {
	r := newMechRig()
	r.catapult.AutoFire(true)
	if r.cataArm.value != SolenoidForward {
		t.Error("auto fire did not extend the arm")
	}
	r.catapult.AutoFire(false)
	if r.cataArm.value != SolenoidReverse {
		t.Error("auto fire false did not lower the arm")
	}
}

func TestResetForgetsArmState(t *testing.T) {
	r := newMechRig()
	r.intake.ExtendIntake()
	r.catapult.AutoFire(true)

	r.intake.Reset()
	r.catapult.Reset()
	if r.intake.Extended() || r.catapult.Firing() {
		t.Fatal("state not cleared")
	}

	r.catapult.AutoFire(true)
	if r.catapult.Shots() != 2 {
		t.Errorf("shots = %d, want 2", r.catapult.Shots())
	}
}

func TestClimberDeadband(t *testing.T) {
	m := &fakeMotor{}
	in := &OperatorState{RightY: 0.05}
	c := NewClimber(m, in)

	c.Periodic()
	if m.out != 0 {
		t.Errorf("inside deadband: got %.2f", m.out)
	}

	in.RightY = -1
	c.Periodic()
	if m.out != 1 {
		t.Errorf("full up: got %.2f", m.out)
	}

	c.Stop()
	if m.out != 0 {
		t.Errorf("stop: got %.2f", m.out)
	}
}
