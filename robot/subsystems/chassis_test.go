package subsystems

import "testing"

type chassisRig struct {
	left, right *fakeMotor
	shifter     *fakeSolenoid
	compressor  *fakeCompressor
	encoder     *fakeEncoder
	in          *OperatorState
	chassis     *Chassis
}

func newChassisRig(xbox bool) *chassisRig {
	r := &chassisRig{
		left:       &fakeMotor{},
		right:      &fakeMotor{},
		shifter:    &fakeSolenoid{},
		compressor: &fakeCompressor{},
		encoder:    &fakeEncoder{},
		in:         &OperatorState{},
	}
	r.chassis = NewChassis(ChassisDevices{
		LeftLeader:  r.left,
		RightLeader: r.right,
		Shifter:     r.shifter,
		Compressor:  r.compressor,
		Encoder:     r.encoder,
		Gyro:        &fakeGyro{},
	}, r.in, xbox, DefaultButtons(), nil)
	return r
}

func TestChassisDriveForwardAndStop(t *testing.T) {
	r := newChassisRig(false)

	r.chassis.DriveForward(0.2)
	if r.left.out != 0.2 || r.right.out != 0.2 {
		t.Errorf("drive forward: got (%.2f, %.2f)", r.left.out, r.right.out)
	}

	r.chassis.Stop()
	if r.left.out != 0 || r.right.out != 0 {
		t.Errorf("stop: got (%.2f, %.2f)", r.left.out, r.right.out)
	}
}

func TestChassisTeleopJoystick(t *testing.T) {
	r := newChassisRig(false)
	r.in.JoyY = -1 // stick pushed forward

	r.chassis.Periodic()
	if r.left.out != 1 || r.right.out != 1 {
		t.Errorf("full forward stick: got (%.2f, %.2f)", r.left.out, r.right.out)
	}
	if r.compressor.calls != 1 || r.compressor.min != CompressorMinPSI || r.compressor.max != CompressorMaxPSI {
		t.Errorf("compressor not enabled in window: %+v", r.compressor)
	}
}

func TestChassisTeleopXboxIgnoresJoystick(t *testing.T) {
	r := newChassisRig(true)
	r.in.JoyY = -1
	r.in.LeftY = 1 // stick pulled back

	r.chassis.Periodic()
	if r.left.out != -1 || r.right.out != -1 {
		t.Errorf("xbox reverse: got (%.2f, %.2f)", r.left.out, r.right.out)
	}
}

func TestChassisGearButtons(t *testing.T) {
	r := newChassisRig(false)
	b := DefaultButtons()

	r.in.Press(b.LowGear)
	r.chassis.Periodic()
	if r.shifter.value != SolenoidForward || r.chassis.Gear() != GearLow {
		t.Errorf("low gear button: solenoid=%s gear=%s", r.shifter.value, r.chassis.Gear())
	}

	r.in.Clear()
	r.in.Press(b.HighGear)
	r.chassis.Periodic()
	if r.shifter.value != SolenoidReverse || r.chassis.Gear() != GearHigh {
		t.Errorf("high gear button: solenoid=%s gear=%s", r.shifter.value, r.chassis.Gear())
	}

	r.in.Clear()
	r.chassis.Periodic()
	if r.chassis.Gear() != GearHigh {
		t.Error("gear changed with no button held")
	}
}

func TestChassisXboxGearButtonsOnlyInXboxMode(t *testing.T) {
	r := newChassisRig(false)
	r.in.PadButtons = 1 << (XboxA - 1)
	r.chassis.Periodic()
	if r.chassis.Gear() != GearUnknown {
		t.Error("xbox A shifted while joystick driving")
	}

	r = newChassisRig(true)
	r.in.PadButtons = 1 << (XboxA - 1)
	r.chassis.Periodic()
	if r.chassis.Gear() != GearLow {
		t.Error("xbox A did not shift to low")
	}
}

func TestChassisAutoTrans(t *testing.T) {
	cases := []struct {
		y    float64
		from Gear
		want Gear
	}{
		{0.0, GearHigh, GearLow},
		{0.39, GearHigh, GearLow},
		{0.4, GearHigh, GearHigh},
		{0.6, GearLow, GearLow},
		{0.8, GearLow, GearHigh},
		{1.0, GearLow, GearHigh},
	}
	for _, tc := range cases {
		r := newChassisRig(false)
		if tc.from == GearHigh {
			r.chassis.High()
		} else {
			r.chassis.Low()
		}
		r.in.JoyY = tc.y
		r.chassis.AutoTrans()
		if r.chassis.Gear() != tc.want {
			t.Errorf("y=%.2f from %s: got %s, want %s", tc.y, tc.from, r.chassis.Gear(), tc.want)
		}
	}
}

func TestChassisResetEncoder(t *testing.T) {
	r := newChassisRig(false)
	r.encoder.dist = 1.5
	if r.chassis.Distance() != 1.5 {
		t.Errorf("distance: got %.2f", r.chassis.Distance())
	}
	r.chassis.ResetEncoder()
	if r.chassis.Distance() != 0 {
		t.Errorf("distance after reset: got %.2f", r.chassis.Distance())
	}
}
