package subsystems

import "yeet-machine/utils"

// IntakeSpeed is the roller duty cycle when running.
const IntakeSpeed = 0.6

// Intake is the pneumatic deploy arm with a roller motor. The roller will
// not pull in a second cargo while the latch reports one loaded.
type Intake struct {
	motor    MotorController
	solenoid DoubleSolenoid
	input    OperatorInput
	latch    *LimitSwitch
	buttons  Buttons
	log      *utils.Logger

	extended bool
}

func NewIntake(motor MotorController, solenoid DoubleSolenoid, input OperatorInput, latch *LimitSwitch, buttons Buttons, log *utils.Logger) *Intake {
	return &Intake{
		motor:    motor,
		solenoid: solenoid,
		input:    input,
		latch:    latch,
		buttons:  buttons,
		log:      log,
	}
}

func (in *Intake) ExtendIntake() {
	in.solenoid.Set(SolenoidForward)
	if !in.extended {
		in.log.Debug("intake extended")
	}
	in.extended = true
}

func (in *Intake) RetractIntake() {
	in.solenoid.Set(SolenoidReverse)
	if in.extended {
		in.log.Debug("intake retracted")
	}
	in.extended = false
}

// Reset forgets the arm state after the outputs were neutralised.
func (in *Intake) Reset() {
	in.extended = false
}

func (in *Intake) Extended() bool { return in.extended }

func (in *Intake) Periodic() {
	if in.input.JoystickButton(in.buttons.IntakeForward) {
		in.ExtendIntake()
	} else if in.input.JoystickButton(in.buttons.IntakeBack) {
		in.RetractIntake()
	}

	loaded := in.latch.Get()
	switch {
	case in.input.JoystickButton(in.buttons.IntakeReverse):
		in.motor.Set(-IntakeSpeed)
	case in.input.JoystickButton(in.buttons.IntakeRun) && !loaded:
		in.motor.Set(IntakeSpeed)
	default:
		in.motor.Set(0)
	}
}
