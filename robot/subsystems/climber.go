package subsystems

// ClimberDeadband is wider than the drive deadband; the winch must not creep.
const ClimberDeadband = 0.1

// Climber is the winch, run from the Xbox controller's right stick.
type Climber struct {
	motor MotorController
	input OperatorInput
}

func NewClimber(motor MotorController, input OperatorInput) *Climber {
	return &Climber{motor: motor, input: input}
}

func (c *Climber) Periodic() {
	c.motor.Set(ApplyDeadband(clamp(-c.input.ControllerRightY(), -1, 1), ClimberDeadband))
}

func (c *Climber) Stop() {
	c.motor.Set(0)
}
