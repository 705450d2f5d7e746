package subsystems

import "yeet-machine/utils"

// Compressor window for the pneumatic hub's closed loop control.
const (
	CompressorMinPSI = 100.0
	CompressorMaxPSI = 110.0
)

// Automatic transmission thresholds on the joystick Y axis.
const (
	autoTransLowBelow    = 0.4
	autoTransHighAtLeast = 0.8
)

type Gear int

const (
	GearUnknown Gear = iota
	GearLow
	GearHigh
)

func (g Gear) String() string {
	switch g {
	case GearLow:
		return "low"
	case GearHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ChassisDevices are the drivetrain's hardware endpoints. Followers are
// slaved to the leaders on the motor controllers themselves.
type ChassisDevices struct {
	LeftLeader  MotorController
	RightLeader MotorController
	Shifter     DoubleSolenoid
	Compressor  Compressor
	Encoder     DistanceSensor
	Gyro        HeadingSensor
}

// Chassis is the six-motor differential drivetrain with a two-speed
// pneumatic transmission.
type Chassis struct {
	dev       ChassisDevices
	input     OperatorInput
	xboxDrive bool
	buttons   Buttons
	log       *utils.Logger

	gear        Gear
	left, right float64
}

func NewChassis(dev ChassisDevices, input OperatorInput, xboxDrive bool, buttons Buttons, log *utils.Logger) *Chassis {
	return &Chassis{
		dev:       dev,
		input:     input,
		xboxDrive: xboxDrive,
		buttons:   buttons,
		log:       log,
	}
}

func (c *Chassis) Low() {
	c.dev.Shifter.Set(SolenoidForward)
	c.setGear(GearLow)
}

func (c *Chassis) High() {
	c.dev.Shifter.Set(SolenoidReverse)
	c.setGear(GearHigh)
}

func (c *Chassis) setGear(g Gear) {
	if c.gear != g {
		c.log.Debug("shifted to %s gear", g)
	}
	c.gear = g
}

func (c *Chassis) Gear() Gear { return c.gear }

// AutoTrans shifts on joystick Y: low below 0.4, high from 0.8, otherwise
// the current gear is held.
func (c *Chassis) AutoTrans() {
	y := c.input.JoystickY()
	if y < autoTransLowBelow {
		c.Low()
	} else if y >= autoTransHighAtLeast {
		c.High()
	}
}

// Periodic is the teleop drive: arcade steering from the joystick, or the
// Xbox controller when configured, plus manual gear buttons.
func (c *Chassis) Periodic() {
	if c.xboxDrive {
		c.ArcadeDrive(-c.input.ControllerLeftY(), -c.input.ControllerRightX())
	} else {
		c.ArcadeDrive(-c.input.JoystickY(), -c.input.JoystickX())
	}
	c.dev.Compressor.EnableAnalog(CompressorMinPSI, CompressorMaxPSI)

	if (c.xboxDrive && c.input.ControllerButton(XboxA)) || c.input.JoystickButton(c.buttons.LowGear) {
		c.Low()
	}
	if (c.xboxDrive && c.input.ControllerButton(XboxY)) || c.input.JoystickButton(c.buttons.HighGear) {
		c.High()
	}
}

// ArcadeDrive drives with a forward speed and a counter-clockwise rotation.
func (c *Chassis) ArcadeDrive(speed, rotation float64) {
	c.TankDrive(ArcadeMix(speed, rotation))
}

func (c *Chassis) TankDrive(left, right float64) {
	c.left = clamp(left, -1, 1)
	c.right = clamp(right, -1, 1)
	c.dev.LeftLeader.Set(c.left)
	c.dev.RightLeader.Set(c.right)
}

// DriveForward applies the same open-loop fraction to both sides.
func (c *Chassis) DriveForward(fraction float64) {
	c.TankDrive(fraction, fraction)
}

func (c *Chassis) Stop() {
	c.TankDrive(0, 0)
}

// Outputs returns the last commanded left and right duty cycles.
func (c *Chassis) Outputs() (left, right float64) { return c.left, c.right }

func (c *Chassis) Distance() float64 { return c.dev.Encoder.Distance() }
func (c *Chassis) Heading() float64  { return c.dev.Gyro.Heading() }

func (c *Chassis) ResetEncoder() {
	c.dev.Encoder.Reset()
}
