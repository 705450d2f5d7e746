package auton

import "fmt"

type DriveAction int

const (
	DriveNone DriveAction = iota // drivetrain not commanded this tick
	DriveStop
	DriveForward
)

type DriveCommand struct {
	Action DriveAction
	Speed  float64
}

func (d DriveCommand) String() string {
	switch d.Action {
	case DriveStop:
		return "stop"
	case DriveForward:
		return fmt.Sprintf("forward@%.2f", d.Speed)
	default:
		return "none"
	}
}

type FireAction int

const (
	FireNone FireAction = iota // catapult not commanded this tick
	FireHold
	FireActive
)

func (f FireAction) String() string {
	switch f {
	case FireHold:
		return "hold"
	case FireActive:
		return "fire"
	default:
		return "none"
	}
}

// CommandSet is everything the sequencer asks of the robot in one tick.
type CommandSet struct {
	Drive        DriveCommand
	ExtendIntake bool
	Fire         FireAction
}

func (c CommandSet) String() string {
	return fmt.Sprintf("drive=%s intake_extend=%v fire=%s", c.Drive, c.ExtendIntake, c.Fire)
}

// Firing reports whether the catapult is commanded to fire.
func (c CommandSet) Firing() bool { return c.Fire == FireActive }

type Drivetrain interface {
	Stop()
	DriveForward(fraction float64)
}

type Intake interface {
	ExtendIntake()
}

type Catapult interface {
	AutoFire(active bool)
}

// Apply issues the command set: intake first, then catapult, then
// drivetrain. None actions make no call.
func (c CommandSet) Apply(drive Drivetrain, intake Intake, catapult Catapult) {
	if c.ExtendIntake {
		intake.ExtendIntake()
	}

	switch c.Fire {
	case FireActive:
		catapult.AutoFire(true)
	case FireHold:
		catapult.AutoFire(false)
	}

	switch c.Drive.Action {
	case DriveStop:
		drive.Stop()
	case DriveForward:
		drive.DriveForward(c.Drive.Speed)
	}
}
