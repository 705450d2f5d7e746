package auton

import "time"

type planner func(t int64, timing Timing, cmd CommandSet) CommandSet

var planners = map[Mode]planner{
	ModeTaxiOnly:        planTaxiOnly,
	ModeShootOnly:       planShootOnly,
	ModeShootThenTaxi:   planShootThenTaxi,
	ModeTaxiIntakeShoot: planNotImplemented,
}

// Plan returns the commands for one tick of the timed routine. It is a pure
// function of its arguments. Elapsed time is truncated to whole
// milliseconds. The intake is extended on every tick in every mode; modes
// without a planner issue nothing else.
func Plan(mode Mode, elapsed time.Duration, timing Timing) CommandSet {
	cmd := CommandSet{ExtendIntake: true}
	p, ok := planners[mode]
	if !ok {
		return cmd
	}
	return p(elapsed.Milliseconds(), timing, cmd)
}

func forward(timing Timing) DriveCommand {
	return DriveCommand{Action: DriveForward, Speed: timing.TaxiSpeed}
}

func planTaxiOnly(t int64, timing Timing, cmd CommandSet) CommandSet {
	if t < timing.TaxiMS {
		cmd.Drive = forward(timing)
	} else {
		cmd.Drive = DriveCommand{Action: DriveStop}
	}
	return cmd
}

// fireWindow opens strictly after the intake has had time to extend and
// closes at FireEnd. Before it opens the catapult is left alone.
func fireWindow(t int64, timing Timing) FireAction {
	if t <= timing.IntakeExtendMS {
		return FireNone
	}
	if t < timing.FireEnd() {
		return FireActive
	}
	return FireHold
}

func planShootOnly(t int64, timing Timing, cmd CommandSet) CommandSet {
	cmd.Fire = fireWindow(t, timing)
	return cmd
}

// planShootThenTaxi evaluates the fire and drive windows independently. The
// drive window's lower bound is inclusive, unlike the fire window's.
func planShootThenTaxi(t int64, timing Timing, cmd CommandSet) CommandSet {
	cmd.Fire = fireWindow(t, timing)
	if t >= timing.FireEnd() && t < timing.TaxiAfterShotEnd() {
		cmd.Drive = forward(timing)
	} else {
		cmd.Drive = DriveCommand{Action: DriveStop}
	}
	return cmd
}

// TODO: TAXI_INTAKE_SHOOT needs its windows defined by the drive team
// before it can do more than extend the intake.
func planNotImplemented(_ int64, _ Timing, cmd CommandSet) CommandSet {
	return cmd
}
