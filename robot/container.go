package main

import (
	"fmt"
	"time"

	"periph.io/x/periph/conn/gpio"

	auton "yeet-machine/robot/autonomous"
	"yeet-machine/robot/hardware"
	"yeet-machine/robot/subsystems"
	"yeet-machine/utils"
)

// RobotContainer owns the subsystems and the autonomous sequencer, and is
// the single place the periodic loop calls into.
type RobotContainer struct {
	cfg RobotConfig
	log *utils.Logger

	input    *subsystems.OperatorState
	latch    *subsystems.LimitSwitch
	chassis  *subsystems.Chassis
	intake   *subsystems.Intake
	catapult *subsystems.Catapult
	climber  *subsystems.Climber

	taxi      *auton.StraightDrive
	sequencer *auton.Sequencer
}

func NewRobotContainer(cfg RobotConfig, dev *hardware.Robot, limitPin gpio.PinIn, input *subsystems.OperatorState, now func() time.Time, log *utils.Logger) *RobotContainer {
	latch := subsystems.NewLimitSwitch(input, limitPin)

	chassis := subsystems.NewChassis(subsystems.ChassisDevices{
		LeftLeader:  dev.LeftLeader,
		RightLeader: dev.RightLeader,
		Shifter:     dev.Shifter,
		Compressor:  dev.Compressor,
		Encoder:     dev.Encoder,
		Gyro:        dev.Gyro,
	}, input, cfg.XboxDrive, cfg.Buttons, log.With("chassis"))
	intake := subsystems.NewIntake(dev.IntakeMotor, dev.IntakeArm, input, latch, cfg.Buttons, log.With("intake"))
	catapult := subsystems.NewCatapult(dev.CatapultArm, input, latch, cfg.Buttons, log.With("catapult"))
	climber := subsystems.NewClimber(dev.ClimberMotor, input)

	taxi := auton.NewStraightDrive(chassis, cfg.StraightDrive)
	sequencer := auton.NewSequencer(auton.Config{
		Mode:         cfg.Auto.Mode,
		Timing:       cfg.Timing,
		TaxiDistance: cfg.Auto.TaxiDistanceM,
		Now:          now,
	}, auton.NewSessionState(), auton.Collaborators{
		Drive:    chassis,
		Intake:   intake,
		Catapult: catapult,
		Gearbox:  chassis,
		Taxi:     taxi,
	}, log.With("auton"))

	return &RobotContainer{
		cfg:       cfg,
		log:       log,
		input:     input,
		latch:     latch,
		chassis:   chassis,
		intake:    intake,
		catapult:  catapult,
		climber:   climber,
		taxi:      taxi,
		sequencer: sequencer,
	}
}

// TeleopPeriodic hands the operator input to each subsystem.
func (rc *RobotContainer) TeleopPeriodic() {
	rc.chassis.Periodic()
	rc.intake.Periodic()
	rc.catapult.Periodic()
	rc.climber.Periodic()
}

// AutonomousInit starts a new autonomous session.
func (rc *RobotContainer) AutonomousInit() {
	rc.ResetEncoders()
	rc.taxi.Reset()
	rc.sequencer.Begin()
}

// AutonomousPeriodic runs the configured autonomous entry point.
func (rc *RobotContainer) AutonomousPeriodic() {
	if rc.cfg.Auto.Path == AutoPathDistance {
		rc.sequencer.DistancePeriodic()
		return
	}
	rc.sequencer.TimedPeriodic()
}

// DisabledInit stops every mechanism that holds a commanded output.
func (rc *RobotContainer) DisabledInit() {
	rc.chassis.Stop()
	rc.climber.Stop()
	rc.intake.Reset()
	rc.catapult.Reset()
}

func (rc *RobotContainer) ResetEncoders() {
	rc.chassis.ResetEncoder()
}

func (rc *RobotContainer) Session() *auton.SessionState { return rc.sequencer.Session() }

// Status summarises mechanism state for the periodic status log line.
func (rc *RobotContainer) Status() string {
	left, right := rc.chassis.Outputs()
	return fmt.Sprintf("drive=(%.2f, %.2f) gear=%s intake_out=%v loaded=%v shots=%d",
		left, right, rc.chassis.Gear(), rc.intake.Extended(), rc.latch.Latched(), rc.catapult.Shots())
}
