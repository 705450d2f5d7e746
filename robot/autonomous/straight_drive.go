package auton

import (
	"math"
	"time"

	"github.com/felixge/pidctrl"
)

// DifferentialBase is what the straight-line taxi needs from the drivetrain.
type DifferentialBase interface {
	TankDrive(left, right float64)
	Distance() float64
	Heading() float64
}

type StraightDriveConfig struct {
	DistanceKp float64       `json:"distance_kp"`
	DistanceKi float64       `json:"distance_ki"`
	DistanceKd float64       `json:"distance_kd"`
	MaxSpeed   float64       `json:"max_speed"`
	HeadingKp  float64       `json:"heading_kp"`
	MaxTurn    float64       `json:"max_turn"`
	Tolerance  float64       `json:"tolerance_m"`
	Period     time.Duration `json:"-"`
}

func DefaultStraightDriveConfig() StraightDriveConfig {
	return StraightDriveConfig{
		DistanceKp: 1.5,
		MaxSpeed:   0.4,
		HeadingKp:  0.02,
		MaxTurn:    0.2,
		Tolerance:  0.05,
		Period:     20 * time.Millisecond,
	}
}

// StraightDrive drives to a target distance on the encoder while holding
// the heading it started with.
type StraightDrive struct {
	cfg  StraightDriveConfig
	base DifferentialBase

	distance *pidctrl.PIDController
	heading  *pidctrl.PIDController

	started bool
	target  float64
}

func NewStraightDrive(base DifferentialBase, cfg StraightDriveConfig) *StraightDrive {
	if cfg.Period <= 0 {
		cfg.Period = 20 * time.Millisecond
	}
	return &StraightDrive{cfg: cfg, base: base}
}

func (d *StraightDrive) begin(target float64) {
	d.distance = pidctrl.NewPIDController(d.cfg.DistanceKp, d.cfg.DistanceKi, d.cfg.DistanceKd)
	d.distance.SetOutputLimits(-d.cfg.MaxSpeed, d.cfg.MaxSpeed)
	d.distance.Set(target)

	d.heading = pidctrl.NewPIDController(d.cfg.HeadingKp, 0, 0)
	d.heading.SetOutputLimits(-d.cfg.MaxTurn, d.cfg.MaxTurn)
	d.heading.Set(d.base.Heading())

	d.target = target
	d.started = true
}

// Reset forgets the current target; the next Advance re-captures heading.
func (d *StraightDrive) Reset() {
	d.started = false
}

// Advance runs one tick toward targetDistance and reports whether the robot
// is within tolerance. A new target restarts the controllers.
func (d *StraightDrive) Advance(targetDistance float64) bool {
	if !d.started || targetDistance != d.target {
		d.begin(targetDistance)
	}

	pos := d.base.Distance()
	if math.Abs(targetDistance-pos) <= d.cfg.Tolerance {
		d.base.TankDrive(0, 0)
		return true
	}

	speed := d.distance.UpdateDuration(pos, d.cfg.Period)
	turn := d.heading.UpdateDuration(d.base.Heading(), d.cfg.Period)
	d.base.TankDrive(speed-turn, speed+turn)
	return false
}
