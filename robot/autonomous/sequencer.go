package auton

import (
	"time"

	"yeet-machine/utils"
)

// DefaultTaxiDistance is the distance-path taxi target in meters.
const DefaultTaxiDistance = 2.0

// DistanceTaxi drives toward a target distance and reports completion.
type DistanceTaxi interface {
	Advance(targetDistance float64) bool
}

// Transmission is shifted to low gear at the start of every distance-path
// tick.
type Transmission interface {
	Low()
}

type Collaborators struct {
	Drive    Drivetrain
	Intake   Intake
	Catapult Catapult
	Gearbox  Transmission
	Taxi     DistanceTaxi
}

type Config struct {
	Mode         Mode
	Timing       Timing
	TaxiDistance float64
	Now          func() time.Time // defaults to time.Now
}

// Sequencer runs the autonomous routines. TimedPeriodic and DistancePeriodic
// are alternative entry points; the robot calls one of them per tick.
type Sequencer struct {
	cfg     Config
	session *SessionState
	parts   Collaborators
	log     *utils.Logger

	last   CommandSet
	ticks  uint64
	warned bool
}

func NewSequencer(cfg Config, session *SessionState, parts Collaborators, log *utils.Logger) *Sequencer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TaxiDistance == 0 {
		cfg.TaxiDistance = DefaultTaxiDistance
	}
	return &Sequencer{
		cfg:     cfg,
		session: session,
		parts:   parts,
		log:     log,
	}
}

func (s *Sequencer) Mode() Mode             { return s.cfg.Mode }
func (s *Sequencer) Session() *SessionState { return s.session }

// Begin is called by the lifecycle when an autonomous period starts.
func (s *Sequencer) Begin() {
	s.session.Reset()
	s.last = CommandSet{}
	s.ticks = 0
	s.warned = false
	s.log.Info("autonomous begin: mode=%s", s.cfg.Mode)
}

// TimedPeriodic runs one tick of the time-windowed routine and returns the
// commands it issued.
func (s *Sequencer) TimedPeriodic() CommandSet {
	first := !s.session.Anchored()
	elapsed := s.session.Elapsed(s.cfg.Now())
	if first {
		s.log.Info("autonomous clock anchored: mode=%s", s.cfg.Mode)
	}
	if !s.cfg.Mode.Implemented() && !s.warned {
		s.log.Warn("autonomous mode %s has no routine; only extending intake", s.cfg.Mode)
		s.warned = true
	}

	cmd := Plan(s.cfg.Mode, elapsed, s.cfg.Timing)
	cmd.Apply(s.parts.Drive, s.parts.Intake, s.parts.Catapult)

	if s.ticks == 0 || cmd != s.last {
		s.log.Debug("t=%dms %s", elapsed.Milliseconds(), cmd)
	}
	s.last = cmd
	s.ticks++
	return cmd
}

// DistancePeriodic runs one tick of the encoder-driven routine. Once the
// taxi reports completion the session is done and every later tick stops.
func (s *Sequencer) DistancePeriodic() {
	if s.parts.Gearbox != nil {
		s.parts.Gearbox.Low()
	}
	if s.session.Done() {
		s.parts.Drive.Stop()
		return
	}

	switch s.cfg.Mode {
	case ModeTaxiOnly:
		if s.parts.Taxi.Advance(s.cfg.TaxiDistance) {
			s.session.MarkDone()
			s.parts.Drive.Stop()
			s.log.Info("distance taxi complete: target=%.2fm", s.cfg.TaxiDistance)
		}
	}
	s.ticks++
}
