package main

import (
	"context"
	"fmt"
	"time"

	"go.einride.tech/can"
	"periph.io/x/periph/conn/gpio"

	"yeet-machine/robot/hardware"
	"yeet-machine/robot/subsystems"
	"yeet-machine/utils"
)

type RunnerConfig struct {
	Interface  string
	MapPath    string
	ConfigPath string
	LimitPin   string // overrides limit_switch_pin when set
	AutoMode   string // overrides auto.mode when set
}

// Runner is the periodic scheduler. Received frames and ticks are handled
// on the same goroutine, so robot state is never touched concurrently.
type Runner struct {
	cfg    RunnerConfig
	robot  RobotConfig
	log    *utils.Logger
	cmap   *utils.CANMap
	writer utils.CANWriter
	reader utils.CANReader
	bus    *hardware.Bus
	input  *subsystems.OperatorState
	rc     *RobotContainer
	now    func() time.Time

	phase     Phase
	requested Phase
	lastDS    time.Time
	ticks     uint64
	stale     bool
}

func NewRunner(ctx context.Context, cfg RunnerConfig, log *utils.Logger) (*Runner, error) {
	cmap, err := utils.LoadCANMap(cfg.MapPath)
	if err != nil {
		return nil, fmt.Errorf("load can map: %w", err)
	}

	robotCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.AutoMode != "" {
		if err := robotCfg.Auto.Mode.UnmarshalText([]byte(cfg.AutoMode)); err != nil {
			return nil, err
		}
	}
	pinName := robotCfg.LimitSwitchPin
	if cfg.LimitPin != "" {
		pinName = cfg.LimitPin
	}

	pin, err := openLimitSwitchPin(pinName)
	if err != nil {
		return nil, err
	}

	bus, err := utils.DialSocketCAN(ctx, cfg.Interface)
	if err != nil {
		return nil, err
	}

	r, err := newRunner(cfg, robotCfg, cmap, bus, bus, pin, time.Now, log)
	if err != nil {
		bus.Close()
		return nil, err
	}
	return r, nil
}

func newRunner(cfg RunnerConfig, robotCfg RobotConfig, cmap *utils.CANMap, writer utils.CANWriter, reader utils.CANReader, pin gpio.PinIn, now func() time.Time, log *utils.Logger) (*Runner, error) {
	if err := robotCfg.DriverStation.Check(cmap); err != nil {
		return nil, err
	}

	bus := hardware.NewBus(cmap, writer, log.With("bus"))
	dev, err := bus.Build(robotCfg.Devices)
	if err != nil {
		return nil, fmt.Errorf("devices: %w", err)
	}

	input := &subsystems.OperatorState{}
	return &Runner{
		cfg:    cfg,
		robot:  robotCfg,
		log:    log,
		cmap:   cmap,
		writer: writer,
		reader: reader,
		bus:    bus,
		input:  input,
		rc:     NewRobotContainer(robotCfg, dev, pin, input, now, log),
		now:    now,
	}, nil
}

// Close releases the bus. Reader and writer may share one socket.
func (r *Runner) Close() {
	if r.reader != nil {
		_ = r.reader.Close()
	}
	if r.writer != nil {
		_ = r.writer.Close()
	}
}

func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("Starting robot: name=%s period_ms=%d iface=%s auto_mode=%s auto_path=%s",
		r.robot.Meta.Name, r.robot.PeriodMS, r.cfg.Interface, r.robot.Auto.Mode, r.robot.Auto.Path)

	ticker := time.NewTicker(r.robot.Period())
	defer ticker.Stop()

	rxChan := make(chan can.Frame, 100)
	if r.reader != nil {
		go r.receiveLoop(ctx, rxChan)
	}

	for {
		select {
		case <-ctx.Done():
			r.log.Warn("Context canceled; stopping robot")
			r.bus.Neutral()
			_ = r.bus.Flush(context.Background())
			r.log.Info("Stopped. ticks=%d frames_sent=%d", r.ticks, r.bus.FramesSent())
			return ctx.Err()

		case frame := <-rxChan:
			r.handleFrame(frame)

		case <-ticker.C:
			if err := r.tick(ctx); err != nil {
				r.log.Critical("Tick failed: %v", err)
				return err
			}
		}
	}
}

// receiveLoop forwards raw frames to the control goroutine.
func (r *Runner) receiveLoop(ctx context.Context, out chan<- can.Frame) {
	r.log.Debug("RX loop started")
	defer r.log.Debug("RX loop stopped")

	for {
		frame, err := r.reader.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.log.Error("RX error: %v", err)
			return
		}
		select {
		case out <- frame:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runner) handleFrame(frame can.Frame) {
	now := r.now()
	fd, values, ok := r.bus.Ingest(frame, now)
	if !ok {
		return
	}
	if phase, ok := r.robot.DriverStation.Apply(fd.Name, values, r.input); ok {
		r.requested = phase
		r.lastDS = now
	}
}

// tick runs one scheduler period: phase bookkeeping, the phase's periodic
// entry point, then actuator output.
func (r *Runner) tick(ctx context.Context) error {
	now := r.now()

	phase := r.requested
	if r.lastDS.IsZero() || now.Sub(r.lastDS) > r.robot.DSTimeout() {
		phase = PhaseDisabled
	}
	if phase != r.phase {
		r.transition(phase)
	}

	switch r.phase {
	case PhaseAutonomous:
		r.checkFeedback(now)
		r.rc.AutonomousPeriodic()
	case PhaseTeleop:
		r.rc.TeleopPeriodic()
	default:
		r.bus.Neutral()
	}

	r.ticks++
	if r.ticks%250 == 0 {
		r.log.Debug("status phase=%s %s", r.phase, r.rc.Status())
	}

	if err := r.bus.Flush(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (r *Runner) transition(to Phase) {
	r.log.Info("Phase %s -> %s", r.phase, to)
	switch to {
	case PhaseAutonomous:
		r.rc.AutonomousInit()
	case PhaseDisabled:
		r.rc.DisabledInit()
		r.bus.Neutral()
	}
	r.phase = to
}

func (r *Runner) checkFeedback(now time.Time) {
	if r.robot.Auto.Path != AutoPathDistance {
		return
	}
	frame := r.robot.Devices.Encoder.Frame
	age, ok := r.bus.Age(frame, now)
	stale := !ok || age > r.robot.FeedbackTimeout()
	if stale && !r.stale {
		r.log.Warn("%s", feedbackWarning(frame, age, ok))
	} else if !stale && r.stale {
		r.log.Info("%s feedback restored", frame)
	}
	r.stale = stale
}

func feedbackWarning(frame string, age time.Duration, seen bool) string {
	if !seen {
		return fmt.Sprintf("No %s feedback received yet; distance taxi may be unreliable", frame)
	}
	return fmt.Sprintf("No %s feedback for %d ms; distance taxi may be unreliable", frame, age.Milliseconds())
}

func (r *Runner) Phase() Phase { return r.phase }
