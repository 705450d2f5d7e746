package hardware

import (
	"fmt"

	"yeet-machine/robot/subsystems"
	"yeet-machine/utils"
)

type SignalRef struct {
	Frame  string `json:"frame"`
	Signal string `json:"signal"`
}

type SolenoidRef struct {
	Frame   string `json:"frame"`
	Forward string `json:"forward"`
	Reverse string `json:"reverse"`
}

type CompressorRef struct {
	Frame  string `json:"frame"`
	Enable string `json:"enable"`
	MinPSI string `json:"min_psi"`
	MaxPSI string `json:"max_psi"`
}

// Devices names the device-map signals behind each robot device.
type Devices struct {
	LeftLeader   SignalRef     `json:"left_leader"`
	RightLeader  SignalRef     `json:"right_leader"`
	IntakeMotor  SignalRef     `json:"intake_motor"`
	ClimberMotor SignalRef     `json:"climber_motor"`
	Shifter      SolenoidRef   `json:"shifter"`
	IntakeArm    SolenoidRef   `json:"intake_arm"`
	CatapultArm  SolenoidRef   `json:"catapult_arm"`
	Compressor   CompressorRef `json:"compressor"`
	Encoder      SignalRef     `json:"encoder"`
	Gyro         SignalRef     `json:"gyro"`
}

func DefaultDevices() Devices {
	return Devices{
		LeftLeader:   SignalRef{"DRIVE_CMD", "left_duty"},
		RightLeader:  SignalRef{"DRIVE_CMD", "right_duty"},
		IntakeMotor:  SignalRef{"MECH_CMD", "intake_duty"},
		ClimberMotor: SignalRef{"MECH_CMD", "climber_duty"},
		Shifter:      SolenoidRef{"PNEUMATIC_CMD", "shifter_fwd", "shifter_rev"},
		IntakeArm:    SolenoidRef{"PNEUMATIC_CMD", "intake_fwd", "intake_rev"},
		CatapultArm:  SolenoidRef{"PNEUMATIC_CMD", "catapult_fwd", "catapult_rev"},
		Compressor:   CompressorRef{"PNEUMATIC_CMD", "compressor_enable", "compressor_min_psi", "compressor_max_psi"},
		Encoder:      SignalRef{"DRIVE_FEEDBACK", "position_m"},
		Gyro:         SignalRef{"DRIVE_FEEDBACK", "heading_deg"},
	}
}

// Robot is the full set of bus-backed devices.
type Robot struct {
	LeftLeader   *Motor
	RightLeader  *Motor
	IntakeMotor  *Motor
	ClimberMotor *Motor
	Shifter      *DoubleSolenoid
	IntakeArm    *DoubleSolenoid
	CatapultArm  *DoubleSolenoid
	Compressor   *Compressor
	Encoder      *Encoder
	Gyro         *Gyro
}

// Build resolves every device against the device map.
func (b *Bus) Build(d Devices) (*Robot, error) {
	r := &Robot{}
	var err error
	motors := []struct {
		name string
		ref  SignalRef
		dst  **Motor
	}{
		{"left_leader", d.LeftLeader, &r.LeftLeader},
		{"right_leader", d.RightLeader, &r.RightLeader},
		{"intake_motor", d.IntakeMotor, &r.IntakeMotor},
		{"climber_motor", d.ClimberMotor, &r.ClimberMotor},
	}
	for _, m := range motors {
		if *m.dst, err = b.Motor(m.ref); err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
	}
	solenoids := []struct {
		name string
		ref  SolenoidRef
		dst  **DoubleSolenoid
	}{
		{"shifter", d.Shifter, &r.Shifter},
		{"intake_arm", d.IntakeArm, &r.IntakeArm},
		{"catapult_arm", d.CatapultArm, &r.CatapultArm},
	}
	for _, s := range solenoids {
		if *s.dst, err = b.DoubleSolenoid(s.ref); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	if r.Compressor, err = b.Compressor(d.Compressor); err != nil {
		return nil, fmt.Errorf("compressor: %w", err)
	}
	if r.Encoder, err = b.Encoder(d.Encoder); err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}
	if r.Gyro, err = b.Gyro(d.Gyro); err != nil {
		return nil, fmt.Errorf("gyro: %w", err)
	}
	return r, nil
}

// Motor is a motor controller duty-cycle setpoint.
type Motor struct {
	bus *Bus
	ref SignalRef
}

var _ subsystems.MotorController = (*Motor)(nil)

func (b *Bus) Motor(ref SignalRef) (*Motor, error) {
	if _, _, err := b.cmap.SignalRef(ref.Frame, ref.Signal, utils.DirTX); err != nil {
		return nil, err
	}
	return &Motor{bus: b, ref: ref}, nil
}

func (m *Motor) Set(output float64) {
	if output > 1 {
		output = 1
	} else if output < -1 {
		output = -1
	}
	m.bus.set(m.ref.Frame, m.ref.Signal, output)
}

func (m *Motor) Get() float64 { return m.bus.Setpoint(m.ref.Frame, m.ref.Signal) }

// DoubleSolenoid drives a pair of valve channels on the pneumatic hub.
type DoubleSolenoid struct {
	bus *Bus
	ref SolenoidRef
}

var _ subsystems.DoubleSolenoid = (*DoubleSolenoid)(nil)

func (b *Bus) DoubleSolenoid(ref SolenoidRef) (*DoubleSolenoid, error) {
	for _, sig := range []string{ref.Forward, ref.Reverse} {
		if _, _, err := b.cmap.SignalRef(ref.Frame, sig, utils.DirTX); err != nil {
			return nil, err
		}
	}
	return &DoubleSolenoid{bus: b, ref: ref}, nil
}

func (s *DoubleSolenoid) Set(value subsystems.SolenoidValue) {
	var fwd, rev float64
	switch value {
	case subsystems.SolenoidForward:
		fwd = 1
	case subsystems.SolenoidReverse:
		rev = 1
	}
	s.bus.set(s.ref.Frame, s.ref.Forward, fwd)
	s.bus.set(s.ref.Frame, s.ref.Reverse, rev)
}

func (s *DoubleSolenoid) Get() subsystems.SolenoidValue {
	switch {
	case s.bus.Setpoint(s.ref.Frame, s.ref.Forward) != 0:
		return subsystems.SolenoidForward
	case s.bus.Setpoint(s.ref.Frame, s.ref.Reverse) != 0:
		return subsystems.SolenoidReverse
	default:
		return subsystems.SolenoidOff
	}
}

type Compressor struct {
	bus *Bus
	ref CompressorRef
}

var _ subsystems.Compressor = (*Compressor)(nil)

func (b *Bus) Compressor(ref CompressorRef) (*Compressor, error) {
	for _, sig := range []string{ref.Enable, ref.MinPSI, ref.MaxPSI} {
		if _, _, err := b.cmap.SignalRef(ref.Frame, sig, utils.DirTX); err != nil {
			return nil, err
		}
	}
	return &Compressor{bus: b, ref: ref}, nil
}

func (c *Compressor) EnableAnalog(minPSI, maxPSI float64) {
	c.bus.set(c.ref.Frame, c.ref.Enable, 1)
	c.bus.set(c.ref.Frame, c.ref.MinPSI, minPSI)
	c.bus.set(c.ref.Frame, c.ref.MaxPSI, maxPSI)
}

// Encoder reports drivetrain distance relative to the last Reset. A Reset
// before any feedback has arrived takes its zero from the first reading.
type Encoder struct {
	bus     *Bus
	ref     SignalRef
	offset  float64
	pending bool
}

var _ subsystems.DistanceSensor = (*Encoder)(nil)

func (b *Bus) Encoder(ref SignalRef) (*Encoder, error) {
	if _, _, err := b.cmap.SignalRef(ref.Frame, ref.Signal, utils.DirRX); err != nil {
		return nil, err
	}
	return &Encoder{bus: b, ref: ref}, nil
}

func (e *Encoder) Distance() float64 {
	v, ok := e.bus.Value(e.ref.Frame, e.ref.Signal)
	if !ok {
		return 0
	}
	if e.pending {
		e.offset = v
		e.pending = false
	}
	return v - e.offset
}

func (e *Encoder) Reset() {
	v, ok := e.bus.Value(e.ref.Frame, e.ref.Signal)
	e.offset = v
	e.pending = !ok
}

type Gyro struct {
	bus *Bus
	ref SignalRef
}

var _ subsystems.HeadingSensor = (*Gyro)(nil)

func (b *Bus) Gyro(ref SignalRef) (*Gyro, error) {
	if _, _, err := b.cmap.SignalRef(ref.Frame, ref.Signal, utils.DirRX); err != nil {
		return nil, err
	}
	return &Gyro{bus: b, ref: ref}, nil
}

func (g *Gyro) Heading() float64 {
	v, _ := g.bus.Value(g.ref.Frame, g.ref.Signal)
	return v
}
