package utils

import "sort"

// Frame directions as seen from the robot controller.
const (
	DirTX = "tx"
	DirRX = "rx"
)

// SignalDef describes one scaled field packed into a frame payload.
type SignalDef struct {
	Name       string
	StartBit   int
	BitLength  int
	Signed     bool
	Factor     float64
	Offset     float64
	Min        float64
	Max        float64
	Default    float64
	Unit       string
	Comment    string
	Endianness string // only "little" supported
}

// FrameDef is a single CAN frame on the robot bus: a motor controller
// setpoint, a pneumatic hub command, or a feedback/driver-station frame.
type FrameDef struct {
	ID        uint32
	Name      string
	DLC       int
	Direction string
	CycleMS   int
	Signals   []SignalDef
}

func (fd *FrameDef) Signal(name string) (*SignalDef, bool) {
	for i := range fd.Signals {
		if fd.Signals[i].Name == name {
			return &fd.Signals[i], true
		}
	}
	return nil, false
}

// CANMap is the robot's device map, loaded from CSV.
type CANMap struct {
	ByID   map[uint32]*FrameDef
	ByName map[string]*FrameDef
}

func (m *CANMap) FrameNames() []string {
	out := make([]string, 0, len(m.ByName))
	for k := range m.ByName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Frames returns the names of all frames with the given direction, sorted.
func (m *CANMap) Frames(direction string) []string {
	out := make([]string, 0, len(m.ByName))
	for k, fd := range m.ByName {
		if fd.Direction == direction {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
