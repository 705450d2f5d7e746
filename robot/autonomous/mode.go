package auton

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the autonomous routine. It is fixed for a whole autonomous
// period.
type Mode int

const (
	ModeNone Mode = iota
	ModeTaxiOnly
	ModeShootOnly
	ModeShootThenTaxi
	ModeTaxiIntakeShoot
)

var ErrUnknownMode = errors.New("unknown autonomous mode")

var modeNames = map[Mode]string{
	ModeNone:            "NONE",
	ModeTaxiOnly:        "TAXI_ONLY",
	ModeShootOnly:       "SHOOT_ONLY",
	ModeShootThenTaxi:   "SHOOT_THEN_TAXI",
	ModeTaxiIntakeShoot: "TAXI_INTAKE_SHOOT",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Implemented is false for modes that are selectable but have no routine
// yet.
func (m Mode) Implemented() bool {
	return m != ModeTaxiIntakeShoot
}

// ParseMode accepts the mode names used in the robot config, in any case.
// An empty name selects ModeNone.
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return ModeNone, nil
	}
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
