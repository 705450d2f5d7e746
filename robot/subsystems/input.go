package subsystems

// OperatorInput is the driver-station state the teleop logic reads each tick.
type OperatorInput interface {
	JoystickX() float64
	JoystickY() float64
	Throttle() float64
	JoystickButton(button int) bool

	ControllerLeftY() float64
	ControllerRightX() float64
	ControllerRightY() float64
	ControllerButton(button int) bool
}

// Xbox controller button numbers, as reported by the driver station.
const (
	XboxA = 1
	XboxB = 2
	XboxX = 3
	XboxY = 4
)

// OperatorState is a snapshot of the joystick and Xbox controller. The
// runner overwrites it in place whenever a driver-station frame arrives.
type OperatorState struct {
	JoyX        float64
	JoyY        float64
	JoyThrottle float64
	JoyButtons  uint32 // bit n-1 set = button n held

	LeftX      float64
	LeftY      float64
	RightX     float64
	RightY     float64
	PadButtons uint32
}

var _ OperatorInput = (*OperatorState)(nil)

func (s *OperatorState) JoystickX() float64 { return s.JoyX }
func (s *OperatorState) JoystickY() float64 { return s.JoyY }
func (s *OperatorState) Throttle() float64  { return s.JoyThrottle }

func (s *OperatorState) JoystickButton(button int) bool { return bitSet(s.JoyButtons, button) }

func (s *OperatorState) ControllerLeftY() float64  { return s.LeftY }
func (s *OperatorState) ControllerRightX() float64 { return s.RightX }
func (s *OperatorState) ControllerRightY() float64 { return s.RightY }

func (s *OperatorState) ControllerButton(button int) bool { return bitSet(s.PadButtons, button) }

// Press marks joystick buttons as held.
func (s *OperatorState) Press(buttons ...int) {
	for _, b := range buttons {
		if b >= 1 && b <= 32 {
			s.JoyButtons |= 1 << (b - 1)
		}
	}
}

// Clear releases every joystick and controller button.
func (s *OperatorState) Clear() {
	s.JoyButtons = 0
	s.PadButtons = 0
}

func bitSet(bits uint32, button int) bool {
	if button < 1 || button > 32 {
		return false
	}
	return bits&(1<<(button-1)) != 0
}

// Buttons is the joystick button map.
type Buttons struct {
	IntakeRun     int `json:"intake_run"`
	IntakeReverse int `json:"intake_reverse"`
	IntakeForward int `json:"intake_forward"`
	IntakeBack    int `json:"intake_back"`
	Catapult      int `json:"catapult"`
	CatapultDown  int `json:"catapult_down"`
	LowGear       int `json:"low_gear"`
	HighGear      int `json:"high_gear"`
}

func DefaultButtons() Buttons {
	return Buttons{
		IntakeRun:     2,
		IntakeReverse: 5,
		IntakeForward: 3,
		IntakeBack:    4,
		Catapult:      1,
		CatapultDown:  10,
		LowGear:       8,
		HighGear:      9,
	}
}
