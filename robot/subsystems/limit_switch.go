package subsystems

import "periph.io/x/periph/conn/gpio"

// IgnoreThrottle is the throttle position at and above which the operator
// asks to ignore the limit switch.
const IgnoreThrottle = 0.7

// ThrottleSource supplies the operator's throttle axis.
type ThrottleSource interface {
	Throttle() float64
}

// LimitSwitch latches an active-low switch: once the switch is seen pressed
// the latch stays set until a fire acknowledgment clears it. Releasing the
// switch never clears it.
type LimitSwitch struct {
	pin      gpio.PinIn
	throttle ThrottleSource

	hasBeenPressed bool
}

func NewLimitSwitch(throttle ThrottleSource, pin gpio.PinIn) *LimitSwitch {
	return &LimitSwitch{pin: pin, throttle: throttle}
}

// IsPhysicalSwitchPressed reads the pin with no memory. The switch pulls
// the line low when pressed.
func (l *LimitSwitch) IsPhysicalSwitchPressed() bool {
	return l.pin.Read() == gpio.Low
}

// Get returns the latched state without acknowledging a fire.
func (l *LimitSwitch) Get() bool {
	return l.Update(false)
}

// Update samples the switch and returns the latched state. A press sets the
// latch before a fire acknowledgment clears it, so a press and a fire in the
// same call leave the latch cleared.
func (l *LimitSwitch) Update(fireButtonPressed bool) bool {
	if l.IsPhysicalSwitchPressed() {
		l.hasBeenPressed = true
	}
	if fireButtonPressed {
		l.hasBeenPressed = false
	}
	return l.hasBeenPressed
}

// Latched returns the latch without sampling the switch.
func (l *LimitSwitch) Latched() bool { return l.hasBeenPressed }

// ShouldIgnoreLimitSwitch reports whether the operator throttle is pushed far
// enough to override the latch. Get and Update do not consult it.
func (l *LimitSwitch) ShouldIgnoreLimitSwitch() bool {
	if l.throttle == nil {
		return false
	}
	return l.throttle.Throttle() >= IgnoreThrottle
}
