package subsystems

import "math"

// DefaultDeadband zeroes stick noise around center.
const DefaultDeadband = 0.02

// ApplyDeadband returns 0 inside the band and rescales the remainder so the
// output still spans [-1, 1].
func ApplyDeadband(value, deadband float64) float64 {
	if math.Abs(value) <= deadband {
		return 0
	}
	if deadband >= 1 {
		return 0
	}
	if value > 0 {
		return (value - deadband) / (1 - deadband)
	}
	return (value + deadband) / (1 - deadband)
}

// ArcadeMix converts a forward speed and a counter-clockwise rotation into
// left/right wheel outputs. Inputs are clamped, deadbanded and squared;
// outputs are desaturated so neither side exceeds 1.
func ArcadeMix(speed, rotation float64) (left, right float64) {
	speed = ApplyDeadband(clamp(speed, -1, 1), DefaultDeadband)
	rotation = ApplyDeadband(clamp(rotation, -1, 1), DefaultDeadband)

	speed = math.Copysign(speed*speed, speed)
	rotation = math.Copysign(rotation*rotation, rotation)

	left = speed - rotation
	right = speed + rotation

	greater := math.Max(math.Abs(speed), math.Abs(rotation))
	lesser := math.Min(math.Abs(speed), math.Abs(rotation))
	if greater == 0 {
		return 0, 0
	}
	saturated := (greater + lesser) / greater
	return left / saturated, right / saturated
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
