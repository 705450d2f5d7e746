package subsystems

// MotorController takes a duty cycle in [-1, 1].
type MotorController interface {
	Set(output float64)
}

type SolenoidValue int

const (
	SolenoidOff SolenoidValue = iota
	SolenoidForward
	SolenoidReverse
)

func (v SolenoidValue) String() string {
	switch v {
	case SolenoidOff:
		return "off"
	case SolenoidForward:
		return "forward"
	case SolenoidReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

type DoubleSolenoid interface {
	Set(value SolenoidValue)
}

// Compressor runs closed loop on the pneumatic hub's analog pressure sensor.
type Compressor interface {
	EnableAnalog(minPSI, maxPSI float64)
}

// DistanceSensor reports distance travelled in meters since the last reset.
type DistanceSensor interface {
	Distance() float64
	Reset()
}

// HeadingSensor reports yaw in degrees, counter-clockwise positive.
type HeadingSensor interface {
	Heading() float64
}
