package subsystems

import (
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpiotest"
)

type fakeMotor struct {
	out   float64
	calls int
}

func (m *fakeMotor) Set(output float64) {
	m.out = output
	m.calls++
}

type fakeSolenoid struct {
	value SolenoidValue
}

func (s *fakeSolenoid) Set(value SolenoidValue) { s.value = value }

type fakeCompressor struct {
	min, max float64
	calls    int
}

func (c *fakeCompressor) EnableAnalog(minPSI, maxPSI float64) {
	c.min, c.max = minPSI, maxPSI
	c.calls++
}

type fakeEncoder struct{ dist float64 }

func (e *fakeEncoder) Distance() float64 { return e.dist }
func (e *fakeEncoder) Reset()            { e.dist = 0 }

type fakeGyro struct{ deg float64 }

func (g *fakeGyro) Heading() float64 { return g.deg }

// newSwitchPin returns a released active-low switch.
func newSwitchPin() *gpiotest.Pin {
	return &gpiotest.Pin{N: "LIMIT", Num: 17, L: gpio.High}
}

func press(p *gpiotest.Pin)   { p.L = gpio.Low }
func release(p *gpiotest.Pin) { p.L = gpio.High }
