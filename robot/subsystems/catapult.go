package subsystems

import "yeet-machine/utils"

// Catapult is a single pneumatic throwing arm. In teleop it fires only when
// the limit-switch latch has seen cargo since the previous shot.
type Catapult struct {
	solenoid DoubleSolenoid
	input    OperatorInput
	latch    *LimitSwitch
	buttons  Buttons
	log      *utils.Logger

	firing bool
	shots  int
}

func NewCatapult(solenoid DoubleSolenoid, input OperatorInput, latch *LimitSwitch, buttons Buttons, log *utils.Logger) *Catapult {
	return &Catapult{
		solenoid: solenoid,
		input:    input,
		latch:    latch,
		buttons:  buttons,
		log:      log,
	}
}

func (c *Catapult) Periodic() {
	fire := c.input.JoystickButton(c.buttons.Catapult)
	loaded := c.latch.Get()

	switch {
	case fire && loaded:
		c.latch.Update(true)
		c.set(true)
	case c.input.JoystickButton(c.buttons.CatapultDown):
		c.set(false)
	case fire:
		c.log.Trace("fire ignored: no cargo latched")
	}
}

// AutoFire drives the arm directly, bypassing the latch.
func (c *Catapult) AutoFire(active bool) {
	c.set(active)
}

func (c *Catapult) set(fire bool) {
	if fire {
		c.solenoid.Set(SolenoidForward)
		if !c.firing {
			c.shots++
			c.log.Info("catapult fired (shot %d)", c.shots)
		}
	} else {
		c.solenoid.Set(SolenoidReverse)
	}
	c.firing = fire
}

// Reset forgets the arm state after the outputs were neutralised, so the
// next fire is counted as a new shot.
func (c *Catapult) Reset() {
	c.firing = false
}

func (c *Catapult) Firing() bool { return c.firing }
func (c *Catapult) Shots() int   { return c.shots }
