package auton

import "fmt"

// Timing holds the autonomous windows, in milliseconds since the session
// anchor, and the open-loop taxi output.
type Timing struct {
	ShootMS        int64   `json:"shoot_ms"`
	TaxiMS         int64   `json:"taxi_ms"`
	IntakeExtendMS int64   `json:"intake_extend_ms"`
	TaxiSpeed      float64 `json:"taxi_speed"`
}

func DefaultTiming() Timing {
	return Timing{
		ShootMS:        2000,
		TaxiMS:         2000,
		IntakeExtendMS: 1000,
		TaxiSpeed:      0.2,
	}
}

func (t Timing) Validate() error {
	if t.ShootMS < 0 || t.TaxiMS < 0 || t.IntakeExtendMS < 0 {
		return fmt.Errorf("timing windows must be non-negative: shoot=%d taxi=%d intake_extend=%d",
			t.ShootMS, t.TaxiMS, t.IntakeExtendMS)
	}
	if t.TaxiSpeed < -1 || t.TaxiSpeed > 1 {
		return fmt.Errorf("taxi_speed %.3f outside [-1, 1]", t.TaxiSpeed)
	}
	return nil
}

// FireEnd is when the catapult window closes and the post-shot taxi opens.
func (t Timing) FireEnd() int64 { return t.ShootMS + t.IntakeExtendMS }

// TaxiAfterShotEnd is when the post-shot taxi window closes.
func (t Timing) TaxiAfterShotEnd() int64 { return t.FireEnd() + t.TaxiMS }
