package auton

import (
	"fmt"
	"time"
)

// robotLog records collaborator calls in order.
type robotLog struct {
	calls []string
}

func (r *robotLog) Stop() { r.calls = append(r.calls, "stop") }
func (r *robotLog) DriveForward(fraction float64) {
	r.calls = append(r.calls, fmt.Sprintf("forward@%.2f", fraction))
}
func (r *robotLog) ExtendIntake()        { r.calls = append(r.calls, "extend") }
func (r *robotLog) AutoFire(active bool) { r.calls = append(r.calls, fmt.Sprintf("fire=%v", active)) }
func (r *robotLog) Low()                 { r.calls = append(r.calls, "low") }

func (r *robotLog) take() []string {
	out := r.calls
	r.calls = nil
	return out
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2022, 3, 18, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
func (c *fakeClock) AdvanceMS(ms int64)      { c.Advance(time.Duration(ms) * time.Millisecond) }

type scriptedTaxi struct {
	doneAfter int
	calls     int
	targets   []float64
}

func (s *scriptedTaxi) Advance(target float64) bool {
	s.calls++
	s.targets = append(s.targets, target)
	return s.calls >= s.doneAfter
}

type fakeBase struct {
	dist, heading float64
	left, right   float64
	calls         int
}

func (b *fakeBase) TankDrive(left, right float64) {
	b.left, b.right = left, right
	b.calls++
}
func (b *fakeBase) Distance() float64 { return b.dist }
func (b *fakeBase) Heading() float64  { return b.heading }
