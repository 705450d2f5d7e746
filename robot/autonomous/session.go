package auton

import "time"

// SessionState is the state that outlives a single tick within one
// autonomous period: the clock anchor and the distance-taxi done flag. The
// robot lifecycle calls Reset when a new autonomous period begins.
type SessionState struct {
	anchor   time.Time
	anchored bool
	done     bool
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

func (s *SessionState) Reset() {
	*s = SessionState{}
}

// Elapsed returns the time since the anchor, anchoring at now on the first
// call after a reset.
func (s *SessionState) Elapsed(now time.Time) time.Duration {
	if !s.anchored {
		s.anchor = now
		s.anchored = true
	}
	return now.Sub(s.anchor)
}

func (s *SessionState) Anchored() bool    { return s.anchored }
func (s *SessionState) Anchor() time.Time { return s.anchor }

// MarkDone latches the done flag until the next Reset.
func (s *SessionState) MarkDone()  { s.done = true }
func (s *SessionState) Done() bool { return s.done }
