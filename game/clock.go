package game

// MovementClock stores the last time each movement axis fired. The axes are
// independent: firing one never touches another's timestamp.
type MovementClock struct {
	Gravity    float64
	SoftDrop   float64
	Horizontal float64
}

// Reset starts every axis from now.
func (c *MovementClock) Reset(now float64) {
	c.Gravity = now
	c.SoftDrop = now
	c.Horizontal = now
}

func due(last, now, interval float64) bool {
	return now-last >= interval
}

// LockTimer measures how long the active piece has been continuously resting.
type LockTimer struct {
	Contact bool
	Since   float64
}

// Observe records this frame's contact flag. It reports whether contact just
// began or just ended.
func (t *LockTimer) Observe(contact bool, now float64) (started, ended bool) {
	switch {
	case contact && !t.Contact:
		t.Contact = true
		t.Since = now
		return true, false
	case !contact && t.Contact:
		t.Contact = false
		t.Since = 0
		return false, true
	}
	return false, false
}

// Elapsed returns the time in contact, or 0 when not resting.
func (t *LockTimer) Elapsed(now float64) float64 {
	if !t.Contact {
		return 0
	}
	return now - t.Since
}

func (t *LockTimer) Reset() {
	*t = LockTimer{}
}
