package engine

import "time"

// FrameClock measures real elapsed time between frames
type FrameClock struct {
	now      func() time.Time
	maxDelta time.Duration
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock reading time from now, usually time.Now
// Deltas are capped at maxDelta so a stalled terminal never teleports ships
func NewFrameClock(now func() time.Time, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		now:      now,
		maxDelta: maxDelta,
	}
}

// Tick returns the seconds elapsed since the previous Tick
// The first Tick returns zero
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt.Seconds()
}

// Now returns the clock's current time; keyboard events are stamped with it
func (c *FrameClock) Now() time.Time {
	return c.now()
}
