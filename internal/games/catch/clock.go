package catch

import "time"

// FrameClock turns a stream of frame timestamps into elapsed seconds.
// The first frame after a reset only establishes the baseline and yields 0.
type FrameClock struct {
	last    time.Time
	started bool
}

// Advance records now and returns seconds since the previous frame.
// Timestamps that go backwards produce 0 rather than negative motion.
func (c *FrameClock) Advance(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the baseline so the next frame starts fresh.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
	c.started = false
}
