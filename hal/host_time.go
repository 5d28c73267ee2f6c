package hal

import "time"

// hostClock advances once per frame. With a fixed step it ignores the wall
// clock, which keeps headless runs reproducible.
type hostClock struct {
	now   func() time.Time
	fixed time.Duration

	start   time.Time
	ticks   uint64
	elapsed time.Duration
}

func newHostClock(fixed time.Duration) *hostClock {
	return &hostClock{now: time.Now, fixed: fixed}
}

func (c *hostClock) Elapsed() time.Duration { return c.elapsed }

func (c *hostClock) step() {
	if c.fixed > 0 {
		c.elapsed = time.Duration(c.ticks) * c.fixed
		c.ticks++
		return
	}
	now := c.now()
	if c.start.IsZero() {
		c.start = now
	}
	c.elapsed = now.Sub(c.start)
	c.ticks++
}
