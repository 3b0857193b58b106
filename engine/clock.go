package engine

import "time"

// Clock is the virtual game clock. It only moves when the scheduler
// advances it, so tests control time exactly.
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration { return c.now }

func (c *Clock) set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}
