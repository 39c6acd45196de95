package core

import "time"

// Clock is the frame timing source. The zero value is not usable, use NewClock.
type Clock struct {
	now      func() time.Time
	previous time.Time
	started  bool
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource builds a clock reading time from now instead of time.Now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Starts the provided clock. The current time becomes the origin of the next Tick.
func (c *Clock) Start() {
	c.previous = c.now()
	c.started = true
}

// Tick returns the seconds elapsed since the previous tick (or Start) and
// makes the current time the new reference. A clock that was never started
// is started and reports 0.
func (c *Clock) Tick() float64 {
	current := c.now()
	if !c.started {
		c.previous = current
		c.started = true
		return 0
	}
	delta := current.Sub(c.previous).Seconds()
	c.previous = current
	return delta
}

func (c *Clock) Started() bool {
	return c.started
}
