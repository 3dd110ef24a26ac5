package engine

import "time"

// DefaultTickInterval is the classic gravity period.
const DefaultTickInterval = 650 * time.Millisecond

// Clock is the fixed-interval gravity countdown.
type Clock struct {
	interval  time.Duration
	remaining time.Duration
	turns     int
}

// NewClock creates a clock that fires every interval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{interval: interval, remaining: interval}
}

// Advance subtracts dt and reports whether the clock expired. On expiry
// the countdown restarts from the full interval; leftover time is dropped.
func (c *Clock) Advance(dt time.Duration) bool {
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.remaining = c.interval
	c.turns++
	return true
}

// Expire makes the next Advance fire regardless of dt.
func (c *Clock) Expire() {
	c.remaining = 0
}

// Reset restarts the countdown and the turn counter.
func (c *Clock) Reset() {
	c.remaining = c.interval
	c.turns = 0
}

// SetInterval changes the period used from the next expiry on.
func (c *Clock) SetInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// Interval returns the current period.
func (c *Clock) Interval() time.Duration { return c.interval }

// Remaining returns the time left until the next tick.
func (c *Clock) Remaining() time.Duration { return c.remaining }

// Turns returns the number of ticks since the last reset.
func (c *Clock) Turns() int { return c.turns }
