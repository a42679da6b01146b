package model

import "time"

// Driven is what a Clock drives. *Simulation implements it.
type Driven interface {
	Frame(elapsed time.Duration)
	Step()
}

// Clock feeds a Driven from two cadences: a frame callback with the time
// since Start, and a step every interval. Hosts with a single loop call
// Advance; hosts with their own tickers call Frame and Interval.
type Clock struct {
	target   Driven
	interval time.Duration

	start   time.Time
	last    time.Time
	running bool
}

func NewClock(target Driven, interval time.Duration) *Clock {
	return &Clock{target: target, interval: interval}
}

func (c *Clock) Start(now time.Time) {
	c.start = now
	c.last = now
	c.running = true
}

// Stop makes every later call a no-op.
func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool {
	return c.running
}

func (c *Clock) Frame(now time.Time) {
	if !c.running {
		return
	}
	c.target.Frame(now.Sub(c.start))
}

func (c *Clock) Interval() {
	if !c.running {
		return
	}
	c.target.Step()
}

// Advance runs the frame callback, then one step if an interval has
// passed since the previous one. After a stall it steps once and
// realigns instead of catching up.
func (c *Clock) Advance(now time.Time) {
	if !c.running {
		return
	}
	c.target.Frame(now.Sub(c.start))
	if c.interval <= 0 || now.Sub(c.last) < c.interval {
		return
	}
	c.target.Step()
	c.last = c.last.Add(c.interval)
	if now.Sub(c.last) >= c.interval {
		c.last = now
	}
}
