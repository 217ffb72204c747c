package core

import "time"

// Countdown is a tick-based one-shot timer. It is a plain value owned by
// whatever actor uses it, so dropping the owner drops the timer with it.
// Starting a running Countdown replaces the pending deadline.
type Countdown struct {
	remaining int
}

// Start (re)arms the timer to fire after the given number of ticks.
// Non-positive values stop it.
func (c *Countdown) Start(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.remaining = ticks
}

// Stop cancels the timer without firing.
func (c *Countdown) Stop() {
	c.remaining = 0
}

// Active reports whether the timer is armed.
func (c Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the ticks left before the timer fires.
func (c Countdown) Remaining() int {
	return c.remaining
}

// Tick advances the timer by one tick and reports whether it fired on this tick.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// TicksFor converts a wall-clock duration to a tick count at the given rate.
// Any positive duration lasts at least one tick.
func TicksFor(d time.Duration, tickRate int) int {
	if d <= 0 || tickRate <= 0 {
		return 0
	}
	ticks := int(d * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
