// Package clock drives the simulation at a fixed tick rate.
package clock

import (
	"context"
	"sync"
	"time"
)

// DefaultTickRate is the target frame rate.
const DefaultTickRate = 60

// Clock counts fixed-rate ticks and can be paused. Tick is called by
// whatever owns the loop (a bubbletea tick message or Run); pausing makes
// Tick skip the step without stopping the loop.
type Clock struct {
	mu       sync.Mutex
	interval time.Duration
	paused   bool
	ticks    uint64
}

// New creates a clock for the given ticks per second. Non-positive rates
// use DefaultTickRate.
func New(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Clock{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the wall-clock time between ticks.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Pause stops ticks from running steps.
func (c *Clock) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume lets ticks run steps again.
func (c *Clock) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Ticks returns how many steps have run.
func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Tick runs one step unless paused and reports whether it ran.
func (c *Clock) Tick(step func()) bool {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return false
	}
	c.ticks++
	c.mu.Unlock()

	step()
	return true
}

// Run calls Tick at the clock's interval until ctx is done.
func (c *Clock) Run(ctx context.Context, step func()) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick(step)
		}
	}
}
