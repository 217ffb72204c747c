package ladypac

import "github.com/vovakirdan/ladypac/internal/core"

// PowerPhase is the player's energized state after a power pellet.
type PowerPhase int

const (
	PowerInactive PowerPhase = iota
	PowerActive
	PowerFinishing
)

func (p PowerPhase) String() string {
	switch p {
	case PowerActive:
		return "active"
	case PowerFinishing:
		return "finishing"
	default:
		return "inactive"
	}
}

// PowerState runs Inactive -> Active -> Finishing -> Inactive on tick
// countdowns. Every activation bumps Cycle, which ghosts use to notice a
// fresh power pellet even when the phase did not change.
type PowerState struct {
	phase          PowerPhase
	timer          core.Countdown
	activeTicks    int
	finishingTicks int
	cycle          int
}

// NewPowerState creates an inactive power state with the given phase lengths.
func NewPowerState(activeTicks, finishingTicks int) *PowerState {
	return &PowerState{
		activeTicks:    max(1, activeTicks),
		finishingTicks: max(1, finishingTicks),
	}
}

// Activate (re)starts the cycle from Active. Durations never stack.
func (p *PowerState) Activate() {
	p.phase = PowerActive
	p.timer.Start(p.activeTicks)
	p.cycle++
}

// Tick advances the countdown and reports whether the phase changed.
func (p *PowerState) Tick() bool {
	if p.phase == PowerInactive || !p.timer.Tick() {
		return false
	}
	switch p.phase {
	case PowerActive:
		p.phase = PowerFinishing
		p.timer.Start(p.finishingTicks)
	case PowerFinishing:
		p.phase = PowerInactive
	}
	return true
}

// Stop cancels any running phase.
func (p *PowerState) Stop() {
	p.phase = PowerInactive
	p.timer.Stop()
}

// Phase returns the current phase.
func (p *PowerState) Phase() PowerPhase { return p.phase }

// Cycle returns the number of activations so far.
func (p *PowerState) Cycle() int { return p.cycle }

// Remaining returns the ticks left in the current phase.
func (p *PowerState) Remaining() int { return p.timer.Remaining() }
