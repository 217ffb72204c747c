package ladypac

import (
	"math/rand"

	"github.com/vovakirdan/ladypac/internal/core"
)

var moves = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Autopilot produces seeded pseudo-random input for headless runs. Every
// interval ticks it presses one direction; the frames in between are empty.
type Autopilot struct {
	rng      *rand.Rand
	interval int
	tick     int
}

// NewAutopilot creates an input source. Intervals below 1 press on every
// tick.
func NewAutopilot(seed int64, interval int) *Autopilot {
	if interval < 1 {
		interval = 1
	}
	return &Autopilot{rng: rand.New(rand.NewSource(seed)), interval: interval}
}

// Next returns the input for the next tick.
func (a *Autopilot) Next() core.InputFrame {
	in := core.NewInputFrame()
	if a.tick%a.interval == 0 {
		in.Set(moves[a.rng.Intn(len(moves))])
	}
	a.tick++
	return in
}
