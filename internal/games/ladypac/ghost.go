package ladypac

import (
	"math/rand"

	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/motion"
)

// GhostState is a ghost's vulnerability.
type GhostState int

const (
	GhostWandering GhostState = iota
	GhostEdible
	GhostEdibleFlashing
	GhostEaten
)

func (s GhostState) String() string {
	switch s {
	case GhostWandering:
		return "wandering"
	case GhostEdible:
		return "edible"
	case GhostEdibleFlashing:
		return "edible-flashing"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

type ghostTiming struct {
	eatenTicks      int
	recoveringTicks int
	wanderMin       int
	wanderMax       int
}

// Ghost wanders the maze on random turns and mirrors the player's power.
type Ghost struct {
	motion.Mover

	index      int
	state      GhostState
	recovering bool // second half of Eaten, drawn flashing
	stateTimer core.Countdown
	wander     core.Countdown
	seenCycle  int
	timing     ghostTiming
	rng        *rand.Rand
}

func newGhost(index int, spawn maze.Point, timing ghostTiming, rng *rand.Rand) *Ghost {
	g := &Ghost{
		Mover:  motion.NewMover(spawn.Col, spawn.Row),
		index:  index,
		timing: timing,
		rng:    rng,
	}
	g.wander.Start(g.drawWander())
	return g
}

// Index returns the ghost's position in spawn order.
func (g *Ghost) Index() int { return g.index }

// State returns the vulnerability state.
func (g *Ghost) State() GhostState { return g.state }

// Recovering reports whether an eaten ghost is in its flashing return window.
func (g *Ghost) Recovering() bool { return g.state == GhostEaten && g.recovering }

func (g *Ghost) drawWander() int {
	span := g.timing.wanderMax - g.timing.wanderMin + 1
	if span <= 1 {
		return max(1, g.timing.wanderMin)
	}
	return g.timing.wanderMin + g.rng.Intn(span)
}

// syncPower applies power transitions seen since the last tick. A new
// cycle makes a vulnerable ghost edible again; eaten ghosts only record
// the cycle so they return as wanderers.
func (g *Ghost) syncPower(p *PowerState) {
	fresh := p.Cycle() != g.seenCycle
	g.seenCycle = p.Cycle()

	switch g.state {
	case GhostEaten:
		return
	case GhostWandering:
		if !fresh {
			return
		}
	}

	switch p.Phase() {
	case PowerInactive:
		g.state = GhostWandering
	case PowerActive:
		g.state = GhostEdible
	case PowerFinishing:
		g.state = GhostEdibleFlashing
	}
}

// markEaten moves the ghost into Eaten where it stays in place.
func (g *Ghost) markEaten() {
	g.state = GhostEaten
	g.recovering = false
	g.stateTimer.Start(g.timing.eatenTicks)
}

// advance runs one tick. State timers always count; movement and turning
// are skipped while frozen or eaten. It reports whether an eaten ghost
// returned to wandering on this tick.
func (g *Ghost) advance(grid *maze.Grid, tileSize, speed int, frozen bool) (recovered bool) {
	if g.state == GhostEaten {
		if g.stateTimer.Tick() {
			if !g.recovering {
				g.recovering = true
				g.stateTimer.Start(g.timing.recoveringTicks)
			} else {
				g.recovering = false
				g.state = GhostWandering
				recovered = true
			}
		}
		return recovered
	}

	if frozen {
		return false
	}

	if g.wander.Tick() {
		g.Pending = motion.All[g.rng.Intn(len(motion.All))]
		if !g.Arbitrate(grid, tileSize) {
			g.Pending = g.Active
		}
		g.wander.Start(g.drawWander())
	}

	g.Step(grid, tileSize, speed)
	return false
}

// overlaps reports whether the ghost and the player are less than half a
// tile apart on both axes.
func (g *Ghost) overlaps(p *Player, tileSize int) bool {
	return core.Hitbox(g.X, g.Y, tileSize).Intersects(core.Hitbox(p.X, p.Y, tileSize))
}

// stop cancels the ghost's timers.
func (g *Ghost) stop() {
	g.stateTimer.Stop()
	g.wander.Stop()
}
