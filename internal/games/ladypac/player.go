package ladypac

import (
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/motion"
)

// AnimationFrames is the length of the player's mouth cycle.
const AnimationFrames = 4

type consumption int

const (
	consumedNothing consumption = iota
	consumedPellet
	consumedPowerPellet
)

// Player is the operator-controlled actor.
type Player struct {
	motion.Mover

	initialMove bool // set by the first accepted input, cleared on capture
	frame       int
	frameTicks  int
	animCounter int
}

func newPlayer(spawn maze.Point, frameTicks int) *Player {
	return &Player{
		Mover:      motion.NewMover(spawn.Col, spawn.Row),
		frameTicks: max(1, frameTicks),
	}
}

// RequestDirection latches a direction. It returns false for None.
func (p *Player) RequestDirection(dir motion.Direction) bool {
	if dir == motion.None {
		return false
	}
	p.Request(dir)
	p.initialMove = true
	return true
}

// HasMoved reports whether the player has given input since the start or
// the last capture.
func (p *Player) HasMoved() bool { return p.initialMove }

// Frame returns the animation frame, 0 to AnimationFrames-1.
func (p *Player) Frame() int { return p.frame }

// Orientation returns how to draw the player sprite.
func (p *Player) Orientation() motion.Orientation {
	return motion.OrientationFor(p.Active)
}

// advance runs one tick of movement and eats whatever lies under an
// aligned player.
func (p *Player) advance(grid *maze.Grid, tileSize, speed int, gameOver bool) consumption {
	if gameOver {
		return consumedNothing
	}

	p.Arbitrate(grid, tileSize)
	p.animate(p.Step(grid, tileSize, speed))

	switch {
	case grid.ConsumePellet(p.X, p.Y, tileSize, maze.Pellet):
		return consumedPellet
	case grid.ConsumePellet(p.X, p.Y, tileSize, maze.PowerPellet):
		return consumedPowerPellet
	}
	return consumedNothing
}

func (p *Player) animate(moved bool) {
	if !moved {
		p.frame = 0
		p.animCounter = 0
		return
	}
	p.animCounter++
	if p.animCounter >= p.frameTicks {
		p.animCounter = 0
		p.frame = (p.frame + 1) % AnimationFrames
	}
}
