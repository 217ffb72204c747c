// Package motion implements tile-aligned movement shared by every actor:
// stepping in pixels, committing turns only on tile boundaries, and
// rescaling positions when the tile size changes.
package motion

// Direction is a cardinal movement direction.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// All lists the four cardinal directions in a fixed order, for random picks.
var All = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Orientation describes how to draw a single right-facing sprite for a
// direction: a clockwise rotation in degrees, plus an optional vertical
// flip so the sprite is never upside down.
type Orientation struct {
	Rotation     int
	FlipVertical bool
}

// OrientationFor returns the sprite orientation for a direction. None faces right.
func OrientationFor(d Direction) Orientation {
	switch d {
	case Down:
		return Orientation{Rotation: 90}
	case Left:
		return Orientation{Rotation: 180, FlipVertical: true}
	case Up:
		return Orientation{Rotation: 270}
	default:
		return Orientation{}
	}
}
