package ladypac

import (
	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/motion"
)

// DefaultSwipeDistance is the shortest mouse drag, in terminal cells, that
// counts as a swipe.
const DefaultSwipeDistance = 2

// DirectionForAction maps a movement action to a direction.
func DirectionForAction(a core.Action) motion.Direction {
	switch a {
	case core.ActionUp:
		return motion.Up
	case core.ActionDown:
		return motion.Down
	case core.ActionLeft:
		return motion.Left
	case core.ActionRight:
		return motion.Right
	default:
		return motion.None
	}
}

// DirectionForSwipe maps a drag vector to the direction of its dominant
// axis. Vectors shorter than minDistance on both axes, and exact diagonals,
// map to None.
func DirectionForSwipe(dx, dy, minDistance int) motion.Direction {
	ax, ay := core.Abs(dx), core.Abs(dy)
	if max(ax, ay) < minDistance || ax == ay {
		return motion.None
	}
	if ax > ay {
		if dx > 0 {
			return motion.Right
		}
		return motion.Left
	}
	if dy > 0 {
		return motion.Down
	}
	return motion.Up
}
