// Package core holds the engine-facing types shared by the game, the
// platform layer and the tools: screen buffer, input actions, timers and
// sound ids. It has no external dependencies so game logic stays testable
// without a terminal.
package core

// Rect is an axis-aligned box in whatever unit the caller uses
// (screen cells for overlays, pixels for hitboxes).
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Hitbox returns the collision box of an actor whose top-left pixel is
// (x, y). The box is half a tile wide, so two hitboxes intersect exactly
// when the actors are less than half a tile apart on both axes.
func Hitbox(x, y, tileSize int) Rect {
	half := tileSize / 2
	return Rect{X: x, Y: y, W: half, H: half}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
