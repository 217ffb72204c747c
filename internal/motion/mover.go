package motion

import "math"

// Walls answers whether the tile ahead of a pixel position is blocked.
// It must return false whenever the position is not tile-aligned.
type Walls interface {
	IsWall(px, py int, dir Direction, tileSize int) bool
}

// Aligned reports whether a pixel position sits exactly on a tile corner.
func Aligned(x, y, tileSize int) bool {
	if tileSize <= 0 {
		return false
	}
	return x%tileSize == 0 && y%tileSize == 0
}

// Mover is the position state of one actor.
//
// X and Y are pixels. XSteps and YSteps hold the net displacement from the
// spawn tile since the last placement, which is what Rescale scales.
type Mover struct {
	X, Y           int
	XSteps, YSteps int
	SpawnCol       int
	SpawnRow       int
	Active         Direction
	Pending        Direction

	tileSize int // tile size at the last placement or rescale; 0 until placed
	speed    int // speed the displacement was last snapped to
}

// NewMover creates a mover that will be placed on the given spawn tile on
// its first Sync.
func NewMover(col, row int) Mover {
	return Mover{SpawnCol: col, SpawnRow: row}
}

// TileSize returns the tile size the position is currently expressed in.
func (m *Mover) TileSize() int {
	return m.tileSize
}

// Place puts the actor on its spawn tile and forgets all displacement.
func (m *Mover) Place(tileSize int) {
	m.X = m.SpawnCol * tileSize
	m.Y = m.SpawnRow * tileSize
	m.XSteps = 0
	m.YSteps = 0
	m.tileSize = tileSize
}

// Sync brings the position in line with the current tile size. The first
// call places the actor on its spawn tile; later calls rescale only when
// the tile size or the speed actually changed. It reports whether a
// rescale happened.
func (m *Mover) Sync(tileSize, speed int) bool {
	switch {
	case m.tileSize == 0:
		m.Place(tileSize)
		m.speed = speed
		return false
	case m.tileSize == tileSize && m.speed == speed:
		return false
	}
	m.Rescale(m.tileSize, tileSize, speed)
	return true
}

// Rescale converts the position from oldTile to newTile pixels while
// keeping the actor's relative progress through the maze. The resulting
// displacement stays on the speed lattice, so future steps still land on
// tile boundaries. With equal tile sizes it only snaps the displacement
// onto the lattice of the new speed.
func (m *Mover) Rescale(oldTile, newTile, speed int) {
	m.speed = speed
	if oldTile <= 0 || newTile <= 0 {
		m.tileSize = newTile
		return
	}
	m.XSteps = rescaleSteps(m.XSteps, oldTile, newTile, speed)
	m.YSteps = rescaleSteps(m.YSteps, oldTile, newTile, speed)
	m.X = m.SpawnCol*newTile + m.XSteps
	m.Y = m.SpawnRow*newTile + m.YSteps
	m.tileSize = newTile
}

func rescaleSteps(steps, oldTile, newTile, speed int) int {
	diff := int(math.Round(float64(steps*(oldTile-newTile)) / float64(oldTile)))
	if speed > 0 {
		diff -= diff % speed
	}
	next := steps - diff
	if speed > 0 {
		next -= next % speed
	}
	return next
}

// Aligned reports whether the actor is on a tile corner.
func (m *Mover) Aligned(tileSize int) bool {
	return Aligned(m.X, m.Y, tileSize)
}

// Tile returns the tile the actor mostly covers.
func (m *Mover) Tile(tileSize int) (col, row int) {
	if tileSize <= 0 {
		return 0, 0
	}
	return floorDiv(m.X+tileSize/2, tileSize), floorDiv(m.Y+tileSize/2, tileSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Request latches a pending direction. Reversing the active direction takes
// effect immediately, anywhere on the tile.
func (m *Mover) Request(dir Direction) {
	if dir == None {
		return
	}
	m.Pending = dir
	if m.Active != None && dir == m.Active.Opposite() {
		m.Active = dir
	}
}

// Arbitrate commits the pending direction when the actor is aligned and the
// tile ahead in that direction is open. It reports whether the active
// direction changed.
func (m *Mover) Arbitrate(walls Walls, tileSize int) bool {
	if m.Pending == None || m.Pending == m.Active {
		return false
	}
	if m.Active != None && m.Pending == m.Active.Opposite() {
		m.Active = m.Pending
		return true
	}
	if !m.Aligned(tileSize) || walls.IsWall(m.X, m.Y, m.Pending, tileSize) {
		return false
	}
	m.Active = m.Pending
	return true
}

// Step moves the actor speed pixels along its active direction. It parks
// the actor when the tile ahead is a wall and reports whether it moved.
func (m *Mover) Step(walls Walls, tileSize, speed int) bool {
	if m.Active == None || speed <= 0 {
		return false
	}
	if walls.IsWall(m.X, m.Y, m.Active, tileSize) {
		return false
	}
	dx, dy := m.Active.Delta()
	m.X += dx * speed
	m.Y += dy * speed
	m.XSteps += dx * speed
	m.YSteps += dy * speed
	return true
}
