package motion

import (
	"testing"
)

// fakeWalls blocks a fixed set of tiles.
type fakeWalls map[[2]int]bool

func (w fakeWalls) IsWall(px, py int, dir Direction, tileSize int) bool {
	if !Aligned(px, py, tileSize) {
		return false
	}
	dx, dy := dir.Delta()
	return w[[2]int{px/tileSize + dx, py/tileSize + dy}]
}

func TestAligned(t *testing.T) {
	tests := []struct {
		x, y, ts int
		expected bool
	}{
		{0, 0, 20, true},
		{40, 60, 20, true},
		{42, 60, 20, false},
		{40, 61, 20, false},
		{10, 10, 0, false},
	}

	for _, tc := range tests {
		if got := Aligned(tc.x, tc.y, tc.ts); got != tc.expected {
			t.Errorf("Aligned(%d, %d, %d) = %v, expected %v", tc.x, tc.y, tc.ts, got, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range All {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite should be itself", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v: deltas of opposites should cancel", d)
		}
	}
	if None.Opposite() != None {
		t.Error("None should have no opposite")
	}
}

func TestOrientationFor(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Orientation
	}{
		{Right, Orientation{Rotation: 0}},
		{Down, Orientation{Rotation: 90}},
		{Left, Orientation{Rotation: 180, FlipVertical: true}},
		{Up, Orientation{Rotation: 270}},
		{None, Orientation{Rotation: 0}},
	}

	for _, tc := range tests {
		if got := OrientationFor(tc.dir); got != tc.expected {
			t.Errorf("OrientationFor(%v) = %+v, expected %+v", tc.dir, got, tc.expected)
		}
	}
}

func TestStepParksAtWall(t *testing.T) {
	const ts, speed = 20, 2

	for _, dir := range All {
		t.Run(dir.String(), func(t *testing.T) {
			dx, dy := dir.Delta()
			walls := fakeWalls{{5 + dx, 5 + dy}: true}

			m := NewMover(5, 5)
			m.Sync(ts, speed)
			m.Active = dir

			x, y := m.X, m.Y
			for i := 0; i < 10; i++ {
				if m.Step(walls, ts, speed) {
					t.Fatal("Step() moved into a wall")
				}
			}
			if m.X != x || m.Y != y {
				t.Errorf("position changed to (%d, %d), expected (%d, %d)", m.X, m.Y, x, y)
			}
		})
	}
}

func TestStepCountsDisplacement(t *testing.T) {
	const ts, speed = 20, 4
	m := NewMover(2, 3)
	m.Sync(ts, speed)
	m.Active = Right

	for i := 0; i < 5; i++ {
		if !m.Step(fakeWalls{}, ts, speed) {
			t.Fatalf("Step() %d should move in open space", i)
		}
	}
	if m.X != 2*ts+20 || m.XSteps != 20 || m.YSteps != 0 {
		t.Errorf("X=%d XSteps=%d YSteps=%d, expected X=%d XSteps=20 YSteps=0", m.X, m.XSteps, m.YSteps, 2*ts+20)
	}
	if !m.Aligned(ts) {
		t.Error("after one full tile the mover should be aligned")
	}
}

func TestArbitrateWaitsForAlignment(t *testing.T) {
	const ts, speed = 20, 2
	walls := fakeWalls{}

	m := NewMover(1, 1)
	m.Sync(ts, speed)
	m.Active = Right
	m.Step(walls, ts, speed) // mid-tile now

	m.Request(Down)
	if m.Arbitrate(walls, ts) {
		t.Fatal("turn must not commit mid-tile")
	}
	for !m.Aligned(ts) {
		m.Step(walls, ts, speed)
	}
	if !m.Arbitrate(walls, ts) || m.Active != Down {
		t.Errorf("turn should commit once aligned, active = %v", m.Active)
	}
}

func TestArbitrateBlockedTurnStaysPending(t *testing.T) {
	const ts = 20
	m := NewMover(1, 1)
	m.Sync(ts, 2)
	m.Active = Right
	m.Request(Up)

	walls := fakeWalls{{1, 0}: true}
	if m.Arbitrate(walls, ts) {
		t.Fatal("turn into a wall must not commit")
	}
	if m.Pending != Up || m.Active != Right {
		t.Errorf("pending=%v active=%v, expected pending=up active=right", m.Pending, m.Active)
	}
}

func TestReversalIsImmediate(t *testing.T) {
	const ts, speed = 20, 2
	m := NewMover(1, 1)
	m.Sync(ts, speed)
	m.Active = Right
	m.Step(fakeWalls{}, ts, speed)

	m.Request(Left)
	if m.Active != Left {
		t.Errorf("reversal mid-tile should apply at once, active = %v", m.Active)
	}
}

func TestSyncFirstFramePlacesAtSpawn(t *testing.T) {
	m := NewMover(3, 4)
	if m.Sync(20, 2) {
		t.Error("first Sync must not report a rescale")
	}
	if m.X != 60 || m.Y != 80 {
		t.Errorf("position = (%d, %d), expected (60, 80)", m.X, m.Y)
	}
	if m.TileSize() != 20 {
		t.Errorf("TileSize() = %d, expected 20", m.TileSize())
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	m := NewMover(3, 4)
	m.Sync(40, 4)
	m.Active = Right
	m.Step(fakeWalls{}, 40, 4)

	m.Sync(24, 2)
	x, y, xs := m.X, m.Y, m.XSteps
	if m.Sync(24, 2) {
		t.Error("Sync with an unchanged tile size must be a no-op")
	}
	if m.X != x || m.Y != y || m.XSteps != xs {
		t.Error("second Sync changed the position")
	}
}

func TestSyncSpeedChangeSnapsToLattice(t *testing.T) {
	m := NewMover(1, 1)
	m.Sync(20, 2)
	m.Active = Right
	m.Step(fakeWalls{}, 20, 2) // 2 px, off the 4 px lattice

	if !m.Sync(20, 4) {
		t.Error("Sync with a new speed must report a rescale")
	}
	if m.XSteps%4 != 0 || (m.X-20)%4 != 0 {
		t.Errorf("XSteps = %d, X = %d, expected both on the 4 px lattice", m.XSteps, m.X)
	}

	// A wall two tiles right of spawn must still stop the actor on a boundary.
	walls := fakeWalls{{3, 1}: true}
	for i := 0; i < 20; i++ {
		m.Step(walls, 20, 4)
	}
	if m.X != 40 || !m.Aligned(20) {
		t.Errorf("X = %d, expected the actor parked at 40", m.X)
	}
}

func TestRescaleKeepsAlignment(t *testing.T) {
	sizes := []struct{ ts, speed int }{{40, 4}, {24, 2}, {20, 2}}

	for _, from := range sizes {
		for _, to := range sizes {
			if from == to {
				continue
			}
			for tiles := -3; tiles <= 5; tiles++ {
				m := NewMover(6, 6)
				m.Sync(from.ts, from.speed)
				m.XSteps = tiles * from.ts
				m.YSteps = -tiles * from.ts
				m.X = m.SpawnCol*from.ts + m.XSteps
				m.Y = m.SpawnRow*from.ts + m.YSteps

				m.Sync(to.ts, to.speed)
				if !m.Aligned(to.ts) {
					t.Errorf("%d->%d tiles=%d: position (%d, %d) not aligned", from.ts, to.ts, tiles, m.X, m.Y)
				}
				col, row := m.Tile(to.ts)
				if col != 6+tiles || row != 6-tiles {
					t.Errorf("%d->%d tiles=%d: tile (%d, %d), expected (%d, %d)", from.ts, to.ts, tiles, col, row, 6+tiles, 6-tiles)
				}
			}
		}
	}
}

func TestRescaleMidTileStaysOnSpeedLattice(t *testing.T) {
	m := NewMover(2, 2)
	m.Sync(24, 2)
	m.Active = Right
	for i := 0; i < 7; i++ { // 14 px, mid-tile
		m.Step(fakeWalls{}, 24, 2)
	}

	m.Sync(40, 4)
	if m.XSteps%4 != 0 {
		t.Errorf("XSteps = %d, expected a multiple of the new speed", m.XSteps)
	}

	// The actor must reach a tile boundary within one tile of travel.
	reached := false
	for i := 0; i < 40/4; i++ {
		m.Step(fakeWalls{}, 40, 4)
		if m.Aligned(40) {
			reached = true
			break
		}
	}
	if !reached {
		t.Error("actor never re-aligned after a mid-tile rescale")
	}
}

func TestRescaleRoundTrip(t *testing.T) {
	tests := []struct {
		name           string
		a, sa, b, sb   int
		stepsX, stepsY int
	}{
		{"aligned 40->20->40", 40, 4, 20, 2, 120, -80},
		{"aligned 24->40->24", 24, 2, 40, 4, -48, 72},
		{"mid-tile 40->20->40", 40, 4, 20, 2, 60, 0},
		{"mid-tile 20->24->20", 20, 2, 24, 2, 14, -6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMover(5, 5)
			m.Sync(tc.a, tc.sa)
			m.XSteps, m.YSteps = tc.stepsX, tc.stepsY
			m.X = 5*tc.a + tc.stepsX
			m.Y = 5*tc.a + tc.stepsY
			x, y := m.X, m.Y

			m.Sync(tc.b, tc.sb)
			m.Sync(tc.a, tc.sa)

			tolerance := max(tc.sa, tc.sb)
			if abs(m.X-x) > tolerance || abs(m.Y-y) > tolerance {
				t.Errorf("round trip moved (%d, %d) -> (%d, %d), tolerance %d", x, y, m.X, m.Y, tolerance)
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
