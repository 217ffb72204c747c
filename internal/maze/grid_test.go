package maze

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ladypac/internal/motion"
)

// scenario is the 3x3 grid: walls around one pellet above the player spawn.
func scenario(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid([][]Cell{
		{1, 1, 1},
		{1, 0, 1},
		{1, 2, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g
}

func TestNewGridSpawnsBecomeEmpty(t *testing.T) {
	g, err := NewGrid([][]Cell{
		{1, 1, 1, 1},
		{1, 2, 4, 1},
		{1, 0, 5, 1},
		{1, 1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	if g.PlayerSpawn() != (Point{Col: 1, Row: 1}) {
		t.Errorf("PlayerSpawn() = %+v, expected (1, 1)", g.PlayerSpawn())
	}
	if spawns := g.GhostSpawns(); len(spawns) != 1 || spawns[0] != (Point{Col: 2, Row: 1}) {
		t.Errorf("GhostSpawns() = %+v, expected [(2, 1)]", spawns)
	}
	if g.CellAt(1, 1) != Empty || g.CellAt(2, 1) != Empty {
		t.Error("spawn cells should be stored as Empty")
	}
	if g.RemainingPellets() != 2 {
		t.Errorf("RemainingPellets() = %d, expected 2", g.RemainingPellets())
	}
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		codes [][]Cell
		want  error
	}{
		{"empty", nil, ErrNotRectangular},
		{"ragged", [][]Cell{{1, 1, 1}, {1, 2}}, ErrNotRectangular},
		{"no player", [][]Cell{{1, 0, 1}}, ErrNoPlayerSpawn},
		{"two players", [][]Cell{{2, 0, 2}}, ErrNoPlayerSpawn},
		{"bad code", [][]Cell{{2, 9}}, ErrUnknownCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.codes)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewGrid() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := scenario(t)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if c := g.CellAt(p.Col, p.Row); c != OutOfBounds {
			t.Errorf("CellAt(%d, %d) = %v, expected out-of-bounds", p.Col, p.Row, c)
		}
	}
	if g.CellAt(0, 0) != Wall {
		t.Error("CellAt(0, 0) should be a wall")
	}
}

func TestIsWall(t *testing.T) {
	const ts = 20
	g := scenario(t)

	tests := []struct {
		name     string
		px, py   int
		dir      motion.Direction
		expected bool
	}{
		{"up from spawn is pellet", 20, 40, motion.Up, false},
		{"left from spawn is wall", 20, 40, motion.Left, true},
		{"right from spawn is wall", 20, 40, motion.Right, true},
		{"down from spawn leaves grid", 20, 40, motion.Down, false},
		{"unaligned never sees walls", 21, 40, motion.Left, false},
		{"up from pellet is wall", 20, 20, motion.Up, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsWall(tc.px, tc.py, tc.dir, ts); got != tc.expected {
				t.Errorf("IsWall(%d, %d, %v) = %v, expected %v", tc.px, tc.py, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestConsumePelletOnce(t *testing.T) {
	const ts = 20
	g := scenario(t)

	if g.ConsumePellet(20, 20, ts, PowerPellet) {
		t.Error("consuming the wrong kind must fail")
	}
	if g.ConsumePellet(22, 20, ts, Pellet) {
		t.Error("consuming while unaligned must fail")
	}
	if !g.ConsumePellet(20, 20, ts, Pellet) {
		t.Fatal("first ConsumePellet() should succeed")
	}
	if g.ConsumePellet(20, 20, ts, Pellet) {
		t.Error("second ConsumePellet() must return false")
	}
	if g.CellAt(1, 1) != Empty {
		t.Errorf("cell after consumption = %v, expected empty", g.CellAt(1, 1))
	}
	if g.RemainingPellets() != 0 {
		t.Errorf("RemainingPellets() = %d, expected 0", g.RemainingPellets())
	}
}

func TestConsumePelletRejectsNonPelletKinds(t *testing.T) {
	g := scenario(t)
	if g.ConsumePellet(0, 0, 20, Wall) {
		t.Error("walls cannot be consumed")
	}
	if g.CellAt(0, 0) != Wall {
		t.Error("wall cell was mutated")
	}
}
