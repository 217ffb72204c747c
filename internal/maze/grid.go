// Package maze holds the level grid: static walls, mutable pellets, spawn
// points and the viewport breakpoints that size a tile on screen.
package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ladypac/internal/motion"
)

// Cell is the content code of one grid tile.
type Cell int

// Cell codes follow the numeric level encoding (0 pellet, 1 wall, 2 player).
const (
	Pellet      Cell = 0
	Wall        Cell = 1
	PlayerSpawn Cell = 2
	Empty       Cell = 3
	GhostSpawn  Cell = 4
	PowerPellet Cell = 5

	// OutOfBounds is returned for queries outside the grid.
	OutOfBounds Cell = -1
)

func (c Cell) String() string {
	switch c {
	case Pellet:
		return "pellet"
	case Wall:
		return "wall"
	case PlayerSpawn:
		return "player-spawn"
	case Empty:
		return "empty"
	case GhostSpawn:
		return "ghost-spawn"
	case PowerPellet:
		return "power-pellet"
	case OutOfBounds:
		return "out-of-bounds"
	default:
		return fmt.Sprintf("cell(%d)", int(c))
	}
}

var (
	ErrNotRectangular = errors.New("maze: grid is not rectangular")
	ErrNoPlayerSpawn  = errors.New("maze: grid needs exactly one player spawn")
	ErrUnknownCell    = errors.New("maze: unknown cell code")
	ErrOpenBorder     = errors.New("maze: border tile is walkable")
)

// Point is a tile coordinate.
type Point struct {
	Col, Row int
}

// Grid is one level's maze. Its shape is fixed; the only mutation is a
// pellet turning into Empty.
type Grid struct {
	cells       [][]Cell
	width       int
	height      int
	playerSpawn Point
	ghostSpawns []Point
}

// NewGrid builds a grid from rows of cell codes. Spawn cells are recorded
// and then stored as Empty. The input slice is copied.
func NewGrid(codes [][]Cell) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrNotRectangular
	}

	g := &Grid{
		height: len(codes),
		width:  len(codes[0]),
		cells:  make([][]Cell, len(codes)),
	}

	players := 0
	for row, line := range codes {
		if len(line) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrNotRectangular, row, len(line), g.width)
		}
		g.cells[row] = make([]Cell, g.width)
		for col, c := range line {
			switch c {
			case PlayerSpawn:
				players++
				g.playerSpawn = Point{Col: col, Row: row}
				c = Empty
			case GhostSpawn:
				g.ghostSpawns = append(g.ghostSpawns, Point{Col: col, Row: row})
				c = Empty
			case Pellet, Wall, Empty, PowerPellet:
			default:
				return nil, fmt.Errorf("%w %d at (%d, %d)", ErrUnknownCell, c, col, row)
			}
			g.cells[row][col] = c
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("%w, found %d", ErrNoPlayerSpawn, players)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// PlayerSpawn returns the player's start tile.
func (g *Grid) PlayerSpawn() Point { return g.playerSpawn }

// GhostSpawns returns the ghost start tiles in row-major order.
func (g *Grid) GhostSpawns() []Point {
	out := make([]Point, len(g.ghostSpawns))
	copy(out, g.ghostSpawns)
	return out
}

// CellAt returns the cell at a tile, or OutOfBounds.
func (g *Grid) CellAt(col, row int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return OutOfBounds
	}
	return g.cells[row][col]
}

// IsWall reports whether the tile one step in dir from an aligned pixel
// position is a wall. Unaligned positions never see a wall, and tiles
// outside the grid are not walls.
func (g *Grid) IsWall(px, py int, dir motion.Direction, tileSize int) bool {
	if !motion.Aligned(px, py, tileSize) {
		return false
	}
	dx, dy := dir.Delta()
	return g.CellAt(px/tileSize+dx, py/tileSize+dy) == Wall
}

// ConsumePellet eats the pellet of the expected kind under an aligned
// actor. It returns true only the first time for a given tile.
func (g *Grid) ConsumePellet(px, py, tileSize int, expected Cell) bool {
	if expected != Pellet && expected != PowerPellet {
		return false
	}
	if !motion.Aligned(px, py, tileSize) {
		return false
	}
	col, row := px/tileSize, py/tileSize
	if g.CellAt(col, row) != expected {
		return false
	}
	g.cells[row][col] = Empty
	return true
}

// RemainingPellets counts pellets and power pellets still on the grid.
func (g *Grid) RemainingPellets() int {
	n := 0
	for _, line := range g.cells {
		for _, c := range line {
			if c == Pellet || c == PowerPellet {
				n++
			}
		}
	}
	return n
}
