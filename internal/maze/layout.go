package maze

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is a level as authored: ASCII rows plus an id and display name.
//
// Legend:
//
//	#  wall
//	.  pellet
//	o  power pellet
//	P  player spawn
//	G  ghost spawn
//	   (space or _) empty
type Layout struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

var glyphs = map[rune]Cell{
	'#': Wall,
	'.': Pellet,
	'o': PowerPellet,
	'P': PlayerSpawn,
	'G': GhostSpawn,
	' ': Empty,
	'_': Empty,
}

// ParseLayoutYAML decodes a YAML level file and validates it.
func ParseLayoutYAML(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if l.ID == "" {
		return Layout{}, fmt.Errorf("maze: layout without id")
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Codes converts the ASCII rows to cell codes.
func (l Layout) Codes() ([][]Cell, error) {
	codes := make([][]Cell, len(l.Rows))
	for row, line := range l.Rows {
		codes[row] = make([]Cell, 0, len(line))
		for col, r := range line {
			c, ok := glyphs[r]
			if !ok {
				return nil, fmt.Errorf("maze: layout %s: %w %q at (%d, %d)", l.ID, ErrUnknownCell, r, col, row)
			}
			codes[row] = append(codes[row], c)
		}
	}
	return codes, nil
}

// Validate checks that the layout builds a grid and that no walkable tile
// sits on the outer border, so actors cannot leave the maze.
func (l Layout) Validate() error {
	codes, err := l.Codes()
	if err != nil {
		return err
	}
	g, err := NewGrid(codes)
	if err != nil {
		return fmt.Errorf("maze: layout %s: %w", l.ID, err)
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			onBorder := row == 0 || col == 0 || row == g.height-1 || col == g.width-1
			if onBorder && codes[row][col] != Wall {
				return fmt.Errorf("maze: layout %s: %w at (%d, %d)", l.ID, ErrOpenBorder, col, row)
			}
		}
	}
	return nil
}

// Grid builds a fresh, unplayed grid for the layout.
func (l Layout) Grid() (*Grid, error) {
	codes, err := l.Codes()
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(codes)
	if err != nil {
		return nil, fmt.Errorf("maze: layout %s: %w", l.ID, err)
	}
	return g, nil
}

// String renders the layout rows, one per line.
func (l Layout) String() string {
	return strings.Join(l.Rows, "\n")
}
