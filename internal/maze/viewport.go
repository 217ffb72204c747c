package maze

import (
	"errors"
	"fmt"
	"sort"
)

// Breakpoint maps viewports at least MinWidth pixels wide to a tile size
// and a per-tick actor speed.
type Breakpoint struct {
	MinWidth int
	TileSize int
	Speed    int
}

// Breakpoints is a breakpoint table. Lookups pick the widest breakpoint the
// viewport satisfies, falling back to the narrowest one.
type Breakpoints []Breakpoint

// DefaultBreakpoints returns the wide/medium/narrow table.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		{MinWidth: 700, TileSize: 40, Speed: 4},
		{MinWidth: 360, TileSize: 24, Speed: 2}, // 24 rather than 26 so both speeds divide it
		{MinWidth: 0, TileSize: 20, Speed: 2},
	}
}

var errNoBreakpoints = errors.New("maze: empty breakpoint table")

// Validate checks sizes and that every speed divides every tile size.
// The second rule keeps aligned actors aligned when the tile size changes.
func (b Breakpoints) Validate() error {
	if len(b) == 0 {
		return errNoBreakpoints
	}
	for _, bp := range b {
		if bp.TileSize <= 0 || bp.Speed <= 0 || bp.TileSize%2 != 0 {
			return fmt.Errorf("maze: breakpoint %+v needs a positive even tile size and a positive speed", bp)
		}
	}
	for _, a := range b {
		for _, s := range b {
			if a.TileSize%s.Speed != 0 {
				return fmt.Errorf("maze: speed %d does not divide tile size %d", s.Speed, a.TileSize)
			}
		}
	}
	return nil
}

func (b Breakpoints) lookup(width int) Breakpoint {
	if len(b) == 0 {
		return DefaultBreakpoints().lookup(width)
	}
	sorted := make(Breakpoints, len(b))
	copy(sorted, b)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinWidth > sorted[j].MinWidth
	})
	for _, bp := range sorted {
		if width >= bp.MinWidth {
			return bp
		}
	}
	return sorted[len(sorted)-1]
}

// TileSizeForViewport returns the tile size for a viewport width in pixels.
func (b Breakpoints) TileSizeForViewport(width int) int {
	return b.lookup(width).TileSize
}

// SpeedForViewport returns the actor speed for a viewport width in pixels.
// Player and ghosts share it.
func (b Breakpoints) SpeedForViewport(width int) int {
	return b.lookup(width).Speed
}
