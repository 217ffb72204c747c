package maze

import "testing"

func TestBreakpointLookup(t *testing.T) {
	b := DefaultBreakpoints()

	tests := []struct {
		width     int
		tileSize  int
		tileSpeed int
	}{
		{1200, 40, 4},
		{700, 40, 4},
		{699, 24, 2},
		{360, 24, 2},
		{359, 20, 2},
		{0, 20, 2},
	}

	for _, tc := range tests {
		if got := b.TileSizeForViewport(tc.width); got != tc.tileSize {
			t.Errorf("TileSizeForViewport(%d) = %d, expected %d", tc.width, got, tc.tileSize)
		}
		if got := b.SpeedForViewport(tc.width); got != tc.tileSpeed {
			t.Errorf("SpeedForViewport(%d) = %d, expected %d", tc.width, got, tc.tileSpeed)
		}
	}
}

func TestBreakpointsUnsortedInput(t *testing.T) {
	b := Breakpoints{
		{MinWidth: 0, TileSize: 20, Speed: 2},
		{MinWidth: 700, TileSize: 40, Speed: 4},
	}
	if got := b.TileSizeForViewport(800); got != 40 {
		t.Errorf("TileSizeForViewport(800) = %d, expected 40", got)
	}
	if got := b.TileSizeForViewport(10); got != 20 {
		t.Errorf("TileSizeForViewport(10) = %d, expected 20", got)
	}
}

func TestBreakpointsValidate(t *testing.T) {
	if err := DefaultBreakpoints().Validate(); err != nil {
		t.Errorf("default breakpoints invalid: %v", err)
	}

	tests := []struct {
		name string
		b    Breakpoints
	}{
		{"empty", Breakpoints{}},
		{"odd tile", Breakpoints{{TileSize: 21, Speed: 3}}},
		{"zero speed", Breakpoints{{TileSize: 20, Speed: 0}}},
		{"speed does not divide other tile", Breakpoints{{MinWidth: 700, TileSize: 40, Speed: 4}, {TileSize: 26, Speed: 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.b.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
