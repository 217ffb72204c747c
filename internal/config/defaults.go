package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/ladypac.yaml
var defaultLadypacYAML []byte

// DefaultLadypacConfig returns the built-in configuration.
func DefaultLadypacConfig() LadypacConfig {
	return LadypacConfig{
		Viewport: ViewportConfig{
			CellPixels: 8,
			Breakpoints: []BreakpointConfig{
				{MinWidth: 700, TileSize: 40, Speed: 4},
				{MinWidth: 360, TileSize: 24, Speed: 2},
				{MinWidth: 0, TileSize: 20, Speed: 2},
			},
		},
		Scoring: ScoringConfig{
			Pellet:             20,
			PowerPellet:        50,
			Ghost:              200,
			BonusLifeThreshold: 7000,
		},
		Lives: LivesConfig{
			Initial:          3,
			BonusBlinkCycles: 6,
			BonusBlink:       250 * time.Millisecond,
		},
		Timing: TimingConfig{
			PowerActive:     4 * time.Second,
			PowerFinishing:  4 * time.Second,
			GhostEaten:      4 * time.Second,
			GhostRecovering: 2 * time.Second,
			EndReveal:       1500 * time.Millisecond,
			WanderMinTicks:  1,
			WanderMaxTicks:  15,
			AnimationTicks:  6,
		},
		Ghosts: GhostsConfig{
			Max: 4,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}
