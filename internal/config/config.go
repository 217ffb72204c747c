// Package config provides YAML-based configuration loading and difficulty
// presets for ladypac.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ladypac/internal/maze"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LadypacConfig contains all tunables for the game.
type LadypacConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Lives    LivesConfig    `yaml:"lives"`
	Timing   TimingConfig   `yaml:"timing"`
	Ghosts   GhostsConfig   `yaml:"ghosts"`
	Sound    SoundConfig    `yaml:"sound"`
}

// ViewportConfig maps the terminal size to the simulated pixel viewport.
type ViewportConfig struct {
	CellPixels  int                `yaml:"cell_pixels"` // Pixels per terminal column
	Breakpoints []BreakpointConfig `yaml:"breakpoints"`
}

// BreakpointConfig is one row of the tile size table.
type BreakpointConfig struct {
	MinWidth int `yaml:"min_width"`
	TileSize int `yaml:"tile_size"`
	Speed    int `yaml:"speed"`
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Pellet             int `yaml:"pellet"`
	PowerPellet        int `yaml:"power_pellet"`
	Ghost              int `yaml:"ghost"`
	BonusLifeThreshold int `yaml:"bonus_life_threshold"` // Bonus life once the score exceeds this
}

// LivesConfig defines the starting lives and the bonus life indicator.
type LivesConfig struct {
	Initial          int           `yaml:"initial"`
	BonusBlinkCycles int           `yaml:"bonus_blink_cycles"`
	BonusBlink       time.Duration `yaml:"bonus_blink"`
}

// TimingConfig holds durations and tick counts for the simulation.
type TimingConfig struct {
	PowerActive     time.Duration `yaml:"power_active"`
	PowerFinishing  time.Duration `yaml:"power_finishing"`
	GhostEaten      time.Duration `yaml:"ghost_eaten"`
	GhostRecovering time.Duration `yaml:"ghost_recovering"`
	EndReveal       time.Duration `yaml:"end_reveal"`
	WanderMinTicks  int           `yaml:"wander_min_ticks"`
	WanderMaxTicks  int           `yaml:"wander_max_ticks"`
	AnimationTicks  int           `yaml:"animation_ticks"` // Ticks per player animation frame
}

// GhostsConfig limits how many ghost spawns are used.
type GhostsConfig struct {
	Max int `yaml:"max"` // 0 uses every spawn in the level
}

// SoundConfig toggles audio.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in halvings; 0 is unchanged, negative is quieter
}

// Breakpoints converts the configured table to the maze lookup type.
func (c LadypacConfig) Breakpoints() maze.Breakpoints {
	out := make(maze.Breakpoints, 0, len(c.Viewport.Breakpoints))
	for _, bp := range c.Viewport.Breakpoints {
		out = append(out, maze.Breakpoint{
			MinWidth: bp.MinWidth,
			TileSize: bp.TileSize,
			Speed:    bp.Speed,
		})
	}
	return out
}

// Validate checks that the configuration can drive a game.
func (c LadypacConfig) Validate() error {
	if c.Viewport.CellPixels <= 0 {
		return fmt.Errorf("%w: viewport.cell_pixels must be positive", ErrInvalid)
	}
	if err := c.Breakpoints().Validate(); err != nil {
		return fmt.Errorf("%w: viewport.breakpoints: %v", ErrInvalid, err)
	}

	s := c.Scoring
	if s.Pellet < 0 || s.PowerPellet < 0 || s.Ghost < 0 || s.BonusLifeThreshold < 0 {
		return fmt.Errorf("%w: scoring values cannot be negative", ErrInvalid)
	}

	if c.Lives.Initial < 1 {
		return fmt.Errorf("%w: lives.initial must be at least 1", ErrInvalid)
	}
	if c.Lives.BonusBlinkCycles < 0 || c.Lives.BonusBlink < 0 {
		return fmt.Errorf("%w: lives blink settings cannot be negative", ErrInvalid)
	}

	t := c.Timing
	durations := map[string]time.Duration{
		"power_active":     t.PowerActive,
		"power_finishing":  t.PowerFinishing,
		"ghost_eaten":      t.GhostEaten,
		"ghost_recovering": t.GhostRecovering,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%w: timing.%s must be positive", ErrInvalid, name)
		}
	}
	if t.EndReveal < 0 {
		return fmt.Errorf("%w: timing.end_reveal cannot be negative", ErrInvalid)
	}
	if t.WanderMinTicks < 1 || t.WanderMaxTicks < t.WanderMinTicks {
		return fmt.Errorf("%w: timing.wander ticks need 1 <= min <= max, got %d..%d",
			ErrInvalid, t.WanderMinTicks, t.WanderMaxTicks)
	}
	if t.AnimationTicks < 1 {
		return fmt.Errorf("%w: timing.animation_ticks must be at least 1", ErrInvalid)
	}

	if c.Ghosts.Max < 0 {
		return fmt.Errorf("%w: ghosts.max cannot be negative", ErrInvalid)
	}
	return nil
}
