package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy adds lives and lengthens power mode; hard does the opposite.
func ApplyPreset(cfg *LadypacConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Initial += 2
		cfg.Timing.PowerActive = scale(cfg.Timing.PowerActive, 3, 2)
		cfg.Timing.PowerFinishing = scale(cfg.Timing.PowerFinishing, 3, 2)
	case DifficultyHard:
		if cfg.Lives.Initial > 1 {
			cfg.Lives.Initial--
		}
		cfg.Timing.PowerActive = scale(cfg.Timing.PowerActive, 1, 2)
		cfg.Timing.PowerFinishing = scale(cfg.Timing.PowerFinishing, 1, 2)
	}
}

func scale(d time.Duration, num, den int64) time.Duration {
	return d * time.Duration(num) / time.Duration(den)
}
