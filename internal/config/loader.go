package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLadypac loads the game configuration.
// Search order: customPath -> ~/.ladypac/configs/ladypac.yaml -> ./configs/ladypac.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadLadypac(customPath string) (LadypacConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LadypacConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseLadypac(data)
		if err != nil {
			return LadypacConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ladypac.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLadypac(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "ladypac.yaml")); err == nil {
		if cfg, err := parseLadypac(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseLadypac(defaultLadypacYAML)
	if err != nil {
		return DefaultLadypacConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseLadypac(data []byte) (LadypacConfig, error) {
	cfg := DefaultLadypacConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LadypacConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LadypacConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladypac", "configs", filename)
}
