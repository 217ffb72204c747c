package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladypac/internal/config"
	"github.com/vovakirdan/ladypac/internal/games/ladypac"
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/registry"
)

// Game settings flags, shared by every command that runs games.
var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of extra level YAML files")
}

// configureGames loads config, difficulty and extra levels into the game
// package, then checks that gameID exists.
func configureGames(gameID string) (config.LadypacConfig, error) {
	cfg, err := config.LoadLadypac(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	ladypac.SetConfig(cfg)

	if flagLevels != "" {
		extra, err := maze.LoadLayoutsDir(flagLevels)
		if err != nil {
			return cfg, err
		}
		builtin, err := maze.Builtin()
		if err != nil {
			return cfg, err
		}
		for _, l := range extra {
			if _, dup := maze.Find(builtin, l.ID); dup {
				return cfg, fmt.Errorf("level %q in %s shadows a built-in level", l.ID, flagLevels)
			}
		}
		layouts := append(builtin, extra...)
		ladypac.SetLayouts(layouts)
		ladypac.RegisterLevels(layouts)
	}

	if !registry.Exists(gameID) {
		return cfg, fmt.Errorf("unknown game %q, run 'ladypac list' to see available games", gameID)
	}
	return cfg, nil
}
