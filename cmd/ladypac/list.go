package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladypac/internal/games/ladypac"
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and levels",
	Long:  `Shows every registered game id and the built-in levels behind them.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	layouts, err := maze.Builtin()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Built-in levels:")
	fmt.Println()
	for _, l := range layouts {
		grid, err := l.Grid()
		if err != nil {
			return err
		}
		fmt.Printf("  %-*s  %dx%d, %d ghosts, %d pellets\n", maxIDLen, ladypac.LevelGameID(l.ID),
			grid.Width(), grid.Height(), len(grid.GhostSpawns()), grid.RemainingPellets())
	}

	fmt.Println()
	fmt.Println("Run 'ladypac play <id>' to play.")
	return nil
}
