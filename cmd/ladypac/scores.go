package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ladypac/internal/platform/tui"
	"github.com/vovakirdan/ladypac/internal/registry"
	"github.com/vovakirdan/ladypac/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores. On a terminal this opens an interactive
table that can switch between games; otherwise, or with --plain, the
leaderboard is printed as text.

Examples:
  ladypac scores
  ladypac scores ladypac-classic --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'ladypac list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height, gameID)
	}

	return printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, storage.LeaderboardSize)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ladypac play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %-12s  %s\n", "Rank", "Player", "Score", "Result", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %-12s  %s\n", "----", "------", "-----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-6s  %-12s  %s\n",
			i+1, e.Player, e.Score, e.Outcome, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	return nil
}
