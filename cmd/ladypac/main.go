// ladypac is a maze chase game for the terminal.
//
// Usage:
//
//	ladypac list              - List games and levels
//	ladypac play [game]       - Play (default: a random built-in level)
//	ladypac scores [game]     - Show the leaderboard
//	ladypac serve             - Start SSH server for remote play
//	ladypac simulate [game]   - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.ladypac/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladypac/internal/games/ladypac"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladypac",
	Short: "Lady Pac - a maze chase in your terminal",
	Long: `Lady Pac is a maze chase game for the terminal. Eat every pellet,
avoid the ghosts, and grab a power pellet to turn the hunt around.

Examples:
  ladypac play
  ladypac play ladypac-classic --difficulty easy
  ladypac scores
  ladypac serve --ssh :2222
  ladypac simulate --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ladypac/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// gameArg returns the game id from args, defaulting to the random-level game.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ladypac.GameID
}
