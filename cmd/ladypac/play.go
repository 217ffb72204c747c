package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/games/ladypac"
	"github.com/vovakirdan/ladypac/internal/platform/tui"
	"github.com/vovakirdan/ladypac/internal/registry"
	"github.com/vovakirdan/ladypac/internal/sound"
	"github.com/vovakirdan/ladypac/internal/storage"
)

var (
	flagName string
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without a game id a random built-in level is picked
for every round.

Controls:
  Arrows/WASD/hjkl - Move
  Mouse drag       - Move in the drag direction
  P/Esc            - Pause
  M                - Mute
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer power pellets
  normal - Config values as they are
  hard   - One life less, shorter power pellets

Examples:
  ladypac play
  ladypac play ladypac-classic
  ladypac play --difficulty hard --name ada
  ladypac play --levels ./my-levels
  ladypac play --config ./my-ladypac.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagName, "name", os.Getenv("USER"), "Player name for the leaderboard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)

	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "ladypac")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := configureGames(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if g, ok := game.(*ladypac.Game); ok {
		g.SetLogger(logger)
		g.Subscribe(logEvents(logger))

		if cfg.Sound.Enabled && !flagMute {
			player, sndErr := sound.NewPlayer(cfg.Sound.Volume, logger)
			if sndErr != nil {
				logger.Warn("sound disabled", "error", sndErr)
			} else {
				defer player.Close()
				g.SetSoundPlayer(player)
			}
		}
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, rc, tui.Options{
		Player: flagName,
		Store:  store,
		Logger: logger,
	})
}

// logEvents returns a listener that writes game events to logger at debug
// level. Pellets are skipped.
func logEvents(logger *log.Logger) func(ladypac.Event) {
	return func(e ladypac.Event) {
		if e.Kind == ladypac.EventPellet {
			return
		}
		logger.Debug("event", "kind", e.Kind, "score", e.Score, "lives", e.Lives, "tick", e.Tick)
	}
}
