package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladypac/internal/clock"
	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/games/ladypac"
	"github.com/vovakirdan/ladypac/internal/registry"
	"github.com/vovakirdan/ladypac/internal/storage"
)

var (
	flagTicks    int
	flagRealtime bool
	flagSave     bool
	flagInterval int
	flagWidth    int
	flagPilot    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [game]",
	Short: "Run a headless autopilot game",
	Long: `Run a game without a terminal UI, fed by a seeded autopilot. Useful
for checking levels and config files. Equal --seed values replay equal
games.

Examples:
  ladypac simulate --seed 42
  ladypac simulate ladypac-classic --ticks 20000 --log-level debug
  ladypac simulate --realtime --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to run")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Save the final score to the leaderboard")
	simulateCmd.Flags().IntVar(&flagInterval, "interval", 12, "Ticks between autopilot direction changes")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Simulated terminal width")
	simulateCmd.Flags().StringVar(&flagPilot, "name", "autopilot", "Player name for --save")
}

func runSimulate(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)

	logger, closeLog, err := newLogger(os.Stderr, "ladypac-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := configureGames(gameID); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*ladypac.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be simulated", gameID)
	}
	defer game.Close()

	game.SetLogger(logger)
	game.Subscribe(logEvents(logger))
	game.Reset(core.RuntimeConfig{ScreenW: flagWidth, ScreenH: 40, TickRate: flagFPS, Seed: seed})
	if err := game.Err(); err != nil {
		return err
	}

	pilot := ladypac.NewAutopilot(seed, flagInterval)
	ticks := 0
	step := func() {
		game.Step(pilot.Next())
		ticks++
	}

	start := time.Now()
	if flagRealtime {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		game.OnFinish(func(ladypac.Outcome) { cancel() })

		clk := clock.New(flagFPS)
		err := clk.Run(ctx, func() {
			step()
			if ticks >= flagTicks {
				cancel()
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		for ticks < flagTicks && !game.Finished() {
			step()
		}
	}

	snap := game.Snapshot()
	outcome := snap.Outcome
	if outcome == "" {
		outcome = "unfinished"
	}
	fmt.Printf("level:    %s\n", snap.Level)
	fmt.Printf("seed:     %d\n", seed)
	fmt.Printf("ticks:    %d (%s)\n", ticks, time.Since(start).Round(time.Millisecond))
	fmt.Printf("outcome:  %s\n", outcome)
	fmt.Printf("score:    %d\n", snap.Score)
	fmt.Printf("lives:    %d\n", snap.Lives)
	fmt.Printf("pellets:  %d left\n", snap.PelletsRemaining)

	if !flagSave || !game.Finished() {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rank, err := store.Rank(game.ID(), snap.Score, flagPilot)
	if err != nil {
		return err
	}
	if _, err := store.SaveScore(storage.ScoreRecord{
		GameID:  game.ID(),
		Player:  flagPilot,
		Score:   snap.Score,
		Outcome: outcome,
		Level:   snap.Level,
	}); err != nil {
		return err
	}
	fmt.Printf("saved:    rank #%d\n", rank)
	return nil
}
