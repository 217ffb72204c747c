package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladypac/internal/platform/tui"
	"github.com/vovakirdan/ladypac/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve [game]",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection plays its own game.

The SSH user name is the leaderboard name, and all users share the
server's leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ladypac/host_key

Examples:
  ladypac serve                           # Listen on :23234 with auto-generated key
  ladypac serve --ssh :2222               # Listen on port 2222
  ladypac serve ladypac-classic           # Everyone plays the classic maze
  ladypac serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
}

func runServe(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)

	logger, closeLog, err := newLogger(os.Stderr, "ladypac-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := configureGames(gameID); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		Store:       store,
		GameID:      gameID,
		TickRate:    flagFPS,
		IdleTimeout: flagIdleTimeout,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting ladypac SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
