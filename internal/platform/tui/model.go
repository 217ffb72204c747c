package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ladypac/internal/clock"
	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/registry"
	"github.com/vovakirdan/ladypac/internal/storage"
)

// minHeightForHelp is the smallest terminal that keeps a row for the
// help bar below the game.
const minHeightForHelp = 16

// Options configures a Model beyond the game and its runtime config.
type Options struct {
	Player   string          // name saved with scores
	Store    *storage.Store  // nil disables the leaderboard
	Renderer *ScreenRenderer // nil uses the default renderer
	Logger   *log.Logger     // nil discards
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       registry.Game
	clock      *clock.Clock
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	status     string
	drag       drag
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// drag tracks a pressed mouse button until release.
type drag struct {
	active bool
	x, y   int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = clock.DefaultTickRate
	}
	if opts.Renderer == nil {
		opts.Renderer = defaultRenderer
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		clock:      clock.New(cfg.TickRate),
		store:      opts.Store,
		renderer:   opts.Renderer,
		logger:     opts.Logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		player:     storage.NormalizePlayer(opts.Player),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// gameHeight is the screen height left to the game after the help bar.
func (m Model) gameHeight() int {
	if m.config.ScreenH >= minHeightForHelp {
		return m.config.ScreenH - 1
	}
	return m.config.ScreenH
}

// runtimeConfig is the config handed to the game, sized to its area.
func (m Model) runtimeConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtimeConfig())
	m.logger.Info("game started", "game", m.game.ID(), "player", m.player)

	return tickCmd(m.clock.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.setFocus(true)
		return m, nil

	case tea.BlurMsg:
		m.setFocus(false)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quit()
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a press-drag-release into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = drag{active: true, x: msg.X, y: msg.Y}
		}
	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		dx, dy := msg.X-m.drag.x, msg.Y-m.drag.y
		m.drag = drag{}
		if s, ok := m.game.(registry.Swiper); ok {
			// Cells are about twice as tall as they are wide.
			s.Swipe(dx, dy*2)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameHeight())

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, m.gameHeight())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.runtimeConfig())
	}

	return m, nil
}

// setFocus pauses the clock and the play area while the terminal is
// unfocused.
func (m Model) setFocus(focused bool) {
	if focused {
		m.clock.Resume()
	} else {
		m.clock.Pause()
	}
	if f, ok := m.game.(registry.Focusable); ok {
		f.SetActive(focused)
	}
	m.logger.Debug("focus changed", "focused", focused)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.clock.Tick(func() {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
	})

	if m.gameState.GameOver && !m.scoreSaved {
		m.status = m.saveScore()
		m.scoreSaved = true
	} else if !m.gameState.GameOver && m.scoreSaved {
		// restarted
		m.scoreSaved = false
		m.status = ""
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.clock.Interval())
}

// saveScore records a finished game and returns the status line to show.
func (m Model) saveScore() string {
	if m.store == nil || m.gameState.Score <= 0 {
		return ""
	}

	outcome := "lose"
	if m.gameState.Won {
		outcome = "win"
	}
	level := ""
	if l, ok := m.game.(interface{ Level() string }); ok {
		level = l.Level()
	}

	rank, err := m.store.Rank(m.game.ID(), m.gameState.Score, m.player)
	if err != nil {
		m.logger.Warn("could not rank score", "error", err)
	}
	if _, err := m.store.SaveScore(storage.ScoreRecord{
		GameID:  m.game.ID(),
		Player:  m.player,
		Score:   m.gameState.Score,
		Outcome: outcome,
		Level:   level,
	}); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return "Score not saved"
	}

	m.logger.Info("score saved", "player", m.player, "score", m.gameState.Score, "rank", rank)
	if rank > 0 && rank <= storage.LeaderboardSize {
		return fmt.Sprintf("New high score! #%d for %s", rank, m.player)
	}
	return fmt.Sprintf("Score saved for %s", m.player)
}

// quit marks the model done and releases the game.
func (m *Model) quit() {
	m.quitting = true
	if c, ok := m.game.(registry.Closer); ok {
		c.Close()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".ladypac", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.renderer.Render(m.screen)

	if m.gameHeight() == m.config.ScreenH {
		return out
	}
	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys.Keys())
	}
	return out + "\n" + footer
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	if c, ok := game.(registry.Closer); ok {
		c.Close()
	}
	return err
}
