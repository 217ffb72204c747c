// Package ladypac implements the chase game: a player eating pellets in a
// maze while ghosts wander, with power pellets that turn the hunt around.
package ladypac

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ladypac/internal/config"
	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/motion"
	"github.com/vovakirdan/ladypac/internal/registry"
)

// GameID is the registry id of the random-level game. Pinned levels
// register as GameID + "-" + level id.
const GameID = "ladypac"

// Package-level settings applied to games created after the call,
// following the registry's no-argument factories.
var (
	settingsMu    sync.RWMutex
	gameConfig    = config.DefaultLadypacConfig()
	customLayouts []maze.Layout
)

// SetConfig sets the configuration used by new games.
func SetConfig(cfg config.LadypacConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameConfig = cfg
}

// SetLayouts replaces the level pool used by new games. Nil restores the
// built-in levels.
func SetLayouts(layouts []maze.Layout) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	customLayouts = layouts
}

func settings() (config.LadypacConfig, []maze.Layout) {
	settingsMu.RLock()
	cfg, layouts := gameConfig, customLayouts
	settingsMu.RUnlock()
	if layouts == nil {
		layouts = builtinLayouts
	}
	return cfg, layouts
}

var builtinLayouts []maze.Layout

func init() {
	layouts, err := maze.Builtin()
	if err != nil {
		panic(fmt.Sprintf("ladypac: embedded levels: %v", err))
	}
	builtinLayouts = layouts

	registry.Register(GameID, func() registry.Game {
		return New("")
	})
	RegisterLevels(layouts)
}

// RegisterLevels registers a pinned game id for every layout not yet known.
func RegisterLevels(layouts []maze.Layout) {
	for _, l := range layouts {
		id := LevelGameID(l.ID)
		if registry.Exists(id) {
			continue
		}
		level := l.ID
		registry.Register(id, func() registry.Game {
			return New(level)
		})
	}
}

// LevelGameID returns the registry id that pins a level.
func LevelGameID(level string) string {
	return GameID + "-" + level
}

// Game is one match. It is driven by Step or Advance from a single goroutine.
type Game struct {
	pinned string // level id, empty for a random pick

	cfg         config.LadypacConfig
	breakpoints maze.Breakpoints
	layout      maze.Layout
	loadErr     error

	grid   *maze.Grid
	player *Player
	ghosts []*Ghost
	power  *PowerState
	tally  *Tally
	rng    *rand.Rand

	tick      uint64
	tickRate  int
	screenW   int
	screenH   int
	tileSize  int
	speed     int
	active    bool
	paused    bool
	muted     bool
	guard     bool // capture guard: no further life loss until released
	outcome   Outcome
	reveal    core.Countdown
	revealed  bool
	closed    bool
	listeners listeners
	onFinish  func(Outcome)
	sound     core.SoundPlayer
	logger    *log.Logger
}

// New creates a game. An empty level picks a random layout on every Reset.
func New(level string) *Game {
	return &Game{
		pinned: level,
		logger: log.New(io.Discard),
		active: true,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.pinned != "" {
		return LevelGameID(g.pinned)
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.pinned == "" {
		return "Lady Pac"
	}
	_, layouts := settings()
	if l, ok := maze.Find(layouts, g.pinned); ok {
		return "Lady Pac: " + l.Name
	}
	return "Lady Pac: " + g.pinned
}

// SetSoundPlayer sets where sound effects go. Nil silences the game.
func (g *Game) SetSoundPlayer(p core.SoundPlayer) { g.sound = p }

// SetLogger sets the event logger. Nil discards.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// OnFinish registers the terminal callback. It fires once per game with
// the outcome.
func (g *Game) OnFinish(fn func(Outcome)) { g.onFinish = fn }

// Subscribe registers an event listener and returns its unsubscribe func.
func (g *Game) Subscribe(fn func(Event)) func() {
	return g.listeners.subscribe(fn)
}

// Close tears the game down: every listener is dropped and every timer
// stops. Later ticks do nothing.
func (g *Game) Close() {
	g.closed = true
	g.listeners.clear()
	g.onFinish = nil
	g.reveal.Stop()
	if g.power != nil {
		g.power.Stop()
	}
	if g.tally != nil {
		g.tally.Stop()
	}
	for _, gh := range g.ghosts {
		gh.stop()
	}
}

// Reset starts a new match. The seed drives both the level pick and the
// ghosts, so equal seeds replay equal games.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, layouts := settings()
	g.cfg = cfg
	g.breakpoints = cfg.Breakpoints()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.tick = 0
	g.paused = false
	g.guard = false
	g.outcome = OutcomeNone
	g.revealed = false
	g.reveal.Stop()
	g.loadErr = nil

	g.layout, g.loadErr = g.pickLayout(layouts)
	if g.loadErr == nil {
		g.grid, g.loadErr = g.layout.Grid()
	}
	if g.loadErr != nil {
		g.logger.Error("cannot load level", "level", g.pinned, "err", g.loadErr)
		g.grid = nil
		return
	}

	g.power = NewPowerState(
		core.TicksFor(cfg.Timing.PowerActive, g.tickRate),
		core.TicksFor(cfg.Timing.PowerFinishing, g.tickRate),
	)
	g.tally = NewTally(
		cfg.Lives.Initial,
		cfg.Scoring.BonusLifeThreshold,
		cfg.Lives.BonusBlinkCycles,
		core.TicksFor(cfg.Lives.BonusBlink, g.tickRate),
	)
	g.player = newPlayer(g.grid.PlayerSpawn(), cfg.Timing.AnimationTicks)

	timing := ghostTiming{
		eatenTicks:      core.TicksFor(cfg.Timing.GhostEaten, g.tickRate),
		recoveringTicks: core.TicksFor(cfg.Timing.GhostRecovering, g.tickRate),
		wanderMin:       cfg.Timing.WanderMinTicks,
		wanderMax:       cfg.Timing.WanderMaxTicks,
	}
	spawns := g.grid.GhostSpawns()
	if cfg.Ghosts.Max > 0 && len(spawns) > cfg.Ghosts.Max {
		spawns = spawns[:cfg.Ghosts.Max]
	}
	g.ghosts = make([]*Ghost, len(spawns))
	for i, sp := range spawns {
		g.ghosts[i] = newGhost(i, sp, timing, g.rng)
	}

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.syncActors()

	g.logger.Info("game started", "level", g.layout.ID, "ghosts", len(g.ghosts),
		"pellets", g.grid.RemainingPellets(), "tile", g.tileSize)
}

func (g *Game) pickLayout(layouts []maze.Layout) (maze.Layout, error) {
	if len(layouts) == 0 {
		return maze.Layout{}, fmt.Errorf("ladypac: no levels available")
	}
	if g.pinned == "" {
		return layouts[g.rng.Intn(len(layouts))], nil
	}
	l, ok := maze.Find(layouts, g.pinned)
	if !ok {
		return maze.Layout{}, fmt.Errorf("ladypac: unknown level %q", g.pinned)
	}
	return l, nil
}

// Resize records a new terminal size. Tile size and speed follow the
// viewport breakpoints; actors are rescaled on the next tick.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	cellPixels := g.cfg.Viewport.CellPixels
	if cellPixels <= 0 {
		cellPixels = config.DefaultLadypacConfig().Viewport.CellPixels
	}
	width := w * cellPixels
	ts, speed := g.breakpoints.TileSizeForViewport(width), g.breakpoints.SpeedForViewport(width)
	if ts != g.tileSize && g.tileSize != 0 {
		g.logger.Debug("tile size changed", "from", g.tileSize, "to", ts, "speed", speed)
	}
	g.tileSize, g.speed = ts, speed
}

// SetActive marks the play area as visible. Ghosts freeze while it is not.
func (g *Game) SetActive(active bool) { g.active = active }

// Active reports whether the play area is visible.
func (g *Game) Active() bool { return g.active }

// Swipe turns a drag vector in terminal cells into a direction request.
func (g *Game) Swipe(dx, dy int) {
	g.requestDirection(DirectionForSwipe(dx, dy, DefaultSwipeDistance))
}

// RequestDirection forwards a direction to the player.
func (g *Game) RequestDirection(dir motion.Direction) bool {
	return g.requestDirection(dir)
}

func (g *Game) requestDirection(dir motion.Direction) bool {
	if g.player == nil || g.closed || g.Finished() || g.paused {
		return false
	}
	return g.player.RequestDirection(dir)
}

// Step applies one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.closed {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.Finished() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionMute) {
		g.muted = !g.muted
	}
	if in.Has(core.ActionPause) && !g.Finished() {
		g.paused = !g.paused
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.requestDirection(DirectionForAction(a))
		}
	}

	if !g.paused {
		g.Advance()
	}
	return core.StepResult{State: g.State()}
}

// Advance runs one simulation frame: rescale, timers, player, ghosts and
// collisions, capture guard, end check, reveal.
func (g *Game) Advance() {
	if g.closed || g.grid == nil {
		return
	}
	g.tick++
	ts, speed := g.tileSize, g.speed

	g.syncActors()

	if !g.Finished() {
		g.tickPower()
		g.tally.Tick()

		switch g.player.advance(g.grid, ts, speed, g.Finished()) {
		case consumedPellet:
			g.addScore(g.cfg.Scoring.Pellet)
			g.play(core.SoundPellet)
			g.emit(EventPellet, -1)
		case consumedPowerPellet:
			g.addScore(g.cfg.Scoring.PowerPellet)
			g.power.Activate()
			g.play(core.SoundPowerPellet)
			g.emit(EventPowerPellet, -1)
			g.logger.Debug("power pellet", "tick", g.tick, "cycle", g.power.Cycle())
		}

		for _, gh := range g.ghosts {
			gh.syncPower(g.power)
			// A capture earlier in this loop freezes the remaining ghosts.
			frozen := !g.player.HasMoved() || !g.active
			if gh.advance(g.grid, ts, speed, frozen) {
				g.emit(EventGhostRecovered, gh.index)
			}
			g.collide(gh, ts)
		}

		if g.guard && g.player.HasMoved() && !g.anyOverlap(ts) {
			g.guard = false
		}

		g.checkEnd()
	}

	if g.reveal.Tick() {
		g.revealed = true
	}
}

func (g *Game) syncActors() {
	if g.player == nil {
		return
	}
	g.player.Sync(g.tileSize, g.speed)
	for _, gh := range g.ghosts {
		gh.Sync(g.tileSize, g.speed)
	}
}

func (g *Game) tickPower() {
	if !g.power.Tick() {
		return
	}
	switch g.power.Phase() {
	case PowerFinishing:
		g.emit(EventPowerFinishing, -1)
	case PowerInactive:
		g.emit(EventPowerEnded, -1)
		g.logger.Debug("power ended", "tick", g.tick)
	}
}

func (g *Game) collide(gh *Ghost, ts int) {
	if !gh.overlaps(g.player, ts) {
		return
	}
	switch gh.state {
	case GhostWandering:
		if g.guard {
			return
		}
		g.guard = true
		lives := g.tally.RemoveLife()
		g.player.initialMove = false
		g.play(core.SoundCapture)
		g.emit(EventCaptured, gh.index)
		g.logger.Info("captured", "ghost", gh.index, "lives", lives, "tick", g.tick)
	case GhostEdible, GhostEdibleFlashing:
		gh.markEaten()
		g.addScore(g.cfg.Scoring.Ghost)
		g.play(core.SoundGhostEaten)
		g.emit(EventGhostEaten, gh.index)
		g.logger.Debug("ghost eaten", "ghost", gh.index, "score", g.tally.Score())
	}
}

func (g *Game) anyOverlap(ts int) bool {
	for _, gh := range g.ghosts {
		if gh.state != GhostEaten && gh.overlaps(g.player, ts) {
			return true
		}
	}
	return false
}

func (g *Game) addScore(n int) {
	if g.Finished() {
		return
	}
	if g.tally.AddScore(n) {
		g.play(core.SoundBonusLife)
		g.emit(EventBonusLife, -1)
		g.logger.Info("bonus life", "score", g.tally.Score(), "lives", g.tally.Lives())
	}
}

// checkEnd finishes the game. Clearing the maze wins even when the last
// life went in the same tick.
func (g *Game) checkEnd() {
	switch {
	case g.grid.RemainingPellets() == 0:
		g.finish(OutcomeWin)
	case g.tally.Lives() == 0:
		g.finish(OutcomeLose)
	}
}

func (g *Game) finish(o Outcome) {
	if g.outcome != OutcomeNone {
		return
	}
	g.outcome = o
	g.power.Stop()
	g.tally.Stop()

	if ticks := core.TicksFor(g.cfg.Timing.EndReveal, g.tickRate); ticks > 0 {
		g.reveal.Start(ticks)
	} else {
		g.revealed = true
	}

	if o == OutcomeWin {
		g.play(core.SoundWin)
	} else {
		g.play(core.SoundLose)
	}
	g.logger.Info("game over", "outcome", string(o), "score", g.tally.Score(), "level", g.layout.ID, "tick", g.tick)

	e := g.event(EventFinished, -1)
	e.Outcome = o
	g.listeners.emit(e)
	if g.onFinish != nil {
		g.onFinish(o)
	}
}

func (g *Game) event(kind EventKind, ghost int) Event {
	return Event{
		Kind:  kind,
		Tick:  g.tick,
		Score: g.tally.Score(),
		Lives: g.tally.Lives(),
		Ghost: ghost,
	}
}

func (g *Game) emit(kind EventKind, ghost int) {
	g.listeners.emit(g.event(kind, ghost))
}

func (g *Game) play(s core.Sound) {
	if g.sound == nil || g.muted || !g.cfg.Sound.Enabled {
		return
	}
	g.sound.Play(s)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.Finished(),
		Won:      g.outcome == OutcomeWin,
		Paused:   g.paused || !g.active,
	}
	if g.tally != nil {
		st.Score = g.tally.Score()
		st.Lives = g.tally.Lives()
	}
	return st
}

// Finished reports whether the game reached a terminal outcome.
func (g *Game) Finished() bool { return g.outcome != OutcomeNone }

// Outcome returns the terminal outcome, or OutcomeNone while playing.
func (g *Game) Outcome() Outcome { return g.outcome }

// Score returns the current score.
func (g *Game) Score() int {
	if g.tally == nil {
		return 0
	}
	return g.tally.Score()
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	if g.tally == nil {
		return 0
	}
	return g.tally.Lives()
}

// Level returns the id of the level being played.
func (g *Game) Level() string { return g.layout.ID }

// Muted reports whether sound was toggled off in game.
func (g *Game) Muted() bool { return g.muted }

// Err returns the level loading error, if any.
func (g *Game) Err() error { return g.loadErr }

// Grid exposes the maze for rendering and tools.
func (g *Game) Grid() *maze.Grid { return g.grid }

// Player returns the player actor.
func (g *Game) Player() *Player { return g.player }

// Ghosts returns the ghost actors in spawn order.
func (g *Game) Ghosts() []*Ghost { return g.ghosts }

// Power returns the player's power state.
func (g *Game) Power() *PowerState { return g.power }

// TileSize returns the current tile size in pixels.
func (g *Game) TileSize() int { return g.tileSize }

// Speed returns the current actor speed in pixels per tick.
func (g *Game) Speed() int { return g.speed }
