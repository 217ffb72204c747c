package ladypac

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ladypac/internal/core"
	"github.com/vovakirdan/ladypac/internal/maze"
	"github.com/vovakirdan/ladypac/internal/motion"
)

func mustGrid(t *testing.T, codes [][]maze.Cell) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(codes)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g
}

func TestPowerCycleDurations(t *testing.T) {
	const active, finishing = 5, 3
	p := NewPowerState(active, finishing)
	p.Activate()

	for i := 1; i < active; i++ {
		if p.Tick() || p.Phase() != PowerActive {
			t.Fatalf("tick %d: phase = %v, expected active", i, p.Phase())
		}
	}
	if !p.Tick() || p.Phase() != PowerFinishing {
		t.Fatalf("phase = %v after %d ticks, expected finishing", p.Phase(), active)
	}
	for i := 1; i < finishing; i++ {
		if p.Tick() || p.Phase() != PowerFinishing {
			t.Fatalf("finishing tick %d: phase = %v", i, p.Phase())
		}
	}
	if !p.Tick() || p.Phase() != PowerInactive {
		t.Fatalf("phase = %v after finishing, expected inactive", p.Phase())
	}
	if p.Tick() {
		t.Error("inactive power must not change phase")
	}
}

func TestPowerRestartDoesNotStack(t *testing.T) {
	p := NewPowerState(5, 3)
	p.Activate()
	for range 3 {
		p.Tick()
	}
	p.Activate()

	if p.Remaining() != 5 {
		t.Errorf("Remaining() = %d after restart, expected 5", p.Remaining())
	}
	if p.Cycle() != 2 {
		t.Errorf("Cycle() = %d, expected 2", p.Cycle())
	}

	for range 5 + 1 {
		p.Tick()
	}
	p.Activate()
	if p.Phase() != PowerActive || p.Remaining() != 5 {
		t.Errorf("restart from finishing: phase %v remaining %d", p.Phase(), p.Remaining())
	}
}

func TestTallyBonusLife(t *testing.T) {
	tl := NewTally(3, 100, 2, 3)

	if tl.AddScore(100) {
		t.Error("bonus needs the score to exceed the threshold")
	}
	if !tl.AddScore(20) {
		t.Fatal("crossing the threshold should grant the bonus")
	}
	if tl.Lives() != 4 {
		t.Errorf("Lives() = %d, expected 4", tl.Lives())
	}
	if tl.AddScore(1000) || tl.Lives() != 4 {
		t.Error("bonus life must be granted only once")
	}
	if tl.AddScore(-50); tl.Score() != 1120 {
		t.Errorf("Score() = %d, negative amounts must be ignored", tl.Score())
	}

	if tl.BonusLifeVisible() {
		t.Error("new life icon starts hidden")
	}
	for range 3 {
		tl.Tick()
	}
	if !tl.BonusLifeVisible() {
		t.Error("icon should show after one blink period")
	}
	for range 9 {
		tl.Tick()
	}
	if tl.Blinking() || !tl.BonusLifeVisible() {
		t.Error("icon should settle visible after the blink cycles")
	}
}

func TestTallyRemoveLifeFloor(t *testing.T) {
	tl := NewTally(2, 7000, 0, 0)
	tests := []int{1, 0, 0}
	for i, expected := range tests {
		if got := tl.RemoveLife(); got != expected {
			t.Errorf("RemoveLife() #%d = %d, expected %d", i+1, got, expected)
		}
	}
}

func TestGhostFollowsPower(t *testing.T) {
	p := NewPowerState(2, 2)
	gh := &Ghost{timing: ghostTiming{eatenTicks: 5, recoveringTicks: 5}}

	steps := []struct {
		name     string
		do       func()
		expected GhostState
	}{
		{"no power", func() {}, GhostWandering},
		{"activated", p.Activate, GhostEdible},
		{"finishing", func() { p.Tick(); p.Tick() }, GhostEdibleFlashing},
		{"restarted while flashing", p.Activate, GhostEdible},
		{"power over", func() {
			for range 4 {
				p.Tick()
			}
		}, GhostWandering},
	}

	for _, s := range steps {
		s.do()
		gh.syncPower(p)
		if gh.State() != s.expected {
			t.Errorf("%s: state = %v, expected %v", s.name, gh.State(), s.expected)
		}
	}
}

func TestEatenGhostIgnoresPower(t *testing.T) {
	p := NewPowerState(10, 10)
	gh := &Ghost{timing: ghostTiming{eatenTicks: 5, recoveringTicks: 5}}

	p.Activate()
	gh.syncPower(p)
	gh.markEaten()

	p.Activate()
	gh.syncPower(p)
	if gh.State() != GhostEaten {
		t.Fatalf("state = %v, expected eaten", gh.State())
	}

	gh.state = GhostWandering
	gh.syncPower(p)
	if gh.State() != GhostWandering {
		t.Error("a ghost back from eaten stays wandering until the next power pellet")
	}
	p.Activate()
	gh.syncPower(p)
	if gh.State() != GhostEdible {
		t.Error("a new power pellet should make it edible again")
	}
}

func TestBoxedGhostDiscardsCandidates(t *testing.T) {
	grid := mustGrid(t, [][]maze.Cell{
		{1, 1, 1, 1, 1},
		{1, 4, 1, 2, 1},
		{1, 1, 1, 1, 1},
	})
	rng := rand.New(rand.NewSource(1))
	gh := newGhost(0, grid.GhostSpawns()[0], ghostTiming{wanderMin: 1, wanderMax: 1}, rng)
	gh.Place(20)

	for range 50 {
		gh.advance(grid, 20, 2, false)
	}
	if gh.X != 20 || gh.Y != 20 {
		t.Errorf("boxed ghost moved to (%d, %d)", gh.X, gh.Y)
	}
	if gh.Active != motion.None || gh.Pending != motion.None {
		t.Errorf("blocked candidates must be discarded, got active %v pending %v", gh.Active, gh.Pending)
	}
}

func TestGhostWanderStaysInCorridor(t *testing.T) {
	grid := mustGrid(t, [][]maze.Cell{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 4, 0, 0, 0, 2, 1},
		{1, 1, 1, 1, 1, 1, 1},
	})
	rng := rand.New(rand.NewSource(42))
	gh := newGhost(0, grid.GhostSpawns()[0], ghostTiming{wanderMin: 1, wanderMax: 15}, rng)
	gh.Place(20)

	moved := false
	for range 500 {
		gh.advance(grid, 20, 2, false)
		if gh.Y != 20 || gh.X < 20 || gh.X > 100 {
			t.Fatalf("ghost left the corridor at (%d, %d)", gh.X, gh.Y)
		}
		if gh.X != 20 {
			moved = true
		}
	}
	if !moved {
		t.Error("ghost never moved")
	}
}

func TestFrozenGhostKeepsStateTimers(t *testing.T) {
	grid := mustGrid(t, [][]maze.Cell{
		{1, 1, 1, 1},
		{1, 4, 2, 1},
		{1, 1, 1, 1},
	})
	gh := newGhost(0, grid.GhostSpawns()[0], ghostTiming{eatenTicks: 2, recoveringTicks: 2, wanderMin: 1, wanderMax: 1}, rand.New(rand.NewSource(1)))
	gh.Place(20)
	gh.markEaten()

	recovered := false
	for range 4 {
		if gh.advance(grid, 20, 2, true) {
			recovered = true
		}
	}
	if !recovered || gh.State() != GhostWandering {
		t.Errorf("eaten ghost should recover while frozen, state %v", gh.State())
	}
}

func TestPlayerAnimationAndConsumption(t *testing.T) {
	grid := mustGrid(t, [][]maze.Cell{
		{1, 1, 1, 1, 1},
		{1, 2, 0, 5, 1},
		{1, 1, 1, 1, 1},
	})
	p := newPlayer(grid.PlayerSpawn(), 2)
	p.Place(20)

	if p.RequestDirection(motion.None) || p.HasMoved() {
		t.Fatal("None must be ignored and not count as a first move")
	}
	if !p.RequestDirection(motion.Right) || !p.HasMoved() {
		t.Fatal("first real request should set the first-move latch")
	}

	var got []consumption
	for i := 1; i <= 20; i++ {
		if c := p.advance(grid, 20, 2, false); c != consumedNothing {
			got = append(got, c)
		}
		if i == 4 && p.Frame() != 2 {
			t.Errorf("frame after 4 ticks = %d, expected 2", p.Frame())
		}
	}
	if len(got) != 2 || got[0] != consumedPellet || got[1] != consumedPowerPellet {
		t.Errorf("consumed = %v, expected pellet then power pellet", got)
	}

	p.advance(grid, 20, 2, false)
	if p.X != 60 || p.Frame() != 0 {
		t.Errorf("blocked player at X=%d frame %d, expected parked at 60 on frame 0", p.X, p.Frame())
	}
	if p.advance(grid, 20, 2, true) != consumedNothing {
		t.Error("advance must be a no-op once the game is over")
	}
}

func TestPlayerOrientation(t *testing.T) {
	p := newPlayer(maze.Point{}, 1)
	p.Active = motion.Left
	if o := p.Orientation(); o.Rotation != 180 || !o.FlipVertical {
		t.Errorf("Orientation() = %+v, expected 180 with flip", o)
	}
}

func TestDirectionForSwipe(t *testing.T) {
	tests := []struct {
		dx, dy   int
		expected motion.Direction
	}{
		{5, 1, motion.Right},
		{-5, 2, motion.Left},
		{1, 4, motion.Down},
		{0, -3, motion.Up},
		{1, 1, motion.None},
		{3, 3, motion.None},
		{0, 0, motion.None},
	}

	for _, tc := range tests {
		if got := DirectionForSwipe(tc.dx, tc.dy, 2); got != tc.expected {
			t.Errorf("DirectionForSwipe(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
		}
	}
}

func TestDirectionForAction(t *testing.T) {
	tests := map[core.Action]motion.Direction{
		core.ActionUp:    motion.Up,
		core.ActionDown:  motion.Down,
		core.ActionLeft:  motion.Left,
		core.ActionRight: motion.Right,
		core.ActionPause: motion.None,
	}
	for a, expected := range tests {
		if got := DirectionForAction(a); got != expected {
			t.Errorf("DirectionForAction(%v) = %v, expected %v", a, got, expected)
		}
	}
}
