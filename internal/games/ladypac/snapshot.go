package ladypac

// ActorSnapshot is the position and direction of one actor.
type ActorSnapshot struct {
	X, Y   int
	Active string
	State  string // ghosts only
}

// Snapshot captures the game state for determinism testing and replay checks.
type Snapshot struct {
	Tick             uint64
	Level            string
	Score            int
	Lives            int
	Outcome          string
	TileSize         int
	Power            string
	PowerCycle       int
	PelletsRemaining int
	CaptureGuard     bool
	Player           ActorSnapshot
	Ghosts           []ActorSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Level:        g.layout.ID,
		Outcome:      string(g.outcome),
		TileSize:     g.tileSize,
		CaptureGuard: g.guard,
	}
	if g.grid == nil {
		return s
	}

	s.Score = g.tally.Score()
	s.Lives = g.tally.Lives()
	s.Power = g.power.Phase().String()
	s.PowerCycle = g.power.Cycle()
	s.PelletsRemaining = g.grid.RemainingPellets()
	s.Player = ActorSnapshot{X: g.player.X, Y: g.player.Y, Active: g.player.Active.String()}

	s.Ghosts = make([]ActorSnapshot, len(g.ghosts))
	for i, gh := range g.ghosts {
		s.Ghosts[i] = ActorSnapshot{
			X:      gh.X,
			Y:      gh.Y,
			Active: gh.Active.String(),
			State:  gh.state.String(),
		}
	}
	return s
}
