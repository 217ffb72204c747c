package ladypac

import "sort"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPellet EventKind = iota
	EventPowerPellet
	EventPowerFinishing
	EventPowerEnded
	EventGhostEaten
	EventGhostRecovered
	EventCaptured
	EventBonusLife
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventPellet:
		return "pellet"
	case EventPowerPellet:
		return "power-pellet"
	case EventPowerFinishing:
		return "power-finishing"
	case EventPowerEnded:
		return "power-ended"
	case EventGhostEaten:
		return "ghost-eaten"
	case EventGhostRecovered:
		return "ghost-recovered"
	case EventCaptured:
		return "captured"
	case EventBonusLife:
		return "bonus-life"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome is how a game ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// Event is delivered to subscribers after the state change it describes.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Score   int
	Lives   int
	Ghost   int     // ghost index for ghost events, -1 otherwise
	Outcome Outcome // set on EventFinished
}

// listeners is a subscription set. Listeners run in subscription order.
type listeners struct {
	nextID int
	fns    map[int]func(Event)
}

func (l *listeners) subscribe(fn func(Event)) func() {
	if l.fns == nil {
		l.fns = make(map[int]func(Event))
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	return func() {
		delete(l.fns, id)
	}
}

func (l *listeners) emit(e Event) {
	if len(l.fns) == 0 {
		return
	}
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn(e)
		}
	}
}

func (l *listeners) clear() {
	l.fns = nil
}

func (l *listeners) len() int {
	return len(l.fns)
}
