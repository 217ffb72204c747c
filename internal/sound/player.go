package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ladypac/internal/core"
)

// Player mixes effects into the system speaker. It implements
// core.SoundPlayer; Play never blocks on audio.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	logger  *log.Logger
}

// NewPlayer opens the speaker and starts an always-running mixer.
func NewPlayer(volume float64, logger *log.Logger) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: true,
		logger:  logger,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues an effect. Overlapping effects are mixed.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	st, err := Streamer(s, SampleRate, p.volume)
	if err != nil {
		p.logger.Warn("cannot synthesize sound", "sound", s, "err", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetEnabled turns playback on or off. Disabling drops queued effects.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = enabled
	if !enabled {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = false
	speaker.Clear()
	speaker.Close()
}

var _ core.SoundPlayer = (*Player)(nil)
