package ladypac

import "github.com/vovakirdan/ladypac/internal/core"

// Tally keeps score and lives. The bonus life is granted once per game,
// the first time the score exceeds the threshold, and its icon blinks for
// a number of cycles before it settles visible.
type Tally struct {
	score     int
	lives     int
	threshold int

	bonusGranted bool
	blink        core.Countdown
	blinkTicks   int
	blinkLeft    int // half-cycles still to show
	blinkOn      bool
	blinkCycles  int
}

// NewTally creates a tally with the starting lives and bonus settings.
func NewTally(lives, threshold, blinkCycles, blinkTicks int) *Tally {
	return &Tally{
		lives:       max(0, lives),
		threshold:   threshold,
		blinkCycles: blinkCycles,
		blinkTicks:  blinkTicks,
	}
}

// AddScore adds n points and reports whether this call granted the bonus
// life. Non-positive amounts are ignored, so the score never decreases.
func (t *Tally) AddScore(n int) bool {
	if n <= 0 {
		return false
	}
	t.score += n
	if t.bonusGranted || t.score <= t.threshold {
		return false
	}
	t.bonusGranted = true
	t.lives++
	if t.blinkCycles > 0 && t.blinkTicks > 0 {
		t.blinkLeft = t.blinkCycles * 2
		t.blinkOn = false
		t.blink.Start(t.blinkTicks)
	}
	return true
}

// RemoveLife takes one life, never going below zero, and returns what is left.
func (t *Tally) RemoveLife() int {
	if t.lives > 0 {
		t.lives--
	}
	return t.lives
}

// Tick drives the bonus life blink.
func (t *Tally) Tick() {
	if t.blinkLeft == 0 || !t.blink.Tick() {
		return
	}
	t.blinkOn = !t.blinkOn
	t.blinkLeft--
	if t.blinkLeft > 0 {
		t.blink.Start(t.blinkTicks)
	}
}

// Stop ends the blink early and leaves the icon visible.
func (t *Tally) Stop() {
	t.blink.Stop()
	t.blinkLeft = 0
}

// Score returns the current score.
func (t *Tally) Score() int { return t.score }

// Lives returns the remaining lives.
func (t *Tally) Lives() int { return t.lives }

// BonusGranted reports whether the bonus life was already awarded.
func (t *Tally) BonusGranted() bool { return t.bonusGranted }

// Blinking reports whether the bonus life icon is still flashing.
func (t *Tally) Blinking() bool { return t.blinkLeft > 0 }

// BonusLifeVisible reports whether the newest life icon is drawn this tick.
func (t *Tally) BonusLifeVisible() bool {
	return t.blinkLeft == 0 || t.blinkOn
}
