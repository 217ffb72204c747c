package core

// Sound identifies a game sound effect.
type Sound int

const (
	SoundPellet Sound = iota
	SoundPowerPellet
	SoundGhostEaten
	SoundCapture
	SoundBonusLife
	SoundWin
	SoundLose
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundPellet:
		return "pellet"
	case SoundPowerPellet:
		return "power-pellet"
	case SoundGhostEaten:
		return "ghost-eaten"
	case SoundCapture:
		return "capture"
	case SoundBonusLife:
		return "bonus-life"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound effects. Implementations must not block the caller.
type SoundPlayer interface {
	Play(s Sound)
}
