// Package sound synthesizes the game's effects and plays them through the
// system speaker.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/ladypac/internal/core"
)

// SampleRate is the output rate for every effect.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
	Sawtooth
)

// Note is one tone in an effect. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
	Wave Wave
}

const ms = time.Millisecond

var effectNotes = map[core.Sound][]Note{
	core.SoundPellet: {
		{Freq: 440, Dur: 30 * ms, Wave: Square},
		{Freq: 587, Dur: 30 * ms, Wave: Square},
	},
	core.SoundPowerPellet: {
		{Freq: 392, Dur: 60 * ms, Wave: Triangle},
		{Freq: 523, Dur: 60 * ms, Wave: Triangle},
		{Freq: 659, Dur: 60 * ms, Wave: Triangle},
		{Freq: 784, Dur: 90 * ms, Wave: Triangle},
	},
	core.SoundGhostEaten: {
		{Freq: 880, Dur: 40 * ms, Wave: Sawtooth},
		{Freq: 1175, Dur: 40 * ms, Wave: Sawtooth},
		{Freq: 1568, Dur: 60 * ms, Wave: Sawtooth},
	},
	core.SoundCapture: {
		{Freq: 494, Dur: 90 * ms, Wave: Sawtooth},
		{Freq: 440, Dur: 90 * ms, Wave: Sawtooth},
		{Freq: 392, Dur: 90 * ms, Wave: Sawtooth},
		{Freq: 330, Dur: 90 * ms, Wave: Sawtooth},
		{Freq: 262, Dur: 180 * ms, Wave: Sawtooth},
	},
	core.SoundBonusLife: {
		{Freq: 784, Dur: 70 * ms, Wave: Sine},
		{Dur: 30 * ms},
		{Freq: 784, Dur: 70 * ms, Wave: Sine},
		{Dur: 30 * ms},
		{Freq: 1047, Dur: 140 * ms, Wave: Sine},
	},
	core.SoundWin: {
		{Freq: 523, Dur: 120 * ms, Wave: Square},
		{Freq: 659, Dur: 120 * ms, Wave: Square},
		{Freq: 784, Dur: 120 * ms, Wave: Square},
		{Freq: 1047, Dur: 300 * ms, Wave: Square},
	},
	core.SoundLose: {
		{Freq: 392, Dur: 200 * ms, Wave: Triangle},
		{Freq: 370, Dur: 200 * ms, Wave: Triangle},
		{Freq: 349, Dur: 200 * ms, Wave: Triangle},
		{Freq: 330, Dur: 400 * ms, Wave: Triangle},
	},
}

// Notes returns the note sequence of an effect.
func Notes(s core.Sound) []Note {
	return effectNotes[s]
}

// Duration returns how long an effect plays.
func Duration(s core.Sound) time.Duration {
	var d time.Duration
	for _, n := range effectNotes[s] {
		d += n.Dur
	}
	return d
}

// Streamer builds a fresh, finite streamer for an effect. Volume is in
// halvings: 0 leaves the level alone, -1 is half as loud.
func Streamer(s core.Sound, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := effectNotes[s]
	if !ok {
		return nil, fmt.Errorf("sound: no effect for %v", s)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		st, err := tone(rate, n)
		if err != nil {
			return nil, fmt.Errorf("sound: %v: %w", s, err)
		}
		parts = append(parts, st)
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

func tone(rate beep.SampleRate, n Note) (beep.Streamer, error) {
	samples := rate.N(n.Dur)
	if n.Freq <= 0 {
		return beep.Silence(samples), nil
	}

	var (
		osc beep.Streamer
		err error
	)
	switch n.Wave {
	case Square:
		osc, err = generators.SquareTone(rate, n.Freq)
	case Triangle:
		osc, err = generators.TriangleTone(rate, n.Freq)
	case Sawtooth:
		osc, err = generators.SawtoothTone(rate, n.Freq)
	default:
		osc, err = generators.SineTone(rate, n.Freq)
	}
	if err != nil {
		return nil, err
	}
	return beep.Take(samples, osc), nil
}
