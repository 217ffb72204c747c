package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/ladypac/internal/core"
)

var allSounds = []core.Sound{
	core.SoundPellet,
	core.SoundPowerPellet,
	core.SoundGhostEaten,
	core.SoundCapture,
	core.SoundBonusLife,
	core.SoundWin,
	core.SoundLose,
}

// drain streams everything and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			break
		}
		if total > 10*int(SampleRate) {
			t.Fatal("streamer does not end")
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
	return total, peak
}

func TestEveryEffectIsFinite(t *testing.T) {
	for _, s := range allSounds {
		t.Run(s.String(), func(t *testing.T) {
			st, err := Streamer(s, SampleRate, 0)
			if err != nil {
				t.Fatalf("Streamer() failed: %v", err)
			}

			total, peak := drain(t, st)

			expected := 0
			for _, n := range Notes(s) {
				expected += SampleRate.N(n.Dur)
			}
			if total != expected {
				t.Errorf("streamed %d samples, expected %d", total, expected)
			}
			if peak == 0 || peak > 1.0001 {
				t.Errorf("peak = %f, expected within (0, 1]", peak)
			}
			if Duration(s) <= 0 || Duration(s) > 2*time.Second {
				t.Errorf("Duration() = %v", Duration(s))
			}
		})
	}
}

func TestVolumeHalves(t *testing.T) {
	full, err := Streamer(core.SoundWin, SampleRate, 0)
	if err != nil {
		t.Fatal(err)
	}
	half, err := Streamer(core.SoundWin, SampleRate, -1)
	if err != nil {
		t.Fatal(err)
	}

	_, fullPeak := drain(t, full)
	_, halfPeak := drain(t, half)
	if diff := halfPeak*2 - fullPeak; diff > 0.01 || diff < -0.01 {
		t.Errorf("peaks %f and %f, expected the second to be half", fullPeak, halfPeak)
	}
}

func TestUnknownSound(t *testing.T) {
	if _, err := Streamer(core.Sound(99), SampleRate, 0); err == nil {
		t.Error("expected an error for an unknown sound")
	}
}
