package audio

import (
	"math"
	"testing"
)

func drain(t *testing.T, g interface {
	Stream([][2]float64) (int, bool)
	Err() error
}, frames int) float64 {
	t.Helper()
	buf := make([][2]float64, frames)
	n, ok := g.Stream(buf)
	if !ok || n != frames {
		t.Fatalf("expected %d frames, got %d (ok=%v)", frames, n, ok)
	}
	if err := g.Err(); err != nil {
		t.Fatalf("unexpected generator error: %v", err)
	}
	peak := 0.0
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("expected identical stereo channels")
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	return peak
}

func TestGeneratorsProduceBoundedSamples(t *testing.T) {
	gens := []struct {
		name string
		gen  interface {
			Stream([][2]float64) (int, bool)
			Err() error
		}
	}{
		{"tone", newTone(880, 0.15)},
		{"buzz", newBuzz(120)},
		{"sweep", newSweep(440, 180)},
	}
	for _, tc := range gens {
		t.Run(tc.name, func(t *testing.T) {
			peak := drain(t, tc.gen, 4800)
			if peak == 0 {
				t.Fatalf("expected nonzero output")
			}
			if peak > 1.0 {
				t.Fatalf("expected samples within [-1, 1], peak %v", peak)
			}
		})
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	m := NewManager(true)
	// Play before Initialize must not panic or touch the speaker.
	m.Play(EventCorrect)
	m.Cleanup()
}

func TestDisabledManagerSkipsSpeaker(t *testing.T) {
	m := NewManager(false)
	if err := m.Initialize(); err != nil {
		t.Fatalf("disabled manager must not open the speaker: %v", err)
	}
	m.Play(EventMiss)
	m.Cleanup()
}
