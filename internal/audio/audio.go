// Package audio plays short synthesized feedback tones.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Event identifies a feedback sound.
type Event int

// Feedback events.
const (
	EventCorrect Event = iota
	EventIncorrect
	EventMiss
	EventCountdown
	EventRoundEnd
)

// Manager owns the speaker and mixes fire-and-forget tones. All methods
// are safe for concurrent use. A Manager that failed to initialize or
// was created disabled plays nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewManager returns a Manager. Call Initialize before playing.
func NewManager(enabled bool) *Manager {
	return &Manager{mixer: &beep.Mixer{}, enabled: enabled}
}

// Initialize opens the speaker. On failure the manager stays silent and
// the error is returned for logging.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized || !m.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// Play queues the tone for an event and returns immediately.
func (m *Manager) Play(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || !m.enabled {
		return
	}
	var streamer beep.Streamer
	switch ev {
	case EventCorrect:
		streamer = take(60*time.Millisecond, newTone(880, 0.15))
	case EventIncorrect:
		streamer = take(120*time.Millisecond, newBuzz(120))
	case EventMiss:
		streamer = take(250*time.Millisecond, newSweep(440, 180))
	case EventCountdown:
		streamer = take(80*time.Millisecond, newTone(660, 0.12))
	case EventRoundEnd:
		streamer = take(400*time.Millisecond, newSweep(330, 660))
	default:
		return
	}
	m.mixer.Add(streamer)
}

func take(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), s)
}

// toneGenerator produces a plain sine tone with a short attack envelope.
type toneGenerator struct {
	freq float64
	amp  float64
	pos  int
}

func newTone(freq, amp float64) *toneGenerator {
	return &toneGenerator{freq: freq, amp: amp}
}

func (g *toneGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		envelope := math.Min(t/0.01, 1.0)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// buzzGenerator produces a harsh low buzz built from stacked harmonics.
type buzzGenerator struct {
	freq float64
	pos  int
}

func newBuzz(freq float64) *buzzGenerator {
	return &buzzGenerator{freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }

// sweepGenerator glides between two frequencies over its lifetime.
type sweepGenerator struct {
	from, to float64
	pos      int
	phase    float64
}

func newSweep(from, to float64) *sweepGenerator {
	return &sweepGenerator{from: from, to: to}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (int, bool) {
	const sweepDur = 0.4
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		frac := math.Min(t/sweepDur, 1.0)
		freq := g.from + (g.to-g.from)*frac
		g.phase += 2 * math.Pi * freq / float64(sampleRate)
		envelope := math.Exp(-t * 4)
		sample := 0.15 * envelope * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }
