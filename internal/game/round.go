package game

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/stats"
)

// Status is the round state-machine tag.
type Status string

// Round statuses. Terminal states only leave via Start.
const (
	StatusIdle      Status = "idle"
	StatusCountdown Status = "countdown"
	StatusPlaying   Status = "playing"
	StatusPaused    Status = "paused"
	StatusGameOver  Status = "gameover"
	StatusClear     Status = "clear"
)

// Simulation constants. The reference frame interval normalizes speed
// units so the physics are frame-rate independent.
const (
	referenceFrameMs = 16.0
	opacityDecay     = 0.06
	spawnY           = -80.0
	spawnXMin        = 5.0
	spawnXRange      = 75.0
	minSeparationX   = 12.0
	spawnRetries     = 10
	speedJitter      = 0.3
	StartingLives    = 3
	countdownStart   = 3
)

// Instance is one falling target bound to a word.
type Instance struct {
	ID      string
	Word    model.Word
	X       float64 // normalized 0-100
	Y       float64 // length units, advances each tick
	Speed   float64
	Matched bool
	Opacity float64
	Color   string
}

// Config parameterizes a new round.
type Config struct {
	Mode   model.GameMode
	Level  int
	ListID string
	Words  []model.Word
}

// Round is the single mutable state container for one game round. Two
// event sources feed it (the frame driver and the input handler); every
// operation takes the mutex for its whole read-modify-write span.
type Round struct {
	mu  sync.Mutex
	rnd *rand.Rand

	status    Status
	mode      model.GameMode
	level     int
	listID    string
	score     int
	combo     int
	maxCombo  int
	lives     int
	elapsedMs int64
	countdown int

	instances []Instance
	pool      []model.Word
	usedIDs   map[string]bool
	nextSeq   int

	correctWords      int
	totalKeystrokes   int
	correctKeystrokes int

	notify func(Snapshot)
}

// Snapshot is an immutable copy of the observable round state, for
// rendering and assertions. The physics core has no rendering dependency.
type Snapshot struct {
	Status            Status
	Mode              model.GameMode
	Level             int
	Score             int
	Combo             int
	MaxCombo          int
	Lives             int
	ElapsedMs         int64
	Countdown         int
	Instances         []Instance
	CorrectWords      int
	TotalKeystrokes   int
	CorrectKeystrokes int
	PoolRemaining     int
}

// NewRound returns an idle round seeded with the current time.
func NewRound() *Round {
	return NewRoundWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewRoundWithSource allows deterministic tests.
func NewRoundWithSource(src rand.Source) *Round {
	return &Round{
		rnd:     rand.New(src),
		status:  StatusIdle,
		usedIDs: map[string]bool{},
		lives:   StartingLives,
	}
}

// SetNotify installs an observer called after every state mutation. Pass
// nil to remove it.
func (r *Round) SetNotify(fn func(Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// Start fully replaces the round state and enters the countdown phase.
// Valid from any status, including terminal ones.
func (r *Round) Start(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusCountdown
	r.mode = cfg.Mode
	r.level = cfg.Level
	r.listID = cfg.ListID
	r.score = 0
	r.combo = 0
	r.maxCombo = 0
	r.lives = StartingLives
	r.elapsedMs = 0
	r.countdown = countdownStart
	r.instances = nil
	r.pool = append([]model.Word(nil), cfg.Words...)
	r.usedIDs = map[string]bool{}
	r.nextSeq = 0
	r.correctWords = 0
	r.totalKeystrokes = 0
	r.correctKeystrokes = 0
	r.emit()
}

// Reset returns the round to idle, discarding all in-flight state.
func (r *Round) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = StatusIdle
	r.instances = nil
	r.pool = nil
	r.usedIDs = map[string]bool{}
	r.score = 0
	r.combo = 0
	r.maxCombo = 0
	r.lives = StartingLives
	r.elapsedMs = 0
	r.countdown = countdownStart
	r.correctWords = 0
	r.totalKeystrokes = 0
	r.correctKeystrokes = 0
	r.emit()
}

// SetCountdown steps the pre-roll timer. No-op outside the countdown phase.
func (r *Round) SetCountdown(value int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusCountdown {
		return
	}
	r.countdown = value
	r.emit()
}

// SetPlaying flips the round from countdown to playing.
func (r *Round) SetPlaying() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusCountdown {
		return
	}
	r.status = StatusPlaying
	r.emit()
}

// Pause freezes the simulation. Only valid while playing.
func (r *Round) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPlaying {
		return
	}
	r.status = StatusPaused
	r.emit()
}

// Resume continues a paused round with no state loss.
func (r *Round) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPaused {
		return
	}
	r.status = StatusPlaying
	r.emit()
}

// End forces the round into gameover.
func (r *Round) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPlaying && r.status != StatusPaused {
		return
	}
	r.status = StatusGameOver
	r.emit()
}

// Tick advances the simulation by deltaTime milliseconds. Within one call
// the order is fixed: position updates, fade-out purge, miss detection,
// terminal-state checks, elapsed accumulation. No-op unless playing.
func (r *Round) Tick(deltaTimeMs float64, floor float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPlaying {
		return
	}

	step := deltaTimeMs / referenceFrameMs
	for i := range r.instances {
		inst := &r.instances[i]
		inst.Y += inst.Speed * step
		if inst.Matched {
			inst.Opacity = math.Max(0, inst.Opacity-opacityDecay)
		}
	}

	// Fade-completed instances go first so a matched word can never be
	// double-counted as a miss in the same tick.
	kept := r.instances[:0]
	for _, inst := range r.instances {
		if inst.Opacity > 0 {
			kept = append(kept, inst)
		}
	}
	r.instances = kept

	misses := 0
	kept = r.instances[:0]
	for _, inst := range r.instances {
		if !inst.Matched && inst.Y >= floor {
			misses++
			continue
		}
		kept = append(kept, inst)
	}
	r.instances = kept

	if misses > 0 {
		r.lives -= misses
		if r.lives < 0 {
			r.lives = 0
		}
		r.combo = 0
	}

	if r.lives <= 0 {
		r.status = StatusGameOver
	} else if len(r.pool) > 0 && r.poolExhausted() && len(r.instances) == 0 {
		// Every word has been drawn and resolved: the round is cleared.
		r.status = StatusClear
	}

	r.elapsedMs += int64(deltaTimeMs)
	r.emit()
}

// Spawn appends a new falling instance. No-op while not playing, when the
// on-screen limit is reached, or when the pool is exhausted; the round
// simply continues with fewer targets.
func (r *Round) Spawn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPlaying {
		return
	}
	cfg := LevelFor(r.level)

	unmatched := 0
	for _, inst := range r.instances {
		if !inst.Matched {
			unmatched++
		}
	}
	if unmatched >= cfg.MaxOnScreen {
		return
	}

	var available []model.Word
	for _, w := range r.pool {
		if !r.usedIDs[w.ID] {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		return
	}
	word := available[r.rnd.Intn(len(available))]

	// Bounded retry for horizontal separation; accept the last candidate
	// rather than looping indefinitely.
	x := spawnXMin + r.rnd.Float64()*spawnXRange
	for attempt := 0; attempt < spawnRetries; attempt++ {
		tooClose := false
		for _, inst := range r.instances {
			if math.Abs(inst.X-x) < minSeparationX {
				tooClose = true
				break
			}
		}
		if !tooClose {
			break
		}
		x = spawnXMin + r.rnd.Float64()*spawnXRange
	}

	r.nextSeq++
	r.instances = append(r.instances, Instance{
		ID:      fmt.Sprintf("w-%d", r.nextSeq),
		Word:    word,
		X:       x,
		Y:       spawnY,
		Speed:   cfg.BaseSpeed + r.rnd.Float64()*speedJitter,
		Matched: false,
		Opacity: 1,
		Color:   WordColors[r.rnd.Intn(len(WordColors))],
	})
	r.usedIDs[word.ID] = true
	r.emit()
}

// Match marks an instance as typed and applies the scoring bookkeeping.
// No-op when the id is unknown, already matched, or the round is not
// playing. The matched word's reading length stands in for its keystroke
// count; literal per-key attempts go through AddKeystroke.
func (r *Round) Match(instanceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPlaying {
		return
	}
	for i := range r.instances {
		inst := &r.instances[i]
		if inst.ID != instanceID {
			continue
		}
		if inst.Matched {
			return
		}
		inst.Matched = true
		r.score += stats.ComboScore(r.combo, r.level)
		r.combo++
		if r.combo > r.maxCombo {
			r.maxCombo = r.combo
		}
		r.correctWords++
		readingLen := len([]rune(inst.Word.Reading))
		r.correctKeystrokes += readingLen
		r.totalKeystrokes += readingLen
		r.emit()
		return
	}
}

// AddKeystroke records a literal input attempt outside a full-word match.
// An incorrect attempt resets the combo.
func (r *Round) AddKeystroke(correct bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != StatusPlaying {
		return
	}
	r.totalKeystrokes++
	if correct {
		r.correctKeystrokes++
	} else {
		r.combo = 0
	}
	r.emit()
}

// Snapshot returns a copy of the observable state.
func (r *Round) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Summary builds the completed-round record handed to the session sink.
func (r *Round) Summary(id string, now time.Time) model.SessionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return model.SessionRecord{
		ID:           id,
		Mode:         r.mode,
		Level:        r.level,
		WordListID:   r.listID,
		WPM:          stats.WPM(r.correctWords, r.elapsedMs),
		Accuracy:     stats.Accuracy(r.totalKeystrokes, r.correctKeystrokes),
		TotalWords:   len(r.usedIDs),
		CorrectWords: r.correctWords,
		DurationMs:   r.elapsedMs,
		CreatedAt:    now,
	}
}

func (r *Round) poolExhausted() bool {
	for _, w := range r.pool {
		if !r.usedIDs[w.ID] {
			return false
		}
	}
	return true
}

func (r *Round) snapshotLocked() Snapshot {
	instances := make([]Instance, len(r.instances))
	copy(instances, r.instances)
	remaining := 0
	for _, w := range r.pool {
		if !r.usedIDs[w.ID] {
			remaining++
		}
	}
	return Snapshot{
		Status:            r.status,
		Mode:              r.mode,
		Level:             r.level,
		Score:             r.score,
		Combo:             r.combo,
		MaxCombo:          r.maxCombo,
		Lives:             r.lives,
		ElapsedMs:         r.elapsedMs,
		Countdown:         r.countdown,
		Instances:         instances,
		CorrectWords:      r.correctWords,
		TotalKeystrokes:   r.totalKeystrokes,
		CorrectKeystrokes: r.correctKeystrokes,
		PoolRemaining:     remaining,
	}
}

func (r *Round) emit() {
	if r.notify == nil {
		return
	}
	r.notify(r.snapshotLocked())
}
