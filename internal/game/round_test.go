package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/verte-zerg/kanafall/internal/model"
)

const testFloor = 580.0

func testWords(n int) []model.Word {
	words := make([]model.Word, 0, n)
	readings := []string{"しさん", "かいしゃ", "ぎんこう", "りえき", "しほん", "ふさい"}
	for i := 0; i < n; i++ {
		words = append(words, model.Word{
			ID:      string(rune('a' + i)),
			Reading: readings[i%len(readings)],
		})
	}
	return words
}

func playingRound(t *testing.T, words []model.Word) *Round {
	t.Helper()
	r := NewRoundWithSource(rand.NewSource(42))
	r.Start(Config{Mode: model.ModeFalling, Level: 3, ListID: "test", Words: words})
	if got := r.Snapshot().Status; got != StatusCountdown {
		t.Fatalf("expected countdown after start, got %q", got)
	}
	r.SetPlaying()
	if got := r.Snapshot().Status; got != StatusPlaying {
		t.Fatalf("expected playing, got %q", got)
	}
	return r
}

func TestLevelForClamps(t *testing.T) {
	if LevelFor(0) != LevelFor(1) {
		t.Fatalf("expected level 0 to clamp to 1")
	}
	if LevelFor(9) != LevelFor(5) {
		t.Fatalf("expected level 9 to clamp to 5")
	}
	cfg := LevelFor(3)
	if cfg.BaseSpeed != 1.0 || cfg.SpawnInterval != 2500 || cfg.MaxOnScreen != 5 {
		t.Fatalf("unexpected level 3 config: %+v", cfg)
	}
}

func TestThreeMissesEndTheRound(t *testing.T) {
	r := playingRound(t, testWords(6))
	for i := 0; i < 3; i++ {
		r.Spawn()
		// A large step pushes the unmatched instance past the floor.
		r.Tick(20000, testFloor)
	}
	snap := r.Snapshot()
	if snap.Lives != 0 {
		t.Fatalf("expected 0 lives, got %d", snap.Lives)
	}
	if snap.Status != StatusGameOver {
		t.Fatalf("expected gameover, got %q", snap.Status)
	}
	if snap.Combo != 0 {
		t.Fatalf("expected combo reset on miss, got %d", snap.Combo)
	}
	// Terminal state: further ticks and spawns are no-ops.
	r.Spawn()
	r.Tick(20000, testFloor)
	if got := r.Snapshot().Status; got != StatusGameOver {
		t.Fatalf("expected gameover to be terminal, got %q", got)
	}
}

func TestMatchIsIdempotent(t *testing.T) {
	r := playingRound(t, testWords(3))
	r.Spawn()
	snap := r.Snapshot()
	if len(snap.Instances) != 1 {
		t.Fatalf("expected one instance, got %d", len(snap.Instances))
	}
	id := snap.Instances[0].ID

	r.Match(id)
	first := r.Snapshot()
	if first.Score == 0 || first.Combo != 1 || first.CorrectWords != 1 {
		t.Fatalf("unexpected state after match: %+v", first)
	}

	r.Match(id)
	second := r.Snapshot()
	if second.Score != first.Score || second.Combo != first.Combo || second.CorrectWords != first.CorrectWords {
		t.Fatalf("second match must be a no-op: %+v vs %+v", first, second)
	}

	r.Match("no-such-instance")
	if got := r.Snapshot().Score; got != first.Score {
		t.Fatalf("matching an unknown id must be a no-op")
	}
}

func TestMatchedInstanceNeverMisses(t *testing.T) {
	r := playingRound(t, testWords(3))
	r.Spawn()
	id := r.Snapshot().Instances[0].ID
	r.Match(id)
	lives := r.Snapshot().Lives
	// Push the matched instance far past the floor while it fades.
	for i := 0; i < 20; i++ {
		r.Tick(20000, testFloor)
	}
	snap := r.Snapshot()
	if snap.Lives != lives {
		t.Fatalf("matched instance must not cost a life: %d -> %d", lives, snap.Lives)
	}
	for _, inst := range snap.Instances {
		if inst.Matched {
			t.Fatalf("expected faded instance to be purged")
		}
	}
}

func TestSpawnRespectsMaxOnScreen(t *testing.T) {
	r := playingRound(t, testWords(6))
	for i := 0; i < 10; i++ {
		r.Spawn()
	}
	snap := r.Snapshot()
	if len(snap.Instances) != LevelFor(3).MaxOnScreen {
		t.Fatalf("expected %d instances, got %d", LevelFor(3).MaxOnScreen, len(snap.Instances))
	}
	seen := map[string]bool{}
	for _, inst := range snap.Instances {
		if seen[inst.Word.ID] {
			t.Fatalf("word %q spawned twice", inst.Word.ID)
		}
		seen[inst.Word.ID] = true
	}
}

func TestSpawnStopsWhenPoolExhausted(t *testing.T) {
	r := playingRound(t, testWords(2))
	r.Spawn()
	r.Spawn()
	r.Spawn()
	if got := len(r.Snapshot().Instances); got != 2 {
		t.Fatalf("expected spawning to stop silently at pool size, got %d", got)
	}
}

func TestClearWhenPoolResolved(t *testing.T) {
	r := playingRound(t, testWords(1))
	r.Spawn()
	r.Match(r.Snapshot().Instances[0].ID)
	// Opacity decays 0.06 per tick; the instance purges within 17 ticks.
	for i := 0; i < 20; i++ {
		r.Tick(16, testFloor)
	}
	if got := r.Snapshot().Status; got != StatusClear {
		t.Fatalf("expected clear once every word is resolved, got %q", got)
	}
}

func TestTickNoopOutsidePlaying(t *testing.T) {
	r := NewRoundWithSource(rand.NewSource(42))
	r.Tick(16, testFloor)
	if got := r.Snapshot().ElapsedMs; got != 0 {
		t.Fatalf("tick while idle must be a no-op, elapsed %d", got)
	}

	r.Start(Config{Mode: model.ModeFalling, Level: 3, ListID: "test", Words: testWords(3)})
	r.Tick(16, testFloor)
	if got := r.Snapshot().ElapsedMs; got != 0 {
		t.Fatalf("tick during countdown must be a no-op, elapsed %d", got)
	}

	r.SetPlaying()
	r.Pause()
	r.Spawn()
	r.Tick(16, testFloor)
	snap := r.Snapshot()
	if snap.ElapsedMs != 0 || len(snap.Instances) != 0 {
		t.Fatalf("tick/spawn while paused must be no-ops: %+v", snap)
	}

	r.Resume()
	r.Tick(16, testFloor)
	if got := r.Snapshot().ElapsedMs; got != 16 {
		t.Fatalf("expected elapsed to accumulate while playing, got %d", got)
	}
}

func TestPauseResumeKeepsState(t *testing.T) {
	r := playingRound(t, testWords(3))
	r.Spawn()
	r.Tick(160, testFloor)
	before := r.Snapshot()
	r.Pause()
	r.Resume()
	after := r.Snapshot()
	if after.Score != before.Score || len(after.Instances) != len(before.Instances) || after.ElapsedMs != before.ElapsedMs {
		t.Fatalf("pause/resume must not lose state")
	}
}

func TestAddKeystroke(t *testing.T) {
	r := playingRound(t, testWords(3))
	r.Spawn()
	r.Match(r.Snapshot().Instances[0].ID)
	if got := r.Snapshot().Combo; got != 1 {
		t.Fatalf("expected combo 1, got %d", got)
	}

	r.AddKeystroke(true)
	snap := r.Snapshot()
	if snap.CorrectKeystrokes != snap.TotalKeystrokes {
		t.Fatalf("expected correct keystroke to count")
	}
	if snap.Combo != 1 {
		t.Fatalf("correct keystroke must not reset combo")
	}

	r.AddKeystroke(false)
	snap = r.Snapshot()
	if snap.Combo != 0 {
		t.Fatalf("incorrect keystroke must reset combo, got %d", snap.Combo)
	}
	if snap.CorrectKeystrokes == snap.TotalKeystrokes {
		t.Fatalf("incorrect keystroke must not count as correct")
	}
}

func TestMaxComboIsMonotonic(t *testing.T) {
	r := playingRound(t, testWords(4))
	for i := 0; i < 3; i++ {
		r.Spawn()
		snap := r.Snapshot()
		r.Match(snap.Instances[len(snap.Instances)-1].ID)
	}
	if got := r.Snapshot().MaxCombo; got != 3 {
		t.Fatalf("expected max combo 3, got %d", got)
	}
	r.AddKeystroke(false)
	snap := r.Snapshot()
	if snap.Combo != 0 || snap.MaxCombo != 3 {
		t.Fatalf("max combo must survive a combo reset: %+v", snap)
	}
}

func TestStartReplacesState(t *testing.T) {
	r := playingRound(t, testWords(3))
	r.Spawn()
	r.Match(r.Snapshot().Instances[0].ID)
	r.Start(Config{Mode: model.ModeFalling, Level: 2, ListID: "test", Words: testWords(3)})
	snap := r.Snapshot()
	if snap.Score != 0 || snap.Combo != 0 || len(snap.Instances) != 0 || snap.Lives != 3 {
		t.Fatalf("start must fully replace round state: %+v", snap)
	}
	if snap.Status != StatusCountdown || snap.Countdown != 3 {
		t.Fatalf("start must enter countdown at 3: %+v", snap)
	}
}

func TestNotifyObserver(t *testing.T) {
	r := NewRoundWithSource(rand.NewSource(42))
	var last Snapshot
	calls := 0
	r.SetNotify(func(s Snapshot) {
		last = s
		calls++
	})
	r.Start(Config{Mode: model.ModeFalling, Level: 3, ListID: "test", Words: testWords(3)})
	r.SetPlaying()
	r.Spawn()
	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
	if last.Status != StatusPlaying || len(last.Instances) != 1 {
		t.Fatalf("unexpected last snapshot: %+v", last)
	}
}

func TestSummary(t *testing.T) {
	r := playingRound(t, testWords(3))
	r.Spawn()
	r.Match(r.Snapshot().Instances[0].ID)
	r.Tick(30000, 1e9) // accumulate time without reaching the floor
	now := time.Now()
	rec := r.Summary("sess-test", now)
	if rec.ID != "sess-test" || rec.Mode != model.ModeFalling || rec.Level != 3 {
		t.Fatalf("unexpected summary header: %+v", rec)
	}
	if rec.WPM != 2 {
		t.Fatalf("expected 2 WPM for one word in 30s, got %d", rec.WPM)
	}
	if rec.Accuracy != 100 {
		t.Fatalf("expected 100%% accuracy, got %f", rec.Accuracy)
	}
	if rec.TotalWords != 1 || rec.CorrectWords != 1 {
		t.Fatalf("unexpected word counts: %+v", rec)
	}
	if rec.DurationMs != 30000 {
		t.Fatalf("expected 30000ms duration, got %d", rec.DurationMs)
	}
}
