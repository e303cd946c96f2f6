package stats

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/kanafall/internal/model"
)

func TestWPM(t *testing.T) {
	if got := WPM(30, 60000); got != 30 {
		t.Fatalf("expected 30 WPM, got %d", got)
	}
	if got := WPM(15, 30000); got != 30 {
		t.Fatalf("expected 30 WPM for half a minute, got %d", got)
	}
	if got := WPM(10, 0); got != 0 {
		t.Fatalf("expected 0 WPM with no elapsed time, got %d", got)
	}
	if got := WPM(0, 60000); got != 0 {
		t.Fatalf("expected 0 WPM with no words, got %d", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(0, 0); got != 100 {
		t.Fatalf("expected 100 for empty round, got %f", got)
	}
	if got := Accuracy(10, 10); got != 100 {
		t.Fatalf("expected 100, got %f", got)
	}
	if got := Accuracy(10, 5); got != 50.0 {
		t.Fatalf("expected 50.0, got %f", got)
	}
	if got := Accuracy(3, 2); got != 66.7 {
		t.Fatalf("expected 66.7, got %f", got)
	}
}

func TestComboScore(t *testing.T) {
	if got := ComboScore(0, 1); got != 100 {
		t.Fatalf("expected base score 100, got %d", got)
	}
	if got := ComboScore(5, 1); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
	// The combo bonus is capped at 200 regardless of how high combo climbs.
	if got := ComboScore(50, 1); got != 300 {
		t.Fatalf("expected capped bonus, got %d", got)
	}
	if got := ComboScore(50, 1000); ComboScore(51, 1000) != got {
		t.Fatalf("expected cap to hold for any level")
	}
	if got := ComboScore(0, 3); got != 140 {
		t.Fatalf("expected level multiplier 1.4, got %d", got)
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{61000, "01:01"},
		{600000, "10:00"},
		{59999, "00:59"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.ms); got != tc.want {
			t.Fatalf("FormatTime(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestSessionID(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := SessionID(now, rnd)
	if !strings.HasPrefix(id, "sess-20250314092653-") {
		t.Fatalf("unexpected session id %q", id)
	}
}

func TestRenderSessions(t *testing.T) {
	var buf bytes.Buffer
	sessions := []model.SessionRecord{
		{
			Mode:         model.ModeFalling,
			Level:        3,
			WPM:          42,
			Accuracy:     97.5,
			TotalWords:   20,
			CorrectWords: 19,
			DurationMs:   65000,
			CreatedAt:    time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC),
		},
	}
	if err := RenderSessions(&buf, sessions); err != nil {
		t.Fatalf("render sessions: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"falling", "42", "97.5%", "19/20", "01:05"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
