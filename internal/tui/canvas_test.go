package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/kanafall/internal/game"
	"github.com/verte-zerg/kanafall/internal/model"
)

func testInstance(japanese, reading string, x, y float64) game.Instance {
	return game.Instance{
		ID:      "w-1",
		Word:    model.Word{ID: "w", Japanese: japanese, Reading: reading, Romaji: "x"},
		X:       x,
		Y:       y,
		Opacity: 1,
		Color:   "#60A5FA",
	}
}

func TestRenderPlayfieldPlacesWordOnRow(t *testing.T) {
	inst := testInstance("会社", "かいしゃ", 50, floorY/2)
	out := renderPlayfield([]game.Instance{inst}, "", model.InputRomaji, false, 40, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	// Y at half of floorY lands near the middle row.
	row := -1
	for i, line := range lines {
		if strings.Contains(stripANSI(line), "会社") {
			row = i
		}
	}
	if row != 4 {
		t.Fatalf("expected the word on row 4, got %d", row)
	}
}

func TestRenderPlayfieldSkipsOffscreenRows(t *testing.T) {
	above := testInstance("会社", "かいしゃ", 50, -80)
	out := renderPlayfield([]game.Instance{above}, "", model.InputRomaji, false, 40, 10)
	if strings.Contains(stripANSI(out), "会社") {
		t.Fatalf("expected words above the screen to be hidden")
	}
}

func TestRenderPlayfieldClampsRightEdge(t *testing.T) {
	inst := testInstance("図書館", "としょかん", 100, floorY/2)
	out := renderPlayfield([]game.Instance{inst}, "", model.InputRomaji, false, 10, 10)
	for _, line := range strings.Split(out, "\n") {
		plain := stripANSI(line)
		if !strings.Contains(plain, "図書館") {
			continue
		}
		// Double-width runes: 3 kanji occupy 6 cells within the 10-wide field.
		if strings.Index(plain, "図") > 4 {
			t.Fatalf("expected the word clamped inside the field, line %q", plain)
		}
		return
	}
	t.Fatalf("word not rendered")
}

func TestRenderPlayfieldShowsReading(t *testing.T) {
	inst := testInstance("会社", "かいしゃ", 10, floorY/2)
	out := stripANSI(renderPlayfield([]game.Instance{inst}, "", model.InputRomaji, true, 60, 10))
	if !strings.Contains(out, "会社 かいしゃ") {
		t.Fatalf("expected reading shown next to the word, got %q", out)
	}
	out = stripANSI(renderPlayfield([]game.Instance{inst}, "", model.InputRomaji, false, 60, 10))
	if strings.Contains(out, "かいしゃ") {
		t.Fatalf("expected reading hidden")
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[38;5;10mabc\x1b[0m"
	if got := stripANSI(in); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
}

func TestHasPendingTail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"か", false},
		{"かいs", true},
		{"きtt", true},
		{"かいしゃ", false},
	}
	for _, tc := range tests {
		if got := hasPendingTail(tc.in); got != tc.want {
			t.Fatalf("hasPendingTail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
