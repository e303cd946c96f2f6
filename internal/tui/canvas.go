package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/kanafall/internal/game"
	"github.com/verte-zerg/kanafall/internal/match"
	"github.com/verte-zerg/kanafall/internal/model"
)

// floorY is the simulation-space fall distance after which an unmatched
// word counts as missed.
const floorY = 580.0

type placed struct {
	col  int
	text string
}

// renderPlayfield maps the falling instances onto a terminal grid. X is a
// 0-100 percentage, Y spans simulation space from above the screen down
// to floorY.
func renderPlayfield(instances []game.Instance, input string, mode model.InputMode, showReading bool, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	byRow := map[int][]placed{}
	for _, inst := range instances {
		row := int(inst.Y / floorY * float64(height-1))
		if row < 0 || row >= height {
			continue
		}
		col := int(inst.X / 100.0 * float64(width))
		text := styleInstance(inst, input, mode, showReading)
		cellWidth := runewidth.StringWidth(stripLabel(inst, showReading))
		if col+cellWidth > width {
			col = width - cellWidth
		}
		if col < 0 {
			col = 0
		}
		byRow[row] = append(byRow[row], placed{col: col, text: text})
	}

	lines := make([]string, height)
	for row := 0; row < height; row++ {
		cells := byRow[row]
		if len(cells) == 0 {
			continue
		}
		sort.Slice(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
		var b strings.Builder
		cursor := 0
		for _, c := range cells {
			if c.col > cursor {
				b.WriteString(strings.Repeat(" ", c.col-cursor))
				cursor = c.col
			}
			b.WriteString(c.text)
			cursor += runewidth.StringWidth(stripANSI(c.text))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// stripLabel returns the unstyled display text for width accounting.
func stripLabel(inst game.Instance, showReading bool) string {
	if showReading && inst.Word.Japanese != inst.Word.Reading {
		return inst.Word.Japanese + " " + inst.Word.Reading
	}
	return inst.Word.Japanese
}

// styleInstance renders one word with typed-prefix highlighting. A matched
// instance fades as a whole; the typed portion of the reading of the
// closest prefix candidate is emphasized.
func styleInstance(inst game.Instance, input string, mode model.InputMode, showReading bool) string {
	if inst.Matched {
		return matchedStyle.Render(stripLabel(inst, showReading))
	}
	wordStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(inst.Color))
	label := wordStyle.Render(inst.Word.Japanese)
	if !showReading || inst.Word.Japanese == inst.Word.Reading {
		if inst.Word.Japanese == inst.Word.Reading {
			return styleReading(inst, input, mode, wordStyle)
		}
		return label
	}
	return label + " " + styleReading(inst, input, mode, readingStyle)
}

// styleReading splits a reading at the typed-prefix boundary.
func styleReading(inst game.Instance, input string, mode model.InputMode, base lipgloss.Style) string {
	reading := []rune(inst.Word.Reading)
	if input == "" || !match.IsPrefixMatch(input, inst.Word, mode) {
		return base.Render(string(reading))
	}
	done := int(match.InputProgress(input, inst.Word, mode) * float64(len(reading)))
	if done > len(reading) {
		done = len(reading)
	}
	return typedStyle.Render(string(reading[:done])) + base.Render(string(reading[done:]))
}

// stripANSI removes terminal escape sequences for width measurement.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
