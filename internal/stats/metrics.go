// Package stats contains metric calculations and reporting.
package stats

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// WPM computes words-per-minute from completed words over elapsed time.
// Returns 0 when no time has elapsed.
func WPM(correctWords int, elapsedMs int64) int {
	if elapsedMs <= 0 {
		return 0
	}
	minutes := float64(elapsedMs) / 60000.0
	return int(math.Round(float64(correctWords) / minutes))
}

// Accuracy computes the percentage of correct keystrokes with one decimal
// place. A round with no keystrokes counts as 100.
func Accuracy(totalKeystrokes, correctKeystrokes int) float64 {
	if totalKeystrokes <= 0 {
		return 100
	}
	return math.Round(float64(correctKeystrokes)/float64(totalKeystrokes)*1000) / 10
}

// ComboScore returns the points awarded for one matched word: base points
// plus a capped combo bonus, scaled by a level multiplier. Constants are
// kept exactly for record compatibility.
func ComboScore(combo, level int) int {
	base := 100.0
	comboBonus := math.Min(float64(combo)*10, 200)
	levelMultiplier := 1 + float64(level-1)*0.2
	return int(math.Round((base + comboBonus) * levelMultiplier))
}

// FormatTime renders elapsed milliseconds as mm:ss.
func FormatTime(ms int64) string {
	totalSeconds := ms / 1000
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// SessionID builds a sortable session identifier from a timestamp and a
// short random suffix.
func SessionID(now time.Time, rnd *rand.Rand) string {
	return fmt.Sprintf("sess-%s-%04x", now.Format("20060102150405"), rnd.Intn(0x10000))
}
