// Package model defines shared data structures.
package model

import "time"

// InputMode selects how keystrokes are interpreted.
type InputMode string

// Supported input modes.
const (
	InputRomaji   InputMode = "romaji"
	InputHiragana InputMode = "hiragana"
	InputKatakana InputMode = "katakana"
)

// GameMode identifies a practice mode.
type GameMode string

// Supported game modes.
const (
	ModeFalling GameMode = "falling"
	ModeDrill   GameMode = "drill"
)

// Word is a single practice target. Immutable once loaded.
type Word struct {
	ID         string
	Japanese   string
	Reading    string
	Romaji     string
	Meaning    string
	Category   string
	Difficulty int
	Tags       []string
}

// WordList groups words under a named list.
type WordList struct {
	ID          string
	Name        string
	Description string
	Words       []Word
	BuiltIn     bool
	CreatedAt   time.Time
}

// Selection filters words from a word source. Zero values match everything.
type Selection struct {
	ListID        string
	Category      string
	MinDifficulty int
	MaxDifficulty int
}

// SessionRecord captures a completed round summary.
type SessionRecord struct {
	ID           string
	Mode         GameMode
	Level        int
	WordListID   string
	WPM          int
	Accuracy     float64
	TotalWords   int
	CorrectWords int
	DurationMs   int64
	CreatedAt    time.Time
}

// BestRecord tracks per-mode monotonic maxima.
type BestRecord struct {
	Mode          GameMode
	BestWPM       int
	BestAccuracy  float64
	TotalSessions int
}

// Settings is the read-mostly configuration snapshot consumed at round start.
type Settings struct {
	InputMode    InputMode
	Level        int
	ListID       string
	SoundEnabled bool
	ShowReading  bool
	ShowMeaning  bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		InputMode:    InputRomaji,
		Level:        3,
		ListID:       "n5-core",
		SoundEnabled: true,
		ShowReading:  true,
		ShowMeaning:  true,
	}
}

// SessionFilter narrows session queries for reporting.
type SessionFilter struct {
	Mode  GameMode
	Since *time.Time
	Last  int
}
