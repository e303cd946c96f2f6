// Package match classifies live input buffers against target readings.
package match

import (
	"strings"

	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/romaji"
)

// convert normalizes a buffer for comparison under the given input mode.
// Romaji input goes through the transliteration engine; katakana is folded
// to hiragana since readings are always stored in hiragana.
func convert(input string, mode model.InputMode) string {
	switch mode {
	case model.InputRomaji:
		return romaji.ToHiragana(input)
	case model.InputKatakana:
		return romaji.KatakanaToHiragana(input)
	default:
		return input
	}
}

// IsCorrectInput reports whether the buffer is a complete, correct match
// for the word's reading. The empty buffer is never correct. In romaji mode
// a trailing lone "n" is settled to ん for the completeness check only; it
// stays pending for display and prefix purposes.
func IsCorrectInput(input string, word model.Word, mode model.InputMode) bool {
	if input == "" {
		return false
	}
	target := strings.ToLower(word.Reading)
	converted := convert(input, mode)
	if converted == target {
		return true
	}
	if mode == model.InputRomaji && strings.HasSuffix(converted, "n") {
		return strings.TrimSuffix(converted, "n")+"ん" == target
	}
	return false
}

// IsPrefixMatch reports whether the reading starts with the converted
// buffer, pending tail included. Used for in-progress highlighting; the
// empty buffer never matches so idle targets are not all highlighted.
func IsPrefixMatch(input string, word model.Word, mode model.InputMode) bool {
	if input == "" {
		return false
	}
	return strings.HasPrefix(word.Reading, convert(input, mode))
}

// InputProgress returns the completed fraction of the reading in [0, 1]:
// zero when the buffer is not a valid prefix, else converted length over
// target length. Display-only; never used for correctness decisions.
func InputProgress(input string, word model.Word, mode model.InputMode) float64 {
	if input == "" {
		return 0
	}
	converted := convert(input, mode)
	if !strings.HasPrefix(word.Reading, converted) {
		return 0
	}
	targetLen := len([]rune(word.Reading))
	if targetLen == 0 {
		return 0
	}
	return float64(len([]rune(converted))) / float64(targetLen)
}
