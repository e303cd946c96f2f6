package match

import (
	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/romaji"
)

// Buffer holds the per-round live input state. RawInput is the literal
// keystroke sequence; CurrentInput is the transliterated form in romaji
// mode and equal to RawInput otherwise. While Composing is set the buffer
// is inside an IME bracket and must be excluded from incremental matching.
type Buffer struct {
	RawInput     string
	CurrentInput string
	Mode         model.InputMode
	Composing    bool
}

// NewBuffer returns an empty buffer for the given mode.
func NewBuffer(mode model.InputMode) Buffer {
	return Buffer{Mode: mode}
}

// Append adds typed text and re-derives CurrentInput from the full
// accumulated raw buffer.
func (b *Buffer) Append(s string) {
	b.RawInput += s
	b.refresh()
}

// Backspace removes the last raw keystroke.
func (b *Buffer) Backspace() {
	runes := []rune(b.RawInput)
	if len(runes) == 0 {
		return
	}
	b.RawInput = string(runes[:len(runes)-1])
	b.refresh()
}

// Reset clears the buffer. Called on word completion, abandonment, and
// mode changes.
func (b *Buffer) Reset() {
	b.RawInput = ""
	b.CurrentInput = ""
	b.Composing = false
}

// BeginComposition marks the start of an IME composition bracket.
func (b *Buffer) BeginComposition() {
	b.Composing = true
}

// EndComposition settles a composition with its final text.
func (b *Buffer) EndComposition(settled string) {
	b.Composing = false
	b.RawInput = settled
	b.refresh()
}

// Settled reports whether the buffer may participate in match checks.
func (b *Buffer) Settled() bool {
	return !b.Composing
}

func (b *Buffer) refresh() {
	if b.Mode == model.InputRomaji {
		b.CurrentInput = romaji.ToHiragana(b.RawInput)
		return
	}
	b.CurrentInput = b.RawInput
}
