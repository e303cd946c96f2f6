// Package romaji converts Latin input buffers to kana and back.
//
// ToHiragana follows IME semantics: the longest valid kana prefix is
// resolved greedily and any trailing characters that cannot form a kana
// unit yet are kept verbatim at the end of the result, so callers can keep
// showing the user's literal keystrokes until a unit completes.
package romaji

import (
	"strings"

	"github.com/verte-zerg/kanafall/internal/kana"
)

// maxTokenLen is the longest romaji spelling in the table (youon, e.g. "kya").
const maxTokenLen = 3

// tokenTable maps every accepted romaji spelling to its hiragana form.
// Built once from the kana table; canonical spellings take priority so that
// collisions (を's alternate "o" vs お's canonical "o") resolve to the base
// chart entry. The moraic nasal is excluded and handled positionally.
var tokenTable = buildTokenTable()

func buildTokenTable() map[string]string {
	table := map[string]string{}
	entries := kana.Set(kana.SetAll)
	for _, k := range entries {
		if k.Kana == "ん" {
			continue
		}
		if _, ok := table[k.Romaji]; !ok {
			table[k.Romaji] = k.Kana
		}
	}
	for _, k := range entries {
		if k.Kana == "ん" || k.AltRomaji == "" {
			continue
		}
		if _, ok := table[k.AltRomaji]; !ok {
			table[k.AltRomaji] = k.Kana
		}
	}
	table["-"] = "ー"
	return table
}

// ToHiragana converts a Latin buffer to the longest derivable hiragana
// prefix. Unresolved trailing characters are appended as-is. Characters
// outside a-z (including kana) pass through untouched, which makes the
// function a no-op on already-converted input. Pure and deterministic.
func ToHiragana(input string) string {
	runes := []rune(strings.ToLower(input))
	var b strings.Builder
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r != '-' && (r < 'a' || r > 'z') {
			b.WriteRune(r)
			i++
			continue
		}

		// Moraic nasal. A lone "n" is ambiguous: before a vowel or "y" it
		// starts the next syllable, before any other consonant it settles
		// to ん, and at end of buffer it stays pending.
		if r == 'n' {
			if i+1 >= len(runes) {
				b.WriteString(string(runes[i:]))
				break
			}
			next := runes[i+1]
			if next == 'n' {
				// "nn" settles to ん. When the second n itself leads into a
				// syllable (onna), it is left to start that syllable;
				// otherwise both characters are consumed.
				if i+2 < len(runes) && (isVowel(runes[i+2]) || runes[i+2] == 'y') {
					b.WriteString("ん")
					i++
				} else {
					b.WriteString("ん")
					i += 2
				}
				continue
			}
			if !isVowel(next) && next != 'y' {
				b.WriteString("ん")
				i++
				continue
			}
			// Falls through to table lookup (na, ni, nya, ...).
		}

		// Hepburn geminate ち: "tch" + vowel.
		if r == 't' && i+1 < len(runes) && runes[i+1] == 'c' {
			if tokenAt(runes, i+1) != "" {
				b.WriteString("っ")
				i++
				continue
			}
			b.WriteString(string(runes[i:]))
			break
		}

		// Sokuon: a doubled consonant resolves to っ only once the
		// following sequence forms a kana unit; otherwise it stays pending.
		if isConsonant(r) && r != 'n' && i+1 < len(runes) && runes[i+1] == r {
			if tokenAt(runes, i+1) != "" {
				b.WriteString("っ")
				i++
				continue
			}
			b.WriteString(string(runes[i:]))
			break
		}

		if tok := tokenAt(runes, i); tok != "" {
			b.WriteString(tokenTable[tok])
			i += len(tok)
			continue
		}

		// Not resolvable at this position yet: keep the rest pending.
		b.WriteString(string(runes[i:]))
		break
	}
	return b.String()
}

// tokenAt returns the longest romaji token starting at index i, or "".
func tokenAt(runes []rune, i int) string {
	for length := maxTokenLen; length >= 1; length-- {
		if i+length > len(runes) {
			continue
		}
		candidate := string(runes[i : i+length])
		if _, ok := tokenTable[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return r >= 'a' && r <= 'z' && !isVowel(r)
}

// inverseTable maps hiragana (one or two runes) to the canonical romaji
// spelling. The canonical direction is fixed per kana, so this is lossless.
var inverseTable = buildInverseTable()

func buildInverseTable() map[string]string {
	table := map[string]string{}
	for _, k := range kana.Set(kana.SetAll) {
		if _, ok := table[k.Kana]; !ok {
			table[k.Kana] = k.Romaji
		}
	}
	return table
}

// ToRomaji converts a pure hiragana string to its canonical romaji
// spelling. っ doubles the first consonant of the following syllable and
// unknown runes pass through unchanged.
func ToRomaji(hiragana string) string {
	runes := []rune(hiragana)
	var b strings.Builder
	i := 0
	for i < len(runes) {
		if runes[i] == 'っ' {
			rest := syllableAfter(runes, i+1)
			if rest != "" && isConsonant(rune(rest[0])) {
				b.WriteByte(rest[0])
				i++
				continue
			}
			b.WriteString("tu")
			i++
			continue
		}
		if i+1 < len(runes) {
			if r, ok := inverseTable[string(runes[i:i+2])]; ok {
				b.WriteString(r)
				i += 2
				continue
			}
		}
		if r, ok := inverseTable[string(runes[i])]; ok {
			b.WriteString(r)
			i++
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// syllableAfter resolves the romaji of the syllable starting at i, or "".
func syllableAfter(runes []rune, i int) string {
	if i >= len(runes) {
		return ""
	}
	if i+1 < len(runes) {
		if r, ok := inverseTable[string(runes[i:i+2])]; ok {
			return r
		}
	}
	if r, ok := inverseTable[string(runes[i])]; ok {
		return r
	}
	return ""
}

// KatakanaToHiragana folds katakana codepoints to their hiragana
// counterparts. Everything else, including the long-vowel mark, is kept.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'ァ' && r <= 'ヶ' {
			runes[i] = r - ('ァ' - 'ぁ')
		}
	}
	return string(runes)
}
