// Package kana holds the static kana table and lookup helpers.
package kana

import "strings"

// Type classifies a kana entry. Youon entries reuse these tags since they
// are compound forms of the base classes.
type Type string

// Kana classes.
const (
	Seion      Type = "seion"
	Dakuten    Type = "dakuten"
	Handakuten Type = "handakuten"
)

// Kana is one entry of the syllabic chart.
type Kana struct {
	Kana      string
	Kata      string
	Romaji    string
	AltRomaji string
	Row       int
	Col       int
	Type      Type
}

// SeionTable lists the unvoiced base kana in gojūon order.
var SeionTable = []Kana{
	{Kana: "あ", Kata: "ア", Romaji: "a", Row: 0, Col: 0, Type: Seion},
	{Kana: "い", Kata: "イ", Romaji: "i", Row: 0, Col: 1, Type: Seion},
	{Kana: "う", Kata: "ウ", Romaji: "u", Row: 0, Col: 2, Type: Seion},
	{Kana: "え", Kata: "エ", Romaji: "e", Row: 0, Col: 3, Type: Seion},
	{Kana: "お", Kata: "オ", Romaji: "o", Row: 0, Col: 4, Type: Seion},
	{Kana: "か", Kata: "カ", Romaji: "ka", Row: 1, Col: 0, Type: Seion},
	{Kana: "き", Kata: "キ", Romaji: "ki", Row: 1, Col: 1, Type: Seion},
	{Kana: "く", Kata: "ク", Romaji: "ku", Row: 1, Col: 2, Type: Seion},
	{Kana: "け", Kata: "ケ", Romaji: "ke", Row: 1, Col: 3, Type: Seion},
	{Kana: "こ", Kata: "コ", Romaji: "ko", Row: 1, Col: 4, Type: Seion},
	{Kana: "さ", Kata: "サ", Romaji: "sa", Row: 2, Col: 0, Type: Seion},
	{Kana: "し", Kata: "シ", Romaji: "si", AltRomaji: "shi", Row: 2, Col: 1, Type: Seion},
	{Kana: "す", Kata: "ス", Romaji: "su", Row: 2, Col: 2, Type: Seion},
	{Kana: "せ", Kata: "セ", Romaji: "se", Row: 2, Col: 3, Type: Seion},
	{Kana: "そ", Kata: "ソ", Romaji: "so", Row: 2, Col: 4, Type: Seion},
	{Kana: "た", Kata: "タ", Romaji: "ta", Row: 3, Col: 0, Type: Seion},
	{Kana: "ち", Kata: "チ", Romaji: "ti", AltRomaji: "chi", Row: 3, Col: 1, Type: Seion},
	{Kana: "つ", Kata: "ツ", Romaji: "tu", AltRomaji: "tsu", Row: 3, Col: 2, Type: Seion},
	{Kana: "て", Kata: "テ", Romaji: "te", Row: 3, Col: 3, Type: Seion},
	{Kana: "と", Kata: "ト", Romaji: "to", Row: 3, Col: 4, Type: Seion},
	{Kana: "な", Kata: "ナ", Romaji: "na", Row: 4, Col: 0, Type: Seion},
	{Kana: "に", Kata: "ニ", Romaji: "ni", Row: 4, Col: 1, Type: Seion},
	{Kana: "ぬ", Kata: "ヌ", Romaji: "nu", Row: 4, Col: 2, Type: Seion},
	{Kana: "ね", Kata: "ネ", Romaji: "ne", Row: 4, Col: 3, Type: Seion},
	{Kana: "の", Kata: "ノ", Romaji: "no", Row: 4, Col: 4, Type: Seion},
	{Kana: "は", Kata: "ハ", Romaji: "ha", Row: 5, Col: 0, Type: Seion},
	{Kana: "ひ", Kata: "ヒ", Romaji: "hi", Row: 5, Col: 1, Type: Seion},
	{Kana: "ふ", Kata: "フ", Romaji: "fu", AltRomaji: "hu", Row: 5, Col: 2, Type: Seion},
	{Kana: "へ", Kata: "ヘ", Romaji: "he", Row: 5, Col: 3, Type: Seion},
	{Kana: "ほ", Kata: "ホ", Romaji: "ho", Row: 5, Col: 4, Type: Seion},
	{Kana: "ま", Kata: "マ", Romaji: "ma", Row: 6, Col: 0, Type: Seion},
	{Kana: "み", Kata: "ミ", Romaji: "mi", Row: 6, Col: 1, Type: Seion},
	{Kana: "む", Kata: "ム", Romaji: "mu", Row: 6, Col: 2, Type: Seion},
	{Kana: "め", Kata: "メ", Romaji: "me", Row: 6, Col: 3, Type: Seion},
	{Kana: "も", Kata: "モ", Romaji: "mo", Row: 6, Col: 4, Type: Seion},
	{Kana: "や", Kata: "ヤ", Romaji: "ya", Row: 7, Col: 0, Type: Seion},
	{Kana: "ゆ", Kata: "ユ", Romaji: "yu", Row: 7, Col: 2, Type: Seion},
	{Kana: "よ", Kata: "ヨ", Romaji: "yo", Row: 7, Col: 4, Type: Seion},
	{Kana: "ら", Kata: "ラ", Romaji: "ra", Row: 8, Col: 0, Type: Seion},
	{Kana: "り", Kata: "リ", Romaji: "ri", Row: 8, Col: 1, Type: Seion},
	{Kana: "る", Kata: "ル", Romaji: "ru", Row: 8, Col: 2, Type: Seion},
	{Kana: "れ", Kata: "レ", Romaji: "re", Row: 8, Col: 3, Type: Seion},
	{Kana: "ろ", Kata: "ロ", Romaji: "ro", Row: 8, Col: 4, Type: Seion},
	{Kana: "わ", Kata: "ワ", Romaji: "wa", Row: 9, Col: 0, Type: Seion},
	{Kana: "を", Kata: "ヲ", Romaji: "wo", AltRomaji: "o", Row: 9, Col: 4, Type: Seion},
	{Kana: "ん", Kata: "ン", Romaji: "nn", AltRomaji: "n", Row: 10, Col: 2, Type: Seion},
}

// DakutenTable lists the voiced kana.
var DakutenTable = []Kana{
	{Kana: "が", Kata: "ガ", Romaji: "ga", Row: 1, Col: 0, Type: Dakuten},
	{Kana: "ぎ", Kata: "ギ", Romaji: "gi", Row: 1, Col: 1, Type: Dakuten},
	{Kana: "ぐ", Kata: "グ", Romaji: "gu", Row: 1, Col: 2, Type: Dakuten},
	{Kana: "げ", Kata: "ゲ", Romaji: "ge", Row: 1, Col: 3, Type: Dakuten},
	{Kana: "ご", Kata: "ゴ", Romaji: "go", Row: 1, Col: 4, Type: Dakuten},
	{Kana: "ざ", Kata: "ザ", Romaji: "za", Row: 2, Col: 0, Type: Dakuten},
	{Kana: "じ", Kata: "ジ", Romaji: "zi", AltRomaji: "ji", Row: 2, Col: 1, Type: Dakuten},
	{Kana: "ず", Kata: "ズ", Romaji: "zu", Row: 2, Col: 2, Type: Dakuten},
	{Kana: "ぜ", Kata: "ゼ", Romaji: "ze", Row: 2, Col: 3, Type: Dakuten},
	{Kana: "ぞ", Kata: "ゾ", Romaji: "zo", Row: 2, Col: 4, Type: Dakuten},
	{Kana: "だ", Kata: "ダ", Romaji: "da", Row: 3, Col: 0, Type: Dakuten},
	{Kana: "ぢ", Kata: "ヂ", Romaji: "di", Row: 3, Col: 1, Type: Dakuten},
	{Kana: "づ", Kata: "ヅ", Romaji: "du", Row: 3, Col: 2, Type: Dakuten},
	{Kana: "で", Kata: "デ", Romaji: "de", Row: 3, Col: 3, Type: Dakuten},
	{Kana: "ど", Kata: "ド", Romaji: "do", Row: 3, Col: 4, Type: Dakuten},
	{Kana: "ば", Kata: "バ", Romaji: "ba", Row: 5, Col: 0, Type: Dakuten},
	{Kana: "び", Kata: "ビ", Romaji: "bi", Row: 5, Col: 1, Type: Dakuten},
	{Kana: "ぶ", Kata: "ブ", Romaji: "bu", Row: 5, Col: 2, Type: Dakuten},
	{Kana: "べ", Kata: "ベ", Romaji: "be", Row: 5, Col: 3, Type: Dakuten},
	{Kana: "ぼ", Kata: "ボ", Romaji: "bo", Row: 5, Col: 4, Type: Dakuten},
}

// HandakutenTable lists the semi-voiced kana.
var HandakutenTable = []Kana{
	{Kana: "ぱ", Kata: "パ", Romaji: "pa", Row: 5, Col: 0, Type: Handakuten},
	{Kana: "ぴ", Kata: "ピ", Romaji: "pi", Row: 5, Col: 1, Type: Handakuten},
	{Kana: "ぷ", Kata: "プ", Romaji: "pu", Row: 5, Col: 2, Type: Handakuten},
	{Kana: "ぺ", Kata: "ペ", Romaji: "pe", Row: 5, Col: 3, Type: Handakuten},
	{Kana: "ぽ", Kata: "ポ", Romaji: "po", Row: 5, Col: 4, Type: Handakuten},
}

// YouonTable lists the palatalized compound kana.
var YouonTable = []Kana{
	{Kana: "きゃ", Kata: "キャ", Romaji: "kya", Row: 1, Col: 0, Type: Seion},
	{Kana: "きゅ", Kata: "キュ", Romaji: "kyu", Row: 1, Col: 1, Type: Seion},
	{Kana: "きょ", Kata: "キョ", Romaji: "kyo", Row: 1, Col: 2, Type: Seion},
	{Kana: "しゃ", Kata: "シャ", Romaji: "sya", AltRomaji: "sha", Row: 2, Col: 0, Type: Seion},
	{Kana: "しゅ", Kata: "シュ", Romaji: "syu", AltRomaji: "shu", Row: 2, Col: 1, Type: Seion},
	{Kana: "しょ", Kata: "ショ", Romaji: "syo", AltRomaji: "sho", Row: 2, Col: 2, Type: Seion},
	{Kana: "ちゃ", Kata: "チャ", Romaji: "tya", AltRomaji: "cha", Row: 3, Col: 0, Type: Seion},
	{Kana: "ちゅ", Kata: "チュ", Romaji: "tyu", AltRomaji: "chu", Row: 3, Col: 1, Type: Seion},
	{Kana: "ちょ", Kata: "チョ", Romaji: "tyo", AltRomaji: "cho", Row: 3, Col: 2, Type: Seion},
	{Kana: "にゃ", Kata: "ニャ", Romaji: "nya", Row: 4, Col: 0, Type: Seion},
	{Kana: "にゅ", Kata: "ニュ", Romaji: "nyu", Row: 4, Col: 1, Type: Seion},
	{Kana: "にょ", Kata: "ニョ", Romaji: "nyo", Row: 4, Col: 2, Type: Seion},
	{Kana: "ひゃ", Kata: "ヒャ", Romaji: "hya", Row: 5, Col: 0, Type: Seion},
	{Kana: "ひゅ", Kata: "ヒュ", Romaji: "hyu", Row: 5, Col: 1, Type: Seion},
	{Kana: "ひょ", Kata: "ヒョ", Romaji: "hyo", Row: 5, Col: 2, Type: Seion},
	{Kana: "みゃ", Kata: "ミャ", Romaji: "mya", Row: 6, Col: 0, Type: Seion},
	{Kana: "みゅ", Kata: "ミュ", Romaji: "myu", Row: 6, Col: 1, Type: Seion},
	{Kana: "みょ", Kata: "ミョ", Romaji: "myo", Row: 6, Col: 2, Type: Seion},
	{Kana: "りゃ", Kata: "リャ", Romaji: "rya", Row: 8, Col: 0, Type: Seion},
	{Kana: "りゅ", Kata: "リュ", Romaji: "ryu", Row: 8, Col: 1, Type: Seion},
	{Kana: "りょ", Kata: "リョ", Romaji: "ryo", Row: 8, Col: 2, Type: Seion},
	{Kana: "ぎゃ", Kata: "ギャ", Romaji: "gya", Row: 1, Col: 0, Type: Dakuten},
	{Kana: "ぎゅ", Kata: "ギュ", Romaji: "gyu", Row: 1, Col: 1, Type: Dakuten},
	{Kana: "ぎょ", Kata: "ギョ", Romaji: "gyo", Row: 1, Col: 2, Type: Dakuten},
	{Kana: "じゃ", Kata: "ジャ", Romaji: "zya", AltRomaji: "ja", Row: 2, Col: 0, Type: Dakuten},
	{Kana: "じゅ", Kata: "ジュ", Romaji: "zyu", AltRomaji: "ju", Row: 2, Col: 1, Type: Dakuten},
	{Kana: "じょ", Kata: "ジョ", Romaji: "zyo", AltRomaji: "jo", Row: 2, Col: 2, Type: Dakuten},
	{Kana: "びゃ", Kata: "ビャ", Romaji: "bya", Row: 5, Col: 0, Type: Dakuten},
	{Kana: "びゅ", Kata: "ビュ", Romaji: "byu", Row: 5, Col: 1, Type: Dakuten},
	{Kana: "びょ", Kata: "ビョ", Romaji: "byo", Row: 5, Col: 2, Type: Dakuten},
	{Kana: "ぴゃ", Kata: "ピャ", Romaji: "pya", Row: 5, Col: 0, Type: Handakuten},
	{Kana: "ぴゅ", Kata: "ピュ", Romaji: "pyu", Row: 5, Col: 1, Type: Handakuten},
	{Kana: "ぴょ", Kata: "ピョ", Romaji: "pyo", Row: 5, Col: 2, Type: Handakuten},
}

// RowLabels are the gojūon row headers in chart order.
var RowLabels = []string{"あ", "か", "さ", "た", "な", "は", "ま", "や", "ら", "わ", "ん"}

// ColLabels are the vowel column headers in chart order.
var ColLabels = []string{"ア列", "イ列", "ウ列", "エ列", "オ列"}

// SetName selects one of the kana subsets.
type SetName string

// Selectable subsets.
const (
	SetSeion      SetName = "seion"
	SetDakuten    SetName = "dakuten"
	SetHandakuten SetName = "handakuten"
	SetYouon      SetName = "youon"
	SetAll        SetName = "all"
)

// Set unions the requested subsets into one pool without duplicates.
func Set(names ...SetName) []Kana {
	want := map[SetName]bool{}
	for _, n := range names {
		want[n] = true
	}
	var out []Kana
	if want[SetSeion] || want[SetAll] {
		out = append(out, SeionTable...)
	}
	if want[SetDakuten] || want[SetAll] {
		out = append(out, DakutenTable...)
	}
	if want[SetHandakuten] || want[SetAll] {
		out = append(out, HandakutenTable...)
	}
	if want[SetYouon] || want[SetAll] {
		out = append(out, YouonTable...)
	}
	return out
}

// ParseSetName maps a string to a SetName, defaulting to all.
func ParseSetName(s string) SetName {
	switch SetName(strings.ToLower(strings.TrimSpace(s))) {
	case SetSeion:
		return SetSeion
	case SetDakuten:
		return SetDakuten
	case SetHandakuten:
		return SetHandakuten
	case SetYouon:
		return SetYouon
	default:
		return SetAll
	}
}

// CheckInput reports whether a romaji answer matches the entry by either
// spelling. Matching is exact after lower-casing and trimming.
func CheckInput(input string, k Kana) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return false
	}
	return normalized == k.Romaji || (k.AltRomaji != "" && normalized == k.AltRomaji)
}

// Lookup finds the entry whose canonical or alternate spelling equals the
// given romaji token. The second return is false when no entry matches.
func Lookup(romaji string) (Kana, bool) {
	normalized := strings.ToLower(strings.TrimSpace(romaji))
	for _, k := range Set(SetAll) {
		if normalized == k.Romaji || (k.AltRomaji != "" && normalized == k.AltRomaji) {
			return k, true
		}
	}
	return Kana{}, false
}
