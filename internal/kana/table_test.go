package kana

import "testing"

func TestCheckInput(t *testing.T) {
	shi, ok := Lookup("shi")
	if !ok {
		t.Fatalf("expected lookup of shi to succeed")
	}
	if shi.Kana != "し" {
		t.Fatalf("expected し, got %q", shi.Kana)
	}
	if !CheckInput("shi", shi) {
		t.Fatalf("expected alternate spelling to match")
	}
	if !CheckInput("si", shi) {
		t.Fatalf("expected canonical spelling to match")
	}
	if CheckInput("su", shi) {
		t.Fatalf("expected su to be rejected for し")
	}
	if CheckInput("", shi) {
		t.Fatalf("expected empty input to be rejected")
	}
	if !CheckInput(" SHI ", shi) {
		t.Fatalf("expected case/space-insensitive match")
	}
}

func TestLookupByEitherSpelling(t *testing.T) {
	cases := []struct {
		romaji string
		kana   string
	}{
		{"tu", "つ"},
		{"tsu", "つ"},
		{"ji", "じ"},
		{"zi", "じ"},
		{"sha", "しゃ"},
		{"sya", "しゃ"},
		{"nn", "ん"},
	}
	for _, tc := range cases {
		entry, ok := Lookup(tc.romaji)
		if !ok {
			t.Fatalf("lookup %q failed", tc.romaji)
		}
		if entry.Kana != tc.kana {
			t.Fatalf("lookup %q: expected %q, got %q", tc.romaji, tc.kana, entry.Kana)
		}
	}
	if _, ok := Lookup("qq"); ok {
		t.Fatalf("expected lookup of qq to fail")
	}
}

func TestSetUnion(t *testing.T) {
	all := Set(SetAll)
	sum := len(SeionTable) + len(DakutenTable) + len(HandakutenTable) + len(YouonTable)
	if len(all) != sum {
		t.Fatalf("expected %d entries in full set, got %d", sum, len(all))
	}
	// Requesting a subset twice must not duplicate entries.
	twice := Set(SetSeion, SetSeion)
	if len(twice) != len(SeionTable) {
		t.Fatalf("expected %d entries, got %d", len(SeionTable), len(twice))
	}
	seen := map[string]bool{}
	for _, k := range Set(SetDakuten, SetHandakuten) {
		if seen[k.Kana] {
			t.Fatalf("duplicate entry %q", k.Kana)
		}
		seen[k.Kana] = true
	}
}

func TestChartLabels(t *testing.T) {
	if len(RowLabels) != 11 {
		t.Fatalf("expected 11 row labels, got %d", len(RowLabels))
	}
	if len(ColLabels) != 5 {
		t.Fatalf("expected 5 column labels, got %d", len(ColLabels))
	}
	for _, k := range SeionTable {
		if k.Row < 0 || k.Row >= len(RowLabels) {
			t.Fatalf("row out of range for %q: %d", k.Kana, k.Row)
		}
		if k.Col < 0 || k.Col >= len(ColLabels) {
			t.Fatalf("col out of range for %q: %d", k.Kana, k.Col)
		}
	}
}
