package wordbank

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/store"
)

func TestBuiltinListsAreWellFormed(t *testing.T) {
	lists := BuiltinLists()
	if len(lists) == 0 {
		t.Fatalf("expected built-in lists")
	}
	seen := map[string]bool{}
	for _, l := range lists {
		if l.ID == "" || l.Name == "" {
			t.Fatalf("list missing id or name: %+v", l)
		}
		if seen[l.ID] {
			t.Fatalf("duplicate list id %q", l.ID)
		}
		seen[l.ID] = true
		if !l.BuiltIn {
			t.Fatalf("list %q not marked built-in", l.ID)
		}
		wordIDs := map[string]bool{}
		for _, w := range l.Words {
			if w.Japanese == "" || w.Reading == "" || w.Romaji == "" {
				t.Fatalf("word %q in %q incomplete: %+v", w.ID, l.ID, w)
			}
			if wordIDs[w.ID] {
				t.Fatalf("duplicate word id %q in %q", w.ID, l.ID)
			}
			wordIDs[w.ID] = true
		}
	}
}

func TestResolveBuiltin(t *testing.T) {
	src := NewSource(nil)
	list, err := src.Resolve(context.Background(), ListAccounting)
	if err != nil {
		t.Fatalf("failed to resolve: %v", err)
	}
	found := false
	for _, w := range list.Words {
		if w.Japanese == "資産" && w.Reading == "しさん" && w.Romaji == "shisan" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 資産 in the accounting list")
	}
}

func TestResolveUnknownList(t *testing.T) {
	src := NewSource(nil)
	if _, err := src.Resolve(context.Background(), "no-such-list"); err == nil {
		t.Fatalf("expected an error for an unknown list")
	}
}

func TestSelectDefaultsToCore(t *testing.T) {
	src := NewSource(nil)
	words, err := src.Select(context.Background(), model.Selection{})
	if err != nil {
		t.Fatalf("failed to select: %v", err)
	}
	if len(words) == 0 {
		t.Fatalf("expected words from the default list")
	}
}

func TestFilter(t *testing.T) {
	words := []model.Word{
		{ID: "a", Category: "finance", Difficulty: 2},
		{ID: "b", Category: "finance", Difficulty: 4},
		{ID: "c", Category: "daily", Difficulty: 1},
	}
	tests := []struct {
		name string
		sel  model.Selection
		want []string
	}{
		{"no filter", model.Selection{}, []string{"a", "b", "c"}},
		{"by category", model.Selection{Category: "finance"}, []string{"a", "b"}},
		{"min difficulty", model.Selection{MinDifficulty: 2}, []string{"a", "b"}},
		{"max difficulty", model.Selection{MaxDifficulty: 2}, []string{"a", "c"}},
		{"band", model.Selection{MinDifficulty: 2, MaxDifficulty: 3}, []string{"a"}},
		{"empty result", model.Selection{Category: "nature"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(words, tc.sel)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d words, got %d", len(tc.want), len(got))
			}
			for i, w := range got {
				if w.ID != tc.want[i] {
					t.Fatalf("expected %q at %d, got %q", tc.want[i], i, w.ID)
				}
			}
		})
	}
}

func TestSourceIncludesCustomLists(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "kanafall.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	ctx := context.Background()

	custom := model.WordList{
		ID:        "my-list",
		Name:      "Mine",
		CreatedAt: time.Now().UTC(),
		Words: []model.Word{
			{ID: "w1", Japanese: "資産", Reading: "しさん", Romaji: "shisan", Category: "finance", Difficulty: 2},
		},
	}
	if err := s.SaveWordList(ctx, custom); err != nil {
		t.Fatalf("failed to save custom list: %v", err)
	}

	src := NewSource(s)
	lists, err := src.Lists(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	found := false
	for _, l := range lists {
		if l.ID == "my-list" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the custom list to appear")
	}

	words, err := src.Select(ctx, model.Selection{ListID: "my-list"})
	if err != nil {
		t.Fatalf("failed to select: %v", err)
	}
	if len(words) != 1 || words[0].Reading != "しさん" {
		t.Fatalf("unexpected words: %+v", words)
	}
}
