package wordbank

import (
	"context"
	"fmt"

	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/store"
)

// Source resolves word lists from the built-in set and the user's store.
// Built-in ids shadow custom lists with the same id.
type Source struct {
	store *store.Store
}

// NewSource returns a Source. The store may be nil, in which case only
// built-in lists are available.
func NewSource(s *store.Store) *Source {
	return &Source{store: s}
}

// Lists returns all available lists, built-in first, without word payloads
// for custom lists.
func (s *Source) Lists(ctx context.Context) ([]model.WordList, error) {
	lists := BuiltinLists()
	if s.store == nil {
		return lists, nil
	}
	custom, err := s.store.ListWordLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom word lists: %w", err)
	}
	builtin := map[string]bool{}
	for _, l := range lists {
		builtin[l.ID] = true
	}
	for _, l := range custom {
		if !builtin[l.ID] {
			lists = append(lists, l)
		}
	}
	return lists, nil
}

// Resolve returns the full word list for an id.
func (s *Source) Resolve(ctx context.Context, id string) (model.WordList, error) {
	for _, l := range BuiltinLists() {
		if l.ID == id {
			return l, nil
		}
	}
	if s.store == nil {
		return model.WordList{}, fmt.Errorf("unknown word list %q", id)
	}
	custom, err := s.store.ListWordLists(ctx)
	if err != nil {
		return model.WordList{}, fmt.Errorf("failed to list custom word lists: %w", err)
	}
	for _, l := range custom {
		if l.ID == id {
			words, err := s.store.LoadWords(ctx, id)
			if err != nil {
				return model.WordList{}, fmt.Errorf("failed to load words for %q: %w", id, err)
			}
			l.Words = words
			return l, nil
		}
	}
	return model.WordList{}, fmt.Errorf("unknown word list %q", id)
}

// Select resolves a list and filters its words. An empty result is not
// an error.
func (s *Source) Select(ctx context.Context, sel model.Selection) ([]model.Word, error) {
	id := sel.ListID
	if id == "" {
		id = ListN5Core
	}
	list, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	return Filter(list.Words, sel), nil
}

// Filter applies a selection's category and difficulty bounds to words.
// Zero-valued fields match everything.
func Filter(words []model.Word, sel model.Selection) []model.Word {
	var out []model.Word
	for _, w := range words {
		if sel.Category != "" && w.Category != sel.Category {
			continue
		}
		if sel.MinDifficulty > 0 && w.Difficulty < sel.MinDifficulty {
			continue
		}
		if sel.MaxDifficulty > 0 && w.Difficulty > sel.MaxDifficulty {
			continue
		}
		out = append(out, w)
	}
	return out
}
