package drill

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/kanafall/internal/kana"
)

func TestNextFromEmptyPool(t *testing.T) {
	p := NewWithSource(rand.NewSource(1))
	if _, ok := p.Next(nil, ""); ok {
		t.Fatalf("expected no prompt from an empty pool")
	}
}

func TestNextDrawsFromPool(t *testing.T) {
	p := NewWithSource(rand.NewSource(1))
	pool := kana.Set(kana.SetSeion)
	inPool := map[string]bool{}
	for _, k := range pool {
		inPool[k.Kana] = true
	}
	for i := 0; i < 100; i++ {
		pick, ok := p.Next(pool, "")
		if !ok {
			t.Fatalf("expected a prompt")
		}
		if !inPool[pick.Kana] {
			t.Fatalf("prompt %q not in pool", pick.Kana)
		}
	}
}

func TestNextWeightedPrefersMissedKana(t *testing.T) {
	p := NewWithSource(rand.NewSource(7))
	pool := kana.Set(kana.SetSeion)
	misses := map[string]int{"し": 50}
	hits := 0
	const draws = 500
	for i := 0; i < draws; i++ {
		pick, ok := p.NextWeighted(pool, misses, 2.0)
		if !ok {
			t.Fatalf("expected a prompt")
		}
		if pick.Kana == "し" {
			hits++
		}
	}
	// With weight 101 vs 1 for ~45 other entries, し dominates the draw.
	if hits < draws/3 {
		t.Fatalf("expected weighting to favor し, got %d/%d", hits, draws)
	}
}
