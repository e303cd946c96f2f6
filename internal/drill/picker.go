// Package drill builds kana prompt sequences for the keyboard drill mode.
package drill

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/kanafall/internal/kana"
)

// Picker produces randomized kana prompts.
type Picker struct {
	rnd *rand.Rand
}

// New returns a Picker seeded with the current time.
func New() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSource allows deterministic tests.
func NewWithSource(src rand.Source) *Picker {
	return &Picker{rnd: rand.New(src)}
}

// Next selects a uniformly random prompt from the pool, avoiding an
// immediate repeat of the previous prompt when the pool allows it.
func (p *Picker) Next(pool []kana.Kana, previous string) (kana.Kana, bool) {
	if len(pool) == 0 {
		return kana.Kana{}, false
	}
	pick := pool[p.rnd.Intn(len(pool))]
	if pick.Kana == previous && len(pool) > 1 {
		pick = pool[p.rnd.Intn(len(pool))]
	}
	return pick, true
}

// NextWeighted selects a prompt with a bias toward kana the player has
// missed this session. Each miss adds factor to the entry's weight.
func (p *Picker) NextWeighted(pool []kana.Kana, misses map[string]int, factor float64) (kana.Kana, bool) {
	if len(pool) == 0 {
		return kana.Kana{}, false
	}
	if factor <= 0 || len(misses) == 0 {
		return p.Next(pool, "")
	}
	weights := make([]float64, len(pool))
	total := 0.0
	for i, k := range pool {
		w := 1.0 + float64(misses[k.Kana])*factor
		weights[i] = w
		total += w
	}
	r := p.rnd.Float64() * total
	acc := 0.0
	idx := 0
	for i, w := range weights {
		acc += w
		if r <= acc {
			idx = i
			break
		}
	}
	return pool[idx], true
}
