package services

import (
	"math/rand/v2"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

// DrawEngine deals cards for a spread. It cannot fail given a
// non-empty deck: an underfilled pool degrades to a shorter result.
type DrawEngine struct {
	rng driven.RandomSource
}

// NewDrawEngine creates a draw engine. A nil source falls back to a
// PCG generator seeded from the global source, which is what
// production uses; tests inject a seeded source for reproducibility.
func NewDrawEngine(rng driven.RandomSource) *DrawEngine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &DrawEngine{rng: rng}
}

// Draw selects one card per spread position uniformly at random
// without replacement, then decides each card's orientation
// independently: reversed with probability reversedChance.
//
// The caller's deck snapshot is never mutated; selection happens on a
// private copy using swap-to-end removal, which keeps every remaining
// card equally likely regardless of pool position. If the pool runs
// out before all positions are filled the result is simply shorter
// than the position list - callers must handle that.
func (e *DrawEngine) Draw(spread domain.Spread, deck []domain.Card, reversedChance float64) []domain.DrawnEntry {
	pool := make([]domain.Card, len(deck))
	copy(pool, deck)

	entries := make([]domain.DrawnEntry, 0, len(spread.Positions))
	for _, pos := range spread.Positions {
		if len(pool) == 0 {
			break
		}
		i := e.rng.IntN(len(pool))
		card := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		entries = append(entries, domain.DrawnEntry{
			Position:   pos,
			Card:       card,
			IsReversed: e.rng.Float64() < reversedChance,
		})
	}
	return entries
}
