package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/digkill/tarot-app/internal/core/domain"
)

// testDeck builds a deck of n distinct cards with per-card keyword and
// narrative texts.
func testDeck(n int) []domain.Card {
	deck := make([]domain.Card, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("rws-card-%02d", i)
		deck = append(deck, domain.Card{
			ID:     id,
			DeckID: "rws",
			Name:   fmt.Sprintf("Card %d", i),
			Arcana: domain.ArcanaMajor,
			Image:  "cards/" + id + ".webp",
			Upright: domain.CardProfile{
				Keywords: []string{fmt.Sprintf("up-%d-a", i), fmt.Sprintf("up-%d-b", i)},
				General:  fmt.Sprintf("upright meaning %d", i),
			},
			Reversed: domain.CardProfile{
				Keywords: []string{fmt.Sprintf("rev-%d-a", i), fmt.Sprintf("rev-%d-b", i)},
				General:  fmt.Sprintf("reversed meaning %d", i),
			},
		})
	}
	return deck
}

// testSpread builds an n-position spread with predictable keys.
func testSpread(n int) domain.Spread {
	positions := make([]domain.SpreadPosition, 0, n)
	for i := 0; i < n; i++ {
		positions = append(positions, domain.SpreadPosition{
			Index:          i,
			TitleKey:       fmt.Sprintf("spread.test.position%d.title", i),
			DescriptionKey: fmt.Sprintf("spread.test.position%d.description", i),
			X:              float64(i) / float64(n),
			Y:              0.5,
		})
	}
	return domain.Spread{
		ID:             "test-spread",
		NameKey:        "spread.test.name",
		DescriptionKey: "spread.test.description",
		Positions:      positions,
		MinCards:       n,
		MaxCards:       n,
		Category:       domain.SpreadCategoryBasic,
	}
}

// seededRand returns a reproducible random source.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
