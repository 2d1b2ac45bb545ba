package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/core/domain"
)

func TestDrawEngine_CountAndDistinctness(t *testing.T) {
	engine := NewDrawEngine(seededRand(1))
	deck := testDeck(78)
	spread := testSpread(10)

	entries := engine.Draw(spread, deck, 0.3)
	require.Len(t, entries, 10)

	seen := make(map[string]bool)
	for i, entry := range entries {
		assert.Equal(t, i, entry.Position.Index)
		assert.False(t, seen[entry.Card.ID], "card %s drawn twice", entry.Card.ID)
		seen[entry.Card.ID] = true
	}
}

func TestDrawEngine_DoesNotMutateDeck(t *testing.T) {
	engine := NewDrawEngine(seededRand(2))
	deck := testDeck(10)
	original := make([]domain.Card, len(deck))
	copy(original, deck)

	engine.Draw(testSpread(5), deck, 0.5)

	assert.Equal(t, original, deck)
}

func TestDrawEngine_OrientationBounds(t *testing.T) {
	deck := testDeck(78)
	spread := testSpread(10)

	entries := NewDrawEngine(seededRand(3)).Draw(spread, deck, 0)
	for _, entry := range entries {
		assert.False(t, entry.IsReversed, "chance 0 must never reverse")
	}

	entries = NewDrawEngine(seededRand(4)).Draw(spread, deck, 1)
	for _, entry := range entries {
		assert.True(t, entry.IsReversed, "chance 1 must always reverse")
	}
}

func TestDrawEngine_Reproducible(t *testing.T) {
	deck := testDeck(78)
	spread := testSpread(5)

	first := NewDrawEngine(seededRand(42)).Draw(spread, deck, 0.3)
	second := NewDrawEngine(seededRand(42)).Draw(spread, deck, 0.3)

	assert.Equal(t, first, second)
}

func TestDrawEngine_ShortDeck(t *testing.T) {
	engine := NewDrawEngine(seededRand(5))
	deck := testDeck(3)
	spread := testSpread(5)

	entries := engine.Draw(spread, deck, 0.3)
	assert.Len(t, entries, 3)
}

func TestDrawEngine_UniformCoverage(t *testing.T) {
	// Every card position in a small deck should be reachable as the
	// first card drawn; a biased removal scheme would skew the tail.
	deck := testDeck(5)
	spread := testSpread(1)

	counts := make(map[string]int)
	engine := NewDrawEngine(seededRand(6))
	const iterations = 10000
	for i := 0; i < iterations; i++ {
		entries := engine.Draw(spread, deck, 0)
		counts[entries[0].Card.ID]++
	}

	require.Len(t, counts, 5)
	expected := iterations / 5
	for id, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)/4, "card %s drawn %d times", id, n)
	}
}

func TestDrawEngine_ReversedChanceConverges(t *testing.T) {
	deck := testDeck(78)
	spread := testSpread(10)
	engine := NewDrawEngine(seededRand(7))

	reversed := 0
	total := 0
	for i := 0; i < 1000; i++ {
		for _, entry := range engine.Draw(spread, deck, 0.3) {
			total++
			if entry.IsReversed {
				reversed++
			}
		}
	}

	ratio := float64(reversed) / float64(total)
	assert.InDelta(t, 0.3, ratio, 0.03)
}
