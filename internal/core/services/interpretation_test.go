package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

func drawnEntries(spread domain.Spread, deck []domain.Card, reversed ...bool) []domain.DrawnEntry {
	entries := make([]domain.DrawnEntry, 0, len(spread.Positions))
	for i, pos := range spread.Positions {
		entries = append(entries, domain.DrawnEntry{
			Position:   pos,
			Card:       deck[i],
			IsReversed: len(reversed) > i && reversed[i],
		})
	}
	return entries
}

func TestAssembler_PositionNarratives(t *testing.T) {
	deck := testDeck(3)
	spread := testSpread(3)
	entries := drawnEntries(spread, deck, false, true, false)

	result := NewAssembler().Assemble(spread, entries, nil)
	require.Len(t, result.Positions, 3)

	// Nil translator leaves keys untouched.
	first := result.Positions[0]
	assert.Equal(t, "spread.test.position0.title", first.Title)
	assert.Equal(t,
		"spread.test.position0.title: spread.test.position0.description — upright meaning 0",
		first.Narrative)

	second := result.Positions[1]
	assert.True(t, second.IsReversed)
	assert.Contains(t, second.Narrative, "reversed meaning 1")
}

func TestAssembler_Summary(t *testing.T) {
	deck := testDeck(5)
	spread := testSpread(5)
	entries := drawnEntries(spread, deck)

	translate := driven.TranslatorFunc(func(key string, vars map[string]any) string {
		switch key {
		case "interpretation.summaryIntro":
			return fmt.Sprintf("A %v-card reading with %v.", vars["count"], vars["spread"])
		case "interpretation.summaryClosing":
			return "Trust your own judgment."
		case "spread.test.name":
			return "Test Spread"
		default:
			return key
		}
	})

	result := NewAssembler().Assemble(spread, entries, translate)
	assert.True(t, strings.HasPrefix(result.Summary, "A 5-card reading with Test Spread."))
	assert.True(t, strings.HasSuffix(result.Summary, "Trust your own judgment."))

	// Only the first three narratives are cited.
	assert.Contains(t, result.Summary, "upright meaning 2")
	assert.NotContains(t, result.Summary, "upright meaning 3")
}

func TestAssembler_KeywordsDedupedAndCapped(t *testing.T) {
	deck := testDeck(10)
	// Duplicate keyword across the first two cards.
	deck[1].Upright.Keywords = []string{"up-0-a", "unique-b"}
	spread := testSpread(10)
	entries := drawnEntries(spread, deck)

	result := NewAssembler().Assemble(spread, entries, nil)
	require.Len(t, result.Keywords, 12)

	assert.Equal(t, []string{"up-0-a", "up-0-b", "unique-b"}, result.Keywords[:3])
	seen := make(map[string]bool)
	for _, kw := range result.Keywords {
		assert.False(t, seen[kw], "duplicate keyword %s", kw)
		seen[kw] = true
	}
}

func TestAssembler_Deterministic(t *testing.T) {
	deck := testDeck(4)
	spread := testSpread(4)
	entries := drawnEntries(spread, deck, true, false, true, false)

	first := NewAssembler().Assemble(spread, entries, nil)
	second := NewAssembler().Assemble(spread, entries, nil)
	assert.Equal(t, first, second)
}

func TestAssembler_EmptyDraw(t *testing.T) {
	spread := testSpread(0)
	result := NewAssembler().Assemble(spread, nil, nil)
	assert.Empty(t, result.Positions)
	assert.Empty(t, result.Keywords)
	assert.NotEmpty(t, result.Summary)
}
