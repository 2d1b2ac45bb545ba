package services

import (
	"context"
	"fmt"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/core/ports/driving"
)

// Ensure Divination implements the interface.
var _ driving.DivinationService = (*Divination)(nil)

// Divination orchestrates the reading session flow:
// draw -> assemble -> persist, with augmentation as a separate,
// optional operation that attaches its result to the stored record.
type Divination struct {
	decks    driven.DeckRepository
	spreads  driven.SpreadCatalog
	insight  driven.InsightService // may be nil
	draw     *DrawEngine
	assemble *Assembler
	readings driving.ReadingHistory
	settings driving.SettingsService
}

// NewDivination wires the session flow. insight may be nil, in which
// case Augment reports the missing credential error without any
// network attempt.
func NewDivination(
	decks driven.DeckRepository,
	spreads driven.SpreadCatalog,
	insight driven.InsightService,
	draw *DrawEngine,
	assemble *Assembler,
	readings driving.ReadingHistory,
	settings driving.SettingsService,
) *Divination {
	return &Divination{
		decks:    decks,
		spreads:  spreads,
		insight:  insight,
		draw:     draw,
		assemble: assemble,
		readings: readings,
		settings: settings,
	}
}

// NewReading draws cards for the spread, assembles the local
// interpretation, and persists a new record at the head of history.
func (d *Divination) NewReading(ctx context.Context, spreadID string, translator driven.Translator) (*driving.ReadingResult, error) {
	spread, err := d.spreads.Get(spreadID)
	if err != nil {
		return nil, fmt.Errorf("looking up spread %q: %w", spreadID, err)
	}

	prefs := d.settings.Load(ctx)
	deck, err := d.decks.Deck(prefs.Language)
	if err != nil {
		return nil, fmt.Errorf("loading deck for %s: %w", prefs.Language, err)
	}

	entries := d.draw.Draw(*spread, deck, prefs.ReversedChance)
	interpretation := d.assemble.Assemble(*spread, entries, translator)

	items := make([]domain.ReadingCard, 0, len(entries))
	for _, entry := range entries {
		items = append(items, domain.ReadingCard{
			PositionIndex: entry.Position.Index,
			CardID:        entry.Card.ID,
			IsReversed:    entry.IsReversed,
		})
	}

	reading, err := d.readings.Create(ctx, domain.ReadingDraft{
		SpreadID:    spread.ID,
		DeckID:      d.decks.DeckID(),
		Items:       items,
		SummaryText: interpretation.Summary,
	})
	if err != nil {
		return nil, fmt.Errorf("persisting reading: %w", err)
	}

	return &driving.ReadingResult{
		Reading:        *reading,
		Entries:        entries,
		Interpretation: interpretation,
	}, nil
}

// Augment requests an external narrative for a persisted reading and
// attaches the validated result to the record. On failure the stored
// record, including its local interpretation, is left untouched.
func (d *Divination) Augment(ctx context.Context, readingID string, translator driven.Translator) (*domain.AugmentedInsight, error) {
	if d.insight == nil {
		return nil, domain.ErrInsightKeyMissing
	}

	readings, err := d.readings.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading readings: %w", err)
	}
	var reading *domain.Reading
	for i := range readings {
		if readings[i].ID == readingID {
			reading = &readings[i]
			break
		}
	}
	if reading == nil {
		return nil, fmt.Errorf("reading %q: %w", readingID, domain.ErrNotFound)
	}
	if reading.Insight != nil {
		return reading.Insight, nil
	}

	prefs := d.settings.Load(ctx)
	req, err := d.buildInsightRequest(*reading, prefs.Language, translator)
	if err != nil {
		return nil, err
	}

	insight, err := d.insight.GenerateInsight(ctx, *req)
	if err != nil {
		return nil, err
	}

	if err := d.readings.Update(ctx, readingID, domain.ReadingPatch{Insight: insight}); err != nil {
		return nil, fmt.Errorf("attaching insight: %w", err)
	}
	return insight, nil
}

// buildInsightRequest reconstructs the full per-position context from
// the persisted reading: position keys resolved through the
// translator, plus both orientation profiles of each card.
func (d *Divination) buildInsightRequest(reading domain.Reading, lang domain.Language, translator driven.Translator) (*domain.InsightRequest, error) {
	spread, err := d.spreads.Get(reading.SpreadID)
	if err != nil {
		return nil, fmt.Errorf("looking up spread %q: %w", reading.SpreadID, err)
	}
	if translator == nil {
		translator = driven.TranslatorFunc(func(key string, _ map[string]any) string { return key })
	}

	entries := make([]domain.InsightEntry, 0, len(reading.Items))
	for _, item := range reading.Items {
		card, err := d.decks.Card(lang, item.CardID)
		if err != nil {
			return nil, fmt.Errorf("looking up card %q: %w", item.CardID, err)
		}
		var pos *domain.SpreadPosition
		for i := range spread.Positions {
			if spread.Positions[i].Index == item.PositionIndex {
				pos = &spread.Positions[i]
				break
			}
		}
		if pos == nil {
			return nil, fmt.Errorf("reading %s references position %d missing from spread %s: %w",
				reading.ID, item.PositionIndex, spread.ID, domain.ErrInvalidInput)
		}

		entries = append(entries, domain.InsightEntry{
			PositionIndex:       item.PositionIndex,
			PositionTitle:       translator.Translate(pos.TitleKey, nil),
			PositionDescription: translator.Translate(pos.DescriptionKey, nil),
			CardName:            card.Name,
			UprightMeaning:      card.Upright.General,
			ReversedMeaning:     card.Reversed.General,
			UprightKeywords:     card.Upright.Keywords,
			ReversedKeywords:    card.Reversed.Keywords,
			IsReversed:          item.IsReversed,
		})
	}

	return &domain.InsightRequest{
		Language:          lang.String(),
		SpreadName:        translator.Translate(spread.NameKey, nil),
		SpreadDescription: translator.Translate(spread.DescriptionKey, nil),
		Entries:           entries,
	}, nil
}
