package services

import (
	"strings"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

// maxKeywords caps the aggregated keyword list of an interpretation.
const maxKeywords = 12

// summaryHighlights is how many leading position narratives feed the
// summary paragraph.
const summaryHighlights = 3

// Assembler turns a draw into a structured local interpretation.
// Assemble is pure: no I/O, no randomness, deterministic for
// identical inputs.
type Assembler struct{}

// NewAssembler creates an interpretation assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble builds the interpretation for a draw. The translator is a
// capability supplied by the presentation layer; the assembler never
// loads localization catalogs itself.
func (a *Assembler) Assemble(spread domain.Spread, entries []domain.DrawnEntry, translate driven.Translator) domain.Interpretation {
	if translate == nil {
		translate = driven.TranslatorFunc(func(key string, _ map[string]any) string { return key })
	}

	positions := make([]domain.PositionNarrative, 0, len(entries))
	for _, entry := range entries {
		title := translate.Translate(entry.Position.TitleKey, nil)
		description := translate.Translate(entry.Position.DescriptionKey, nil)
		positions = append(positions, domain.PositionNarrative{
			Title:       title,
			Description: description,
			Card:        entry.Card,
			IsReversed:  entry.IsReversed,
			Narrative:   title + ": " + description + " — " + entry.Card.Profile(entry.IsReversed).General,
		})
	}

	intro := translate.Translate("interpretation.summaryIntro", map[string]any{
		"spread": translate.Translate(spread.NameKey, nil),
		"count":  len(entries),
	})
	closing := translate.Translate("interpretation.summaryClosing", nil)

	highlights := make([]string, 0, summaryHighlights)
	for _, pos := range positions {
		if len(highlights) == summaryHighlights {
			break
		}
		highlights = append(highlights, pos.Narrative)
	}

	summary := strings.TrimSpace(intro + " " + strings.Join(highlights, " ") + " " + closing)

	return domain.Interpretation{
		Summary:   summary,
		Positions: positions,
		Keywords:  collectKeywords(entries),
	}
}

// collectKeywords concatenates the active-profile keyword lists in
// position order, deduplicates preserving first occurrence, and
// truncates to maxKeywords.
func collectKeywords(entries []domain.DrawnEntry) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, maxKeywords)
	for _, entry := range entries {
		for _, kw := range entry.Card.Profile(entry.IsReversed).Keywords {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
			if len(keywords) == maxKeywords {
				return keywords
			}
		}
	}
	return keywords
}
