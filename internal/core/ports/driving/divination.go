package driving

import (
	"context"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
)

// ReadingResult pairs the persisted record with the transient data the
// presentation layer renders immediately after a draw.
type ReadingResult struct {
	// Reading is the record as persisted.
	Reading domain.Reading

	// Entries is the transient draw the record was built from.
	Entries []domain.DrawnEntry

	// Interpretation is the locally assembled narrative.
	Interpretation domain.Interpretation
}

// DivinationService orchestrates the reading session flow:
// draw, assemble, persist, and optionally augment.
type DivinationService interface {
	// NewReading draws cards for the spread, assembles the local
	// interpretation with the supplied translator, and persists a new
	// reading record at the head of the history.
	NewReading(ctx context.Context, spreadID string, translator driven.Translator) (*ReadingResult, error)

	// Augment requests an external narrative for a persisted reading
	// and attaches it to the record. The local interpretation is left
	// untouched on failure.
	Augment(ctx context.Context, readingID string, translator driven.Translator) (*domain.AugmentedInsight, error)
}
