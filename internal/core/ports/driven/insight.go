package driven

import (
	"context"

	"github.com/digkill/tarot-app/internal/core/domain"
)

// InsightService generates a schema-constrained reading narrative from
// an external language model. This is an optional service - when nil,
// readings carry only the locally assembled interpretation.
//
// Implementations must surface the distinct failure kinds from the
// domain package (ErrInsightKeyMissing, ErrInsightEmpty,
// ErrInsightMalformed) and must not retry on their own; the caller
// decides whether to retry or fall back.
type InsightService interface {
	// GenerateInsight requests a narrative for the given reading
	// context. The call is bounded by the client timeout and is
	// cancellable through ctx.
	GenerateInsight(ctx context.Context, req domain.InsightRequest) (*domain.AugmentedInsight, error)

	// ModelName returns the identifier of the generating model.
	ModelName() string

	// Close releases resources.
	Close() error
}
