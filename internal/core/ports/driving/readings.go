package driving

import (
	"context"

	"github.com/digkill/tarot-app/internal/core/domain"
)

// ReadingHistory manages the persisted reading collection.
//
// Every operation reads the entire collection, mutates it, and writes
// it back. Operations within one process are serialized; across
// processes the durable layer is last-write-wins.
type ReadingHistory interface {
	// LoadAll returns all readings in persisted order
	// (most-recent-first).
	LoadAll(ctx context.Context) ([]domain.Reading, error)

	// Create generates an identity and timestamp for the draft,
	// prepends the record, persists, and returns the created record.
	Create(ctx context.Context, draft domain.ReadingDraft) (*domain.Reading, error)

	// Update shallow-merges the patch into the matching record.
	// A missing id is a no-op (the collection is still rewritten).
	Update(ctx context.Context, id string, patch domain.ReadingPatch) error

	// Remove deletes one record by id.
	Remove(ctx context.Context, id string) error

	// Clear deletes all records.
	Clear(ctx context.Context) error

	// ToggleFavorite flips the favorite flag on the matching record
	// and returns it, or nil if the id is unknown.
	ToggleFavorite(ctx context.Context, id string) (*domain.Reading, error)
}
