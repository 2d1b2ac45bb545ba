package driven

import "context"

// KVStore is the durable key-value document store behind the reading
// and settings stores. Values are whole serialized documents; there is
// no partial-record addressing at this layer.
//
// Implementations must treat an absent key as a valid empty state and
// report it with domain.ErrNotFound rather than inventing a value.
type KVStore interface {
	// Get returns the document stored under key, or domain.ErrNotFound
	// if the key has never been written (or was deleted).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the document under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}
