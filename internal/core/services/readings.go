package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/core/ports/driving"
	"github.com/digkill/tarot-app/internal/logger"
)

// Ensure ReadingStore implements the interface.
var _ driving.ReadingHistory = (*ReadingStore)(nil)

// readingsKey is the logical key the serialized collection lives under.
const readingsKey = "tarot.readings"

// ReadingStore persists the reading collection as one JSON document.
//
// Every operation is a read-entire-collection, mutate, write-back
// cycle. A mutex serializes the cycle within the process; across
// processes the durable layer stays last-write-wins, which is accepted
// for a single-user local store. After a failed durable write the
// in-memory collection remains authoritative for the rest of the
// session (it just will not survive a restart).
type ReadingStore struct {
	kv driven.KVStore

	mu       sync.Mutex
	cache    []domain.Reading
	loaded   bool
	detached bool // true after a write failure; stop re-reading the durable layer
	lastID   int64
}

// NewReadingStore creates a reading store over a durable KV store.
func NewReadingStore(kv driven.KVStore) *ReadingStore {
	return &ReadingStore{kv: kv}
}

// LoadAll returns all readings in persisted order (most-recent-first).
// The returned slice is a copy; mutating it does not affect the store.
func (s *ReadingStore) LoadAll(ctx context.Context) ([]domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Reading, len(s.cache))
	copy(out, s.cache)
	return out, nil
}

// Create generates identity and timestamp for the draft, prepends the
// record, persists, and returns the created record.
func (s *ReadingStore) Create(ctx context.Context, draft domain.ReadingDraft) (*domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncLocked(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	reading := domain.Reading{
		ID:          s.newIDLocked(now),
		SpreadID:    draft.SpreadID,
		DeckID:      draft.DeckID,
		DrawnAt:     now,
		Items:       draft.Items,
		SummaryText: draft.SummaryText,
		Notes:       draft.Notes,
		Tags:        draft.Tags,
	}

	s.cache = append([]domain.Reading{reading}, s.cache...)
	s.persistLocked(ctx)
	return &reading, nil
}

// Update shallow-merges the patch into the matching record. A missing
// id leaves the collection unchanged but still rewrites it.
func (s *ReadingStore) Update(ctx context.Context, id string, patch domain.ReadingPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncLocked(ctx); err != nil {
		return err
	}
	for i := range s.cache {
		if s.cache[i].ID == id {
			patch.Apply(&s.cache[i])
			break
		}
	}
	s.persistLocked(ctx)
	return nil
}

// Remove deletes one record by id.
func (s *ReadingStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncLocked(ctx); err != nil {
		return err
	}
	kept := s.cache[:0]
	for _, r := range s.cache {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.cache = kept
	s.persistLocked(ctx)
	return nil
}

// Clear deletes all records and removes the durable document.
func (s *ReadingStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = nil
	s.loaded = true
	if err := s.kv.Delete(ctx, readingsKey); err != nil {
		logger.Warn().Err(err).Str("key", readingsKey).Msg("failed to clear readings")
		s.detached = true
	}
	return nil
}

// ToggleFavorite flips the favorite flag on the matching record and
// returns the updated record, or nil if the id is unknown.
func (s *ReadingStore) ToggleFavorite(ctx context.Context, id string) (*domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.syncLocked(ctx); err != nil {
		return nil, err
	}
	var toggled *domain.Reading
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache[i].Favorite = !s.cache[i].Favorite
			copied := s.cache[i]
			toggled = &copied
			break
		}
	}
	s.persistLocked(ctx)
	return toggled, nil
}

// syncLocked loads the cache from the durable layer on first use. The
// store exclusively owns the collection document, so one load serves
// the whole process. A corrupt document degrades to an empty
// collection; a read error other than absence is surfaced. A detached
// store (one whose durable write failed) never re-reads.
func (s *ReadingStore) syncLocked(ctx context.Context) error {
	if s.detached || s.loaded {
		return nil
	}

	raw, err := s.kv.Get(ctx, readingsKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.cache = nil
	case err != nil:
		return fmt.Errorf("loading readings: %w", err)
	default:
		var readings []domain.Reading
		if jsonErr := json.Unmarshal(raw, &readings); jsonErr != nil {
			logger.Warn().Err(jsonErr).Str("key", readingsKey).Msg("corrupt readings document, starting empty")
			readings = nil
		}
		s.cache = readings
	}
	s.loaded = true
	return nil
}

// persistLocked writes the whole collection back. Failures are logged
// and detach the store: the in-memory collection keeps serving the
// session but will not survive a restart.
func (s *ReadingStore) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.cache)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to encode readings")
		s.detached = true
		return
	}
	if err := s.kv.Set(ctx, readingsKey, raw); err != nil {
		logger.Warn().Err(err).Str("key", readingsKey).Msg("failed to persist readings")
		s.detached = true
	}
}

// newIDLocked builds a reading identity from a base-36 timestamp and
// random bits. The time component is kept monotonic so identities
// created within the same millisecond still differ in both parts.
func (s *ReadingStore) newIDLocked(nowMillis int64) string {
	if nowMillis <= s.lastID {
		nowMillis = s.lastID + 1
	}
	s.lastID = nowMillis
	suffix := uuid.NewString()
	return strconv.FormatInt(nowMillis, 36) + "-" + suffix[:8]
}
