package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/core/ports/driving"
	"github.com/digkill/tarot-app/internal/logger"
)

// Ensure SettingsStore implements the interface.
var _ driving.SettingsService = (*SettingsStore)(nil)

// settingsKey is the logical key the settings record lives under.
const settingsKey = "tarot.settings"

// SettingsStore persists the single settings record. Loading merges
// the stored document over the defaults field-by-field, so records
// written by older versions pick up defaults for fields they predate.
// Saving is best-effort: a failed write is logged and the in-memory
// record stays authoritative for the session.
type SettingsStore struct {
	kv driven.KVStore

	mu      sync.Mutex
	current *domain.Settings
}

// NewSettingsStore creates a settings store over a durable KV store.
func NewSettingsStore(kv driven.KVStore) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// Load returns the persisted settings merged over defaults. An absent
// or unparsable record yields the defaults. Load never fails.
func (s *SettingsStore) Load(ctx context.Context) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return *s.current
	}

	settings := domain.DefaultSettings()
	raw, err := s.kv.Get(ctx, settingsKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// First run; defaults apply.
	case err != nil:
		logger.Warn().Err(err).Str("key", settingsKey).Msg("failed to read settings, using defaults")
	default:
		// Unmarshalling into the defaults-initialized record is the
		// shallow merge: absent fields keep their default values.
		if jsonErr := json.Unmarshal(raw, &settings); jsonErr != nil {
			logger.Warn().Err(jsonErr).Str("key", settingsKey).Msg("unparsable settings document, using defaults")
			settings = domain.DefaultSettings()
		}
	}
	settings.Normalize()
	s.current = &settings
	return settings
}

// Save persists the record best-effort. A write failure is logged, not
// surfaced, so an unreachable durable store degrades to an
// in-memory-only session.
func (s *SettingsStore) Save(ctx context.Context, settings domain.Settings) {
	settings.Normalize()

	s.mu.Lock()
	s.current = &settings
	s.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to encode settings")
		return
	}
	if err := s.kv.Set(ctx, settingsKey, raw); err != nil {
		logger.Warn().Err(err).Str("key", settingsKey).Msg("failed to persist settings")
	}
}

// Update applies a partial mutation to the current record, saves the
// result, and returns the merged record.
func (s *SettingsStore) Update(ctx context.Context, mutate func(*domain.Settings)) domain.Settings {
	settings := s.Load(ctx)
	if mutate != nil {
		mutate(&settings)
	}
	s.Save(ctx, settings)
	return settings
}
