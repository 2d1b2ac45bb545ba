package driving

import (
	"context"

	"github.com/digkill/tarot-app/internal/core/domain"
)

// SettingsService manages the single per-installation settings record.
type SettingsService interface {
	// Load returns the persisted settings merged over defaults.
	// An absent or unparsable record yields the defaults; load
	// never fails.
	Load(ctx context.Context) domain.Settings

	// Save persists the record best-effort: a write failure is logged
	// and the in-memory record stays authoritative for the session.
	Save(ctx context.Context, settings domain.Settings)

	// Update applies a partial mutation to the current record and
	// saves the result, returning the merged record.
	Update(ctx context.Context, mutate func(*domain.Settings)) domain.Settings
}
