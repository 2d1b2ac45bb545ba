package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "tarot.settings", []byte(`{"language":"en"}`)))

	got, err := store.Get(ctx, "tarot.settings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"language":"en"}`), got)
}

func TestStore_GetAbsentKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "tarot.readings", []byte("[]")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "tarot.readings")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got)
	assert.Equal(t, filepath.Join(dir, "tarot.db"), reopened.Path())
}
