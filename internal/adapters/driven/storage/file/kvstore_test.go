package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/core/domain"
)

func newTestStore(t *testing.T) *KVStore {
	t.Helper()
	store, err := NewKVStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "tarot.settings", []byte(`{"language":"en"}`)))

	got, err := store.Get(ctx, "tarot.settings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"language":"en"}`), got)
}

func TestKVStore_GetAbsentKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestKVStore_DocumentOnDisk(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "tarot.readings", []byte("[]")))

	path := filepath.Join(store.Dir(), "tarot.readings.json")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), raw)
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewKVStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Close())

	reopened, err := NewKVStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestKVStore_ObservesExternalRewrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("old")))
	// Prime the cache.
	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	// Another process rewrites the document.
	path := filepath.Join(store.Dir(), "k.json")
	require.NoError(t, os.WriteFile(path, []byte("new"), 0600))

	// The watcher invalidates asynchronously.
	assert.Eventually(t, func() bool {
		got, err := store.Get(ctx, "k")
		return err == nil && string(got) == "new"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestKVStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("value")))

	first, err := store.Get(ctx, "k")
	require.NoError(t, err)
	first[0] = 'X'

	second, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), second)
}
