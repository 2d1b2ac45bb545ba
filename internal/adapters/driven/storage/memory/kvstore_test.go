package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digkill/tarot-app/internal/core/domain"
)

func TestKVStore_RoundTrip(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tarot.readings", []byte(`[]`)))

	val, err := store.Get(ctx, "tarot.readings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), val)
}

func TestKVStore_AbsentKey(t *testing.T) {
	store := NewKVStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_Delete(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestKVStore_GetReturnsCopy(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	val[0] = 'z'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
