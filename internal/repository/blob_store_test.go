package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/db"
	"lingua/backend/internal/repository"
)

func openTestStore(t *testing.T) repository.BlobStore {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return repository.NewBlobStore(database)
}

func TestBlobStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get(context.Background(), "history")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, value)
}

func TestBlobStore_SetOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "history", `[]`))
	require.NoError(t, store.Set(ctx, "history", `[{"id":"1"}]`))

	value, ok, err := store.Get(ctx, "history")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"1"}]`, value)
}

func TestBlobStore_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "history", `[]`))
	require.NoError(t, store.Delete(ctx, "history"))

	_, ok, err := store.Get(ctx, "history")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryBlobStore_RoundTrip(t *testing.T) {
	store := repository.NewMemoryBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	require.False(t, ok)
}
