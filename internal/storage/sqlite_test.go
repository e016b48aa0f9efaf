package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV_GetAbsent(t *testing.T) {
	kv := openTestKV(t)

	_, ok, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKV_SetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestSQLiteKV_SetOverwrites(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("old")))
	require.NoError(t, kv.Set(ctx, "k", []byte("new")))

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestSQLiteKV_Delete(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestSQLiteKV_DeleteMany(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, kv.Set(ctx, k, []byte(k)))
	}
	require.NoError(t, kv.DeleteMany(ctx, []string{"a", "c", "nope"}))

	_, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, kv.DeleteMany(ctx, nil))
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v")))

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	// Mutating the returned slice must not affect the stored value.
	got[0] = 'x'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again)

	require.NoError(t, kv.DeleteMany(ctx, []string{"k"}))
	assert.Equal(t, 0, kv.Len())
}
