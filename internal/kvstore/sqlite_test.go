package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore creates an in-memory SQLite store for testing.
func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	s := openTestStore(t)

	value, ok, err := s.Get(context.Background(), "bookmarks")
	require.NoError(t, err)
	assert.False(t, ok, "absent key should report ok=false, not an error")
	assert.Empty(t, value)
}

func TestSQLiteStore_SetGetRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "bookmarks", `[{"reference":"John 3:16"}]`))

	value, ok, err := s.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"reference":"John 3:16"}]`, value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "dailyVerse", "old"))
	require.NoError(t, s.Set(ctx, "dailyVerse", "new"))

	value, ok, err := s.Get(ctx, "dailyVerse")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", value, "second set should replace the prior value wholesale")
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "bookmarks", "a"))
	require.NoError(t, s.Set(ctx, "savedVerses", "b"))

	v1, _, err := s.Get(ctx, "bookmarks")
	require.NoError(t, err)
	v2, _, err := s.Get(ctx, "savedVerses")
	require.NoError(t, err)

	assert.Equal(t, "a", v1)
	assert.Equal(t, "b", v2)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shepherd.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "bookmarks", "snapshot"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "snapshot", value)
}

func TestSQLiteStore_Ping(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
