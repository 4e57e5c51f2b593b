package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// openTestPostgres starts a throwaway Postgres container and connects a
// PostgresStore to it. Skipped with -short or when Docker is unavailable.
func openTestPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	ctr, err := pgcontainer.Run(ctx, "postgres:16-alpine",
		pgcontainer.WithDatabase("shepherd_test"),
		pgcontainer.WithUsername("postgres"),
		pgcontainer.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() { testcontainers.TerminateContainer(ctr) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPostgresStore_RoundtripAndOverwrite(t *testing.T) {
	s := openTestPostgres(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.False(t, ok, "fresh database should have no bookmarks key")

	require.NoError(t, s.Set(ctx, "bookmarks", "first"))
	require.NoError(t, s.Set(ctx, "bookmarks", "second"))

	value, ok, err := s.Get(ctx, "bookmarks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)

	assert.NoError(t, s.Ping(ctx))
}
