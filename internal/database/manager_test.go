package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (context.Context, *Manager, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	path := filepath.Join(t.TempDir(), "test.db")
	manager, err := NewManager(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, manager)
	t.Cleanup(func() { _ = manager.Close() })

	return ctx, manager, path
}

func TestNewManager(t *testing.T) {
	t.Parallel()
	_, manager, _ := newTestManager(t)
	require.NotNil(t, manager.DB())
}

func TestWALModeEnabled(t *testing.T) {
	t.Parallel()
	ctx, manager, _ := newTestManager(t)

	var journalMode string
	err := manager.DB().QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
	require.NoError(t, err)
	assert.Equal(t, "wal", journalMode)
}

func TestMigrationsExecuted(t *testing.T) {
	t.Parallel()
	ctx, manager, _ := newTestManager(t)

	var name string
	err := manager.DB().QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name='profile_cache'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "profile_cache", name)

	err = manager.DB().QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='index' AND name='idx_profile_cache_expires'").Scan(&name)
	require.NoError(t, err)
}

func TestMigrationVersion(t *testing.T) {
	t.Parallel()
	ctx, manager, _ := newTestManager(t)

	var version int
	err := manager.DB().QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion(), version)
}

func TestReopenSkipsAppliedMigrations(t *testing.T) {
	t.Parallel()
	ctx, manager, path := newTestManager(t)

	_, err := manager.DB().ExecContext(ctx,
		"INSERT INTO profile_cache (handle, value, expires_at) VALUES (?, ?, ?)", "octocat", []byte("{}"), 1)
	require.NoError(t, err)
	require.NoError(t, manager.Close())

	reopened, err := NewManager(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	var count int
	err = reopened.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM profile_cache").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCloseNilDB(t *testing.T) {
	t.Parallel()
	assert.NoError(t, (&Manager{}).Close())
}
