package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_SQLiteLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	conn := New(DriverSQLite, path+"?_pragma=foreign_keys(1)", "")
	assert.False(t, conn.Ready())
	assert.Equal(t, "disconnected", conn.State(ctx))
	assert.ErrorIs(t, conn.Ping(ctx), ErrNotConnected)

	require.NoError(t, conn.Connect(ctx))
	assert.True(t, conn.Ready())
	assert.Equal(t, "connected", conn.State(ctx))
	assert.Nil(t, conn.Mongo())

	var tables int
	err := conn.SQL().Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('admins', 'experiences', 'projects', 'certifications', 'contacts', 'profiles')`)
	require.NoError(t, err)
	assert.Equal(t, 6, tables)

	version, err := MigrationStatus(conn.SQL().DB, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, conn.Close(ctx))
	assert.False(t, conn.Ready())
	require.NoError(t, conn.Close(ctx))
}

func TestConn_UnsupportedDriver(t *testing.T) {
	conn := New("oracle", "", "")
	err := conn.Connect(context.Background())
	require.Error(t, err)
	assert.False(t, conn.Ready())
}

func TestMigrations_RejectMongo(t *testing.T) {
	assert.ErrorIs(t, RunMigrations(nil, DriverMongo), ErrNoMigrations)
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "./data/portfolio.db", sqlitePath("./data/portfolio.db?_pragma=foreign_keys(1)"))
	assert.Equal(t, "/tmp/x.db", sqlitePath("file:/tmp/x.db"))
}
