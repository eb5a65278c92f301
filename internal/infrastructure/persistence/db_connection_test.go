//go:build unit
// +build unit

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_UnsupportedType(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle", DSN: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestNewDBConnection_SqliteMemoryIsSingleConnection(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: sqliteMemoryDSN, MaxOpenConns: 10})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestPing_AfterClose(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: sqliteMemoryDSN})
	require.NoError(t, err)

	require.NoError(t, Ping(context.Background(), db))
	require.NoError(t, CloseDB(db))
	assert.Error(t, Ping(context.Background(), db))
}
