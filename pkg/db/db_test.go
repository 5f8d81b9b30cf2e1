package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (db *DB, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	db, err = New(cfg)
	require.NoError(t, err)

	cleanup = func() {
		db.Close()
		os.Remove(tmpFile.Name())
	}

	return db, cleanup
}

func TestDB_InitSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// schema should already be initialized by New()
	var count int
	err := db.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name = 'renders'
	`)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDB_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Ping(context.Background()))
}

func TestDB_NewWithDefaults(t *testing.T) {
	// test with empty DSN (should use default)
	cfg := Config{}
	db, err := New(cfg)
	require.NoError(t, err)
	defer func() {
		db.Close()
		// clean up default db file
		os.Remove("renderscope.db")
		os.Remove("renderscope.db-wal")
		os.Remove("renderscope.db-shm")
	}()

	require.NoError(t, db.Ping(context.Background()))
}
