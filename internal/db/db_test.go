package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/db"
)

func TestOpen(t *testing.T) {
	tempDir := t.TempDir()

	dbPath := filepath.Join(tempDir, "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "kv", name)
}

func TestOpenCreatesDir(t *testing.T) {
	tempDir := t.TempDir()

	dbPath := filepath.Join(tempDir, "nested", "dir", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
}
