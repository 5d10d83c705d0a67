package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRunsMigrations(t *testing.T) {
	conn, err := Open(Config{Path: filepath.Join(t.TempDir(), "tracks.db")})
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&n))
	assert.Equal(t, 2, n)

	_, err = conn.Exec(`INSERT INTO track_points (data_time, longitude, latitude) VALUES (1, NULL, 2.5)`)
	assert.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.db")

	first, err := Open(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(Config{Path: path})
	require.NoError(t, err)
	defer second.Close()

	var n int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&n))
	assert.Equal(t, 2, n)
}

func TestLoadMigrationsOrdersAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"m/010_late.sql":  {Data: []byte("SELECT 1")},
		"m/002_early.sql": {Data: []byte("SELECT 2")},
		"m/notes.txt":     {Data: []byte("ignored")},
		"m/bad_name.sql":  {Data: []byte("SELECT 3")},
	}

	migrations, err := NewMigrationManager(nil, fsys, "m").LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 2, migrations[0].Version)
	assert.Equal(t, "002_early", migrations[0].Name)
	assert.Equal(t, 10, migrations[1].Version)
}

func TestApplyMigrationRollsBack(t *testing.T) {
	conn, err := Open(Config{Path: filepath.Join(t.TempDir(), "tracks.db")})
	require.NoError(t, err)
	defer conn.Close()

	m := NewEmbeddedMigrationManager(conn)
	err = m.ApplyMigration(Migration{Version: 99, Name: "099_broken", SQL: "CREATE TABLE oops ("})
	require.Error(t, err)

	applied, err := m.GetAppliedMigrations()
	require.NoError(t, err)
	assert.False(t, applied[99])
}
