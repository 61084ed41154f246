package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hustlebot/internal/db"
)

func openTestArchive(t *testing.T) *ArchiveStore {
	t.Helper()
	d, err := db.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, d.Migrate())
	return NewArchiveStore(d, "test-run")
}

func TestArchiveSaveAndHistory(t *testing.T) {
	as := openTestArchive(t)

	require.NoError(t, as.SaveTurn("kay", Turn{Role: RoleUser, Text: "hello", Timestamp: 100}))
	require.NoError(t, as.SaveTurn("kay", Turn{Role: RoleBot, Text: "yo", Timestamp: 101}))
	require.NoError(t, as.SaveTurn("kay", Turn{Role: RoleUser, Text: "bye", Timestamp: 102}))

	turns, err := as.History("kay", 10)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "hello", turns[0].Text)
	assert.Equal(t, "bye", turns[2].Text)

	// Limit keeps the most recent turns, still in arrival order.
	turns, err = as.History("kay", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "yo", turns[0].Text)
	assert.Equal(t, "bye", turns[1].Text)
}

func TestArchiveUserIsolation(t *testing.T) {
	as := openTestArchive(t)

	require.NoError(t, as.SaveTurn("kay", Turn{Role: RoleUser, Text: "hello", Timestamp: 100}))
	require.NoError(t, as.SaveTurn("sam", Turn{Role: RoleUser, Text: "hola", Timestamp: 100}))

	turns, err := as.History("kay", 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "hello", turns[0].Text)
}

func TestArchiveRequiresUserID(t *testing.T) {
	as := openTestArchive(t)

	require.Error(t, as.SaveTurn("", Turn{Role: RoleUser, Text: "hello"}))
	_, err := as.History("", 1)
	require.Error(t, err)
}

func TestArchiveTagsRunID(t *testing.T) {
	as := openTestArchive(t)
	require.NoError(t, as.SaveTurn("kay", Turn{Role: RoleUser, Text: "hello", Timestamp: 100}))

	var runID string
	require.NoError(t, as.db.QueryRow(`SELECT DISTINCT run_id FROM turns`).Scan(&runID))
	assert.Equal(t, "test-run", runID)
}
