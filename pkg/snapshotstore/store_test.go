package snapshotstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/snapshot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadRoundTrips(t *testing.T) {
	store := openTestStore(t)

	snap := &snapshot.Snapshot{TurnNumber: 4}
	require.NoError(t, store.Save("run-1", snap))

	loaded, err := store.Load("run-1")
	require.NoError(t, err)
	require.Equal(t, snap.TurnNumber, loaded.TurnNumber)
}

func TestSaveReplacesExistingRow(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("run-1", &snapshot.Snapshot{TurnNumber: 1}))
	require.NoError(t, store.Save("run-1", &snapshot.Snapshot{TurnNumber: 7}))

	loaded, err := store.Load("run-1")
	require.NoError(t, err)
	require.Equal(t, 7, loaded.TurnNumber)

	ids, err := store.ListRunIDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)
}

func TestLoadUnknownRunReturnsNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Load("missing")
	require.Error(t, err)
	var engErr *engineerr.Error
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, engineerr.EntityNotFound, engErr.Kind)
}

func TestDeleteRemovesRun(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("run-1", &snapshot.Snapshot{TurnNumber: 1}))
	require.NoError(t, store.Delete("run-1"))

	_, err := store.Load("run-1")
	require.Error(t, err)
}

func TestListRunIDsReturnsAllSavedRuns(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("run-1", &snapshot.Snapshot{TurnNumber: 1}))
	require.NoError(t, store.Save("run-2", &snapshot.Snapshot{TurnNumber: 2}))

	ids, err := store.ListRunIDs()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"run-1", "run-2"}, ids)
}
