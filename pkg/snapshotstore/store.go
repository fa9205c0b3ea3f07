// Package snapshotstore is the optional sqlite-backed persistence layer
// for paused-game snapshots: one row per run id, the snapshot's JSON
// blob in a TEXT column, INSERT OR REPLACE on save, a not-found
// sentinel on a missing load. There is no separate per-player table: a
// Snapshot is already the complete aggregate (game state plus both
// controllers' recorded state), so one row suffices.
package snapshotstore

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cardforge/engine/pkg/engineerr"
	"github.com/cardforge/engine/pkg/snapshot"
)

// Store wraps a sqlite connection holding paused-game snapshots.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.Io, err, "snapshotstore: opening %q", path)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			run_id TEXT PRIMARY KEY,
			turn_number INTEGER NOT NULL,
			snapshot_json TEXT NOT NULL,
			saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return engineerr.Wrap(engineerr.Io, err, "snapshotstore: creating schema")
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists snap under runID, replacing any snapshot previously
// saved for that run.
func (s *Store) Save(runID string, snap *snapshot.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return engineerr.Wrap(engineerr.Serialization, err, "snapshotstore: encoding snapshot for run %q", runID)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO snapshots (run_id, turn_number, snapshot_json, saved_at)
		VALUES (?, ?, ?, ?)
	`, runID, snap.TurnNumber, string(data), time.Now())
	if err != nil {
		return engineerr.Wrap(engineerr.Io, err, "snapshotstore: saving run %q", runID)
	}
	return nil
}

// Load loads the snapshot saved under runID.
func (s *Store) Load(runID string) (*snapshot.Snapshot, error) {
	var data string
	err := s.db.QueryRow(`SELECT snapshot_json FROM snapshots WHERE run_id = ?`, runID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, engineerr.New(engineerr.EntityNotFound, "snapshotstore: no snapshot saved for run %q", runID)
	}
	if err != nil {
		return nil, engineerr.Wrap(engineerr.Io, err, "snapshotstore: loading run %q", runID)
	}
	var snap snapshot.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, engineerr.Wrap(engineerr.Serialization, err, "snapshotstore: decoding run %q", runID)
	}
	return &snap, nil
}

// Delete removes the snapshot saved under runID, if any.
func (s *Store) Delete(runID string) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE run_id = ?`, runID)
	if err != nil {
		return engineerr.Wrap(engineerr.Io, err, "snapshotstore: deleting run %q", runID)
	}
	return nil
}

// ListRunIDs returns every run id currently stored, in no particular
// order.
func (s *Store) ListRunIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT run_id FROM snapshots`)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.Io, err, "snapshotstore: listing runs")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, engineerr.Wrap(engineerr.Io, err, "snapshotstore: scanning run id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
