// Package store is the persistence adapter for the planner snapshot. The
// contract is deliberately narrow: one string key maps to the whole
// JSON-serialized state. The snapshot lives in a SQLite file; a legacy
// state.json (written by earlier versions) is imported once when the SQLite
// side is still empty. Tolerating old shapes inside the snapshot is
// entirely the migration engine's job, not the store's.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"monofocus-cli/internal/migrate"
	"monofocus-cli/internal/model"
)

const (
	// SnapshotKey is the single key the whole state is stored under. Kept
	// identical to the original web app's localStorage key so exported
	// backups stay recognizable.
	SnapshotKey = "monofocus_v1"

	sqliteFileName     = "monofocus.sqlite"
	legacyJSONFileName = "state.json"
)

type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) legacyJSONPath() string {
	return filepath.Join(s.Dir, legacyJSONFileName)
}

// LoadRaw returns the persisted snapshot bytes, or found=false when nothing
// has been saved yet. An empty SQLite state triggers a one-time import of
// legacy state.json if present.
func (s Store) LoadRaw(ctx context.Context) ([]byte, bool, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, false, err
	}
	defer db.Close()

	b, found, err := readSnapshot(ctx, db)
	if err != nil {
		return nil, false, err
	}
	if found {
		return b, true, nil
	}

	legacy, err := os.ReadFile(s.legacyJSONPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(legacy) == 0 {
		return nil, false, nil
	}
	if err := writeSnapshot(ctx, db, legacy); err != nil {
		return nil, false, err
	}
	return legacy, true, nil
}

// SaveRaw persists the snapshot bytes under SnapshotKey.
func (s Store) SaveRaw(ctx context.Context, b []byte) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return writeSnapshot(ctx, db, b)
}

// Load hydrates a valid state: raw bytes through the migration engine.
// A missing snapshot yields the initial empty state.
func (s Store) Load(ctx context.Context, now time.Time) (model.AppState, error) {
	b, found, err := s.LoadRaw(ctx)
	if err != nil {
		return model.AppState{}, err
	}
	if !found {
		return model.InitialState(), nil
	}
	return migrate.MigrateJSON(b, now), nil
}

// Save serializes and persists the state.
func (s Store) Save(ctx context.Context, st model.AppState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.SaveRaw(ctx, b)
}
