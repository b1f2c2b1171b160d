package store

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when the TUI and a script overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshot (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func readSnapshot(ctx context.Context, db *sql.DB) ([]byte, bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM snapshot WHERE k = ?`, SnapshotKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func writeSnapshot(ctx context.Context, db *sql.DB, b []byte) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshot(k, v) VALUES(?, ?)`, SnapshotKey, string(b))
	return err
}
