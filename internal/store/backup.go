package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backup writes the current raw snapshot to backups/<stamp>.json inside the
// data dir and returns the path. Backups are plain JSON so they double as
// import/export files.
func (s Store) Backup(ctx context.Context, now time.Time) (string, error) {
	b, found, err := s.LoadRaw(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New("nothing to back up: no snapshot saved yet")
	}
	dir := filepath.Join(s.Dir, "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("monofocus-%s.json", now.Format("20060102-150405")))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
