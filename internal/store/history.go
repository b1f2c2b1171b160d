package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const historyFileName = "history.jsonl"

// HistoryEntry is one line of the append-only action log. The log is an
// audit trail for the user (`monofocus history`), not a source of truth:
// replaying it is never required, the snapshot is canonical.
type HistoryEntry struct {
	TS      time.Time `json:"ts"`
	Action  string    `json:"action"`
	Summary string    `json:"summary,omitempty"`
}

func (s Store) historyPath() string {
	return filepath.Join(s.Dir, historyFileName)
}

// AppendHistory appends one entry. Best-effort callers may ignore the error.
func (s Store) AppendHistory(e HistoryEntry) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(s.historyPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return f.Close()
}

// ReadHistory returns up to limit most-recent entries, oldest first.
// limit <= 0 means all. Corrupt lines are skipped.
func (s Store) ReadHistory(limit int) ([]HistoryEntry, error) {
	f, err := os.Open(s.historyPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []HistoryEntry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var e HistoryEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
