package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CheckImportShape validates the minimal shape of a user-supplied import
// payload before migration: a JSON object whose tasks and captures are
// arrays (and events, when present). This is the only place malformed data
// is surfaced to the user; everything past this check is absorbed by
// Migrate's defaulting.
func CheckImportShape(b []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("invalid backup: not valid JSON: %w", err)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("invalid backup: expected a JSON object")
	}
	if _, ok := m["tasks"].([]any); !ok {
		return nil, errors.New("invalid backup: 'tasks' must be an array")
	}
	if _, ok := m["captures"].([]any); !ok {
		return nil, errors.New("invalid backup: 'captures' must be an array")
	}
	if ev, present := m["events"]; present {
		if _, ok := ev.([]any); !ok {
			return nil, errors.New("invalid backup: 'events' must be an array if present")
		}
	}
	return raw, nil
}
