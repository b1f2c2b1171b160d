package migrate

import "time"

// Coercions over decoded-JSON values. Wrong-typed input yields the zero
// answer, never a panic; json.Unmarshal into any only produces nil, bool,
// float64, string, []any and map[string]any.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

func asStringPtr(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

// timeOr parses an RFC3339 timestamp (with or without sub-second digits),
// falling back to def. Persisted snapshots written by this app and by the
// original web version both use that shape.
func timeOr(v any, def time.Time) time.Time {
	s, ok := v.(string)
	if !ok {
		return def
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts
	}
	return def
}

// asTimestamp accepts either an RFC3339 string or a Unix-milliseconds
// number (the original persisted activeTaskStartedAt as Date.now()).
func asTimestamp(v any) *time.Time {
	switch x := v.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, x); err == nil {
			return &ts
		}
	case float64:
		ts := time.UnixMilli(int64(x)).UTC()
		return &ts
	}
	return nil
}
