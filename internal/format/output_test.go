package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite_JSONCompactAndPretty(t *testing.T) {
	v := map[string]any{"data": []string{"a", "b"}}

	var compact bytes.Buffer
	if err := Write(&compact, v, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := compact.String(); got != `{"data":["a","b"]}`+"\n" {
		t.Fatalf("compact: %q", got)
	}

	var pretty bytes.Buffer
	if err := Write(&pretty, v, "", true); err != nil {
		t.Fatalf("Write pretty: %v", err)
	}
	if !strings.Contains(pretty.String(), "\n  \"data\"") {
		t.Fatalf("pretty: %q", pretty.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
