package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLExport(t *testing.T) {
	conv := sampleConversation()

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(conv, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(conv.Messages) {
		t.Fatalf("got %d lines, want %d", len(lines), len(conv.Messages))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if first["sender"] != "user" {
		t.Errorf("line 0 sender = %v, want user", first["sender"])
	}
	if first["text"] != "work has been stressful" {
		t.Errorf("line 0 text = %v", first["text"])
	}
	if _, ok := first["mood"]; ok {
		t.Error("user message should not carry a mood field")
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if second["sender"] != "companion" {
		t.Errorf("line 1 sender = %v, want companion", second["sender"])
	}
	if second["mood"] != "caring" {
		t.Errorf("line 1 mood = %v, want caring", second["mood"])
	}
	if _, ok := second["timestamp"]; !ok {
		t.Error("line 1 missing timestamp")
	}
}

func TestJSONLExportEmpty(t *testing.T) {
	conv := sampleConversation()
	conv.Messages = nil

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(conv, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty conversation produced output %q", buf.String())
	}
}
