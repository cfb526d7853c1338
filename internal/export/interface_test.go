package export

import (
	"testing"
	"time"

	"github.com/mindwell/companion/internal"
)

func sampleConversation() *internal.Conversation {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &internal.Conversation{
		ProfileID:   "p1",
		ProfileName: "Sam",
		ExportedAt:  base.Add(time.Hour),
		Messages: []internal.Message{
			{ID: "m1", Text: "work has been stressful", Sender: internal.SenderUser, Timestamp: base},
			{ID: "m2", Text: "That sounds heavy, Sam.", Sender: internal.SenderCompanion, Mood: "caring", Timestamp: base.Add(time.Minute)},
		},
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "json", wantExt: "json"},
		{format: "jsonl", wantExt: "jsonl"},
		{format: "md", wantExt: "md"},
		{format: "markdown", wantExt: "md"},
		{format: "yaml", wantExt: "yaml"},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewExporter(%q) succeeded, want error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter(%q) error = %v", tt.format, err)
			}
			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}
