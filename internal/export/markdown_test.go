package export

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownExport(t *testing.T) {
	conv := sampleConversation()

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(conv, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	wantFragments := []string{
		"# Conversation with Sam",
		"**Messages:** 2",
		"**Sam:**",
		"**Maya:**",
		"_[caring]_",
		"work has been stressful",
		"That sounds heavy, Sam.",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(out, frag) {
			t.Errorf("markdown output missing %q\n%s", frag, out)
		}
	}

	// Rule separates the two messages but does not trail the last one.
	if got := strings.Count(out, "---"); got != 2 {
		t.Errorf("got %d horizontal rules, want 2 (header + separator)", got)
	}
}

func TestMarkdownEscaping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold markers escaped",
			input: "I feel **really** low",
			want:  `I feel \*\*really\*\* low`,
		},
		{
			name:  "underscore emphasis escaped",
			input: "so __tired__ today",
			want:  `so \_\_tired\_\_ today`,
		},
		{
			name:  "code block left alone",
			input: "```\n**not emphasis**\n```",
			want:  "```\n**not emphasis**\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.input); got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
