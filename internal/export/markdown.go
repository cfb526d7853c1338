package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mindwell/companion/internal"
)

// MarkdownExporter exports conversations in Markdown format
type MarkdownExporter struct{}

// Export exports a conversation to Markdown format
func (e *MarkdownExporter) Export(conv *internal.Conversation, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# Conversation with %s\n\n", conv.ProfileName)
	_, _ = fmt.Fprintf(w, "**Messages:** %d  \n", len(conv.Messages))
	if !conv.ExportedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "**Exported:** %s\n", conv.ExportedAt.Format(time.RFC3339))
	}

	_, _ = fmt.Fprintf(w, "\n---\n\n")

	// Messages
	for i, msg := range conv.Messages {
		label := conv.ProfileName
		if msg.Sender == internal.SenderCompanion {
			label = "Maya"
		}

		timestamp := ""
		if !msg.Timestamp.IsZero() {
			timestamp = fmt.Sprintf(" (%s)", msg.Timestamp.Format("2006-01-02 15:04"))
		}

		mood := ""
		if msg.Mood != "" {
			mood = fmt.Sprintf(" _[%s]_", msg.Mood)
		}

		_, _ = fmt.Fprintf(w, "**%s:**%s%s\n\n%s\n\n", label, timestamp, mood, escapeMarkdown(msg.Text))

		// Horizontal rule after each message (except the last one)
		if i < len(conv.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
