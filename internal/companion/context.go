package companion

import (
	"strings"

	"github.com/mindwell/companion/internal"
)

// ContextWindow is how many trailing messages the tracker considers when
// deriving topic continuity.
const ContextWindow = 6

// Summarize derives a fresh ContextSummary from the conversation history.
// Only user messages inside the window contribute topics; the summary is
// a disposable value, never mutated or cached across turns. Entries with
// an unknown sender are stored-data problems, not engine errors, so they
// are skipped rather than failing the call.
func Summarize(history []internal.Message) ContextSummary {
	window := history
	if len(window) > ContextWindow {
		window = window[len(window)-ContextWindow:]
	}

	var topics []string
	seen := make(map[string]bool)
	lastUserText := ""

	for _, msg := range window {
		switch msg.Sender {
		case internal.SenderUser:
		case internal.SenderCompanion:
			continue
		default:
			continue
		}

		lower := strings.ToLower(msg.Text)
		for _, rule := range topicRules {
			if !containsAny(lower, rule.Keywords) {
				continue
			}
			if !seen[rule.Tag] {
				seen[rule.Tag] = true
				topics = append(topics, rule.Tag)
			}
		}

		lastUserText = msg.Text
	}

	return ContextSummary{
		RecentTopics: topics,
		MessageCount: len(history),
		LastUserText: lastUserText,
	}
}
