package companion

import (
	"fmt"
	"testing"
	"time"

	"github.com/mindwell/companion/internal"
)

func userMsg(text string) internal.Message {
	return internal.Message{Text: text, Sender: internal.SenderUser, Timestamp: time.Now()}
}

func companionMsg(text string) internal.Message {
	return internal.Message{Text: text, Sender: internal.SenderCompanion, Timestamp: time.Now()}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)
	if sum.MessageCount != 0 {
		t.Errorf("MessageCount = %d, want 0", sum.MessageCount)
	}
	if len(sum.RecentTopics) != 0 {
		t.Errorf("RecentTopics = %v, want empty", sum.RecentTopics)
	}
	if sum.LastUserText != "" {
		t.Errorf("LastUserText = %q, want empty", sum.LastUserText)
	}
}

func TestSummarize_Topics(t *testing.T) {
	tests := []struct {
		name    string
		history []internal.Message
		want    []string
	}{
		{
			name: "single topic",
			history: []internal.Message{
				userMsg("my job is draining me"),
			},
			want: []string{"work"},
		},
		{
			name: "multiple topics first occurrence order",
			history: []internal.Message{
				userMsg("school has been rough"),
				companionMsg("Tell me more."),
				userMsg("and my parents don't get it"),
			},
			want: []string{"education", "family"},
		},
		{
			name: "duplicate topics deduplicated",
			history: []internal.Message{
				userMsg("work is hard"),
				companionMsg("I hear you."),
				userMsg("I mean, my job specifically"),
			},
			want: []string{"work"},
		},
		{
			name: "companion messages never contribute topics",
			history: []internal.Message{
				companionMsg("How is work going?"),
				userMsg("fine I guess"),
			},
			want: nil,
		},
		{
			name: "one message can carry several topics",
			history: []internal.Message{
				userMsg("my partner thinks my career is ruining my health"),
			},
			want: []string{"work", "relationships", "health"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := Summarize(tt.history)
			if len(sum.RecentTopics) != len(tt.want) {
				t.Fatalf("RecentTopics = %v, want %v", sum.RecentTopics, tt.want)
			}
			for i := range tt.want {
				if sum.RecentTopics[i] != tt.want[i] {
					t.Errorf("RecentTopics[%d] = %q, want %q", i, sum.RecentTopics[i], tt.want[i])
				}
			}
		})
	}
}

func TestSummarize_WindowIsLastSix(t *testing.T) {
	// 8 messages; the first two mention work but fall outside the window.
	history := []internal.Message{
		userMsg("work work work"),
		userMsg("my job again"),
	}
	for i := 0; i < 5; i++ {
		history = append(history, userMsg(fmt.Sprintf("message %d", i)))
	}
	history = append(history, userMsg("my family visited"))

	sum := Summarize(history)

	if sum.MessageCount != 8 {
		t.Errorf("MessageCount = %d, want 8 (full history, not the window)", sum.MessageCount)
	}
	if len(sum.RecentTopics) != 1 || sum.RecentTopics[0] != "family" {
		t.Errorf("RecentTopics = %v, want [family] (work mentions are outside the window)", sum.RecentTopics)
	}
	if sum.LastUserText != "my family visited" {
		t.Errorf("LastUserText = %q, want the most recent user message", sum.LastUserText)
	}
}

func TestSummarize_LastUserText(t *testing.T) {
	history := []internal.Message{
		userMsg("first"),
		companionMsg("a reply"),
		userMsg("second"),
		companionMsg("another reply"),
	}

	sum := Summarize(history)
	if sum.LastUserText != "second" {
		t.Errorf("LastUserText = %q, want %q", sum.LastUserText, "second")
	}
}

func TestSummarize_SkipsMalformedEntries(t *testing.T) {
	history := []internal.Message{
		userMsg("my job is fine"),
		{Text: "no sender on this one"},
		{Text: "mystery sender", Sender: "ghost"},
	}

	sum := Summarize(history)

	if len(sum.RecentTopics) != 1 || sum.RecentTopics[0] != "work" {
		t.Errorf("RecentTopics = %v, want [work]", sum.RecentTopics)
	}
	// Malformed entries must not become the last user text.
	if sum.LastUserText != "my job is fine" {
		t.Errorf("LastUserText = %q, want %q", sum.LastUserText, "my job is fine")
	}
	// They still count toward the raw history length.
	if sum.MessageCount != 3 {
		t.Errorf("MessageCount = %d, want 3", sum.MessageCount)
	}
}

func TestSummarize_NoTopicDuplicatesAcrossWindow(t *testing.T) {
	var history []internal.Message
	for i := 0; i < 6; i++ {
		history = append(history, userMsg("thinking about work"))
	}

	sum := Summarize(history)
	if len(sum.RecentTopics) != 1 {
		t.Errorf("RecentTopics = %v, want exactly one tag", sum.RecentTopics)
	}
}
