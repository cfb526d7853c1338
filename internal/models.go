package internal

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderCompanion Sender = "companion"
)

// Message is a single chat message. Messages are immutable once created;
// ordering is insertion order within a conversation.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Sender    Sender    `json:"sender" yaml:"sender"`
	Mood      string    `json:"mood,omitempty" yaml:"mood,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Encrypted bool      `json:"encrypted" yaml:"encrypted"`
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Profile is a local user account. The encryption key protects the
// profile's message, mood and journal bodies at rest.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Key       string    `json:"-"`
}

// MoodEntry is one mood check-in on a 1-10 scale.
type MoodEntry struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Encrypted bool      `json:"encrypted"`
}

// JournalEntry is one free-form journal entry.
type JournalEntry struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Encrypted bool      `json:"encrypted"`
}

// SessionType classifies an activity session for streak and badge tracking.
type SessionType string

const (
	SessionChat      SessionType = "chat"
	SessionMood      SessionType = "mood"
	SessionJournal   SessionType = "journal"
	SessionBreathing SessionType = "breathing"
)

// SessionRecord is one completed activity session. The badge evaluator
// consumes these; the companion engine never sees them.
type SessionRecord struct {
	ID        string      `json:"id"`
	ProfileID string      `json:"profile_id"`
	Type      SessionType `json:"type"`
	Duration  int         `json:"duration"` // seconds
	Timestamp time.Time   `json:"timestamp"`
}

// Badge is an unlocked achievement.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"` // "streak", "milestone", "achievement", "special"
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// Conversation is a profile's full chat history in a form the exporters
// can render.
type Conversation struct {
	ProfileID   string    `json:"profile_id" yaml:"profile_id"`
	ProfileName string    `json:"profile_name" yaml:"profile_name"`
	Messages    []Message `json:"messages" yaml:"messages"`
	ExportedAt  time.Time `json:"exported_at" yaml:"exported_at"`
}

// MessageCount returns the number of messages in the conversation.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// LastActivity returns the timestamp of the most recent message, or the
// zero time for an empty conversation.
func (c *Conversation) LastActivity() time.Time {
	if len(c.Messages) == 0 {
		return time.Time{}
	}
	return c.Messages[len(c.Messages)-1].Timestamp
}
