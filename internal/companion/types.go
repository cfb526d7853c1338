// Package companion implements the rule-based conversational companion
// engine: a keyword classifier, a lexicon sentiment scorer, a rolling
// conversation context tracker, and a three-tier response selector. All
// operations are pure given an explicit random source; no state survives
// between calls.
package companion

// Mood is the affect label attached to a generated reply. Callers use it
// for presentational cues only.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodCaring     Mood = "caring"
	MoodThoughtful Mood = "thoughtful"
	MoodNeutral    Mood = "neutral"
)

// Category is one emotional bucket in the ordered rule table. Priority is
// the category's position in the table: the classifier returns the first
// match, so earlier categories win ties regardless of keyword count.
type Category struct {
	Key       string
	Keywords  []string
	Templates []string
	Mood      Mood
}

// ContextSummary is a disposable digest of recent conversation history,
// recomputed fresh on every turn.
type ContextSummary struct {
	RecentTopics []string
	MessageCount int
	LastUserText string
}

// Result is one generated reply with its mood tag.
type Result struct {
	Text string
	Mood Mood
}

// TopicRule maps a topic tag to the keywords that signal it.
type TopicRule struct {
	Tag      string
	Keywords []string
}
