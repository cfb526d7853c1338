package companion

import "strings"

// Classify scans the rule table in priority order and returns the first
// category with any keyword contained in the lowercased text. The tie
// break is table order, never keyword count: category order encodes
// intended precedence (anxiety outranks generic stress, for example).
// A nil return means no category matched, which is a valid outcome
// routed to the fallback tiers.
func Classify(text string, table []Category) *Category {
	lower := strings.ToLower(text)

	for i := range table {
		if containsAny(lower, table[i].Keywords) {
			return &table[i]
		}
	}

	return nil
}

// containsAny reports whether any keyword is a substring of the text.
// The text must already be lowercased.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
