package companion

import "strings"

// Score returns a lexicon polarity score: positive hits minus negative
// hits via substring containment on the lowercased text. Repeated words
// are not deduplicated and the value is unbounded; callers only consult
// the sign, and only when the classifier found no category.
func Score(text string) int {
	lower := strings.ToLower(text)

	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}

	return score
}

// moodFromSentiment maps a fallback sentiment score to a mood tag.
func moodFromSentiment(score int) Mood {
	switch {
	case score > 0:
		return MoodHappy
	case score < 0:
		return MoodCaring
	default:
		return MoodThoughtful
	}
}
