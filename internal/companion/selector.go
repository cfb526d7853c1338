package companion

import (
	"math/rand"
	"strings"
)

// SelectResponse picks the reply for one turn. Three tiers, in order:
//
//  1. Categorical: a matched category supplies both the template pool and
//     the mood tag. The sentiment score is ignored here on purpose.
//  2. Follow-up: no category, but recent history carries a topic; the
//     reply references the earliest topic in the window.
//  3. Generic: a plain acknowledgment, mood derived from sentiment sign.
//
// Template choice is uniform random from the pool with no repeat
// avoidance; consecutive turns may legitimately produce the same
// template.
func SelectResponse(cat *Category, sum ContextSummary, sentiment int, name string, rng *rand.Rand) Result {
	if cat != nil {
		return Result{
			Text: interpolate(pick(cat.Templates, rng), name, ""),
			Mood: cat.Mood,
		}
	}

	if len(sum.RecentTopics) > 0 {
		return Result{
			Text: interpolate(pick(followUpTemplates, rng), name, sum.RecentTopics[0]),
			Mood: MoodThoughtful,
		}
	}

	return Result{
		Text: interpolate(pick(genericTemplates, rng), name, ""),
		Mood: moodFromSentiment(sentiment),
	}
}

// pick chooses one template uniformly at random.
func pick(pool []string, rng *rand.Rand) string {
	return pool[rng.Intn(len(pool))]
}

// interpolate substitutes the display name and, when present, the topic
// placeholder.
func interpolate(tmpl, name, topic string) string {
	out := strings.ReplaceAll(tmpl, "{name}", name)
	if topic != "" {
		out = strings.ReplaceAll(out, "{topic}", topic)
	}
	return out
}
