package companion

import "math/rand"

// Greet produces the one-time personalized welcome. Callers invoke it
// only when the conversation history is empty; it carries no mood tag.
func Greet(name string, rng *rand.Rand) string {
	return interpolate(pick(welcomeTemplates, rng), name, "")
}
