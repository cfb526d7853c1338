package companion

import (
	"math/rand"
	"strings"
	"testing"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSelectResponse_CategoricalTier(t *testing.T) {
	cat := &DefaultTable[0] // anxiety

	for seed := int64(0); seed < 20; seed++ {
		res := SelectResponse(cat, ContextSummary{}, 0, "Sam", testRand(seed))

		if res.Mood != MoodCaring {
			t.Fatalf("seed %d: Mood = %q, want %q (category's fixed mood)", seed, res.Mood, MoodCaring)
		}
		if strings.Contains(res.Text, "{name}") {
			t.Fatalf("seed %d: unsubstituted placeholder in %q", seed, res.Text)
		}
		found := false
		for _, tmpl := range cat.Templates {
			if res.Text == interpolate(tmpl, "Sam", "") {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("seed %d: reply %q not from the anxiety pool", seed, res.Text)
		}
	}
}

func TestSelectResponse_CategoricalMoodIgnoresSentiment(t *testing.T) {
	cat := &DefaultTable[0] // anxiety, mood caring

	// Even a strongly positive sentiment must not change a categorical mood.
	for _, sentiment := range []int{-5, 0, 5} {
		res := SelectResponse(cat, ContextSummary{}, sentiment, "Sam", testRand(1))
		if res.Mood != MoodCaring {
			t.Errorf("sentiment %d: Mood = %q, want %q", sentiment, res.Mood, MoodCaring)
		}
	}
}

func TestSelectResponse_FollowUpTier(t *testing.T) {
	sum := ContextSummary{RecentTopics: []string{"work", "family"}, MessageCount: 4}

	for seed := int64(0); seed < 20; seed++ {
		res := SelectResponse(nil, sum, 0, "Sam", testRand(seed))

		if res.Mood != MoodThoughtful {
			t.Fatalf("seed %d: Mood = %q, want %q", seed, res.Mood, MoodThoughtful)
		}
		if !strings.Contains(res.Text, "work") {
			t.Fatalf("seed %d: follow-up %q does not reference the first recent topic", seed, res.Text)
		}
		if strings.Contains(res.Text, "{topic}") || strings.Contains(res.Text, "{name}") {
			t.Fatalf("seed %d: unsubstituted placeholder in %q", seed, res.Text)
		}
	}
}

func TestSelectResponse_GenericTier(t *testing.T) {
	tests := []struct {
		name      string
		sentiment int
		want      Mood
	}{
		{name: "positive sentiment", sentiment: 2, want: MoodHappy},
		{name: "negative sentiment", sentiment: -1, want: MoodCaring},
		{name: "neutral sentiment", sentiment: 0, want: MoodThoughtful},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SelectResponse(nil, ContextSummary{}, tt.sentiment, "Sam", testRand(3))
			if res.Mood != tt.want {
				t.Errorf("Mood = %q, want %q", res.Mood, tt.want)
			}
			if !strings.Contains(res.Text, "Sam") {
				t.Errorf("generic reply %q does not mention the user", res.Text)
			}
		})
	}
}

func TestSelectResponse_FollowUpBeatsGeneric(t *testing.T) {
	sum := ContextSummary{RecentTopics: []string{"health"}}

	// Non-zero sentiment must not pull a follow-up reply into the generic
	// tier's sentiment mood.
	res := SelectResponse(nil, sum, 3, "Sam", testRand(7))
	if res.Mood != MoodThoughtful {
		t.Errorf("Mood = %q, want %q (follow-up tier fires before generic)", res.Mood, MoodThoughtful)
	}
	if !strings.Contains(res.Text, "health") {
		t.Errorf("reply %q should reference the recent topic", res.Text)
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name  string
		tmpl  string
		user  string
		topic string
		want  string
	}{
		{
			name: "name substituted everywhere",
			tmpl: "{name}, I hear you, {name}.",
			user: "Ana",
			want: "Ana, I hear you, Ana.",
		},
		{
			name:  "topic substituted",
			tmpl:  "more about {topic}?",
			user:  "Ana",
			topic: "work",
			want:  "more about work?",
		},
		{
			name: "no placeholders",
			tmpl: "plain text",
			user: "Ana",
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interpolate(tt.tmpl, tt.user, tt.topic); got != tt.want {
				t.Errorf("interpolate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPick_UniformCoverage(t *testing.T) {
	pool := []string{"a", "b", "c"}
	rng := testRand(42)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[pick(pool, rng)] = true
	}

	for _, tmpl := range pool {
		if !seen[tmpl] {
			t.Errorf("template %q never selected in 100 draws", tmpl)
		}
	}
}
