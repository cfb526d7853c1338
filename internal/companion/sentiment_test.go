package companion

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "positive phrase",
			text: "I feel happy and grateful",
			want: 2,
		},
		{
			name: "negative phrase",
			text: "I feel sad and hopeless",
			want: -2,
		},
		{
			name: "empty text",
			text: "",
			want: 0,
		},
		{
			name: "mixed cancels out",
			text: "happy but sad",
			want: 0,
		},
		{
			name: "case insensitive",
			text: "GREAT and WONDERFUL",
			want: 2,
		},
		{
			name: "substring containment without word boundaries",
			text: "the sadness lingers", // "sad" is contained in "sadness"
			want: -1,
		},
		{
			name: "each lexicon word counts once even when repeated",
			text: "happy happy happy",
			want: 1,
		},
		{
			name: "neutral text",
			text: "I went to the shop",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.text); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScore_SignProperties(t *testing.T) {
	if got := Score("I feel happy and grateful"); got <= 0 {
		t.Errorf("Score(positive) = %d, want > 0", got)
	}
	if got := Score("I feel sad and hopeless"); got >= 0 {
		t.Errorf("Score(negative) = %d, want < 0", got)
	}
	if got := Score(""); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
}

func TestMoodFromSentiment(t *testing.T) {
	tests := []struct {
		score int
		want  Mood
	}{
		{score: 3, want: MoodHappy},
		{score: 1, want: MoodHappy},
		{score: 0, want: MoodThoughtful},
		{score: -1, want: MoodCaring},
		{score: -5, want: MoodCaring},
	}

	for _, tt := range tests {
		if got := moodFromSentiment(tt.score); got != tt.want {
			t.Errorf("moodFromSentiment(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
