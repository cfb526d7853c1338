package companion

import (
	"strings"
	"testing"
)

func TestGreet_AlwaysContainsName(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		got := Greet("Sam", testRand(seed))
		if !strings.Contains(got, "Sam") {
			t.Errorf("seed %d: Greet(\"Sam\") = %q, want name in every template", seed, got)
		}
		if strings.Contains(got, "{name}") {
			t.Errorf("seed %d: unsubstituted placeholder in %q", seed, got)
		}
	}
}

func TestGreet_DrawsFromAllTemplates(t *testing.T) {
	rng := testRand(9)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[Greet("Sam", rng)] = true
	}

	if len(seen) != len(welcomeTemplates) {
		t.Errorf("saw %d distinct greetings in 100 draws, want %d", len(seen), len(welcomeTemplates))
	}
}

func TestGreet_Deterministic(t *testing.T) {
	a := Greet("Sam", testRand(5))
	b := Greet("Sam", testRand(5))
	if a != b {
		t.Errorf("same seed produced different greetings:\n%q\n%q", a, b)
	}
}
