package companion

import (
	"strings"
	"testing"
)

func validCategory() Category {
	return Category{
		Key:       "test",
		Keywords:  []string{"alpha", "beta"},
		Templates: []string{"one {name}", "two {name}"},
		Mood:      MoodCaring,
	}
}

func TestValidateTable_DefaultTableIsValid(t *testing.T) {
	if err := ValidateTable(DefaultTable); err != nil {
		t.Errorf("ValidateTable(DefaultTable) = %v, want nil", err)
	}
}

func TestValidateTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Category)
		wantErr string
	}{
		{
			name:    "missing key",
			mutate:  func(c *Category) { c.Key = "" },
			wantErr: "no key",
		},
		{
			name:    "no keywords",
			mutate:  func(c *Category) { c.Keywords = nil },
			wantErr: "no keywords",
		},
		{
			name:    "empty keyword",
			mutate:  func(c *Category) { c.Keywords = []string{"ok", ""} },
			wantErr: "empty keyword",
		},
		{
			name:    "duplicate keyword",
			mutate:  func(c *Category) { c.Keywords = []string{"dup", "dup"} },
			wantErr: "duplicate keyword",
		},
		{
			name:    "single template",
			mutate:  func(c *Category) { c.Templates = []string{"only one"} },
			wantErr: "at least 2 templates",
		},
		{
			name:    "empty template",
			mutate:  func(c *Category) { c.Templates = []string{"fine", ""} },
			wantErr: "template 1 is empty",
		},
		{
			name:    "unknown mood",
			mutate:  func(c *Category) { c.Mood = "giddy" },
			wantErr: "unknown mood",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := validCategory()
			tt.mutate(&cat)

			err := ValidateTable([]Category{cat})
			if err == nil {
				t.Fatal("ValidateTable() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateTable() = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTable_EmptyTable(t *testing.T) {
	if err := ValidateTable(nil); err == nil {
		t.Error("ValidateTable(nil) = nil, want error")
	}
}

func TestValidateTable_DuplicateCategoryKeys(t *testing.T) {
	a := validCategory()
	b := validCategory()
	b.Keywords = []string{"gamma"}

	err := ValidateTable([]Category{a, b})
	if err == nil || !strings.Contains(err.Error(), "duplicate category key") {
		t.Errorf("ValidateTable() = %v, want duplicate category key error", err)
	}
}

func TestDefaultTable_Shape(t *testing.T) {
	// The first category must be anxiety: it encodes the intended
	// precedence over the later, more generic stress bucket.
	if DefaultTable[0].Key != "anxiety" {
		t.Errorf("DefaultTable[0].Key = %q, want anxiety", DefaultTable[0].Key)
	}

	for _, cat := range DefaultTable {
		for i, tmpl := range cat.Templates {
			if !strings.Contains(tmpl, "{name}") {
				t.Errorf("category %q template %d lacks a {name} placeholder", cat.Key, i)
			}
		}
		for _, kw := range cat.Keywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("category %q keyword %q must be lowercase", cat.Key, kw)
			}
		}
	}
}

func TestFollowUpTemplates_ReferenceTopic(t *testing.T) {
	for i, tmpl := range followUpTemplates {
		if !strings.Contains(tmpl, "{topic}") {
			t.Errorf("follow-up template %d lacks a {topic} placeholder", i)
		}
	}
}

func TestLexicons_Disjoint(t *testing.T) {
	neg := make(map[string]bool, len(negativeWords))
	for _, w := range negativeWords {
		neg[w] = true
	}
	for _, w := range positiveWords {
		if neg[w] {
			t.Errorf("word %q appears in both sentiment lexicons", w)
		}
	}
}
