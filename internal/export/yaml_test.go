package export

import (
	"bytes"
	"testing"

	"github.com/mindwell/companion/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExport(t *testing.T) {
	conv := sampleConversation()

	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(conv, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var round internal.Conversation
	if err := yaml.Unmarshal(buf.Bytes(), &round); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if round.ProfileID != "p1" || round.ProfileName != "Sam" {
		t.Errorf("profile = %q/%q, want p1/Sam", round.ProfileID, round.ProfileName)
	}
	if len(round.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(round.Messages))
	}
	if round.Messages[0].Text != "work has been stressful" {
		t.Errorf("messages[0].text = %q", round.Messages[0].Text)
	}
	if round.Messages[1].Sender != internal.SenderCompanion {
		t.Errorf("messages[1].sender = %q, want companion", round.Messages[1].Sender)
	}
	if !bytes.Contains(buf.Bytes(), []byte("profile_name: Sam")) {
		t.Errorf("expected snake_case keys in output:\n%s", buf.String())
	}
}
