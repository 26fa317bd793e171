package intent

import (
	"testing"

	"github.com/kittclouds/jay/pkg/lexicon"
)

func newDefaultDetector(t *testing.T) *Detector {
	t.Helper()
	f, err := lexicon.Default()
	if err != nil {
		t.Fatalf("Default lexicon: %v", err)
	}
	d, err := NewDetector(f)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	return d
}

func TestDetect(t *testing.T) {
	d := newDefaultDetector(t)

	tests := []struct {
		name     string
		userMsg  string
		expected string
	}{
		{name: "greeting", userMsg: "Bonjour", expected: Greeting},
		{name: "greeting with punctuation", userMsg: "Salut Jay !", expected: Greeting},
		{name: "farewell", userMsg: "Allez, au revoir", expected: Farewell},
		{name: "farewell accented", userMsg: "À bientôt !", expected: Farewell},
		{name: "preferences", userMsg: "Qu'est-ce que tu aimes ?", expected: Preferences},
		{name: "preferences inverted", userMsg: "Préfères-tu le rock ?", expected: Preferences},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := d.Detect(tt.userMsg)
			if !Has(scores, tt.expected) {
				t.Errorf("Detect(%q) = %v, want category %s", tt.userMsg, scores, tt.expected)
			}
		})
	}
}

func TestDetect_NoIntent(t *testing.T) {
	d := newDefaultDetector(t)

	for _, msg := range []string{
		"Quelle est ta couleur préférée ?",
		"Combien font 6 fois 7",
		"salutations distinguées",
		"",
	} {
		scores := d.Detect(msg)
		if scores == nil {
			t.Fatalf("Detect(%q) returned nil map", msg)
		}
		if len(scores) != 0 {
			t.Errorf("Detect(%q) = %v, want no intent", msg, scores)
		}
	}
}

func TestDetect_ScoresAccumulate(t *testing.T) {
	f := &lexicon.File{Intents: map[string][]string{
		Greeting: {"bonjour", "salut"},
	}}
	d, err := NewDetector(f)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}

	scores := d.Detect("Bonjour ! Salut ! bonjour")
	if scores[Greeting] != 3 {
		t.Errorf("greeting score = %v, want 3", scores[Greeting])
	}
}
