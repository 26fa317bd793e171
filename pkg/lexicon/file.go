package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// File is the on-disk lexicon shared by the intent detector and the sentiment analyzer.
type File struct {
	Intents   map[string][]string `yaml:"intents"`
	Sentiment SentimentSection    `yaml:"sentiment"`
}

// SentimentSection holds polarity scores, intensifier factors and negation words.
type SentimentSection struct {
	Polarity     map[string]float64 `yaml:"polarity"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negators     []string           `yaml:"negators"`
}

// Default returns the embedded French/English lexicon.
func Default() (*File, error) {
	return Parse(defaultYAML)
}

// LoadFile reads a lexicon from path. An empty path yields the default lexicon.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a lexicon document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	for cat, phrases := range f.Intents {
		if len(phrases) == 0 {
			return nil, fmt.Errorf("intent %q has no phrases", cat)
		}
	}
	for word, p := range f.Sentiment.Polarity {
		if p < -1 || p > 1 {
			return nil, fmt.Errorf("polarity of %q is %v, must be within [-1, 1]", word, p)
		}
	}
	return &f, nil
}

// IntentTerms flattens the intent section into weighted terms, one per phrase.
// Categories are visited in sorted order so compilation is deterministic.
func (f *File) IntentTerms() []Term {
	cats := make([]string, 0, len(f.Intents))
	for cat := range f.Intents {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	var terms []Term
	for _, cat := range cats {
		for _, phrase := range f.Intents[cat] {
			terms = append(terms, Term{Phrase: phrase, Label: cat, Weight: 1})
		}
	}
	return terms
}

// PolarityTerms returns one term per polarity entry, sorted by phrase.
func (f *File) PolarityTerms() []Term {
	words := make([]string, 0, len(f.Sentiment.Polarity))
	for w := range f.Sentiment.Polarity {
		words = append(words, w)
	}
	sort.Strings(words)

	terms := make([]Term, 0, len(words))
	for _, w := range words {
		terms = append(terms, Term{Phrase: w, Label: "polarity", Weight: f.Sentiment.Polarity[w]})
	}
	return terms
}
