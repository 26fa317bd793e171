// Package intent detects conversational intents from keyword phrases.
package intent

import (
	"github.com/kittclouds/jay/pkg/lexicon"
)

// Categories recognized by the chat responder.
const (
	Greeting    = "greeting"
	Farewell    = "farewell"
	Preferences = "preferences"
)

// Detector maps user text to intent categories and scores.
type Detector struct {
	dict *lexicon.Dictionary
}

// NewDetector compiles the intent section of a lexicon.
func NewDetector(f *lexicon.File) (*Detector, error) {
	dict, err := lexicon.Compile(f.IntentTerms())
	if err != nil {
		return nil, err
	}
	return &Detector{dict: dict}, nil
}

// Detect returns the score of every category with at least one phrase in text.
// A category's score is the sum of the weights of its matched phrases.
// The map is empty, never nil, when nothing matches.
func (d *Detector) Detect(text string) map[string]float64 {
	scores := make(map[string]float64)

	for _, hit := range d.dict.Scan(text) {
		for _, term := range hit.Terms {
			scores[term.Label] += term.Weight
		}
	}

	return scores
}

// Has reports whether category is present in scores.
func Has(scores map[string]float64, category string) bool {
	_, ok := scores[category]
	return ok
}
