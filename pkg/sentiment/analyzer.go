// Package sentiment scores the polarity of short user messages from a word lexicon.
package sentiment

import (
	"strings"

	"github.com/kittclouds/jay/pkg/lexicon"
)

const (
	// negationFactor flips and dampens a negated polarity ("pas bon" is mildly negative).
	negationFactor = -0.5
	// negationWindow is how many tokens before a hit can carry its negation.
	negationWindow = 3
)

// Analyzer computes a polarity score in [-1, 1].
type Analyzer struct {
	dict         *lexicon.Dictionary
	intensifiers map[string]float64
	negators     map[string]bool
}

// NewAnalyzer compiles the sentiment section of a lexicon.
func NewAnalyzer(f *lexicon.File) (*Analyzer, error) {
	dict, err := lexicon.Compile(f.PolarityTerms())
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		dict:         dict,
		intensifiers: make(map[string]float64, len(f.Sentiment.Intensifiers)),
		negators:     make(map[string]bool, len(f.Sentiment.Negators)),
	}
	for w, factor := range f.Sentiment.Intensifiers {
		a.intensifiers[lexicon.Canonicalize(w)] = factor
	}
	for _, w := range f.Sentiment.Negators {
		a.negators[lexicon.Canonicalize(w)] = true
	}
	return a, nil
}

// Polarity returns the mean polarity of the lexicon words found in text.
// An intensifier right before a word scales it; a negator up to three words
// before it, or right after it, flips and halves it. Text with no lexicon
// words scores 0.
func (a *Analyzer) Polarity(text string) float64 {
	hits := a.dict.Scan(text)
	if len(hits) == 0 {
		return 0
	}
	tokens := strings.Fields(lexicon.Canonicalize(text))

	var sum float64
	for _, h := range hits {
		score := h.Terms[0].Weight

		if h.TokenStart > 0 {
			if factor, ok := a.intensifiers[tokens[h.TokenStart-1]]; ok {
				score *= factor
			}
		}
		if a.negated(tokens, h) {
			score *= negationFactor
		}

		sum += score
	}

	return clamp(sum / float64(len(hits)))
}

func (a *Analyzer) negated(tokens []string, h lexicon.Hit) bool {
	from := h.TokenStart - negationWindow
	if from < 0 {
		from = 0
	}
	for i := from; i < h.TokenStart; i++ {
		if a.negators[tokens[i]] {
			return true
		}
	}
	// "je n'aime pas": the negator follows the verb.
	return h.TokenEnd < len(tokens) && a.negators[tokens[h.TokenEnd]]
}

func clamp(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	default:
		return x
	}
}
