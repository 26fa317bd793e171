// Package matcher finds the known question closest to a user input.
package matcher

import "sync"

// DefaultThreshold is the score a candidate must strictly exceed to match.
const DefaultThreshold = 0.5

// Normalizer reduces text to the form the scorer works on.
type Normalizer interface {
	Normalize(text string) string
}

// Scorer rates the similarity of two normalized strings in [0, 1].
type Scorer interface {
	Score(a, b string) float64
}

// Fitter is implemented by scorers that learn a vocabulary from a corpus.
type Fitter interface {
	Fit(docs []string)
}

// Match is the best-scoring known question.
type Match struct {
	Index    int
	Question string
	Score    float64
}

// Matcher scores normalized inputs against normalized known questions.
type Matcher struct {
	norm      Normalizer
	scorer    Scorer
	threshold float64

	mu    sync.Mutex
	cache map[string]string // raw question -> normalized form
}

// New creates a matcher. A non-positive threshold falls back to DefaultThreshold.
func New(norm Normalizer, scorer Scorer, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		norm:      norm,
		scorer:    scorer,
		threshold: threshold,
		cache:     make(map[string]string),
	}
}

// Threshold returns the strict acceptance threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Fit fits the scorer over the normalized form of questions.
// It reports false when the scorer has nothing to fit.
func (m *Matcher) Fit(questions []string) bool {
	f, ok := m.scorer.(Fitter)
	if !ok {
		return false
	}
	docs := make([]string, len(questions))
	for i, q := range questions {
		docs[i] = m.normalized(q)
	}
	f.Fit(docs)
	return true
}

// FindBestMatch returns the highest-scoring question when its score is strictly
// above the threshold. Ties go to the first question in order. An empty
// question list never matches.
func (m *Matcher) FindBestMatch(input string, questions []string) (Match, bool) {
	best, ok := m.Best(input, questions)
	if !ok || best.Score <= m.threshold {
		return Match{}, false
	}
	return best, true
}

// Best returns the highest-scoring question regardless of the threshold.
func (m *Matcher) Best(input string, questions []string) (Match, bool) {
	if len(questions) == 0 {
		return Match{}, false
	}

	normalized := m.norm.Normalize(input)
	best := Match{Index: -1, Score: -1}
	for i, q := range questions {
		score := m.scorer.Score(normalized, m.normalized(q))
		if score > best.Score {
			best = Match{Index: i, Question: q, Score: score}
		}
	}
	return best, true
}

func (m *Matcher) normalized(question string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n, ok := m.cache[question]; ok {
		return n
	}
	n := m.norm.Normalize(question)
	m.cache[question] = n
	return n
}
