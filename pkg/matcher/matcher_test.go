package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/jay/pkg/similarity"
	"github.com/kittclouds/jay/pkg/textnorm"
)

// lowerNorm keeps tests independent of stemming details.
type lowerNorm struct{}

func (lowerNorm) Normalize(text string) string { return strings.ToLower(text) }

// tableScorer returns fixed scores keyed by the candidate question.
type tableScorer map[string]float64

func (s tableScorer) Score(_, b string) float64 { return s[b] }

func TestFindBestMatch_EmptyQuestions(t *testing.T) {
	m := New(lowerNorm{}, tableScorer{}, DefaultThreshold)

	_, ok := m.FindBestMatch("bonjour", nil)
	assert.False(t, ok)
	_, ok = m.FindBestMatch("bonjour", []string{})
	assert.False(t, ok)
}

func TestFindBestMatch_StrictThreshold(t *testing.T) {
	tests := []struct {
		name   string
		scores tableScorer
		want   bool
	}{
		{name: "exactly threshold", scores: tableScorer{"q1": 0.5, "q2": 0.2}, want: false},
		{name: "below threshold", scores: tableScorer{"q1": 0.49, "q2": 0.1}, want: false},
		{name: "above threshold", scores: tableScorer{"q1": 0.51, "q2": 0.1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(lowerNorm{}, tt.scores, DefaultThreshold)
			match, ok := m.FindBestMatch("input", []string{"q1", "q2"})
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, "q1", match.Question)
			}
		})
	}
}

func TestFindBestMatch_TiesGoToFirst(t *testing.T) {
	m := New(lowerNorm{}, tableScorer{"a": 0.9, "b": 0.9, "c": 0.3}, DefaultThreshold)

	match, ok := m.FindBestMatch("input", []string{"c", "a", "b"})
	require.True(t, ok)
	assert.Equal(t, "a", match.Question)
	assert.Equal(t, 1, match.Index)
}

func TestFindBestMatch_WithVectorSpace(t *testing.T) {
	norm, err := textnorm.New("french")
	require.NoError(t, err)

	questions := []string{
		"Quel âge as-tu ?",
		"Quelle est ta couleur préférée ?",
		"Quel est ton groupe de musique préféré ?",
	}
	space := similarity.NewVectorSpace()
	m := New(norm, space, DefaultThreshold)
	require.True(t, m.Fit(questions))
	assert.True(t, space.Contains(norm.Normalize("couleur")))

	match, ok := m.FindBestMatch("Quelle est ta couleur préférée ?", questions)
	require.True(t, ok)
	assert.Equal(t, questions[1], match.Question)
	assert.InDelta(t, 1.0, match.Score, 1e-12)

	_, ok = m.FindBestMatch("Raconte-moi une blague", questions)
	assert.False(t, ok)
}

func TestFit_ScorerWithoutVocabulary(t *testing.T) {
	m := New(lowerNorm{}, tableScorer{}, DefaultThreshold)
	assert.False(t, m.Fit([]string{"q"}))
}

func TestNew_DefaultThreshold(t *testing.T) {
	assert.Equal(t, DefaultThreshold, New(lowerNorm{}, tableScorer{}, 0).Threshold())
	assert.Equal(t, 0.7, New(lowerNorm{}, tableScorer{}, 0.7).Threshold())
}
