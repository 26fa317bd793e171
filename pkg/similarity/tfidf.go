// Package similarity provides a TF-IDF vector space and cosine similarity
// over pre-normalized text.
package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// minTokenRunes drops one-character tokens from the vocabulary and from projections.
const minTokenRunes = 2

// component is one non-zero coordinate of a sparse vector.
type component struct {
	index  int
	weight float64
}

// Vector is an L2-normalized sparse vector with components sorted by index.
type Vector []component

// VectorSpace is a TF-IDF model fitted once over a corpus.
// Terms unseen at fit time are ignored when projecting.
type VectorSpace struct {
	vocab map[string]int
	idf   []float64
}

// NewVectorSpace returns an empty, unfitted space. Every projection is the zero vector until Fit.
func NewVectorSpace() *VectorSpace {
	return &VectorSpace{vocab: make(map[string]int)}
}

// Fit rebuilds the vocabulary and idf weights from docs.
// idf(t) = ln((1 + n) / (1 + df(t))) + 1, so terms present in every document keep weight 1.
func (v *VectorSpace) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokens(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
}

// VocabularySize returns the number of distinct fitted terms.
func (v *VectorSpace) VocabularySize() int {
	return len(v.vocab)
}

// Contains reports whether term is part of the fitted vocabulary.
func (v *VectorSpace) Contains(term string) bool {
	_, ok := v.vocab[term]
	return ok
}

// Transform projects doc onto the fitted vocabulary.
func (v *VectorSpace) Transform(doc string) Vector {
	counts := make(map[int]float64)
	for _, tok := range tokens(doc) {
		if idx, ok := v.vocab[tok]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(counts))
	for idx, tf := range counts {
		vec = append(vec, component{index: idx, weight: tf * v.idf[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].index < vec[j].index })

	var norm float64
	for _, c := range vec {
		norm += c.weight * c.weight
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].weight /= norm
	}
	return vec
}

// Score returns the cosine similarity of a and b in the fitted space, in [0, 1].
// It is symmetric, and a string with any in-vocabulary term scores 1 against itself.
func (v *VectorSpace) Score(a, b string) float64 {
	return Cosine(v.Transform(a), v.Transform(b))
}

// Cosine returns the dot product of two normalized vectors, clamped to [0, 1].
// Zero vectors score 0.
func Cosine(a, b Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].index == b[j].index:
			dot += a[i].weight * b[j].weight
			i++
			j++
		case a[i].index < b[j].index:
			i++
		default:
			j++
		}
	}

	if dot > 1 {
		return 1
	}
	if dot < 0 {
		return 0
	}
	return dot
}

func tokens(doc string) []string {
	fields := strings.Fields(doc)
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			out = append(out, f)
		}
	}
	return out
}
