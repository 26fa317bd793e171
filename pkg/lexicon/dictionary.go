// Package lexicon provides a phrase dictionary backed by Aho-Corasick.
// A single automaton serves as both dictionary lookup AND text scanner.
package lexicon

import (
	"sort"
	"strings"
	"unicode"

	"github.com/coregx/ahocorasick"
)

// ============================================================================
// CANONICALIZER - Used for BOTH pattern compilation AND text scanning
// ============================================================================

// isJoiner returns true for punctuation kept INSIDE a term ("peut-être", "week-end").
// Apostrophes are separators so elisions like "j'adore" expose "adore".
func isJoiner(r rune) bool {
	switch r {
	case '-', '–', '—':
		return true
	default:
		return false
	}
}

// Canonicalize transforms text into the normalized form used for matching.
// Rules:
// - Fold to lowercase
// - Preserve letters, digits, and hyphens
// - Replace all other characters with a single space
// - Trim leading/trailing spaces
func Canonicalize(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	lastWasSpace := true // Start true to trim leading spaces

	for _, ch := range s {
		c := unicode.ToLower(ch)
		if c == '–' || c == '—' {
			c = '-'
		}

		if unicode.IsLetter(c) || unicode.IsDigit(c) || isJoiner(c) {
			out.WriteRune(c)
			lastWasSpace = false
		} else if !lastWasSpace {
			out.WriteRune(' ')
			lastWasSpace = true
		}
	}

	return strings.TrimSuffix(out.String(), " ")
}

// ============================================================================
// Dictionary
// ============================================================================

// Term is a phrase attached to a label with a weight.
// Intents use the label as the category; sentiment uses the weight as polarity.
type Term struct {
	Phrase string
	Label  string
	Weight float64
}

// Dictionary uses AC for both exact lookup AND text scanning.
type Dictionary struct {
	// The AC automaton built from all canonical phrases
	ac *ahocorasick.Automaton

	// Pattern index -> terms (several terms may share a phrase)
	patternTerms [][]Term

	// Canonical phrase -> pattern index
	patternIndex map[string]int

	// All patterns in order (for AC builder)
	patterns []string
}

// Compile builds a Dictionary from terms. Terms whose phrase canonicalizes to "" are skipped.
func Compile(terms []Term) (*Dictionary, error) {
	d := &Dictionary{
		patternIndex: make(map[string]int),
	}

	for _, t := range terms {
		key := Canonicalize(t.Phrase)
		if key == "" {
			continue
		}

		if idx, exists := d.patternIndex[key]; exists {
			d.patternTerms[idx] = append(d.patternTerms[idx], t)
			continue
		}
		d.patternIndex[key] = len(d.patterns)
		d.patterns = append(d.patterns, key)
		d.patternTerms = append(d.patternTerms, []Term{t})
	}

	if len(d.patterns) == 0 {
		return d, nil
	}

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(d.patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	d.ac = automaton

	return d, nil
}

// Len returns the number of distinct phrases.
func (d *Dictionary) Len() int {
	return len(d.patterns)
}

// Lookup returns the terms registered for exactly this phrase.
func (d *Dictionary) Lookup(phrase string) []Term {
	idx, exists := d.patternIndex[Canonicalize(phrase)]
	if !exists {
		return nil
	}
	return d.patternTerms[idx]
}

// ============================================================================
// Text Scanning
// ============================================================================

// Hit is a whole-word phrase occurrence in canonicalized text.
type Hit struct {
	Text       string // Canonical phrase matched
	Start      int    // Byte offset in the canonical text
	End        int    // Byte offset (exclusive)
	TokenStart int    // Index of the first token covered
	TokenEnd   int    // Index after the last token covered
	Terms      []Term
}

// Scan canonicalizes text and returns whole-word, non-overlapping hits
// ordered by position. When hits overlap the longest one starting first wins.
func (d *Dictionary) Scan(text string) []Hit {
	if d.ac == nil {
		return nil
	}

	canonical := Canonicalize(text)
	haystack := []byte(canonical)

	// Every candidate is collected; overlap handling is done below.
	matches := d.ac.FindAllOverlapping(haystack)

	candidates := make([]Hit, 0, len(matches))
	for _, m := range matches {
		if !isWordBoundary(haystack, m.Start, m.End) {
			continue
		}
		candidates = append(candidates, Hit{
			Text:  canonical[m.Start:m.End],
			Start: m.Start,
			End:   m.End,
			Terms: d.patternTerms[m.PatternID],
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End > candidates[j].End
	})

	result := make([]Hit, 0, len(candidates))
	lastEnd := -1
	for _, h := range candidates {
		if h.Start < lastEnd {
			continue
		}
		h.TokenStart = strings.Count(canonical[:h.Start], " ")
		h.TokenEnd = h.TokenStart + strings.Count(h.Text, " ") + 1
		result = append(result, h)
		lastEnd = h.End
	}

	return result
}

// isWordBoundary reports whether [start, end) is delimited by spaces or the text edges.
func isWordBoundary(b []byte, start, end int) bool {
	if start < 0 || end > len(b) || start >= end {
		return false
	}
	if start > 0 && b[start-1] != ' ' {
		return false
	}
	if end < len(b) && b[end] != ' ' {
		return false
	}
	return true
}
