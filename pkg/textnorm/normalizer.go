// Package textnorm reduces free text to a canonical bag of stems used for similarity scoring.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"github.com/orsinium-labs/stopwords"
)

// maxStemPasses bounds the fixed-point stemming loop.
const maxStemPasses = 8

// language ties a snowball stemmer name to its ISO stop-word list.
type language struct {
	stemmer  string
	isoCode  string
	builtins map[string]bool
}

var languages = map[string]language{
	"french":  {stemmer: "french", isoCode: "fr", builtins: frenchStopWords},
	"english": {stemmer: "english", isoCode: "en"},
	"spanish": {stemmer: "spanish", isoCode: "es"},
}

// Supported reports whether lang is a language the normalizer can handle.
func Supported(lang string) bool {
	_, ok := languages[lang]
	return ok
}

// Normalizer lowercases, tokenizes, removes stop words and stems.
// A Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	lang            language
	stopWords       map[string]bool      // Custom stopwords
	stopwordChecker *stopwords.Stopwords // Library list for the language
}

// New creates a normalizer for lang (e.g. "french").
func New(lang string) (*Normalizer, error) {
	l, ok := languages[lang]
	if !ok {
		return nil, fmt.Errorf("textnorm: unsupported language %q", lang)
	}

	n := &Normalizer{
		lang:            l,
		stopWords:       make(map[string]bool, len(l.builtins)),
		stopwordChecker: stopwords.MustGet(l.isoCode),
	}
	for w := range l.builtins {
		n.stopWords[w] = true
	}
	return n, nil
}

// Normalize returns the space-joined stems of the non-stop-word tokens of text.
// It returns "" when text has no alphanumeric tokens. Normalize is idempotent.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Stems(text), " ")
}

// Stems returns the stems Normalize would join, in input order.
func (n *Normalizer) Stems(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if n.IsStopWord(tok) {
			continue
		}
		stem := n.stem(tok)
		// A stem can collide with a stop word; dropping it keeps Normalize idempotent.
		if stem == "" || n.IsStopWord(stem) {
			continue
		}
		out = append(out, stem)
	}
	return out
}

// IsStopWord checks the custom list first, then the library list.
func (n *Normalizer) IsStopWord(word string) bool {
	if n.stopWords[word] {
		return true
	}
	return n.stopwordChecker != nil && n.stopwordChecker.Contains(word)
}

// stem applies the snowball stemmer until the word stops changing.
func (n *Normalizer) stem(word string) string {
	current := word
	for i := 0; i < maxStemPasses; i++ {
		next, err := snowball.Stem(current, n.lang.stemmer, true)
		if err != nil || next == current {
			return current
		}
		current = next
	}
	return current
}

// Tokenize lowercases text and splits it into runs of letters and digits.
// Every other rune, apostrophes and hyphens included, separates tokens,
// so French elisions such as "j'aime" yield "j" and "aime".
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
