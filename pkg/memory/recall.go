// Package memory holds the short-term state of a chat session:
// answers learned during the session and the interaction history.
// Nothing here is persisted; both are discarded when the process exits.
package memory

import (
	"strings"

	"github.com/kittclouds/jay/internal/store"
)

// Recall is the ordered list of question/answer pairs learned this session.
type Recall struct {
	entries []store.Entry
}

// NewRecall returns an empty recall memory.
func NewRecall() *Recall {
	return &Recall{}
}

// Remember appends a learned pair.
func (r *Recall) Remember(question, answer string) {
	r.entries = append(r.entries, store.Entry{Question: question, Answer: answer})
}

// Lookup scans entries in order and returns the first one whose question
// text appears verbatim inside input. Matching is case-sensitive.
func (r *Recall) Lookup(input string) (store.Entry, bool) {
	for _, e := range r.entries {
		if strings.Contains(input, e.Question) {
			return e, true
		}
	}
	return store.Entry{}, false
}

// Entries returns a copy of the remembered pairs in order.
func (r *Recall) Entries() []store.Entry {
	out := make([]store.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of remembered pairs.
func (r *Recall) Len() int {
	return len(r.entries)
}
