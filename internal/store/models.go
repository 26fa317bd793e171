// Package store provides persistence for the question/answer knowledge base.
// The JSON file is the canonical format; SQLite is offered as an alternative backend.
package store

import "errors"

// ErrStoreUnavailable is returned when the knowledge base cannot be read or written:
// the file is missing, unreadable, malformed, or the write failed.
var ErrStoreUnavailable = errors.New("knowledge store unavailable")

// Entry is a single learned question and its answer.
// Questions are not unique; duplicates may accumulate over time.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// KnowledgeBase is the ordered sequence of entries loaded from a Store.
// It is owned by a single chat session and is not safe for concurrent use.
type KnowledgeBase struct {
	entries []Entry
}

// NewKnowledgeBase creates a knowledge base holding a copy of entries.
func NewKnowledgeBase(entries []Entry) *KnowledgeBase {
	kb := &KnowledgeBase{entries: make([]Entry, len(entries))}
	copy(kb.entries, entries)
	return kb
}

// Entries returns a copy of all entries in order.
func (kb *KnowledgeBase) Entries() []Entry {
	out := make([]Entry, len(kb.entries))
	copy(out, kb.entries)
	return out
}

// Questions returns the question text of every entry, in order.
func (kb *KnowledgeBase) Questions() []string {
	out := make([]string, len(kb.entries))
	for i, e := range kb.entries {
		out[i] = e.Question
	}
	return out
}

// AnswerFor returns the answer of the first entry whose question is exactly question.
func (kb *KnowledgeBase) AnswerFor(question string) (string, bool) {
	for _, e := range kb.entries {
		if e.Question == question {
			return e.Answer, true
		}
	}
	return "", false
}

// Append adds an entry at the end. It does not persist anything.
func (kb *KnowledgeBase) Append(e Entry) {
	kb.entries = append(kb.entries, e)
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Store defines the interface for knowledge base persistence.
// Load reads the whole base; Save overwrites it with the full in-memory contents.
type Store interface {
	Load() (*KnowledgeBase, error)
	Save(kb *KnowledgeBase) error
	Close() error
}
