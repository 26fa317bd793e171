package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// JSONStore persists the knowledge base as a single JSON document:
//
//	{"questions": [{"question": "...", "answer": "..."}]}
//
// Every Save rewrites the whole file in place. A crash mid-write can leave it truncated.
type JSONStore struct {
	path string
}

// document is the on-disk shape. Pointers distinguish a missing field from an empty one.
type document struct {
	Questions *[]rawEntry `json:"questions"`
}

type rawEntry struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// NewJSONStore creates a store backed by the file at path. The file is not touched until Load or Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads and validates the whole file.
func (s *JSONStore) Load() (*KnowledgeBase, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrStoreUnavailable, s.path, err)
	}

	entries, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return NewKnowledgeBase(entries), nil
}

// Save serializes the full knowledge base and overwrites the file.
func (s *JSONStore) Save(kb *KnowledgeBase) error {
	data, err := encodeDocument(kb.entries)
	if err != nil {
		return fmt.Errorf("%w: failed to encode knowledge base: %w", ErrStoreUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrStoreUnavailable, s.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *JSONStore) Close() error {
	return nil
}

func decodeDocument(data []byte) ([]Entry, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if doc.Questions == nil {
		return nil, fmt.Errorf(`missing "questions" field`)
	}

	entries := make([]Entry, 0, len(*doc.Questions))
	for i, raw := range *doc.Questions {
		if raw.Question == nil || raw.Answer == nil {
			return nil, fmt.Errorf("entry %d: question and answer are required", i)
		}
		entries = append(entries, Entry{Question: *raw.Question, Answer: *raw.Answer})
	}
	return entries, nil
}

func encodeDocument(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Questions []Entry `json:"questions"`
	}{entries}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
