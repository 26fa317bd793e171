package store

import (
	"errors"
	"fmt"
	"os"
)

// Backend names a Store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendJSON, BackendSQLite:
		return Backend(s), nil
	default:
		return "", fmt.Errorf("unknown store backend %q (must be json or sqlite)", s)
	}
}

// Options selects and locates a knowledge store.
type Options struct {
	Backend Backend
	Path    string
}

// Open returns the store described by opts. The backing file must already exist:
// a missing knowledge base is reported as ErrStoreUnavailable rather than silently created.
func Open(opts Options) (Store, error) {
	if _, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, opts.Path, err)
	}

	switch opts.Backend {
	case BackendJSON:
		return NewJSONStore(opts.Path), nil
	case BackendSQLite:
		return NewSQLiteStore(opts.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

// Init creates an empty knowledge base at opts.Path. It refuses to overwrite an existing file.
func Init(opts Options) error {
	if _, err := os.Stat(opts.Path); err == nil {
		return fmt.Errorf("knowledge base %s already exists", opts.Path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", opts.Path, err)
	}

	var s Store
	switch opts.Backend {
	case BackendJSON:
		s = NewJSONStore(opts.Path)
	case BackendSQLite:
		sq, err := NewSQLiteStore(opts.Path)
		if err != nil {
			return err
		}
		s = sq
	default:
		return fmt.Errorf("unknown store backend %q", opts.Backend)
	}
	defer s.Close()

	return s.Save(NewKnowledgeBase(nil))
}

// Copy loads every entry from src and saves them to dst, replacing dst's contents.
// It returns the number of entries copied.
func Copy(dst, src Store) (int, error) {
	kb, err := src.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load source: %w", err)
	}
	if err := dst.Save(kb); err != nil {
		return 0, fmt.Errorf("failed to save destination: %w", err)
	}
	return kb.Len(), nil
}
