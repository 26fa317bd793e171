package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/asg017/sqlite-vec-go-bindings/ncruces"
	_ "github.com/ncruces/go-sqlite3/driver"
)

// SQLiteStore keeps the knowledge base in a single SQLite table.
// Entry order is preserved through the position column.
type SQLiteStore struct {
	mu  sync.Mutex
	db  *sql.DB
	dsn string
}

// schema defines the entries table. position is the zero-based index in the knowledge base.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
    position INTEGER PRIMARY KEY,
    question TEXT NOT NULL,
    answer TEXT NOT NULL
);
`

// NewSQLiteStore opens (creating if needed) the database at dsn and ensures the schema exists.
// Use a file path for persistent storage.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrStoreUnavailable, err)
	}
	// One connection keeps ":memory:" databases coherent across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to create schema: %w", ErrStoreUnavailable, err)
	}

	return &SQLiteStore{db: db, dsn: dsn}, nil
}

// Load reads every entry ordered by position.
func (s *SQLiteStore) Load() (*KnowledgeBase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT question, answer FROM entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query entries: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Question, &e.Answer); err != nil {
			return nil, fmt.Errorf("%w: failed to scan entry: %w", ErrStoreUnavailable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read entries: %w", ErrStoreUnavailable, err)
	}

	return NewKnowledgeBase(entries), nil
}

// Save replaces the table contents with kb inside a single transaction.
func (s *SQLiteStore) Save(kb *KnowledgeBase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("%w: failed to clear entries: %w", ErrStoreUnavailable, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO entries (position, question, answer) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %w", ErrStoreUnavailable, err)
	}
	defer stmt.Close()

	for i, e := range kb.entries {
		if _, err := stmt.Exec(i, e.Question, e.Answer); err != nil {
			return fmt.Errorf("%w: failed to insert entry %d: %w", ErrStoreUnavailable, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
