// Package history persists evaluated inputs and their results to a SQLite
// database, backing the interactive recall commands.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one evaluated input with its rendered results.
type Entry struct {
	ID        int64
	Input     string
	Parsed    string
	SI        string
	CGS       string
	Converted string
	CreatedAt time.Time
}

// Store handles SQLite operations for evaluation history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the history database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		parsed TEXT,
		si TEXT,
		cgs TEXT,
		converted TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Append stores one evaluated input and returns its one-based sequence
// number within the session-independent log.
func (s *Store) Append(e *Entry) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO entries (input, parsed, si, cgs, converted, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Input, e.Parsed, e.SI, e.CGS, e.Converted, time.Now())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

// Get returns the entry with the given sequence number.
func (s *Store) Get(id int64) (*Entry, error) {
	e := &Entry{}
	err := s.db.QueryRow(`
		SELECT id, input, parsed, si, cgs, converted, created_at
		FROM entries WHERE id = ?
	`, id).Scan(&e.ID, &e.Input, &e.Parsed, &e.SI, &e.CGS, &e.Converted, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no history entry %d", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Last returns the most recent entry, or nil when the log is empty.
func (s *Store) Last() (*Entry, error) {
	e := &Entry{}
	err := s.db.QueryRow(`
		SELECT id, input, parsed, si, cgs, converted, created_at
		FROM entries ORDER BY id DESC LIMIT 1
	`).Scan(&e.ID, &e.Input, &e.Parsed, &e.SI, &e.CGS, &e.Converted, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]*Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, input, parsed, si, cgs, converted, created_at
		FROM entries ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.Input, &e.Parsed, &e.SI, &e.CGS, &e.Converted, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}
