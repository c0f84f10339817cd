// Package history records every generated bundle in a small SQLite
// database so the operator can see what was handed to the chat
// assistant and when.
//
// History is an optional subsystem: if the database cannot be opened
// the core workflow keeps working and the command layer logs a
// warning instead of failing. Uses the CGo-free modernc sqlite
// driver.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Record is one bundle generation event.
type Record struct {
	ID        int64
	Phase     int
	Project   string
	Feature   string
	Bytes     int
	CreatedAt string
}

// Store is the bundle history backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open creates the parent directory if needed, opens the database
// with WAL mode and runs the schema migration.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bundles (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			phase      INTEGER NOT NULL,
			project    TEXT NOT NULL,
			feature    TEXT NOT NULL DEFAULT '',
			bytes      INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordBundle appends one generation event.
func (s *Store) RecordBundle(phase int, project, feature string, size int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO bundles (phase, project, feature, bytes, created_at) VALUES (?, ?, ?, ?, ?)`,
		phase, project, feature, size, now,
	)
	if err != nil {
		return fmt.Errorf("history: record bundle: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, phase, project, feature, bytes, created_at
		 FROM bundles ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Phase, &r.Project, &r.Feature, &r.Bytes, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
