// Package store is the SQLite persistence layer: uploaded-file metadata,
// calculated KPI values, date-range selections and chart aggregates,
// each keyed by an opaque user id.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNotFound marks a lookup with no record, as opposed to a real
// storage failure.
var ErrNotFound = errors.New("record not found")

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and ensures the schema.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite works best on a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ClearAll deletes every record across all four stores for the user.
// Destructive and irreversible.
func (s *Store) ClearAll(userID string) error {
	tables := []string{"uploaded_files", "calculated_kpis", "date_ranges", "chart_data"}
	for _, table := range tables {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE user_id = ?", userID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
