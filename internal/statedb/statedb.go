// Package statedb keeps the tracked-file registry under .dvc/tmp as a
// SQLite database, the same sidecar the external tool's state-journal
// and state-wal markers belong to.
package statedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS tracked_files (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL UNIQUE,
	added_at TEXT NOT NULL
);
`

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// TrackedFile is one registered data path.
type TrackedFile struct {
	Path    string
	AddedAt string
}

// Store is the tracked-file registry backed by SQLite.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the registry location under a workspace root.
func DefaultPath(root string) string {
	return filepath.Join(root, ".dvc", "tmp", "state.db")
}

// Open opens or creates the registry at path. The parent directory
// (e.g. .dvc/tmp) is created if it does not exist.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&n); err != nil {
		return fmt.Errorf("check schema version: %w", err)
	}
	if n == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}
	var v int
	if err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v != schemaVersion {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record registers a tracked path, refreshing its timestamp when the
// path is already present.
func (s *Store) Record(path string) error {
	_, err := s.db.Exec(`
		INSERT INTO tracked_files(path, added_at) VALUES(?, ?)
		ON CONFLICT(path) DO UPDATE SET added_at = excluded.added_at`,
		path, nowUTC())
	if err != nil {
		return fmt.Errorf("record tracked file: %w", err)
	}
	return nil
}

// List returns every tracked path in insertion order.
func (s *Store) List() ([]TrackedFile, error) {
	rows, err := s.db.Query("SELECT path, added_at FROM tracked_files ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list tracked files: %w", err)
	}
	defer rows.Close()

	var files []TrackedFile
	for rows.Next() {
		var f TrackedFile
		if err := rows.Scan(&f.Path, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("scan tracked file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracked files: %w", err)
	}
	return files, nil
}

// Count returns the number of tracked paths.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tracked_files").Scan(&n); err != nil {
		return 0, fmt.Errorf("count tracked files: %w", err)
	}
	return n, nil
}
