// Package store persists finished-session history in a local SQLite
// database. The trainer works without it; history and re-export are the
// only consumers.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id                TEXT PRIMARY KEY,
			started_at        TEXT NOT NULL,
			mode              TEXT NOT NULL,
			seed              INTEGER NOT NULL,
			total             INTEGER NOT NULL,
			first_try_correct INTEGER NOT NULL,
			accuracy_pct      INTEGER NOT NULL,
			duration_ms       INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attempts (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id        TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			position          INTEGER NOT NULL,
			question_id       TEXT NOT NULL,
			domain            TEXT NOT NULL,
			question          TEXT NOT NULL,
			correct_text      TEXT NOT NULL,
			explanation       TEXT NOT NULL,
			first_try_correct INTEGER NOT NULL,
			tries             INTEGER NOT NULL,
			time_ms           INTEGER NOT NULL,
			chosen            TEXT NOT NULL,
			flagged           INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS attempts_session ON attempts(session_id, position)`,
		`CREATE TABLE IF NOT EXISTS llm_requests (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at    TEXT NOT NULL,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			latency_ms    INTEGER NOT NULL,
			success       INTEGER NOT NULL,
			error_message TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PMPREP_DB environment variable
// 2. $XDG_DATA_HOME/pmprep/pmprep.db
// 3. ~/.local/share/pmprep/pmprep.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PMPREP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "pmprep", "pmprep.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
