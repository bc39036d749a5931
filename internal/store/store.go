// Package store keeps a history of puzzle answers in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Latest when a day/part has never been run.
var ErrNotFound = errors.New("no recorded run")

// Entry is one recorded run of one part of one day.
type Entry struct {
	ID        string
	Day       int
	Part      int
	Answer    string
	Error     string // empty when the run succeeded
	Elapsed   time.Duration
	Source    string // "input" or "example"
	CreatedAt time.Time
}

// Failed reports whether the run ended in an error.
func (e Entry) Failed() bool { return e.Error != "" }

// Store records runs to a SQLite database.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewStore opens or creates the database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer keeps sqlite from returning SQLITE_BUSY under SolveAll.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		answer TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		elapsed_ns INTEGER NOT NULL,
		source TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_day_part ON runs(day, part, created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores e. A zero CreatedAt is replaced with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry for day %d part %d has no id", e.Day, e.Part)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, day, part, answer, error, elapsed_ns, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Day, e.Part, e.Answer, e.Error,
		e.Elapsed.Nanoseconds(), e.Source, e.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", e.ID, err)
	}
	return nil
}

// History returns up to limit runs of day, newest first. A limit of zero or
// less returns every run.
func (s *Store) History(ctx context.Context, day, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, part, answer, error, elapsed_ns, source, created_at
		FROM runs WHERE day = ?
		ORDER BY created_at DESC, part DESC
		LIMIT ?`, day, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for day %d: %w", day, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Latest returns the most recent run of one part of day.
func (s *Store) Latest(ctx context.Context, day, part int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, day, part, answer, error, elapsed_ns, source, created_at
		FROM runs WHERE day = ? AND part = ?
		ORDER BY created_at DESC LIMIT 1`, day, part)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("day %d part %d: %w", day, part, ErrNotFound)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e       Entry
		elapsed int64
		created int64
	)
	if err := sc.Scan(&e.ID, &e.Day, &e.Part, &e.Answer, &e.Error, &elapsed, &e.Source, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("failed to scan run: %w", err)
	}
	e.Elapsed = time.Duration(elapsed)
	e.CreatedAt = time.Unix(0, created)
	return e, nil
}
