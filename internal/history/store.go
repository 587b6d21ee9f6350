// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs in a SQLite database so past
// conversions can be listed later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/line-comment/pkg/types"
)

// defaultLimit caps Recent when the caller passes no limit.
const defaultLimit = 20

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating its parent
// directory and schema if they do not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			status TEXT NOT NULL,
			regions INTEGER NOT NULL DEFAULT 0,
			lines_emitted INTEGER NOT NULL DEFAULT 0,
			lines_dropped INTEGER NOT NULL DEFAULT 0,
			bytes_in INTEGER NOT NULL DEFAULT 0,
			bytes_out INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_at ON runs(at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run and returns its ID. A zero At is set to the current time.
func (s *Store) Record(ctx context.Context, run types.Run) (int64, error) {
	if run.At.IsZero() {
		run.At = time.Now().UTC()
	}

	var errText sql.NullString
	if run.Error != "" {
		errText = sql.NullString{String: run.Error, Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input, output, status, regions, lines_emitted, lines_dropped,
			bytes_in, bytes_out, error, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Input, run.Output, string(run.Status), run.Regions, run.LinesEmitted,
		run.LinesDropped, run.BytesIn, run.BytesOut, errText,
		run.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run for %s: %w", run.Input, err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output, status, regions, lines_emitted, lines_dropped,
			bytes_in, bytes_out, error, at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var (
			r       types.Run
			status  string
			errText sql.NullString
			at      string
		)
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &status, &r.Regions,
			&r.LinesEmitted, &r.LinesDropped, &r.BytesIn, &r.BytesOut, &errText, &at); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Status = types.ConversionStatus(status)
		r.Error = errText.String
		if r.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parsing run time %q: %w", at, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
