package checkpoint

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite, for operators
// who want progress queryable alongside other tooling.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS progress (
	slug       TEXT PRIMARY KEY,
	status     TEXT NOT NULL CHECK (status IN ('completed', 'failed')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_progress_status ON progress(status);
`

// NewSQLite opens (or creates) the progress database and applies the
// schema.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "checkpoint: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, eris.Wrapf(err, "checkpoint: exec %s", pragma)
		}
	}
	if _, err := db.Exec(sqliteMigration); err != nil {
		_ = db.Close()
		return nil, eris.Wrap(err, "checkpoint: migrate")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) State(ctx context.Context) (State, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, status FROM progress ORDER BY slug`)
	if err != nil {
		return State{}, eris.Wrap(err, "checkpoint: query state")
	}
	defer func() { _ = rows.Close() }()

	var st State
	for rows.Next() {
		var slug, status string
		if err := rows.Scan(&slug, &status); err != nil {
			return State{}, eris.Wrap(err, "checkpoint: scan row")
		}
		switch status {
		case "completed":
			st.Completed = append(st.Completed, slug)
		case "failed":
			st.Failed = append(st.Failed, slug)
		}
	}
	return st, eris.Wrap(rows.Err(), "checkpoint: iterate rows")
}

func (s *SQLiteStore) Completed(ctx context.Context, slug string) (bool, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM progress WHERE slug = ?`, slug,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrapf(err, "checkpoint: query slug %s", slug)
	}
	return status == "completed", nil
}

func (s *SQLiteStore) MarkCompleted(ctx context.Context, slug string) error {
	return s.setStatus(ctx, slug, "completed")
}

func (s *SQLiteStore) MarkFailed(ctx context.Context, slug string) error {
	return s.setStatus(ctx, slug, "failed")
}

func (s *SQLiteStore) setStatus(ctx context.Context, slug, status string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (slug, status, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(slug) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at
	`, slug, status)
	return eris.Wrapf(err, "checkpoint: mark %s %s", slug, status)
}

func (s *SQLiteStore) Reset(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM progress WHERE slug = ?`, slug)
	return eris.Wrapf(err, "checkpoint: reset %s", slug)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
