package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/humantone/humantone/pkg/humantone/internalerr"
	"github.com/humantone/humantone/pkg/humantone/store"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite run-history database with WAL mode enabled and the
// schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	input_words INTEGER NOT NULL,
	output_words INTEGER NOT NULL,
	steps_json TEXT NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	score_before INTEGER NOT NULL,
	score_after INTEGER NOT NULL,
	risk_before TEXT NOT NULL,
	risk_after TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run record.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return internalerr.ErrInvalidInput
	}
	steps, err := json.Marshal(r.StepsApplied)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO runs (id, created_at, input_words, output_words, steps_json, elapsed_ms,
	score_before, score_after, risk_before, risk_after)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	input_words=excluded.input_words,
	output_words=excluded.output_words,
	steps_json=excluded.steps_json,
	elapsed_ms=excluded.elapsed_ms,
	score_before=excluded.score_before,
	score_after=excluded.score_after,
	risk_before=excluded.risk_before,
	risk_after=excluded.risk_after`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.InputWords, r.OutputWords,
		string(steps), r.ElapsedMs, r.ScoreBefore, r.ScoreAfter, r.RiskBefore, r.RiskAfter)
	return err
}

// GetRun returns a run record by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, input_words, output_words, steps_json, elapsed_ms,
	score_before, score_after, risk_before, risk_after
FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, input_words, output_words, steps_json, elapsed_ms,
	score_before, score_after, risk_before, risk_after
FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (store.Run, error) {
	var (
		r         store.Run
		createdAt string
		stepsJSON string
	)
	err := row.Scan(&r.ID, &createdAt, &r.InputWords, &r.OutputWords, &stepsJSON,
		&r.ElapsedMs, &r.ScoreBefore, &r.ScoreAfter, &r.RiskBefore, &r.RiskAfter)
	if err != nil {
		return store.Run{}, err
	}
	if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		r.CreatedAt = t
	}
	if stepsJSON != "" {
		if uerr := json.Unmarshal([]byte(stepsJSON), &r.StepsApplied); uerr != nil {
			return store.Run{}, uerr
		}
	}
	return r, nil
}
