// Package history records generation runs in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bianoble/unity-assets/internal/errors"
)

// FileName is the database file name inside the data directory.
const FileName = "history.db"

// Run is one recorded generation run.
type Run struct {
	ID         string
	Project    string
	SpecPath   string
	OutputDir  string
	StartedAt  time.Time
	FinishedAt time.Time
	DryRun     bool

	Generated int
	Unchanged int
	Skipped   int
	Failed    int

	BatchRan       bool
	BatchSucceeded bool
	BatchExitCode  int

	Assets []Asset
}

// Asset is the outcome of one asset within a run.
type Asset struct {
	Name   string
	Kind   string
	Path   string
	Status string
	Error  string
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// Path returns the database path inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Open opens or creates the database at dbPath and applies the schema.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.Wrap(err, "creating history directory")
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening history %s", dbPath)
	}
	// One connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		project TEXT NOT NULL,
		spec_path TEXT NOT NULL DEFAULT '',
		output_dir TEXT NOT NULL DEFAULT '',
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		dry_run INTEGER NOT NULL DEFAULT 0,
		generated INTEGER NOT NULL DEFAULT 0,
		unchanged INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		batch_ran INTEGER NOT NULL DEFAULT 0,
		batch_succeeded INTEGER NOT NULL DEFAULT 0,
		batch_exit_code INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS run_assets (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		path TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return errors.Wrap(err, "migrating history schema")
	}
	return nil
}

// Record stores run and its asset outcomes. An empty ID is filled in.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = NewRunID()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting history transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, project, spec_path, output_dir, started_at, finished_at, dry_run,
			generated, unchanged, skipped, failed, batch_ran, batch_succeeded, batch_exit_code)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Project, run.SpecPath, run.OutputDir,
		formatTime(run.StartedAt), formatTime(run.FinishedAt), run.DryRun,
		run.Generated, run.Unchanged, run.Skipped, run.Failed,
		run.BatchRan, run.BatchSucceeded, run.BatchExitCode,
	)
	if err != nil {
		return errors.Wrapf(err, "recording run %s", run.ID)
	}

	for i, a := range run.Assets {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO run_assets (run_id, seq, name, kind, path, status, error) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, a.Name, a.Kind, a.Path, a.Status, a.Error,
		)
		if err != nil {
			return errors.Wrapf(err, "recording asset %s", a.Name)
		}
	}

	return errors.Wrap(tx.Commit(), "committing run")
}

const runColumns = `id, project, spec_path, output_dir, started_at, finished_at, dry_run,
	generated, unchanged, skipped, failed, batch_ran, batch_succeeded, batch_exit_code`

// List returns the most recent runs first, without asset outcomes. An empty
// project lists every project.
func (s *Store) List(ctx context.Context, project string, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if project != "" {
		query += ` WHERE project = ?`
		args = append(args, project)
	}
	query += ` ORDER BY started_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns one run with its asset outcomes. A missing run returns
// sql.ErrNoRows.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, path, status, error FROM run_assets WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, errors.Wrapf(err, "loading assets for run %s", id)
	}
	defer rows.Close()

	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.Name, &a.Kind, &a.Path, &a.Status, &a.Error); err != nil {
			return nil, err
		}
		run.Assets = append(run.Assets, a)
	}
	return run, rows.Err()
}

// Prune deletes all but the newest keep runs and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM run_assets WHERE run_id NOT IN (SELECT id FROM runs ORDER BY started_at DESC LIMIT ?)`, keep); err != nil {
		return 0, errors.Wrap(err, "pruning run assets")
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY started_at DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, errors.Wrap(err, "pruning runs")
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var started, finished string
	err := row.Scan(
		&run.ID, &run.Project, &run.SpecPath, &run.OutputDir, &started, &finished, &run.DryRun,
		&run.Generated, &run.Unchanged, &run.Skipped, &run.Failed,
		&run.BatchRan, &run.BatchSucceeded, &run.BatchExitCode,
	)
	if err != nil {
		return nil, err
	}
	if run.StartedAt, err = parseTime(started); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseTime(finished); err != nil {
		return nil, err
	}
	return &run, nil
}

// Timestamps are stored as fixed-width UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing timestamp %q", s)
	}
	return t, nil
}
