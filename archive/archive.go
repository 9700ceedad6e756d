// Package archive keeps benchmark runs in a SQLite database so earlier runs
// can be re-analysed without their CSV artifacts.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alexshd/growthbench"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run ID is not in the archive.
var ErrRunNotFound = errors.New("run not found")

// RunInfo describes an archived run.
type RunInfo struct {
	ID         string
	Subject    string // Subject command line
	StartedAt  time.Time
	FinishedAt time.Time
	Attempted  int // Sizes in the schedule
	Skipped    int // Sizes that failed
	Measured   int // Rows in the time series
}

// Store wraps SQLite access for archived runs.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating archive: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			subject TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			attempted INTEGER NOT NULL,
			skipped INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id TEXT NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL,
			size INTEGER NOT NULL,
			elapsed REAL NOT NULL,
			PRIMARY KEY (run_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores run and returns its generated ID.
func (s *Store) SaveRun(ctx context.Context, subject string, run *growthbench.Run) (id string, err error) {
	id = uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, subject, started_at, finished_at, attempted, skipped)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		subject,
		run.Started.UTC().Format(timeLayout),
		run.Finished.UTC().Format(timeLayout),
		run.Total,
		len(run.Skipped),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, seq, size, elapsed) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, r := range run.Results {
		if _, err = stmt.ExecContext(ctx, id, i, r.Size, r.Elapsed); err != nil {
			return "", fmt.Errorf("inserting result for size %d: %w", r.Size, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// LoadRun returns the run metadata and its time series in schedule order.
func (s *Store) LoadRun(ctx context.Context, id string) (RunInfo, growthbench.Dataset, error) {
	info, err := s.runInfo(ctx, id)
	if err != nil {
		return RunInfo{}, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT size, elapsed FROM results WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return RunInfo{}, nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var ds growthbench.Dataset
	for rows.Next() {
		var r growthbench.Result
		if err := rows.Scan(&r.Size, &r.Elapsed); err != nil {
			return RunInfo{}, nil, fmt.Errorf("scanning result: %w", err)
		}
		ds = append(ds, r)
	}
	if err := rows.Err(); err != nil {
		return RunInfo{}, nil, err
	}

	return info, ds, nil
}

// LatestRun returns the ID of the most recently started run.
func (s *Store) LatestRun(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM runs ORDER BY started_at DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("archive is empty: %w", ErrRunNotFound)
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, runInfoQuery+` GROUP BY r.id ORDER BY r.started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		info, err := scanRunInfo(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

const runInfoQuery = `SELECT r.id, r.subject, r.started_at, r.finished_at, r.attempted, r.skipped, COUNT(res.seq)
	FROM runs r LEFT JOIN results res ON res.run_id = r.id`

func (s *Store) runInfo(ctx context.Context, id string) (RunInfo, error) {
	row := s.db.QueryRowContext(ctx, runInfoQuery+` WHERE r.id = ? GROUP BY r.id`, id)
	info, err := scanRunInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunInfo{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	return info, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRunInfo(row scanner) (RunInfo, error) {
	var (
		info              RunInfo
		started, finished string
	)
	if err := row.Scan(&info.ID, &info.Subject, &started, &finished,
		&info.Attempted, &info.Skipped, &info.Measured); err != nil {
		return RunInfo{}, err
	}

	var err error
	if info.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return RunInfo{}, fmt.Errorf("parsing started_at: %w", err)
	}
	if info.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
		return RunInfo{}, fmt.Errorf("parsing finished_at: %w", err)
	}
	return info, nil
}
