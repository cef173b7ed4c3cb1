package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"meshman/internal/config"
)

// Store manages run history backed by SQLite.
type Store struct {
	db        *sql.DB
	path      string
	retention int
}

// Open initializes or connects to the ledger database and applies the
// schema.
func Open(cfg *config.Config) (*Store, error) {
	if !cfg.Ledger.Enabled {
		return nil, errors.New("ledger is disabled in configuration")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Ledger.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.Ledger.Path, retention: cfg.Ledger.Retention}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun appends one run to the ledger and prunes rows beyond the
// configured retention.
func (s *Store) RecordRun(ctx context.Context, run Run) (*Run, error) {
	if run.RunID == "" {
		return nil, errors.New("run id is required")
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, assets_root, manifest_path,
            folder_count, agent_count, file_count,
            duration_ms, started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.AssetsRoot,
		run.ManifestPath,
		run.FolderCount,
		run.AgentCount,
		run.FileCount,
		run.Duration.Milliseconds(),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	if err := s.prune(ctx); err != nil {
		return nil, err
	}

	return s.getByID(ctx, id)
}

// Recent returns the newest runs, most recent first. A non-positive limit
// returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, run_id, assets_root, manifest_path,
            folder_count, agent_count, file_count,
            duration_ms, started_at, finished_at
        FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Count reports the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

func (s *Store) getByID(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, run_id, assets_root, manifest_path,
            folder_count, agent_count, file_count,
            duration_ms, started_at, finished_at
        FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (s *Store) prune(ctx context.Context) error {
	if s.retention <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
            SELECT id FROM runs ORDER BY id DESC LIMIT ?
        )`, s.retention)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var durationMillis int64
	var startedAt, finishedAt string

	err := row.Scan(
		&run.ID,
		&run.RunID,
		&run.AssetsRoot,
		&run.ManifestPath,
		&run.FolderCount,
		&run.AgentCount,
		&run.FileCount,
		&durationMillis,
		&startedAt,
		&finishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	run.Duration = time.Duration(durationMillis) * time.Millisecond
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
		return Run{}, fmt.Errorf("parse finished_at: %w", err)
	}
	return run, nil
}
