package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"arr-mcp/internal/domain"
)

// SQLiteStore implements domain.RunStore on a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and migrates it.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open run db: %w", err)
	}
	// WAL mode for concurrent readers while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate run db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			service     TEXT NOT NULL,
			channel     TEXT NOT NULL,
			session_id  TEXT NOT NULL DEFAULT '',
			prompt      TEXT NOT NULL,
			state       TEXT NOT NULL,
			output      TEXT NOT NULL DEFAULT '',
			error       TEXT NOT NULL DEFAULT '',
			usage       TEXT NOT NULL DEFAULT '{}',
			started_at  TEXT NOT NULL,
			finished_at TEXT
		);
		CREATE INDEX IF NOT EXISTS runs_started ON runs (started_at);
		CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			context_id TEXT NOT NULL,
			run_id     TEXT NOT NULL DEFAULT '',
			state      TEXT NOT NULL,
			input      TEXT NOT NULL,
			output     TEXT NOT NULL DEFAULT '',
			error      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// SaveRun inserts run or replaces the stored record with the same id.
func (s *SQLiteStore) SaveRun(ctx context.Context, run domain.RunRecord) error {
	usage, err := json.Marshal(run.Usage)
	if err != nil {
		return fmt.Errorf("marshal run usage: %w", err)
	}
	var finished sql.NullString
	if run.FinishedAt != nil {
		finished = sql.NullString{String: formatTime(*run.FinishedAt), Valid: true}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, service, channel, session_id, prompt, state, output, error, usage, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			output = excluded.output,
			error = excluded.error,
			usage = excluded.usage,
			finished_at = excluded.finished_at`,
		run.ID, run.Service, run.Channel, run.SessionID, run.Prompt, string(run.State),
		run.Output, run.Error, string(usage), formatTime(run.StartedAt), finished,
	)
	return err
}

const runColumns = "id, service, channel, session_id, prompt, state, output, error, usage, started_at, finished_at"

// GetRun returns the run with id.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*domain.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, runNotFound(id)
	}
	return run, err
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, "SELECT "+runColumns+" FROM runs ORDER BY started_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// SaveTask inserts task or replaces the stored record with the same id.
func (s *SQLiteStore) SaveTask(ctx context.Context, task domain.TaskRecord) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, context_id, run_id, state, input, output, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			run_id = excluded.run_id,
			state = excluded.state,
			output = excluded.output,
			error = excluded.error,
			updated_at = excluded.updated_at`,
		task.ID, task.ContextID, task.RunID, string(task.State), task.Input, task.Output, task.Error,
		formatTime(task.CreatedAt), formatTime(task.UpdatedAt),
	)
	return err
}

// GetTask returns the task with id.
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (*domain.TaskRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, context_id, run_id, state, input, output, error, created_at, updated_at
		FROM tasks WHERE id = ?`, id)

	var t domain.TaskRecord
	var state, created, updated string
	err := row.Scan(&t.ID, &t.ContextID, &t.RunID, &state, &t.Input, &t.Output, &t.Error, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, taskNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	t.State = domain.TaskState(state)
	t.CreatedAt = parseTime(created)
	t.UpdatedAt = parseTime(updated)
	return &t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.RunRecord, error) {
	var r domain.RunRecord
	var state, usage, started string
	var finished sql.NullString
	if err := row.Scan(&r.ID, &r.Service, &r.Channel, &r.SessionID, &r.Prompt, &state,
		&r.Output, &r.Error, &usage, &started, &finished); err != nil {
		return nil, err
	}
	r.State = domain.RunState(state)
	if err := json.Unmarshal([]byte(usage), &r.Usage); err != nil {
		return nil, fmt.Errorf("unmarshal run usage: %w", err)
	}
	r.StartedAt = parseTime(started)
	if finished.Valid {
		t := parseTime(finished.String)
		r.FinishedAt = &t
	}
	return &r, nil
}

var _ domain.RunStore = (*SQLiteStore)(nil)
