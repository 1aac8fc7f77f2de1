package domain

import (
	"context"
	"time"
)

// RunState is the lifecycle state of a recorded run.
type RunState string

const (
	RunRunning   RunState = "running"
	RunCompleted RunState = "completed"
	RunFailed    RunState = "failed"
)

// RunRecord is one top-level supervisor run as kept in the run store.
type RunRecord struct {
	ID         string        `json:"id"`
	Service    string        `json:"service"`
	Channel    string        `json:"channel"` // "ag-ui", "a2a", "schedule:<name>"
	SessionID  string        `json:"session_id,omitempty"`
	Prompt     string        `json:"prompt"`
	State      RunState      `json:"state"`
	Output     string        `json:"output,omitempty"`
	Error      string        `json:"error,omitempty"`
	Usage      UsageSnapshot `json:"usage"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
}

// TaskState follows the A2A task states this server produces.
type TaskState string

const (
	TaskSubmitted TaskState = "submitted"
	TaskWorking   TaskState = "working"
	TaskCompleted TaskState = "completed"
	TaskFailed    TaskState = "failed"
	TaskCanceled  TaskState = "canceled"
)

// TaskRecord is one A2A task.
type TaskRecord struct {
	ID        string    `json:"id"`
	ContextID string    `json:"context_id"`
	RunID     string    `json:"run_id,omitempty"`
	State     TaskState `json:"state"`
	Input     string    `json:"input"`
	Output    string    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RunStore persists runs and A2A tasks.
type RunStore interface {
	SaveRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (*RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
	SaveTask(ctx context.Context, task TaskRecord) error
	GetTask(ctx context.Context, id string) (*TaskRecord, error)
	Close() error
}
