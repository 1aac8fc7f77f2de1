package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"arr-mcp/internal/domain"
)

// MemoryStore keeps runs and tasks in process memory. Records are lost on
// restart.
type MemoryStore struct {
	mu    sync.RWMutex
	runs  map[string]domain.RunRecord
	tasks map[string]domain.TaskRecord
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:  make(map[string]domain.RunRecord),
		tasks: make(map[string]domain.TaskRecord),
	}
}

func (m *MemoryStore) SaveRun(_ context.Context, run domain.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = run
	return nil
}

func (m *MemoryStore) GetRun(_ context.Context, id string) (*domain.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, runNotFound(id)
	}
	return &run, nil
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all.
func (m *MemoryStore) ListRuns(_ context.Context, limit int) ([]domain.RunRecord, error) {
	m.mu.RLock()
	runs := make([]domain.RunRecord, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, r)
	}
	m.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].StartedAt.After(runs[j].StartedAt)
		}
		return runs[i].ID > runs[j].ID
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (m *MemoryStore) SaveTask(_ context.Context, task domain.TaskRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.tasks[task.ID]; ok && task.CreatedAt.IsZero() {
		task.CreatedAt = prev.CreatedAt
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *MemoryStore) GetTask(_ context.Context, id string) (*domain.TaskRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	task, ok := m.tasks[id]
	if !ok {
		return nil, taskNotFound(id)
	}
	return &task, nil
}

func (m *MemoryStore) Close() error { return nil }

var _ domain.RunStore = (*MemoryStore)(nil)
