package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

func stores(t *testing.T) map[string]domain.RunStore {
	t.Helper()
	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	return map[string]domain.RunStore{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestRunLifecycle(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			run := domain.RunRecord{
				ID:        "01J0RUN",
				Service:   "prowlarr",
				Channel:   "ag-ui",
				SessionID: "s1",
				Prompt:    "list indexers",
				State:     domain.RunRunning,
				StartedAt: started,
			}
			require.NoError(t, s.SaveRun(ctx, run))

			got, err := s.GetRun(ctx, run.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.RunRunning, got.State)
			assert.Nil(t, got.FinishedAt)
			assert.True(t, got.StartedAt.Equal(started))

			finished := started.Add(3 * time.Second)
			run.State = domain.RunCompleted
			run.Output = "2 indexers"
			run.Usage = domain.UsageSnapshot{Requests: 3, ToolCalls: 1, TotalTokens: 42}
			run.FinishedAt = &finished
			require.NoError(t, s.SaveRun(ctx, run))

			got, err = s.GetRun(ctx, run.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.RunCompleted, got.State)
			assert.Equal(t, "2 indexers", got.Output)
			assert.Equal(t, run.Usage, got.Usage)
			require.NotNil(t, got.FinishedAt)
			assert.True(t, got.FinishedAt.Equal(finished))
		})
	}
}

func TestGetRunNotFound(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.GetRun(context.Background(), "missing")
			require.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, domain.CodeRunNotFound, domain.ErrorCodeOf(err))
		})
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			for i, id := range []string{"a", "b", "c"} {
				require.NoError(t, s.SaveRun(ctx, domain.RunRecord{
					ID: id, Service: "sonarr", Channel: "schedule:wanted", Prompt: "p",
					State: domain.RunCompleted, StartedAt: base.Add(time.Duration(i) * time.Minute),
				}))
			}

			runs, err := s.ListRuns(ctx, 2)
			require.NoError(t, err)
			require.Len(t, runs, 2)
			assert.Equal(t, "c", runs[0].ID)
			assert.Equal(t, "b", runs[1].ID)

			all, err := s.ListRuns(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestTaskLifecycle(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			task := domain.TaskRecord{ID: "t1", ContextID: "c1", State: domain.TaskSubmitted, Input: "hi"}
			require.NoError(t, s.SaveTask(ctx, task))

			got, err := s.GetTask(ctx, "t1")
			require.NoError(t, err)
			assert.Equal(t, domain.TaskSubmitted, got.State)
			assert.False(t, got.CreatedAt.IsZero())

			task.State = domain.TaskCompleted
			task.RunID = "r1"
			task.Output = "hello"
			task.UpdatedAt = time.Now()
			require.NoError(t, s.SaveTask(ctx, task))

			got, err = s.GetTask(ctx, "t1")
			require.NoError(t, err)
			assert.Equal(t, domain.TaskCompleted, got.State)
			assert.Equal(t, "r1", got.RunID)
			assert.Equal(t, "hello", got.Output)
			assert.Equal(t, "c1", got.ContextID)

			_, err = s.GetTask(ctx, "nope")
			assert.Equal(t, domain.CodeTaskNotFound, domain.ErrorCodeOf(err))
		})
	}
}

func TestOpen(t *testing.T) {
	s, err := Open(config.StoreConfig{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(config.StoreConfig{Path: filepath.Join(t.TempDir(), "nested", "runs.db")})
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &SQLiteStore{}, s)
}
