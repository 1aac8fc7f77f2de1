package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultTaskTimeout = 30 * time.Minute

// Task is one recurring unit of work.
type Task struct {
	Name     string
	Schedule string // cron expression, descriptor ("@hourly", "@every 1h") or duration ("30m")
	Run      func(ctx context.Context) error
}

// TaskStatus is a snapshot of a scheduled task.
type TaskStatus struct {
	Name     string    `json:"name"`
	Schedule string    `json:"schedule"`
	Next     time.Time `json:"next"`
	Prev     time.Time `json:"prev,omitempty"`
}

type entry struct {
	id       cron.EntryID
	schedule string
}

// Scheduler runs tasks on cron schedules.
type Scheduler struct {
	cron        *cron.Cron
	entries     map[string]entry
	taskTimeout time.Duration
	logger      *slog.Logger
	mu          sync.Mutex
	started     bool
	ctx         context.Context
	cancel      context.CancelFunc
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTaskTimeout bounds every task run. Zero disables the bound.
func WithTaskTimeout(d time.Duration) Option {
	return func(s *Scheduler) { s.taskTimeout = d }
}

// NewScheduler creates a scheduler.
func NewScheduler(logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cron:        cron.New(),
		entries:     make(map[string]entry),
		taskTimeout: defaultTaskTimeout,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add schedules task. Names must be unique.
func (s *Scheduler) Add(task Task) error {
	if task.Run == nil {
		return fmt.Errorf("scheduler: task %q has no function", task.Name)
	}
	sched, err := ParseSchedule(task.Schedule)
	if err != nil {
		return fmt.Errorf("scheduler: invalid schedule %q for task %q: %w", task.Schedule, task.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[task.Name]; exists {
		return fmt.Errorf("scheduler: task %q already exists", task.Name)
	}

	name, fn, logger := task.Name, task.Run, s.logger
	id := s.cron.Schedule(sched, cron.FuncJob(func() {
		s.mu.Lock()
		ctx := s.ctx
		timeout := s.taskTimeout
		s.mu.Unlock()

		if ctx == nil {
			logger.Debug("scheduler stopped, skipping task", "task", name)
			return
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		if err := fn(ctx); err != nil {
			logger.Warn("scheduled task failed", "task", name, "error", err, "duration", time.Since(start))
			return
		}
		logger.Info("scheduled task completed", "task", name, "duration", time.Since(start))
	}))

	s.entries[name] = entry{id: id, schedule: task.Schedule}
	logger.Info("task added to scheduler", "name", name, "schedule", task.Schedule)
	return nil
}

// Remove unschedules the task called name.
func (s *Scheduler) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("scheduler: task %q not found", name)
	}
	s.cron.Remove(e.id)
	delete(s.entries, name)
	return nil
}

// Tasks returns the scheduled tasks sorted by name. Next is zero until the
// scheduler has started.
func (s *Scheduler) Tasks() []TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TaskStatus, 0, len(s.entries))
	for name, e := range s.entries {
		ce := s.cron.Entry(e.id)
		out = append(out, TaskStatus{Name: name, Schedule: e.schedule, Next: ce.Next, Prev: ce.Prev})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Start begins running the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	s.started = true
	return nil
}

// Stop signals running tasks to stop and waits for them to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.cancel()
	s.ctx = nil
	s.started = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	return nil
}

// ParseSchedule parses a cron expression or descriptor, falling back to a
// plain duration.
func ParseSchedule(schedule string) (cron.Schedule, error) {
	if schedule == "" {
		return nil, fmt.Errorf("empty schedule")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if sched, err := parser.Parse(schedule); err == nil {
		return sched, nil
	}

	dur, err := time.ParseDuration(schedule)
	if err != nil {
		return nil, fmt.Errorf("not a valid cron expression or duration: %q", schedule)
	}
	if dur <= 0 {
		return nil, fmt.Errorf("duration must be positive: %q", schedule)
	}
	return constantDelay(dur), nil
}

// constantDelay fires at a fixed interval. Unlike cron.Every it keeps
// sub-second precision.
type constantDelay time.Duration

func (d constantDelay) Next(t time.Time) time.Time { return t.Add(time.Duration(d)) }
