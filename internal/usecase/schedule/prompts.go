package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/usecase"
	"arr-mcp/internal/usecase/multiagent"
)

// Supervisor runs one top-level task.
type Supervisor interface {
	Run(ctx context.Context, req multiagent.RunRequest) (*multiagent.RunOutcome, error)
}

// Prompt is a recurring supervisor task.
type Prompt struct {
	Name     string
	Schedule string
	Prompt   string
}

// FiredPayload is the payload of the schedule.fired event.
type FiredPayload struct {
	Name   string `json:"name"`
	RunID  string `json:"run_id,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ChannelName returns the run channel recorded for prompt name.
func ChannelName(name string) string { return "schedule:" + name }

// AddPrompts schedules every prompt on s. Each firing is a fresh top-level
// run on its own session.
func AddPrompts(s *Scheduler, sup Supervisor, prompts []Prompt, bus domain.EventBus, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for _, p := range prompts {
		p := p
		task := Task{
			Name:     p.Name,
			Schedule: p.Schedule,
			Run: func(ctx context.Context) error {
				return runPrompt(ctx, sup, p, bus, logger)
			},
		}
		if err := s.Add(task); err != nil {
			return err
		}
	}
	return nil
}

func runPrompt(ctx context.Context, sup Supervisor, p Prompt, bus domain.EventBus, logger *slog.Logger) error {
	channel := ChannelName(p.Name)
	out, err := sup.Run(ctx, multiagent.RunRequest{
		Session: usecase.NewSession(channel),
		Prompt:  p.Prompt,
		Channel: channel,
	})

	payload := FiredPayload{Name: p.Name}
	if out != nil {
		payload.RunID = out.RunID
		payload.Output = out.Output
	}
	if err != nil {
		payload.Error = err.Error()
	}
	if bus != nil {
		bus.Publish(ctx, domain.NewEvent(ctx, domain.EventScheduledRunFired, payload))
	}
	if err != nil {
		return fmt.Errorf("schedule %s: %w", p.Name, err)
	}
	logger.Debug("scheduled prompt answered", "task", p.Name, "run_id", payload.RunID)
	return nil
}
