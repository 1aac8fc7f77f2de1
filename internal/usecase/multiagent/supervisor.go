package multiagent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/metrics"
	"arr-mcp/internal/usecase"
)

// DefaultSupervisorPrompt renders the supervisor prompt for a service title.
func DefaultSupervisorPrompt(title string) string {
	return fmt.Sprintf("You are the %s Supervisor Agent.\n", title) +
		"Your goal is to assist the user by assigning tasks to specialized child agents through your available toolset.\n" +
		"Analyze the user's request and determine which domain(s) it falls into.\n" +
		"Then, call the appropriate tool(s) to delegate the task.\n" +
		"Synthesize the results from the child agents into a final helpful response.\n" +
		"Always be warm, professional, and helpful. " +
		"Note: The final response should contain all the relevant information from the tool executions. Never leave out any relevant information or leave it to the user to find it. " +
		"You are the final authority on the user's request and the final communicator to the user. Present information as logically and concisely as possible. " +
		"Explore using organized output with headers, sections, lists, and tables to make the information easy to navigate. " +
		"If there are gaps in the information, clearly state that information is missing. Do not make assumptions or invent placeholder information, only use the information which is available."
}

// SupervisorName returns the name of the supervisor agent of a service.
func SupervisorName(title string) string { return title + "Agent" }

// SupervisorConfig configures a Supervisor.
type SupervisorConfig struct {
	Service domain.Service
	// Prompt overrides DefaultSupervisorPrompt when set.
	Prompt string
	// Delegations holds exactly one delegation tool per known tag.
	Delegations domain.Toolset
	Shared      SharedModel
	Limits      domain.UsageLimits
	Stream      bool
	// Store records every run when set.
	Store  domain.RunStore
	Logger *slog.Logger
}

// Supervisor is the top-level agent. It owns no operation tools and acts
// only by delegating to specialists.
type Supervisor struct {
	svc         domain.Service
	agent       *usecase.Agent
	delegations domain.Toolset
	limits      domain.UsageLimits
	store       domain.RunStore
	bus         domain.EventBus
	logger      *slog.Logger
}

// NewSupervisor creates the supervisor of cfg.Service.
func NewSupervisor(cfg SupervisorConfig) *Supervisor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultSupervisorPrompt(cfg.Service.Title)
	}
	var toolsets []domain.Toolset
	if cfg.Delegations != nil {
		toolsets = []domain.Toolset{cfg.Delegations}
	}
	agent := usecase.NewAgent(usecase.AgentDeps{
		LLM:            cfg.Shared.LLM,
		Toolsets:       toolsets,
		ContextBuilder: usecase.NewContextBuilder(prompt, cfg.Shared.Model, 0),
		Identity: domain.AgentIdentity{
			Name:         SupervisorName(cfg.Service.Title),
			Description:  cfg.Service.Description,
			SystemPrompt: prompt,
		},
		Settings:        cfg.Shared.Settings,
		ToolTimeout:     cfg.Shared.ToolTimeout,
		MaxToolRetries:  cfg.Shared.MaxToolRetries,
		MaxIterations:   cfg.Shared.MaxIterations,
		Limits:          cfg.Limits,
		Stream:          cfg.Stream,
		Bus:             cfg.Shared.Bus,
		ErrorClassifier: cfg.Shared.ErrorClassifier,
		Logger:          logger,
	})
	return &Supervisor{
		svc:         cfg.Service,
		agent:       agent,
		delegations: cfg.Delegations,
		limits:      cfg.Limits,
		store:       cfg.Store,
		bus:         cfg.Shared.Bus,
		logger:      logger,
	}
}

// Name returns the supervisor's agent name.
func (s *Supervisor) Name() string { return s.agent.Identity().Name }

// SystemPrompt returns the prompt the supervisor runs with.
func (s *Supervisor) SystemPrompt() string { return s.agent.Identity().SystemPrompt }

// Service returns the wrapped service.
func (s *Supervisor) Service() domain.Service { return s.svc }

// Delegations returns the names of the supervisor's tools.
func (s *Supervisor) Delegations(ctx context.Context) ([]string, error) {
	if s.delegations == nil {
		return nil, nil
	}
	tools, err := s.delegations.Tools(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name()
	}
	return names, nil
}

// RunRequest is one top-level task for the supervisor.
type RunRequest struct {
	Session *usecase.Session
	Prompt  string
	// Channel names the entry point for metrics and the run store.
	Channel string
	// RunID is used as the run id when set, so callers can correlate bus
	// events with their request.
	RunID string
	Deps  any
}

// RunOutcome is the result of a top-level run. Turn and Usage are set even
// when the run fails.
type RunOutcome struct {
	RunID  string
	Output string
	Turn   *usecase.Turn
	Usage  domain.UsageSnapshot
}

// Run executes one top-level task. Every call starts its own RunContext;
// delegations made during the run share it.
func (s *Supervisor) Run(ctx context.Context, req RunRequest) (*RunOutcome, error) {
	rc := usecase.NewRunContext(s.limits, req.Deps)
	if req.RunID != "" {
		rc.RunID = req.RunID
	}
	ctx = domain.WithRunContext(ctx, rc)
	if req.Session == nil {
		req.Session = usecase.NewSession(rc.RunID)
	}

	rec := domain.RunRecord{
		ID:        rc.RunID,
		Service:   s.svc.Name,
		Channel:   req.Channel,
		SessionID: req.Session.ID,
		Prompt:    req.Prompt,
		State:     domain.RunRunning,
		StartedAt: time.Now(),
	}
	s.record(ctx, rec)
	s.publish(ctx, domain.EventRunStarted, rec)

	res, err := s.agent.Run(ctx, req.Session, req.Prompt)
	elapsed := time.Since(rec.StartedAt)

	out := &RunOutcome{RunID: rc.RunID, Turn: res.Turn, Usage: rc.Usage.Snapshot()}
	finished := time.Now()
	rec.FinishedAt = &finished
	rec.Usage = out.Usage

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		if errors.Is(err, domain.ErrToolTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		rec.State = domain.RunFailed
		rec.Error = err.Error()
		s.logger.Warn("supervisor run failed", "run_id", rc.RunID, "channel", req.Channel, "duration", elapsed, "error", err)
	} else {
		out.Output = res.Output
		rec.State = domain.RunCompleted
		rec.Output = res.Output
	}
	metrics.ObserveRun(req.Channel, outcome, elapsed)
	s.record(ctx, rec)
	if err != nil {
		s.publish(ctx, domain.EventRunFailed, rec)
		return out, err
	}
	s.publish(ctx, domain.EventRunCompleted, rec)
	return out, nil
}

func (s *Supervisor) record(ctx context.Context, rec domain.RunRecord) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveRun(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Warn("saving run failed", "run_id", rec.ID, "error", err)
	}
}

func (s *Supervisor) publish(ctx context.Context, typ domain.EventType, rec domain.RunRecord) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, domain.NewEvent(ctx, typ, rec))
}
