package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/metrics"
	"arr-mcp/internal/infra/tracer"
)

// Recovery loop constants.
const (
	maxLLMRetries  = 3
	baseRetryDelay = 500 * time.Millisecond
	maxRetryDelay  = 10 * time.Second

	defaultMaxIterations = 25
)

// AgentDeps holds injected dependencies for the agent.
type AgentDeps struct {
	LLM            domain.LLMProvider
	Toolsets       []domain.Toolset
	ContextBuilder *ContextBuilder
	Identity       domain.AgentIdentity
	// Settings are copied into every model request.
	Settings domain.ModelSettings
	// ToolTimeout bounds each tool call. Zero means no bound.
	ToolTimeout time.Duration
	// MaxToolRetries is how many invalid-argument results one tool may
	// produce in a run before the run fails with ErrInvalidInput.
	MaxToolRetries int
	MaxIterations  int
	// Limits apply when the agent starts a top-level run itself.
	Limits          domain.UsageLimits
	Stream          bool
	Bus             domain.EventBus  // optional, nil = no events
	ErrorClassifier *ErrorClassifier // optional, nil = no LLM retries
	Logger          *slog.Logger
}

// Agent runs the reason-act loop for one identity.
type Agent struct {
	deps AgentDeps
}

// RunResult is the outcome of one turn. Turn is set even when the run fails.
type RunResult struct {
	Output string
	Turn   *Turn
}

// NewAgent creates an agent with the given dependencies.
func NewAgent(deps AgentDeps) *Agent {
	if deps.Identity.MaxIter > 0 {
		deps.MaxIterations = deps.Identity.MaxIter
	}
	if deps.MaxIterations <= 0 {
		deps.MaxIterations = defaultMaxIterations
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.ContextBuilder == nil {
		deps.ContextBuilder = NewContextBuilder(deps.Identity.SystemPrompt, "", 0)
	}
	return &Agent{deps: deps}
}

// Identity returns the agent's identity.
func (a *Agent) Identity() domain.AgentIdentity { return a.deps.Identity }

// Toolsets returns the toolsets the agent was built with.
func (a *Agent) Toolsets() []domain.Toolset { return a.deps.Toolsets }

// HandleMessage processes a single user message through the agent loop.
func (a *Agent) HandleMessage(ctx context.Context, session *Session, userMsg string) (string, error) {
	res, err := a.Run(ctx, session, userMsg)
	return res.Output, err
}

// Run processes userMsg and returns the final text together with the turn.
// When ctx carries no RunContext a new top-level run is started.
func (a *Agent) Run(ctx context.Context, session *Session, userMsg string) (*RunResult, error) {
	sp := domain.Streaming(a.deps.LLM, a.deps.Stream)

	ctx, rc := EnsureRunContext(ctx, a.deps.Limits)
	ctx = domain.ContextWithSessionID(ctx, session.ID)
	ctx, span := tracer.StartSpan(ctx, "agent.run",
		trace.WithAttributes(
			tracer.StringAttr("agent.name", a.deps.Identity.Name),
			tracer.StringAttr("run.id", rc.RunID),
		),
	)
	defer span.End()

	turn := NewTurn(a.deps.Identity.Name, a.deps.Bus)
	res := &RunResult{Turn: turn}
	log := a.deps.Logger.With("agent", a.deps.Identity.Name, "run_id", rc.RunID)

	fail := func(err error) (*RunResult, error) {
		turn.Fail(ctx)
		tracer.RecordError(span, err)
		if sp != nil {
			a.publish(ctx, domain.EventStreamError, domain.StreamErrorPayload{Agent: a.deps.Identity.Name, Error: err.Error()})
		}
		a.publish(ctx, domain.EventAgentError, map[string]string{"agent": a.deps.Identity.Name, "error": err.Error()})
		log.Debug("agent run failed", "error", err)
		return res, err
	}

	session.AddMessage(domain.Message{Role: domain.RoleUser, Content: userMsg, Timestamp: time.Now()})
	if err := turn.Advance(ctx, domain.TurnReasoning); err != nil {
		return res, err
	}

	tools, schemas, err := a.collectTools(ctx)
	if err != nil {
		return fail(err)
	}
	if sp != nil {
		a.publish(ctx, domain.EventStreamStarted, nil)
	}

	retries := make(map[string]int)
	var total domain.Usage
	for i := 0; i < a.deps.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if err := rc.Limits.CheckBeforeRequest(rc.Usage); err != nil {
			return fail(err)
		}
		span.AddEvent("agent.iteration", trace.WithAttributes(tracer.IntAttr("iteration", i)))

		req := a.deps.ContextBuilder.Build(session.Messages(), schemas)
		req.Settings = a.deps.Settings

		a.publish(ctx, domain.EventLLMCallStarted, nil)
		msg, usage, err := a.callLLMWithRetry(ctx, req, sp, i)
		if err != nil {
			return fail(err)
		}
		rc.Usage.AddRequest(usage)
		total.PromptTokens += usage.PromptTokens
		total.CompletionTokens += usage.CompletionTokens
		total.TotalTokens += usage.TotalTokens
		a.publish(ctx, domain.EventLLMCallCompleted, nil)

		if msg.Role == "" {
			msg.Role = domain.RoleAssistant
		}
		session.AddMessage(msg)
		log.Debug("llm response", "iteration", i, "tool_calls", len(msg.ToolCalls), "tokens", usage.TotalTokens)

		if len(msg.ToolCalls) == 0 {
			_ = turn.Advance(ctx, domain.TurnSynthesizing)
			if sp != nil {
				a.publish(ctx, domain.EventStreamCompleted, domain.StreamCompletedPayload{
					Agent:   a.deps.Identity.Name,
					Content: msg.Content,
					Usage:   &total,
				})
			}
			_ = turn.Advance(ctx, domain.TurnDone)
			tracer.SetOK(span)
			res.Output = msg.Content
			return res, nil
		}

		_ = turn.Advance(ctx, domain.TurnDelegating)
		outcomes, err := a.executeTools(ctx, tools, msg.ToolCalls)
		if err != nil {
			return fail(err)
		}
		rc.Usage.AddToolCalls(len(msg.ToolCalls))
		for _, o := range outcomes {
			if o.retryable {
				retries[o.msg.Name]++
				if retries[o.msg.Name] > a.deps.MaxToolRetries {
					return fail(fmt.Errorf("%w: tool %q exceeded max retries count of %d: %s",
						domain.ErrInvalidInput, o.msg.Name, a.deps.MaxToolRetries, o.msg.Content))
				}
			}
			session.AddMessage(o.msg)
		}
		_ = turn.Advance(ctx, domain.TurnReasoning)
	}

	return fail(domain.ErrMaxIterations)
}

// collectTools lists every toolset once per run. The first tool of a given
// name wins.
func (a *Agent) collectTools(ctx context.Context) (map[string]domain.Tool, []domain.ToolSchema, error) {
	tools := make(map[string]domain.Tool)
	var schemas []domain.ToolSchema
	for _, ts := range a.deps.Toolsets {
		list, err := ts.Tools(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list tools of %s: %w", ts.Name(), err)
		}
		for _, t := range list {
			if _, dup := tools[t.Name()]; dup {
				a.deps.Logger.Warn("duplicate tool name, keeping first", "tool", t.Name(), "toolset", ts.Name())
				continue
			}
			tools[t.Name()] = t
			schemas = append(schemas, t.Schema())
		}
	}
	return tools, schemas, nil
}

type toolOutcome struct {
	msg       domain.Message
	retryable bool
}

// executeTools runs all calls of one reasoning step and returns once every
// call has finished. Results keep request order.
func (a *Agent) executeTools(ctx context.Context, tools map[string]domain.Tool, calls []domain.ToolCall) ([]toolOutcome, error) {
	out := make([]toolOutcome, len(calls))
	if !a.deps.Settings.ParallelToolCalls || len(calls) == 1 {
		for i, call := range calls {
			o, err := a.executeTool(ctx, tools, call)
			if err != nil {
				return nil, err
			}
			out[i] = o
		}
		return out, nil
	}

	// No WithContext: a failing call must not cancel its siblings.
	var g errgroup.Group
	for i, call := range calls {
		g.Go(func() error {
			o, err := a.executeTool(ctx, tools, call)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type execResult struct {
	res *domain.ToolResult
	err error
}

// executeTool runs one call under the tool timeout. Error results are
// returned as messages for the model; Go errors abort the run.
func (a *Agent) executeTool(ctx context.Context, tools map[string]domain.Tool, call domain.ToolCall) (toolOutcome, error) {
	ctx, span := tracer.StartSpan(ctx, "agent.execute_tool",
		trace.WithAttributes(
			tracer.StringAttr("tool.name", call.Name),
			tracer.StringAttr("agent.name", a.deps.Identity.Name),
		),
	)
	defer span.End()

	t, ok := tools[call.Name]
	if !ok {
		metrics.ObserveToolCall(call.Name, metrics.OutcomeError)
		return toolOutcome{
			msg:       toolMessage(call, fmt.Sprintf("Unknown tool name: %q. Use one of the listed tools.", call.Name)),
			retryable: true,
		}, nil
	}

	a.publish(ctx, domain.EventToolCallStarted, domain.ToolCallPayload{
		Agent:     a.deps.Identity.Name,
		CallID:    call.ID,
		Name:      call.Name,
		Arguments: string(call.Arguments),
	})

	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if a.deps.ToolTimeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, a.deps.ToolTimeout)
	}
	defer cancel()

	done := make(chan execResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- execResult{err: fmt.Errorf("%w: %s panicked: %v", domain.ErrToolFailure, call.Name, r)}
			}
		}()
		res, err := t.Execute(callCtx, call.Arguments)
		done <- execResult{res: res, err: err}
	}()

	var result *domain.ToolResult
	var err error
	select {
	case r := <-done:
		result, err = r.res, r.err
	case <-callCtx.Done():
		err = callCtx.Err()
	}
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %s did not finish within %s", domain.ErrToolTimeout, call.Name, a.deps.ToolTimeout)
	}
	if err == nil && result == nil {
		result = &domain.ToolResult{}
	}

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, domain.ErrToolTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		metrics.ObserveToolCall(call.Name, outcome)
		tracer.RecordError(span, err)
		a.publish(ctx, domain.EventToolCallCompleted, domain.ToolCallPayload{
			Agent:   a.deps.Identity.Name,
			CallID:  call.ID,
			Name:    call.Name,
			Result:  err.Error(),
			IsError: true,
		})
		return toolOutcome{}, err
	}

	outcome := metrics.OutcomeOK
	if result.IsError {
		outcome = metrics.OutcomeError
	}
	metrics.ObserveToolCall(call.Name, outcome)
	a.publish(ctx, domain.EventToolCallCompleted, domain.ToolCallPayload{
		Agent:   a.deps.Identity.Name,
		CallID:  call.ID,
		Name:    call.Name,
		Result:  result.Content,
		IsError: result.IsError,
	})
	tracer.SetOK(span)
	return toolOutcome{
		msg:       toolMessage(call, result.Content),
		retryable: result.IsError && result.IsRetryable,
	}, nil
}

func toolMessage(call domain.ToolCall, content string) domain.Message {
	return domain.Message{
		Role:      domain.RoleTool,
		Name:      call.Name,
		Content:   content,
		ToolCalls: []domain.ToolCall{{ID: call.ID, Name: call.Name}},
		Timestamp: time.Now(),
	}
}

// retryBackoff computes exponential backoff with jitter.
func retryBackoff(attempt int) time.Duration {
	delay := baseRetryDelay * time.Duration(1<<uint(attempt))
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	// Add 0-25% jitter.
	jitter := time.Duration(rand.Int63n(int64(delay/4) + 1))
	return delay + jitter
}

func (a *Agent) publish(ctx context.Context, typ domain.EventType, payload any) {
	if a.deps.Bus == nil {
		return
	}
	a.deps.Bus.Publish(ctx, domain.NewEvent(ctx, typ, payload))
}

// callLLMWithRetry performs the model call, retrying errors the classifier
// marks retryable. When sp is non-nil the response is streamed.
func (a *Agent) callLLMWithRetry(ctx context.Context, req domain.ChatRequest, sp domain.StreamingLLMProvider, iteration int) (domain.Message, domain.Usage, error) {
	maxAttempts := 1
	if a.deps.ErrorClassifier != nil {
		maxAttempts = maxLLMRetries
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		msg, usage, err := a.callLLM(ctx, req, sp, iteration)
		if err == nil {
			return msg, usage, nil
		}
		lastErr = err

		if a.deps.ErrorClassifier == nil {
			return domain.Message{}, domain.Usage{}, lastErr
		}
		classified := a.deps.ErrorClassifier.Classify(err)
		if classified.Category != ErrorCategoryRetryable {
			return domain.Message{}, domain.Usage{}, lastErr
		}

		if attempt < maxAttempts-1 {
			delay := retryBackoff(attempt)
			a.deps.Logger.Info("retrying LLM call after error",
				"attempt", attempt+1, "delay", delay, "error", err)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return domain.Message{}, domain.Usage{}, ctx.Err()
			}
		}
	}
	return domain.Message{}, domain.Usage{}, lastErr
}

func (a *Agent) callLLM(ctx context.Context, req domain.ChatRequest, sp domain.StreamingLLMProvider, iteration int) (domain.Message, domain.Usage, error) {
	ctx, span := tracer.StartSpan(ctx, "agent.llm_call",
		trace.WithAttributes(tracer.StringAttr("agent.name", a.deps.Identity.Name)),
	)
	defer span.End()

	if sp == nil {
		resp, err := a.deps.LLM.Chat(ctx, req)
		if err != nil {
			tracer.RecordError(span, err)
			return domain.Message{}, domain.Usage{}, err
		}
		tracer.SetOK(span)
		return resp.Message, resp.Usage, nil
	}

	deltas, err := sp.ChatStream(ctx, req)
	if err != nil {
		tracer.RecordError(span, err)
		return domain.Message{}, domain.Usage{}, err
	}
	acc := newStreamAccumulator()
	for delta := range deltas {
		acc.addDelta(delta)
		a.publish(ctx, domain.EventStreamDelta, domain.StreamDeltaPayload{
			Agent:     a.deps.Identity.Name,
			Content:   delta.Content,
			ToolCalls: delta.ToolCalls,
			Done:      delta.Done,
			Iteration: iteration,
		})
	}
	if err := ctx.Err(); err != nil {
		tracer.RecordError(span, err)
		return domain.Message{}, domain.Usage{}, err
	}
	tracer.SetOK(span)
	msg, usage := acc.build()
	return msg, usage, nil
}

// maxToolCallsPerDelta limits the number of tool call slots the accumulator
// will allocate. Indices beyond this bound are dropped.
const maxToolCallsPerDelta = 50

// streamAccumulator collects incremental deltas into a complete message.
type streamAccumulator struct {
	content   strings.Builder
	toolCalls []domain.ToolCall
	usage     domain.Usage
}

func newStreamAccumulator() *streamAccumulator {
	return &streamAccumulator{}
}

// addDelta merges one delta. Tool calls are tracked by position: the first
// delta for a call carries ID and Name, later ones append to Arguments.
func (acc *streamAccumulator) addDelta(delta domain.StreamDelta) {
	acc.content.WriteString(delta.Content)

	for idx, tc := range delta.ToolCalls {
		if idx >= maxToolCallsPerDelta {
			break
		}
		for len(acc.toolCalls) <= idx {
			acc.toolCalls = append(acc.toolCalls, domain.ToolCall{})
		}
		existing := &acc.toolCalls[idx]
		if tc.ID != "" {
			existing.ID = tc.ID
		}
		if tc.Name != "" {
			existing.Name = tc.Name
		}
		if len(tc.Arguments) > 0 {
			existing.Arguments = append(existing.Arguments, tc.Arguments...)
		}
	}

	if delta.Usage != nil {
		acc.usage = *delta.Usage
	}
}

// build returns the accumulated message and usage.
func (acc *streamAccumulator) build() (domain.Message, domain.Usage) {
	return domain.Message{
		Role:      domain.RoleAssistant,
		Content:   acc.content.String(),
		ToolCalls: acc.toolCalls,
		Timestamp: time.Now(),
	}, acc.usage
}
