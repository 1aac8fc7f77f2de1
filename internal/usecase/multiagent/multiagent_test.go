package multiagent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/usecase"
)

var testService = domain.Service{
	Name:        "prowlarr",
	Title:       "Prowlarr",
	Description: "Indexer manager",
	Tags: []domain.TagDef{
		{Tag: "Indexer"},
		{Tag: "System"},
		{Tag: "History"},
	},
}

// taggedTool stands in for a catalog operation.
type taggedTool struct {
	name string
	tag  domain.Tag
	fn   func(ctx context.Context) (*domain.ToolResult, error)
}

func (t *taggedTool) Name() string        { return t.name }
func (t *taggedTool) Description() string { return t.name }
func (t *taggedTool) Tags() []domain.Tag  { return []domain.Tag{t.tag} }
func (t *taggedTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{Name: t.name, Parameters: json.RawMessage(`{"type":"object"}`)}
}
func (t *taggedTool) Execute(ctx context.Context, _ json.RawMessage) (*domain.ToolResult, error) {
	if t.fn != nil {
		return t.fn(ctx)
	}
	return &domain.ToolResult{Content: `{"result":"` + t.name + `"}`}, nil
}

func operations(t *testing.T, tools ...*taggedTool) *tool.Registry {
	t.Helper()
	reg := tool.NewRegistry("prowlarr", nil)
	for _, tl := range tools {
		require.NoError(t, reg.Register(tl))
	}
	return reg
}

// skillsToolset cannot be filtered by tag.
type skillsToolset struct{ domain.OpaqueToolset }

func (skillsToolset) Name() string                                 { return "skills" }
func (skillsToolset) Tools(context.Context) ([]domain.Tool, error) { return nil, nil }

// scriptedLLM answers per agent. The agent is read from the system prompt
// ("You are the Prowlarr Indexer Agent." -> "Prowlarr Indexer").
type scriptedLLM struct {
	respond func(ctx context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error)

	mu       sync.Mutex
	requests map[string][]domain.ChatRequest
}

func (m *scriptedLLM) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	agent := agentOf(req)
	m.mu.Lock()
	if m.requests == nil {
		m.requests = make(map[string][]domain.ChatRequest)
	}
	m.requests[agent] = append(m.requests[agent], req)
	m.mu.Unlock()
	return m.respond(ctx, agent, req)
}

func (m *scriptedLLM) Name() string { return "scripted" }

func (m *scriptedLLM) Requests(agent string) []domain.ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ChatRequest(nil), m.requests[agent]...)
}

func agentOf(req domain.ChatRequest) string {
	if len(req.Messages) == 0 || req.Messages[0].Role != domain.RoleSystem {
		return ""
	}
	first, _, _ := strings.Cut(req.Messages[0].Content, "\n")
	first = strings.TrimPrefix(first, "You are the ")
	return strings.TrimSuffix(first, " Agent.")
}

func lastIsToolResult(req domain.ChatRequest) bool {
	n := len(req.Messages)
	return n > 0 && req.Messages[n-1].Role == domain.RoleTool
}

func toolResults(req domain.ChatRequest) []string {
	var out []string
	for _, m := range req.Messages {
		if m.Role == domain.RoleTool {
			out = append(out, m.Content)
		}
	}
	return out
}

func text(content string) *domain.ChatResponse {
	return &domain.ChatResponse{
		Message: domain.Message{Role: domain.RoleAssistant, Content: content},
		Usage:   domain.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
	}
}

func calls(tc ...domain.ToolCall) *domain.ChatResponse {
	return &domain.ChatResponse{
		Message: domain.Message{Role: domain.RoleAssistant, ToolCalls: tc},
		Usage:   domain.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
	}
}

func delegation(id string, tag domain.Tag, task string) domain.ToolCall {
	args, _ := json.Marshal(map[string]string{"task": task})
	return domain.ToolCall{ID: id, Name: tool.DelegationToolName(tag), Arguments: args}
}

// recordingBus records published events synchronously.
type recordingBus struct {
	mu     sync.Mutex
	events []domain.Event
}

func (b *recordingBus) Publish(_ context.Context, e domain.Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}
func (b *recordingBus) Subscribe(domain.EventType, domain.EventHandler) func() { return func() {} }
func (b *recordingBus) SubscribeAll(domain.EventHandler) func()                { return func() {} }
func (b *recordingBus) Close()                                                 {}

func (b *recordingBus) Events() []domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.Event(nil), b.events...)
}

type team struct {
	registry   *Registry
	broker     *Broker
	supervisor *Supervisor
}

func newTeam(t *testing.T, shared SharedModel, cfg BrokerConfig, toolsets ...domain.Toolset) team {
	t.Helper()
	reg, err := BuildRegistry(testService, toolsets, shared, nil, nil)
	require.NoError(t, err)
	cfg.From = SupervisorName(testService.Title)
	broker := NewBroker(reg, cfg, shared.Bus, nil)
	delegations, err := tool.NewDelegationRegistry("prowlarr_delegation", reg.Tags(), broker, nil)
	require.NoError(t, err)
	sup := NewSupervisor(SupervisorConfig{
		Service:     testService,
		Delegations: delegations,
		Shared:      shared,
	})
	return team{registry: reg, broker: broker, supervisor: sup}
}

func toolNames(t *testing.T, toolsets []domain.Toolset) []string {
	t.Helper()
	names := []string{}
	for _, ts := range toolsets {
		tools, err := ts.Tools(context.Background())
		require.NoError(t, err)
		for _, tl := range tools {
			names = append(names, tl.Name())
		}
	}
	return names
}

func TestSpecialistsSeeOnlyTheirTag(t *testing.T) {
	ops := operations(t,
		&taggedTool{name: "get_indexers", tag: "Indexer"},
		&taggedTool{name: "get_system_status", tag: "System"},
		&taggedTool{name: "add_indexer", tag: "Indexer"},
	)
	tm := newTeam(t, SharedModel{LLM: &scriptedLLM{}}, BrokerConfig{}, ops, skillsToolset{})

	want := map[domain.Tag][]string{
		"Indexer": {"get_indexers", "add_indexer"},
		"System":  {"get_system_status"},
		"History": {},
	}
	for tag, names := range want {
		sp, err := tm.registry.Get(tag)
		require.NoError(t, err)
		if diff := cmp.Diff(names, toolNames(t, sp.Toolsets())); diff != "" {
			t.Errorf("%s tools mismatch (-want +got):\n%s", tag, diff)
		}
	}

	statuses := tm.registry.List(context.Background())
	require.Len(t, statuses, 3)
	assert.Equal(t, domain.AgentStatus{Name: "Prowlarr_Indexer_Agent", Tag: "Indexer", ToolCount: 2, Opaque: 1}, statuses[0])
}

func TestFilteringIsIdempotent(t *testing.T) {
	ops := operations(t,
		&taggedTool{name: "get_indexers", tag: "Indexer"},
		&taggedTool{name: "get_system_status", tag: "System"},
	)
	once := usecase.FilterToolsets([]domain.Toolset{ops}, "Indexer", nil)
	twice := usecase.FilterToolsets(once, "Indexer", nil)
	assert.Equal(t, toolNames(t, once), toolNames(t, twice))

	other := usecase.FilterToolsets([]domain.Toolset{ops}, "System", nil)
	assert.NotContains(t, toolNames(t, other), "get_indexers")
}

func TestSpecialistNamingAndPrompts(t *testing.T) {
	sp := BuildSpecialist("Prowlarr", domain.TagDef{Tag: "DownloadClient"}, nil, SharedModel{}, nil)
	assert.Equal(t, "Prowlarr_DownloadClient_Agent", sp.Name())
	assert.Equal(t, "You are the Prowlarr DownloadClient Agent.\n"+
		"Your goal is to manage download client resources.\n"+
		"You have access to tools specifically tagged with 'DownloadClient'.\n"+
		"Use these tools to fulfill the user's request.", sp.SystemPrompt())

	reg, err := BuildRegistry(testService, nil, SharedModel{}, map[string]string{"indexer": "Only touch indexers."}, nil)
	require.NoError(t, err)
	idx, err := reg.Get("indexer")
	require.NoError(t, err)
	assert.Equal(t, "Only touch indexers.", idx.SystemPrompt())
}

func TestOneDelegationToolPerKnownTag(t *testing.T) {
	tm := newTeam(t, SharedModel{LLM: &scriptedLLM{}}, BrokerConfig{})
	names, err := tm.supervisor.Delegations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"assign_task_to_indexer_agent",
		"assign_task_to_system_agent",
		"assign_task_to_history_agent",
	}, names)
	assert.True(t, strings.HasPrefix(tm.supervisor.SystemPrompt(), "You are the Prowlarr Supervisor Agent.\n"))
}

func TestDelegateToTagWithoutOperations(t *testing.T) {
	defer goleak.VerifyNone(t)

	llm := &scriptedLLM{respond: func(_ context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error) {
		if len(req.Tools) == 0 {
			return text("I have no tools for that."), nil
		}
		return text("unexpected tools"), nil
	}}
	ops := operations(t, &taggedTool{name: "get_indexers", tag: "Indexer"})
	tm := newTeam(t, SharedModel{LLM: llm}, BrokerConfig{}, ops)

	out, err := tm.broker.Delegate(context.Background(), "History", "show recent grabs")
	require.NoError(t, err)
	assert.Equal(t, "I have no tools for that.", out)
	require.Len(t, llm.Requests("Prowlarr History"), 1)
}

func TestDelegateUnknownTag(t *testing.T) {
	tm := newTeam(t, SharedModel{LLM: &scriptedLLM{}}, BrokerConfig{})
	_, err := tm.broker.Delegate(context.Background(), "Calendar", "anything")
	assert.ErrorIs(t, err, domain.ErrUnknownTag)
	assert.Contains(t, err.Error(), "delegate to Calendar agent")
}

func TestDelegationsAccumulateOnSharedLedger(t *testing.T) {
	defer goleak.VerifyNone(t)

	llm := &scriptedLLM{respond: func(context.Context, string, domain.ChatRequest) (*domain.ChatResponse, error) {
		return text("done"), nil
	}}
	tm := newTeam(t, SharedModel{LLM: llm}, BrokerConfig{})

	rc := usecase.NewRunContext(domain.UsageLimits{}, nil)
	ctx := domain.WithRunContext(context.Background(), rc)
	require.Zero(t, rc.Usage.Snapshot().TotalTokens)

	_, err := tm.broker.Delegate(ctx, "Indexer", "list indexers")
	require.NoError(t, err)
	_, err = tm.broker.Delegate(ctx, "System", "status")
	require.NoError(t, err)

	snap := rc.Usage.Snapshot()
	assert.Equal(t, 10, snap.TotalTokens)
	assert.Equal(t, 2, snap.Requests)
}

func TestDelegationUsageReachesSupervisorRun(t *testing.T) {
	llm := &scriptedLLM{respond: func(_ context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error) {
		switch {
		case agent == "Prowlarr Supervisor" && !lastIsToolResult(req):
			return calls(delegation("c1", "Indexer", "list indexers")), nil
		case agent == "Prowlarr Supervisor":
			return text("You have 3 indexers."), nil
		default:
			return text("3 indexers"), nil
		}
	}}
	tm := newTeam(t, SharedModel{LLM: llm}, BrokerConfig{})

	out, err := tm.supervisor.Run(context.Background(), RunRequest{Prompt: "how many indexers?", Channel: "test"})
	require.NoError(t, err)
	assert.Equal(t, "You have 3 indexers.", out.Output)
	assert.Equal(t, domain.TurnDone, out.Turn.State())
	// Two supervisor requests plus one specialist request.
	assert.Equal(t, 3, out.Usage.Requests)
	assert.Equal(t, 15, out.Usage.TotalTokens)
	assert.Equal(t, 1, out.Usage.ToolCalls)

	// Each top-level run starts a fresh ledger.
	again, err := tm.supervisor.Run(context.Background(), RunRequest{Prompt: "and now?", Channel: "test"})
	require.NoError(t, err)
	assert.Equal(t, 3, again.Usage.Requests)
	assert.NotEqual(t, out.RunID, again.RunID)
}

func TestDelegationTimeoutFailsSupervisorTurn(t *testing.T) {
	defer goleak.VerifyNone(t)

	llm := &scriptedLLM{respond: func(ctx context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error) {
		if agent == "Prowlarr Supervisor" {
			return calls(delegation("c1", "System", "check health")), nil
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	tm := newTeam(t, SharedModel{LLM: llm}, BrokerConfig{Timeout: 50 * time.Millisecond})

	out, err := tm.supervisor.Run(context.Background(), RunRequest{Prompt: "is it healthy?"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolTimeout)
	assert.False(t, errors.Is(err, domain.ErrBackendHTTP))
	assert.Contains(t, err.Error(), "delegate to System agent")
	assert.Equal(t, domain.TurnErrored, out.Turn.State())
}

func TestBackendErrorPropagatesThroughDelegation(t *testing.T) {
	defer goleak.VerifyNone(t)

	ops := operations(t, &taggedTool{name: "get_system_status", tag: "System", fn: func(context.Context) (*domain.ToolResult, error) {
		return nil, &domain.BackendError{Status: 500, Body: "boom"}
	}})
	llm := &scriptedLLM{respond: func(_ context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error) {
		if agent == "Prowlarr Supervisor" {
			return calls(delegation("c1", "System", "status")), nil
		}
		return calls(domain.ToolCall{ID: "s1", Name: "get_system_status", Arguments: json.RawMessage(`{}`)}), nil
	}}
	tm := newTeam(t, SharedModel{LLM: llm}, BrokerConfig{Timeout: time.Second}, ops)

	out, err := tm.supervisor.Run(context.Background(), RunRequest{Prompt: "status"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendHTTP)
	assert.False(t, errors.Is(err, domain.ErrToolTimeout))
	assert.Contains(t, err.Error(), "API error: 500 - boom")
	assert.Equal(t, domain.TurnErrored, out.Turn.State())
	// No retry: the specialist asked the model once.
	assert.Len(t, llm.Requests("Prowlarr System"), 1)
}

// barrier releases its waiters once n of them have arrived.
type barrier struct {
	mu      sync.Mutex
	arrived int
	n       int
	release chan struct{}
}

func newBarrier(n int) *barrier { return &barrier{n: n, release: make(chan struct{})} }

func (b *barrier) wait(ctx context.Context) error {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.release)
	}
	b.mu.Unlock()
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Second):
		return fmt.Errorf("barrier: only %d of %d arrived", b.arrived, b.n)
	}
}

func TestParallelDelegationsJoinBeforeSynthesis(t *testing.T) {
	defer goleak.VerifyNone(t)

	bar := newBarrier(2)
	llm := &scriptedLLM{respond: func(ctx context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error) {
		switch agent {
		case "Prowlarr Supervisor":
			if lastIsToolResult(req) {
				return text(strings.Join(toolResults(req), " | ")), nil
			}
			return calls(
				delegation("c1", "Indexer", "list indexers"),
				delegation("c2", "System", "status"),
			), nil
		case "Prowlarr Indexer":
			if err := bar.wait(ctx); err != nil {
				return nil, err
			}
			time.Sleep(20 * time.Millisecond)
			return text("indexers: 3"), nil
		default:
			if err := bar.wait(ctx); err != nil {
				return nil, err
			}
			return text("system: ok"), nil
		}
	}}
	bus := &recordingBus{}
	shared := SharedModel{LLM: llm, Bus: bus, Settings: domain.ModelSettings{ParallelToolCalls: true}}
	tm := newTeam(t, shared, BrokerConfig{})

	out, err := tm.supervisor.Run(context.Background(), RunRequest{Prompt: "overview"})
	require.NoError(t, err)
	assert.Equal(t, "indexers: 3 | system: ok", out.Output)

	completed := 0
	synthesizedAt := -1
	for i, ev := range bus.Events() {
		switch ev.Type {
		case domain.EventDelegationCompleted:
			completed++
		case domain.EventTurnState:
			var p domain.TurnStatePayload
			require.NoError(t, json.Unmarshal(ev.Payload, &p))
			if p.Agent == tm.supervisor.Name() && p.To == domain.TurnSynthesizing {
				synthesizedAt = i
				assert.Equal(t, 2, completed, "both delegations must finish before synthesis")
			}
		}
	}
	assert.GreaterOrEqual(t, synthesizedAt, 0)
	assert.Equal(t, []domain.TurnState{
		domain.TurnReceived, domain.TurnReasoning, domain.TurnDelegating,
		domain.TurnReasoning, domain.TurnSynthesizing, domain.TurnDone,
	}, out.Turn.History())
}

func TestBrokerConcurrencyCap(t *testing.T) {
	defer goleak.VerifyNone(t)

	var inFlight, peak atomic.Int32
	llm := &scriptedLLM{respond: func(_ context.Context, agent string, req domain.ChatRequest) (*domain.ChatResponse, error) {
		if agent == "Prowlarr Supervisor" {
			if lastIsToolResult(req) {
				return text("done"), nil
			}
			return calls(
				delegation("c1", "Indexer", "a"),
				delegation("c2", "System", "b"),
				delegation("c3", "History", "c"),
			), nil
		}
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return text("ok"), nil
	}}
	shared := SharedModel{LLM: llm, Settings: domain.ModelSettings{ParallelToolCalls: true}}
	tm := newTeam(t, shared, BrokerConfig{MaxConcurrent: 1})

	_, err := tm.supervisor.Run(context.Background(), RunRequest{Prompt: "all"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), peak.Load())
}

func TestDelegationEvents(t *testing.T) {
	llm := &scriptedLLM{respond: func(context.Context, string, domain.ChatRequest) (*domain.ChatResponse, error) {
		return text("fine"), nil
	}}
	bus := &recordingBus{}
	tm := newTeam(t, SharedModel{LLM: llm, Bus: bus}, BrokerConfig{})

	_, err := tm.broker.Delegate(context.Background(), "system", "status")
	require.NoError(t, err)

	var delegated, completed []domain.DelegationPayload
	for _, ev := range bus.Events() {
		var p domain.DelegationPayload
		switch ev.Type {
		case domain.EventAgentDelegated:
			require.NoError(t, json.Unmarshal(ev.Payload, &p))
			delegated = append(delegated, p)
		case domain.EventDelegationCompleted:
			require.NoError(t, json.Unmarshal(ev.Payload, &p))
			completed = append(completed, p)
		}
	}
	require.Len(t, delegated, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, "ProwlarrAgent", delegated[0].From)
	assert.Equal(t, "Prowlarr_System_Agent", delegated[0].To)
	assert.Equal(t, domain.Tag("System"), delegated[0].Tag)
	assert.Empty(t, completed[0].Error)
}

// memoryRuns is a RunStore keeping the latest record per run.
type memoryRuns struct {
	mu   sync.Mutex
	runs map[string]domain.RunRecord
}

func (s *memoryRuns) SaveRun(_ context.Context, r domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runs == nil {
		s.runs = make(map[string]domain.RunRecord)
	}
	s.runs[r.ID] = r
	return nil
}
func (s *memoryRuns) GetRun(_ context.Context, id string) (*domain.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}
func (s *memoryRuns) ListRuns(context.Context, int) ([]domain.RunRecord, error) { return nil, nil }
func (s *memoryRuns) SaveTask(context.Context, domain.TaskRecord) error         { return nil }
func (s *memoryRuns) GetTask(context.Context, string) (*domain.TaskRecord, error) {
	return nil, domain.ErrNotFound
}
func (s *memoryRuns) Close() error { return nil }

func TestSupervisorRecordsRuns(t *testing.T) {
	store := &memoryRuns{}
	llm := &scriptedLLM{respond: func(context.Context, string, domain.ChatRequest) (*domain.ChatResponse, error) {
		return text("hello"), nil
	}}
	sup := NewSupervisor(SupervisorConfig{Service: testService, Shared: SharedModel{LLM: llm}, Store: store})

	out, err := sup.Run(context.Background(), RunRequest{Prompt: "hi", Channel: "a2a"})
	require.NoError(t, err)

	rec, err := store.GetRun(context.Background(), out.RunID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, rec.State)
	assert.Equal(t, "hello", rec.Output)
	assert.Equal(t, "a2a", rec.Channel)
	assert.Equal(t, "prowlarr", rec.Service)
	assert.NotNil(t, rec.FinishedAt)
	assert.Equal(t, 1, rec.Usage.Requests)
}
