package gateway

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/adapter/store"
	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
	"arr-mcp/internal/usecase"
	"arr-mcp/internal/usecase/eventbus"
	"arr-mcp/internal/usecase/multiagent"
)

var testService = domain.Service{
	Name:        "prowlarr",
	Title:       "Prowlarr",
	Description: "Indexer manager",
	Tags:        []domain.TagDef{{Tag: "Indexer"}},
}

// fakeLLM echoes the last user message. Prompts starting with "tool" call
// ask_indexer once, and prompts starting with "fail" return an error.
type fakeLLM struct {
	mu    sync.Mutex
	sizes []int
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Chat(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	f.mu.Lock()
	f.sizes = append(f.sizes, len(req.Messages))
	f.mu.Unlock()

	last := req.Messages[len(req.Messages)-1]
	if last.Role == domain.RoleTool {
		return reply("done: " + last.Content), nil
	}
	switch {
	case strings.HasPrefix(last.Content, "fail"):
		return nil, errors.New("model unavailable")
	case strings.HasPrefix(last.Content, "tool"):
		return &domain.ChatResponse{Message: domain.Message{
			Role: domain.RoleAssistant,
			ToolCalls: []domain.ToolCall{{
				ID:        "call-1",
				Name:      "ask_indexer",
				Arguments: json.RawMessage(`{"task":"list"}`),
			}},
		}}, nil
	}
	return reply("echo: " + last.Content), nil
}

func (f *fakeLLM) lastSize() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sizes[len(f.sizes)-1]
}

func reply(text string) *domain.ChatResponse {
	return &domain.ChatResponse{Message: domain.Message{Role: domain.RoleAssistant, Content: text}}
}

type askTool struct{}

func (askTool) Name() string        { return "ask_indexer" }
func (askTool) Description() string { return "Delegate to the indexer agent" }
func (askTool) Tags() []domain.Tag  { return []domain.Tag{"Indexer"} }
func (askTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{Name: "ask_indexer", Parameters: json.RawMessage(`{"type":"object"}`)}
}
func (askTool) Execute(context.Context, json.RawMessage) (*domain.ToolResult, error) {
	return &domain.ToolResult{Content: "3 indexers"}, nil
}

type fixture struct {
	server *Server
	http   *httptest.Server
	llm    *fakeLLM
	store  *store.MemoryStore
}

func newFixture(t *testing.T, cfg config.GatewayConfig) *fixture {
	t.Helper()
	bus := eventbus.New(nil)
	llm := &fakeLLM{}
	runs := store.NewMemoryStore()

	delegations := tool.NewRegistry("delegations", nil)
	require.NoError(t, delegations.Register(askTool{}))

	sup := multiagent.NewSupervisor(multiagent.SupervisorConfig{
		Service:     testService,
		Delegations: delegations,
		Shared:      multiagent.SharedModel{LLM: llm, Bus: bus},
		Store:       runs,
	})
	conv := multiagent.NewConversations(sup, usecase.NewSessionManager(""), nil)

	srv := NewServer(Deps{
		Service:       testService,
		Conversations: conv,
		Store:         runs,
		Bus:           bus,
		Version:       "1.2.3",
	}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	hs := httptest.NewServer(srv.Handler(ctx))
	t.Cleanup(func() {
		hs.Close()
		cancel()
		bus.Close()
	})
	return &fixture{server: srv, http: hs, llm: llm, store: runs}
}

func (f *fixture) post(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(f.http.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readEvents(t *testing.T, resp *http.Response) []aguiEvent {
	t.Helper()
	var events []aguiEvent
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		data, ok := strings.CutPrefix(sc.Text(), "data: ")
		if !ok {
			continue
		}
		var ev aguiEvent
		require.NoError(t, json.Unmarshal([]byte(data), &ev))
		events = append(events, ev)
	}
	require.NoError(t, sc.Err())
	return events
}

func types(events []aguiEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{AuthToken: "secret"})
	resp, err := http.Get(f.http.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
}

func TestBearerAuthProtectsAgentEndpoints(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{AuthToken: "secret"})

	resp := f.post(t, "/ag-ui", `{}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	card, err := http.Get(f.http.URL + "/a2a/.well-known/agent-card.json")
	require.NoError(t, err)
	defer card.Body.Close()
	assert.Equal(t, http.StatusOK, card.StatusCode)
}

func TestAGUIRejectsBadInput(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"messages": [`},
		{"no user message", `{"messages":[{"id":"1","role":"assistant","content":"hi"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.post(t, "/ag-ui", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAGUIStreamsRun(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	resp := f.post(t, "/ag-ui", `{
		"threadId": "t-1",
		"runId": "r-1",
		"messages": [
			{"id": "1", "role": "user", "content": "earlier"},
			{"id": "2", "role": "assistant", "content": "answer"},
			{"id": "3", "role": "user", "content": [{"type": "text", "text": "hello"}]}
		]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := readEvents(t, resp)
	require.NotEmpty(t, events)
	first, last := events[0], events[len(events)-1]
	assert.Equal(t, aguiRunStarted, first.Type)
	assert.Equal(t, "t-1", first.ThreadID)
	assert.Equal(t, "r-1", first.RunID)
	assert.Equal(t, aguiRunFinished, last.Type)

	got := types(events)
	assert.Contains(t, got, aguiStepStarted)
	assert.Contains(t, got, aguiTextMessageStart)
	assert.Contains(t, got, aguiTextMessageEnd)

	var text strings.Builder
	for _, ev := range events {
		if ev.Type == aguiTextMessageContent {
			text.WriteString(ev.Delta)
		}
	}
	assert.Equal(t, "echo: hello", text.String())

	// system + two history messages + prompt
	assert.Equal(t, 4, f.llm.lastSize())

	runs, err := f.store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.NotEqual(t, "r-1", runs[0].ID, "run ids are minted by the server")
	assert.Equal(t, ChannelAGUI, runs[0].Channel)
	assert.Equal(t, domain.RunCompleted, runs[0].State)
}

func aguiText(events []aguiEvent) string {
	var b strings.Builder
	for _, ev := range events {
		if ev.Type == aguiTextMessageContent {
			b.WriteString(ev.Delta)
		}
	}
	return b.String()
}

func TestAGUIReusedRunIDKeepsRunsApart(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	prompts := []string{"first question", "second question"}

	texts := make([]string, len(prompts))
	var wg sync.WaitGroup
	for i, p := range prompts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(f.http.URL+"/ag-ui", "application/json", strings.NewReader(
				`{"threadId":"t-`+p[:1]+`","runId":"same","messages":[{"id":"1","role":"user","content":"`+p+`"}]}`))
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			events := readEvents(t, resp)
			if assert.NotEmpty(t, events) {
				assert.Equal(t, "same", events[0].RunID, "the client's runId is echoed")
				assert.Equal(t, aguiRunFinished, events[len(events)-1].Type)
			}
			texts[i] = aguiText(events)
		}()
	}
	wg.Wait()

	assert.Equal(t, "echo: first question", texts[0])
	assert.Equal(t, "echo: second question", texts[1])

	runs, err := f.store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2, "each request keeps its own run record")
	assert.NotEqual(t, runs[0].ID, runs[1].ID)
	var got []string
	for _, r := range runs {
		got = append(got, r.Output)
	}
	assert.ElementsMatch(t, []string{"echo: first question", "echo: second question"}, got)
}

func TestAGUIReportsToolCalls(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	resp := f.post(t, "/ag-ui", `{"messages":[{"id":"1","role":"user","content":"tool please"}]}`)
	events := readEvents(t, resp)

	var start, result *aguiEvent
	for i := range events {
		switch events[i].Type {
		case aguiToolCallStart:
			start = &events[i]
		case aguiToolCallResult:
			result = &events[i]
		}
	}
	require.NotNil(t, start)
	require.NotNil(t, result)
	assert.Equal(t, "ask_indexer", start.ToolCallName)
	assert.Equal(t, "call-1", result.ToolCallID)
	assert.Equal(t, "3 indexers", result.Content)
	assert.Equal(t, aguiRunFinished, events[len(events)-1].Type)
}

func TestAGUIRunError(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	resp := f.post(t, "/ag-ui", `{"messages":[{"id":"1","role":"user","content":"fail now"}]}`)
	events := readEvents(t, resp)

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, aguiRunError, last.Type)
	assert.Contains(t, last.Message, "model unavailable")
}

func TestAGUIContextIsPrepended(t *testing.T) {
	assert.Equal(t, "hi", withContext("hi", nil))
	got := withContext("hi", []aguiContext{{Description: "user timezone", Value: "UTC"}})
	assert.Equal(t, "user timezone: UTC\n\nhi", got)
}

type rpcResult struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (f *fixture) a2a(t *testing.T, body string) rpcResult {
	t.Helper()
	resp := f.post(t, "/a2a", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out rpcResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sendMessage(text, contextID string) string {
	msg := map[string]any{
		"kind":      "message",
		"messageId": "m-1",
		"role":      "user",
		"parts":     []map[string]string{{"kind": "text", "text": text}},
	}
	if contextID != "" {
		msg["contextId"] = contextID
	}
	body, _ := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "message/send",
		"params":  map[string]any{"message": msg},
	})
	return string(body)
}

func TestAgentCardDefaultSkill(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	for _, p := range agentCardPaths {
		resp, err := http.Get(f.http.URL + p)
		require.NoError(t, err)
		var card AgentCard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
		resp.Body.Close()

		assert.Equal(t, "ProwlarrAgent", card.Name)
		assert.Equal(t, "1.2.3", card.Version)
		assert.Equal(t, f.http.URL+"/a2a", card.URL)
		require.Len(t, card.Skills, 1)
		assert.Equal(t, "prowlarr_agent", card.Skills[0].ID)
		assert.Equal(t, "Prowlarr Agent", card.Skills[0].Name)
		assert.Equal(t, []string{"prowlarr"}, card.Skills[0].Tags)
	}
}

func TestA2AMessageSendAndGet(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})

	out := f.a2a(t, sendMessage("hello", "ctx-1"))
	require.Nil(t, out.Error)
	var task a2aTask
	require.NoError(t, json.Unmarshal(out.Result, &task))
	assert.Equal(t, "task", task.Kind)
	assert.Equal(t, "ctx-1", task.ContextID)
	assert.Equal(t, domain.TaskCompleted, task.Status.State)
	require.Len(t, task.Artifacts, 1)
	assert.Equal(t, "echo: hello", task.Artifacts[0].Parts[0].Text)

	got := f.a2a(t, `{"jsonrpc":"2.0","id":2,"method":"tasks/get","params":{"id":"`+task.ID+`"}}`)
	require.Nil(t, got.Error)
	var again a2aTask
	require.NoError(t, json.Unmarshal(got.Result, &again))
	assert.Equal(t, task.ID, again.ID)
	assert.Equal(t, domain.TaskCompleted, again.Status.State)

	// The context keeps its transcript: system + user + assistant + user.
	f.a2a(t, sendMessage("again", "ctx-1"))
	assert.Equal(t, 4, f.llm.lastSize())

	cancel := f.a2a(t, `{"jsonrpc":"2.0","id":3,"method":"tasks/cancel","params":{"id":"`+task.ID+`"}}`)
	require.NotNil(t, cancel.Error)
	assert.Equal(t, rpcTaskNotCancelable, cancel.Error.Code)
}

func TestA2AFailedTask(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	out := f.a2a(t, sendMessage("fail please", ""))
	require.Nil(t, out.Error)

	var task a2aTask
	require.NoError(t, json.Unmarshal(out.Result, &task))
	assert.Equal(t, domain.TaskFailed, task.Status.State)
	assert.NotEmpty(t, task.ContextID)
	require.NotNil(t, task.Status.Message)
	assert.Contains(t, task.Status.Message.Parts[0].Text, "model unavailable")
}

func TestA2AErrors(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})

	tests := []struct {
		name string
		body string
		code int
	}{
		{"parse error", `{"jsonrpc":`, rpcParseError},
		{"invalid request", `{"id":1,"method":"message/send"}`, rpcInvalidRequest},
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"tasks/resubscribe"}`, rpcMethodNotFound},
		{"empty message", `{"jsonrpc":"2.0","id":1,"method":"message/send","params":{"message":{"parts":[]}}}`, rpcInvalidParams},
		{"missing task id", `{"jsonrpc":"2.0","id":1,"method":"tasks/get","params":{}}`, rpcInvalidParams},
		{"unknown task", `{"jsonrpc":"2.0","id":1,"method":"tasks/get","params":{"id":"nope"}}`, rpcTaskNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.a2a(t, tt.body)
			require.NotNil(t, out.Error)
			assert.Equal(t, tt.code, out.Error.Code)
		})
	}
}

func TestTaskTrackerCancel(t *testing.T) {
	tr := newTaskTracker()
	ctx, cancel := context.WithCancel(context.Background())
	tr.start("t-1", cancel)

	assert.False(t, tr.cancel("other"))
	assert.True(t, tr.cancel("t-1"))
	assert.Error(t, ctx.Err())
	assert.True(t, tr.finish("t-1"))
	assert.False(t, tr.cancel("t-1"))
}

func TestStatus(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	f.a2a(t, sendMessage("hello", ""))

	resp, err := http.Get(f.http.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var st StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "prowlarr", st.Service)
	assert.Equal(t, "ProwlarrAgent", st.Supervisor)
	assert.Equal(t, "1.2.3", st.Version)
	require.Len(t, st.RecentRuns, 1)
	assert.Equal(t, ChannelA2A, st.RecentRuns[0].Channel)
}

func TestWebUI(t *testing.T) {
	off := newFixture(t, config.GatewayConfig{})
	resp, err := http.Get(off.http.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	on := newFixture(t, config.GatewayConfig{WebUI: true, AuthToken: "secret"})
	resp, err = http.Get(on.http.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestStartAndStop(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.server.Start(ctx, "127.0.0.1:0") }()

	select {
	case <-f.server.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}
	resp, err := http.Get("http://" + f.server.BoundAddr() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
