package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capture records the last request a fake endpoint received.
type capture struct {
	mu     sync.Mutex
	path   string
	query  string
	header http.Header
	body   map[string]any
}

func (c *capture) record(t *testing.T, r *http.Request) {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = r.URL.Path
	c.query = r.URL.RawQuery
	c.header = r.Header.Clone()
	c.body = body
}

func (c *capture) Body() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.body
}

// jsonServer answers every request with status and payload.
func jsonServer(t *testing.T, c *capture, status int, payload any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c != nil {
			c.record(t, r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// sseServer streams the given raw SSE text.
func sseServer(t *testing.T, c *capture, raw string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c != nil {
			c.record(t, r)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, raw)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// drain collects every delta and merges them the way the agent does.
func drain(ch <-chan domain.StreamDelta) (content string, calls []domain.ToolCall, usage *domain.Usage) {
	for d := range ch {
		content += d.Content
		for i, tc := range d.ToolCalls {
			for len(calls) <= i {
				calls = append(calls, domain.ToolCall{})
			}
			if tc.ID != "" {
				calls[i].ID = tc.ID
			}
			if tc.Name != "" {
				calls[i].Name = tc.Name
			}
			calls[i].Arguments = append(calls[i].Arguments, tc.Arguments...)
		}
		if d.Usage != nil {
			usage = d.Usage
		}
	}
	return content, calls, usage
}

// fakeProvider is a scripted domain.StreamingLLMProvider.
type fakeProvider struct {
	name   string
	chat   func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error)
	stream func(context.Context, domain.ChatRequest) (<-chan domain.StreamDelta, error)
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	return f.chat(ctx, req)
}

func (f *fakeProvider) ChatStream(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	return f.stream(ctx, req)
}

func conversation() []domain.Message {
	return []domain.Message{
		{Role: domain.RoleSystem, Content: "You are a helpful assistant."},
		{Role: domain.RoleUser, Content: "how many indexers?"},
		{Role: domain.RoleAssistant, ToolCalls: []domain.ToolCall{
			{ID: "call_1", Name: "get_indexers", Arguments: json.RawMessage(`{}`)},
		}},
		{Role: domain.RoleTool, Name: "get_indexers", Content: `[{"id":1}]`,
			ToolCalls: []domain.ToolCall{{ID: "call_1", Name: "get_indexers"}}},
	}
}

func tools() []domain.ToolSchema {
	return []domain.ToolSchema{{
		Name:        "get_indexers",
		Description: "List indexers.",
		Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
	}}
}
