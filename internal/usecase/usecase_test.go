package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"arr-mcp/internal/domain"
)

// --- Mocks ---

type llmResult struct {
	resp *domain.ChatResponse
	err  error
}

// mockLLMSequence answers with results in order and records every request.
type mockLLMSequence struct {
	mu       sync.Mutex
	results  []llmResult
	idx      int
	requests []domain.ChatRequest
}

func (m *mockLLMSequence) Chat(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.idx >= len(m.results) {
		return textResponse("fallback"), nil
	}
	r := m.results[m.idx]
	m.idx++
	return r.resp, r.err
}

func (m *mockLLMSequence) Name() string { return "mock-sequence" }

func (m *mockLLMSequence) Requests() []domain.ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ChatRequest(nil), m.requests...)
}

func textResponse(content string) *domain.ChatResponse {
	return &domain.ChatResponse{
		Message: domain.Message{Role: domain.RoleAssistant, Content: content},
		Usage:   domain.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
	}
}

func callsResponse(calls ...domain.ToolCall) *domain.ChatResponse {
	return &domain.ChatResponse{
		Message: domain.Message{Role: domain.RoleAssistant, ToolCalls: calls},
		Usage:   domain.Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
	}
}

func toolCall(id, name, args string) domain.ToolCall {
	return domain.ToolCall{ID: id, Name: name, Arguments: json.RawMessage(args)}
}

// funcTool is a tagged tool backed by a function.
type funcTool struct {
	name string
	tags []domain.Tag
	fn   func(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error)
}

func (t *funcTool) Name() string        { return t.name }
func (t *funcTool) Description() string { return "test tool " + t.name }
func (t *funcTool) Tags() []domain.Tag  { return t.tags }
func (t *funcTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{Name: t.name, Description: t.Description(), Parameters: json.RawMessage(`{"type":"object"}`)}
}
func (t *funcTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return t.fn(ctx, params)
}

func staticTool(name, content string) *funcTool {
	return &funcTool{name: name, fn: func(context.Context, json.RawMessage) (*domain.ToolResult, error) {
		return &domain.ToolResult{Content: content}, nil
	}}
}

// sliceToolset is a filterable toolset over a fixed slice.
type sliceToolset struct {
	name  string
	tools []domain.Tool
}

func (s *sliceToolset) Name() string                                 { return s.name }
func (s *sliceToolset) Tools(context.Context) ([]domain.Tool, error) { return s.tools, nil }
func (s *sliceToolset) FilterByTag(tag domain.Tag) (domain.Toolset, bool) {
	view := &sliceToolset{name: s.name}
	for _, t := range s.tools {
		if domain.HasTag(domain.ToolTags(t), tag) {
			view.tools = append(view.tools, t)
		}
	}
	return view, true
}

type opaqueToolset struct {
	domain.OpaqueToolset
	tools []domain.Tool
}

func (o *opaqueToolset) Name() string                                 { return "opaque" }
func (o *opaqueToolset) Tools(context.Context) ([]domain.Tool, error) { return o.tools, nil }

func toolsetOf(tools ...domain.Tool) []domain.Toolset {
	return []domain.Toolset{&sliceToolset{name: "test", tools: tools}}
}
