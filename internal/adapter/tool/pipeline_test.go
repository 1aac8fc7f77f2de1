package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
)

// nopLogger returns a logger that discards output.
func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedLLM asks for one tool call per step, then answers with text.
type scriptedLLM struct {
	mu     sync.Mutex
	steps  []domain.ToolCall
	served int
	seen   []domain.ChatRequest
}

func (s *scriptedLLM) Name() string { return "scripted" }

func (s *scriptedLLM) Chat(_ context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, req)
	if s.served >= len(s.steps) {
		return &domain.ChatResponse{Message: domain.Message{Role: domain.RoleAssistant, Content: "done"}}, nil
	}
	call := s.steps[s.served]
	s.served++
	call.ID = fmt.Sprintf("call_%d", s.served)
	return &domain.ChatResponse{Message: domain.Message{Role: domain.RoleAssistant, ToolCalls: []domain.ToolCall{call}}}, nil
}

type greetArgs struct {
	Name string `json:"name"`
}

func TestRunFormatsResults(t *testing.T) {
	tests := []struct {
		name string
		out  any
		want string
	}{
		{"string verbatim", "  hello\n", "  hello\n"},
		{"raw json verbatim", json.RawMessage(`{"id":3}`), `{"id":3}`},
		{"value as indented json", map[string]int{"count": 2}, "{\n  \"count\": 2\n}"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(context.Background(), "t", nopLogger(), nil,
				func(context.Context, struct{}) (any, error) { return tt.out, nil })
			require.NoError(t, err)
			assert.False(t, res.IsError)
			assert.Equal(t, tt.want, res.Content)
		})
	}
}

func TestRunPassesCustomResult(t *testing.T) {
	custom := &domain.ToolResult{Content: "partial", IsError: true}
	res, err := Run(context.Background(), "t", nil, json.RawMessage(`{}`),
		func(context.Context, struct{}) (any, error) { return custom, nil })
	require.NoError(t, err)
	assert.Same(t, custom, res)
}

func TestRunDecodesArguments(t *testing.T) {
	var got string
	_, err := Run(context.Background(), "greet", nopLogger(), json.RawMessage(` {"name":"sonarr"} `),
		func(_ context.Context, a greetArgs) (any, error) {
			got = a.Name
			return "ok", nil
		})
	require.NoError(t, err)
	assert.Equal(t, "sonarr", got)
}

func TestRunNullAndEmptyDecodeToZero(t *testing.T) {
	for _, raw := range []string{"", "null", "  "} {
		res, err := Run(context.Background(), "greet", nopLogger(), json.RawMessage(raw),
			func(_ context.Context, a greetArgs) (any, error) { return "name=" + a.Name, nil })
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, "name=", res.Content)
	}
}

func TestRunInvalidArgumentsAreRetryable(t *testing.T) {
	called := false
	res, err := Run(context.Background(), "greet", nopLogger(), json.RawMessage(`{"name":`),
		func(context.Context, greetArgs) (any, error) {
			called = true
			return nil, nil
		})
	require.NoError(t, err)
	assert.False(t, called)
	assert.True(t, res.IsError)
	assert.True(t, res.IsRetryable)
	assert.Contains(t, res.Content, "invalid arguments")
}

func TestRunHandlerErrorsFailTheCall(t *testing.T) {
	backend := &domain.BackendError{Status: 500, Body: "database locked"}
	_, err := Run(context.Background(), "get_indexer", nopLogger(), nil,
		func(context.Context, struct{}) (any, error) { return nil, fmt.Errorf("get_indexer: %w", backend) })
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendHTTP)
}

func TestRunFeedbackBecomesErrorResult(t *testing.T) {
	res, err := Run(context.Background(), "load_skill", nopLogger(), nil,
		func(context.Context, struct{}) (any, error) { return nil, Feedbackf("unknown skill %q", "x") })
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.False(t, res.IsRetryable)
	assert.Equal(t, `unknown skill "x"`, res.Content)
}

func TestRunTransientFeedbackIsRetryable(t *testing.T) {
	res, err := Run(context.Background(), "t", nopLogger(), nil,
		func(context.Context, struct{}) (any, error) {
			return nil, &Feedback{Err: fmt.Errorf("lookup: %w", domain.ErrRateLimit)}
		})
	require.NoError(t, err)
	assert.True(t, res.IsRetryable)
	assert.Contains(t, res.Content, "may succeed on retry")
}

func TestRunUnformattableResult(t *testing.T) {
	_, err := Run(context.Background(), "t", nopLogger(), nil,
		func(context.Context, struct{}) (any, error) { return make(chan int), nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format result")
}

func TestFeedbackUnwraps(t *testing.T) {
	err := &Feedback{Err: domain.ErrInvalidInput}
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var fb *Feedback
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &fb))
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", domain.ErrTimeout, true},
		{"tool timeout", domain.ErrToolTimeout, true},
		{"wrapped rate limit", fmt.Errorf("chat: %w", domain.ErrRateLimit), true},
		{"circuit open", domain.ErrCircuitOpen, true},
		{"connection refused text", errors.New("dial tcp: connection refused"), true},
		{"backend 503", &domain.BackendError{Status: 503, Body: "service unavailable"}, false},
		{"invalid input", domain.ErrInvalidInput, false},
		{"unknown", errors.New("something odd"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}

func FuzzIsTransient(f *testing.F) {
	for _, s := range []string{
		"connection refused",
		"context deadline exceeded",
		"API error: 503 - service unavailable",
		"not found",
		"",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, msg string) {
		_ = isTransient(errors.New(msg))
	})
}
