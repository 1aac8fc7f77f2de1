package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

func failingProvider(err error, calls *int) *fakeProvider {
	return &fakeProvider{
		name: "local",
		chat: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
			*calls++
			return nil, err
		},
		stream: func(context.Context, domain.ChatRequest) (<-chan domain.StreamDelta, error) {
			*calls++
			return nil, err
		},
	}
}

func TestCircuitBreakerPassesThrough(t *testing.T) {
	inner := &fakeProvider{
		name: "local",
		chat: func(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
			return &domain.ChatResponse{Message: domain.Message{Content: "ok"}}, nil
		},
	}
	cb := NewCircuitBreakerProvider(inner, config.CircuitBreakerConfig{}, newTestLogger())

	resp, err := cb.Chat(context.Background(), domain.ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message.Content)
	assert.Equal(t, "local", cb.Name())
}

func TestCircuitBreakerOpensOnProviderErrors(t *testing.T) {
	calls := 0
	inner := failingProvider(fmt.Errorf("%w: 503", domain.ErrProviderError), &calls)
	cb := NewCircuitBreakerProvider(inner, config.CircuitBreakerConfig{MaxFailures: 2, Timeout: time.Hour}, newTestLogger())

	for range 2 {
		_, err := cb.Chat(context.Background(), domain.ChatRequest{})
		require.ErrorIs(t, err, domain.ErrProviderError)
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Chat(context.Background(), domain.ChatRequest{})
	require.ErrorIs(t, err, domain.ErrCircuitOpen)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, calls)

	_, err = cb.ChatStream(context.Background(), domain.ChatRequest{})
	assert.ErrorIs(t, err, domain.ErrCircuitOpen)
	assert.Equal(t, 2, calls)
}

func TestCircuitBreakerIgnoresClientErrors(t *testing.T) {
	for _, cause := range []error{domain.ErrRateLimit, domain.ErrAuthInvalid, domain.ErrContextOverflow, context.Canceled} {
		t.Run(cause.Error(), func(t *testing.T) {
			calls := 0
			cb := NewCircuitBreakerProvider(failingProvider(cause, &calls), config.CircuitBreakerConfig{MaxFailures: 1}, newTestLogger())
			for range 3 {
				_, err := cb.Chat(context.Background(), domain.ChatRequest{})
				require.True(t, errors.Is(err, cause))
			}
			assert.Equal(t, gobreaker.StateClosed, cb.State())
			assert.Equal(t, 3, calls)
		})
	}
}

func TestCircuitBreakerStreamWithoutSupport(t *testing.T) {
	cb := NewCircuitBreakerProvider(chatOnly{}, config.CircuitBreakerConfig{}, newTestLogger())
	_, err := cb.ChatStream(context.Background(), domain.ChatRequest{})
	assert.ErrorContains(t, err, "does not support streaming")
}

type chatOnly struct{}

func (chatOnly) Name() string { return "plain" }

func (chatOnly) Chat(context.Context, domain.ChatRequest) (*domain.ChatResponse, error) {
	return &domain.ChatResponse{}, nil
}
