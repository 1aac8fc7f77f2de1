package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, RunContextFrom(ctx))
	assert.Empty(t, RunIDFromContext(ctx))

	rc := &RunContext{RunID: "run-1", Usage: NewRunUsage()}
	ctx = WithRunContext(ctx, rc)
	assert.Same(t, rc, RunContextFrom(ctx))
	assert.Equal(t, "run-1", RunIDFromContext(ctx))
}

func TestSessionIDIgnoresForeignKeys(t *testing.T) {
	//nolint:staticcheck // a plain string key must not shadow ours
	ctx := context.WithValue(context.Background(), "session_id", "spoofed")
	assert.Empty(t, SessionIDFromContext(ctx))

	ctx = ContextWithSessionID(ctx, "01J0SESSION")
	assert.Equal(t, "01J0SESSION", SessionIDFromContext(ctx))
}

func TestNewEventCarriesSessionAndRun(t *testing.T) {
	ctx := ContextWithSessionID(context.Background(), "s-1")
	ctx = WithRunContext(ctx, &RunContext{RunID: "r-1"})

	ev := NewEvent(ctx, EventStreamDelta, StreamDeltaPayload{Agent: "Indexer_Agent", Content: "hi"})
	assert.Equal(t, "s-1", ev.SessionID)
	assert.Equal(t, "r-1", ev.RunID)
	assert.JSONEq(t, `{"agent":"Indexer_Agent","content":"hi","iteration":0}`, string(ev.Payload))

	bare := NewEvent(context.Background(), EventStreamDelta, nil)
	assert.Empty(t, bare.SessionID)
	assert.Empty(t, bare.RunID)
	assert.Nil(t, bare.Payload)
}

type chatOnly struct{}

func (chatOnly) Name() string { return "chat" }
func (chatOnly) Chat(context.Context, ChatRequest) (*ChatResponse, error) {
	return &ChatResponse{}, nil
}

type chatAndStream struct{ chatOnly }

func (chatAndStream) ChatStream(context.Context, ChatRequest) (<-chan StreamDelta, error) {
	ch := make(chan StreamDelta)
	close(ch)
	return ch, nil
}

func TestStreaming(t *testing.T) {
	assert.Nil(t, Streaming(chatOnly{}, true), "provider cannot stream")
	assert.Nil(t, Streaming(chatAndStream{}, false), "streaming not wanted")
	assert.Nil(t, Streaming(nil, true))
	assert.NotNil(t, Streaming(chatAndStream{}, true))
}
