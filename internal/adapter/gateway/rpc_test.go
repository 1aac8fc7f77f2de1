package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

func dialFeed(t *testing.T, f *fixture, query string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	srvCtx, stop := context.WithCancel(context.Background())
	go func() { errc <- f.server.Start(srvCtx, "127.0.0.1:0") }()
	t.Cleanup(func() {
		stop()
		<-errc
	})
	<-f.server.Ready()

	conn, _, err := websocket.Dial(ctx, "ws://"+f.server.BoundAddr()+"/ws"+query, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readResponse reads frames until the response to id arrives and returns
// it along with the event types seen on the way.
func readResponse(t *testing.T, conn *websocket.Conn, id uint64) (Frame, []domain.EventType) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var seen []domain.EventType
	for {
		var fr Frame
		require.NoError(t, wsjson.Read(ctx, conn, &fr))
		switch fr.Type {
		case FrameTypeEvent:
			var ev domain.Event
			require.NoError(t, json.Unmarshal(fr.Payload, &ev))
			seen = append(seen, ev.Type)
		case FrameTypeResponse:
			if fr.ID == id {
				return fr, seen
			}
		}
	}
}

func TestWebsocketAgentSend(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{AuthToken: "secret"})
	conn := dialFeed(t, f, "?token=secret")

	ctx := context.Background()
	require.NoError(t, wsjson.Write(ctx, conn, Frame{
		Type:    FrameTypeRequest,
		ID:      1,
		Method:  "agent.send",
		Payload: json.RawMessage(`{"prompt":"hello","context_id":"c-1"}`),
	}))
	resp, events := readResponse(t, conn, 1)
	require.Empty(t, resp.Error)

	var out agentSendResult
	require.NoError(t, json.Unmarshal(resp.Payload, &out))
	assert.Equal(t, "echo: hello", out.Output)
	assert.NotEmpty(t, out.RunID)
	assert.Contains(t, events, domain.EventRunStarted)

	require.NoError(t, wsjson.Write(ctx, conn, Frame{
		Type:    FrameTypeRequest,
		ID:      2,
		Method:  "runs.get",
		Payload: json.RawMessage(`{"id":"` + out.RunID + `"}`),
	}))
	got, _ := readResponse(t, conn, 2)
	require.Empty(t, got.Error)
	var run domain.RunRecord
	require.NoError(t, json.Unmarshal(got.Payload, &run))
	assert.Equal(t, ChannelWebsocket, run.Channel)
}

func TestWebsocketUnknownMethod(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{})
	conn := dialFeed(t, f, "")

	require.NoError(t, wsjson.Write(context.Background(), conn, Frame{Type: FrameTypeRequest, ID: 7, Method: "nope"}))
	resp, _ := readResponse(t, conn, 7)
	assert.Contains(t, resp.Error, domain.ErrRPCMethodNotFound.Error())
}

func TestWebsocketRejectsBadToken(t *testing.T) {
	f := newFixture(t, config.GatewayConfig{AuthToken: "secret"})
	srvCtx, stop := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- f.server.Start(srvCtx, "127.0.0.1:0") }()
	defer func() {
		stop()
		<-errc
	}()
	<-f.server.Ready()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, resp, err := websocket.Dial(ctx, "ws://"+f.server.BoundAddr()+"/ws?token=wrong", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestDecodePayload(t *testing.T) {
	var p agentSendParams
	assert.NoError(t, decodePayload(nil, &p))
	assert.ErrorIs(t, decodePayload(json.RawMessage(`{`), &p), domain.ErrRPCInvalidPayload)
}
