package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/adapter/mcpserver/auth"
	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// backend answers like a Prowlarr instance.
func backend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "k" {
			http.Error(w, "bad key", http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/api/v1/applications/7":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"Sonarr"}`))
		case "/api/v1/applications/8":
			http.Error(w, `{"message":"NotFound"}`, http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func prowlarrServer(t *testing.T, opts Options) *Server {
	t.Helper()
	svc, err := arr.Lookup("prowlarr")
	require.NoError(t, err)
	logger := quietLogger()
	conn := arr.Conn{BaseURL: backend(t).URL, APIKey: "k"}
	reg, err := tool.NewServiceRegistry(svc, conn, arr.NewInvoker(arr.NewPool(logger), logger), logger)
	require.NoError(t, err)

	opts.Service = svc
	opts.Tools = reg
	opts.Logger = logger
	s, err := New(context.Background(), opts)
	require.NoError(t, err)
	return s
}

// rpc sends one JSON-RPC message to s and decodes the result member.
func rpc(t *testing.T, ctx context.Context, s *Server, method string, params any) map[string]any {
	t.Helper()
	msg, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": 1, "method": method, "params": params})
	require.NoError(t, err)
	resp := s.MCP().HandleMessage(ctx, msg)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var out struct {
		Result map[string]any `json:"result"`
		Error  any            `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Nil(t, out.Error, string(raw))
	return out.Result
}

func callTool(t *testing.T, ctx context.Context, s *Server, name string, args map[string]any) (string, bool) {
	t.Helper()
	res := rpc(t, ctx, s, "tools/call", map[string]any{"name": name, "arguments": args})
	content, _ := res["content"].([]any)
	require.NotEmpty(t, content)
	first, _ := content[0].(map[string]any)
	isErr, _ := res["isError"].(bool)
	text, _ := first["text"].(string)
	return text, isErr
}

func TestServer_ListTools(t *testing.T) {
	s := prowlarrServer(t, Options{})
	svc, _ := arr.Lookup("prowlarr")
	assert.Len(t, s.ToolNames(), len(svc.Operations))

	res := rpc(t, context.Background(), s, "tools/list", map[string]any{})
	tools, _ := res["tools"].([]any)
	require.Len(t, tools, len(svc.Operations))

	var found map[string]any
	for _, raw := range tools {
		tl := raw.(map[string]any)
		if tl["name"] == "get_applications_id" {
			found = tl
		}
	}
	require.NotNil(t, found)
	meta, _ := found["_meta"].(map[string]any)
	assert.Equal(t, []any{"System"}, meta["tags"])

	schema, _ := json.Marshal(found["inputSchema"])
	assert.Contains(t, string(schema), `"id"`)
	assert.NotContains(t, string(schema), "prowlarr_api_key")
}

func TestServer_CallTool(t *testing.T) {
	s := prowlarrServer(t, Options{})

	text, isErr := callTool(t, context.Background(), s, "get_applications_id", map[string]any{"id": 7})
	assert.False(t, isErr)
	assert.JSONEq(t, `{"id":7,"name":"Sonarr"}`, text)

	text, isErr = callTool(t, context.Background(), s, "delete_applications_id", map[string]any{"id": 3})
	assert.False(t, isErr)
	assert.JSONEq(t, `{"status":"success"}`, text)
}

func TestServer_BackendErrorIsErrorResult(t *testing.T) {
	s := prowlarrServer(t, Options{})
	text, isErr := callTool(t, context.Background(), s, "get_applications_id", map[string]any{"id": 8})
	assert.True(t, isErr)
	assert.True(t, strings.HasPrefix(text, "API error: 404 - "), text)
}

func TestServer_PolicyDenies(t *testing.T) {
	ev := evaluatorFunc(func(req policyRequest) bool { return req.Principal == "alice" })
	s := prowlarrServer(t, Options{Policy: ev})

	ctx := auth.WithPrincipal(context.Background(), &auth.Principal{Subject: "bob"})
	text, isErr := callTool(t, ctx, s, "get_applications_id", map[string]any{"id": 7})
	assert.True(t, isErr)
	assert.Contains(t, text, "access denied by policy")

	ctx = auth.WithPrincipal(context.Background(), &auth.Principal{Subject: "alice"})
	_, isErr = callTool(t, ctx, s, "get_applications_id", map[string]any{"id": 7})
	assert.False(t, isErr)
}

func TestNew_RequiresTools(t *testing.T) {
	_, err := New(context.Background(), Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandler_HealthAndAuth(t *testing.T) {
	setup, err := auth.New(context.Background(), config.AuthConfig{
		Type:         "static",
		StaticTokens: []config.StaticToken{{Token: "secret", ClientID: "ops"}},
	}, nil, quietLogger())
	require.NoError(t, err)
	s := prowlarrServer(t, Options{Auth: setup})

	h, err := s.Handler(TransportStreamableHTTP)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + HealthPath)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"OK"}`, string(body))

	init := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"t","version":"1"}}}`
	resp, err = http.Post(srv.URL+StreamablePath, "application/json", strings.NewReader(init))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+StreamablePath, strings.NewReader(init))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	req.Header.Set("Authorization", "Bearer secret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_ProtectedResourceMetadata(t *testing.T) {
	setup := &auth.Setup{
		Type:     "remote-oauth",
		Verifier: auth.NewJWTVerifier(auth.JWTOptions{Keyfunc: auth.HMACKeyfunc([]byte("x"))}),
		Metadata: auth.NewProtectedResource("https://mcp.example", []string{"https://idp.example"}, nil),
	}
	s := prowlarrServer(t, Options{Auth: setup})
	h, err := s.Handler(TransportSSE)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, auth.ProtectedResourcePath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://idp.example")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, SSEPath, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_RejectsStdio(t *testing.T) {
	s := prowlarrServer(t, Options{})
	_, err := s.Handler(TransportStdio)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListenAndServe(t *testing.T) {
	s := prowlarrServer(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx, TransportStreamableHTTP, "127.0.0.1:0", func(a string) { addrCh <- a })
	}()

	addr := <-addrCh
	resp, err := http.Get(fmt.Sprintf("http://%s%s", addr, HealthPath))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	assert.NoError(t, <-done)
}
