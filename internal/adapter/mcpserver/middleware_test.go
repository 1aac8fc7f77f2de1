package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"arr-mcp/internal/adapter/mcpserver/auth"
	"arr-mcp/internal/adapter/mcpserver/policy"
	"arr-mcp/internal/domain"
)

type policyRequest = policy.Request

type evaluatorFunc func(policy.Request) bool

func (f evaluatorFunc) Evaluate(_ context.Context, req policy.Request) (policy.Decision, error) {
	return policy.Decision{Allowed: f(req)}, nil
}

type failingEvaluator struct{}

func (failingEvaluator) Evaluate(context.Context, policy.Request) (policy.Decision, error) {
	return policy.Decision{}, errors.New("policy service down")
}

func request(name string) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = map[string]any{}
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func testChain(cfg chainConfig) server.ToolHandlerMiddleware {
	if cfg.auth == nil {
		cfg.auth = &auth.Setup{Type: "none"}
	}
	if cfg.limiter == nil {
		cfg.limiter = rate.NewLimiter(rate.Inf, 1)
	}
	cfg.logger = quietLogger()
	return newChain(cfg)
}

func TestChain_RecoversPanic(t *testing.T) {
	h := testChain(chainConfig{})(func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		panic("boom")
	})
	res, err := h(context.Background(), request("explode"))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "internal error in explode", resultText(t, res))
}

func TestChain_ErrorsBecomeResults(t *testing.T) {
	h := testChain(chainConfig{})(func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, &domain.BackendError{Status: 500, Body: "oops"}
	})
	res, err := h(context.Background(), request("get_x"))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "API error: 500 - oops", resultText(t, res))
}

func TestChain_RateLimit(t *testing.T) {
	calls := 0
	h := testChain(chainConfig{limiter: rate.NewLimiter(rate.Limit(0.001), 1)})(
		func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			calls++
			return mcp.NewToolResultText("ok"), nil
		})

	res, err := h(context.Background(), request("t"))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = h(context.Background(), request("t"))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "rate limit")
	assert.Equal(t, 1, calls)
}

func TestChain_PolicyFailureDenies(t *testing.T) {
	h := testChain(chainConfig{policy: failingEvaluator{}})(
		func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			t.Fatal("handler must not run")
			return nil, nil
		})
	res, err := h(context.Background(), request("t"))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "access denied by policy")
}

func TestChain_PassesPrincipalThrough(t *testing.T) {
	setup := &auth.Setup{Type: "static", Verifier: &auth.StaticVerifier{}}
	var got string
	h := testChain(chainConfig{auth: setup})(func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, _ := auth.PrincipalFrom(ctx)
		got = p.Name()
		return mcp.NewToolResultText("ok"), nil
	})
	ctx := auth.WithPrincipal(context.Background(), &auth.Principal{ClientID: "ops", Token: "t"})
	_, err := h(ctx, request("t"))
	require.NoError(t, err)
	assert.Equal(t, "ops", got)
}
