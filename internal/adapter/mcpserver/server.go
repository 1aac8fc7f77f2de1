// Package mcpserver publishes a service's operation catalog over MCP.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"arr-mcp/internal/adapter/mcpserver/auth"
	"arr-mcp/internal/adapter/mcpserver/policy"
	"arr-mcp/internal/domain"
)

// Default tool-call rate limit.
const (
	DefaultRate  rate.Limit = 10
	DefaultBurst            = 20
)

// Options configures a Server.
type Options struct {
	Service domain.Service
	// Tools is the catalog to publish, normally the service's operation registry.
	Tools   domain.Toolset
	Auth    *auth.Setup
	Policy  policy.Evaluator
	Rate    rate.Limit
	Burst   int
	Version string
	Logger  *slog.Logger
}

// Server is one MCP server instance.
type Server struct {
	svc    domain.Service
	mcp    *server.MCPServer
	auth   *auth.Setup
	logger *slog.Logger
	names  []string
}

// New registers one MCP tool per tool in opts.Tools.
func New(ctx context.Context, opts Options) (*Server, error) {
	if opts.Tools == nil {
		return nil, domain.NewSubSystemError("mcp", "mcpserver.New", domain.ErrInvalidInput, "no tools")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Rate == 0 {
		opts.Rate = DefaultRate
	}
	if opts.Burst == 0 {
		opts.Burst = DefaultBurst
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Auth == nil {
		opts.Auth = &auth.Setup{Type: "none"}
	}

	s := &Server{
		svc:    opts.Service,
		auth:   opts.Auth,
		logger: opts.Logger.With("component", "mcp"),
	}
	s.mcp = server.NewMCPServer(
		opts.Service.Name,
		opts.Version,
		server.WithToolCapabilities(false),
		server.WithInstructions(fmt.Sprintf("Tools for the %s API. %s", opts.Service.Title, opts.Service.Description)),
	)

	chain := newChain(chainConfig{
		auth:    opts.Auth,
		policy:  opts.Policy,
		limiter: rate.NewLimiter(opts.Rate, opts.Burst),
		logger:  s.logger,
	})

	tools, err := opts.Tools.Tools(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	for _, t := range tools {
		s.mcp.AddTool(toMCPTool(t), chain(toolHandler(t)))
		s.names = append(s.names, t.Name())
	}
	s.logger.Info("mcp tools registered", "service", s.svc.Name, "count", len(s.names))
	return s, nil
}

// ToolNames returns the published tool names in registration order.
func (s *Server) ToolNames() []string { return append([]string(nil), s.names...) }

// MCP returns the underlying mcp-go server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// toMCPTool converts t, attaching its tags under _meta.
func toMCPTool(t domain.Tool) mcp.Tool {
	schema := t.Schema()
	params := schema.Parameters
	if len(params) == 0 {
		params = json.RawMessage(`{"type":"object","properties":{}}`)
	}
	out := mcp.NewToolWithRawSchema(t.Name(), t.Description(), params)
	if tt := domain.ToolTags(t); len(tt) > 0 {
		tags := make([]string, len(tt))
		for i, tag := range tt {
			tags[i] = string(tag)
		}
		out.Meta = &mcp.Meta{AdditionalFields: map[string]any{"tags": tags}}
	}
	return out
}

// toolHandler runs t. Go errors are returned to the chain, which turns them
// into error results.
func toolHandler(t domain.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		if args == nil {
			args = map[string]any{}
		}
		raw, err := json.Marshal(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := t.Execute(ctx, raw)
		if err != nil {
			return nil, err
		}
		if res.IsError {
			return mcp.NewToolResultError(res.Content), nil
		}
		return mcp.NewToolResultText(res.Content), nil
	}
}
