package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	"arr-mcp/internal/domain"
)

// MCPServerSpec describes one remote MCP server to connect to.
type MCPServerSpec struct {
	Name      string            `json:"-"`
	Command   string            `json:"command,omitempty"`
	Args      []string          `json:"args,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
	URL       string            `json:"url,omitempty"`
	Transport string            `json:"transport,omitempty"` // stdio, sse, http
}

// LoadMCPConfig reads an mcpServers JSON file. Servers are returned sorted by name.
func LoadMCPConfig(path string) ([]MCPServerSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read mcp config: %v", domain.ErrConfigLoad, err)
	}
	var doc struct {
		MCPServers map[string]MCPServerSpec `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse mcp config %s: %v", domain.ErrConfigLoad, path, err)
	}

	names := make([]string, 0, len(doc.MCPServers))
	for name := range doc.MCPServers {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]MCPServerSpec, 0, len(names))
	for _, name := range names {
		spec := doc.MCPServers[name]
		spec.Name = name
		if spec.Transport == "" {
			if spec.Command != "" {
				spec.Transport = "stdio"
			} else {
				spec.Transport = transportForURL(spec.URL)
			}
		}
		if spec.Transport == "streamable-http" {
			spec.Transport = "http"
		}
		out = append(out, spec)
	}
	return out, nil
}

// MCPServerFromURL describes a single server given by URL. URLs mentioning
// sse use the SSE transport, anything else streamable HTTP.
func MCPServerFromURL(url string) MCPServerSpec {
	return MCPServerSpec{Name: "mcp", URL: url, Transport: transportForURL(url)}
}

func transportForURL(url string) string {
	if strings.Contains(strings.ToLower(url), "sse") {
		return "sse"
	}
	return "http"
}

// MCPBridge holds one lazily connected toolset per MCP server. Nothing is
// dialed until a run first lists tools, so a server that is still starting
// surfaces as a run error instead of a startup failure.
type MCPBridge struct {
	toolsets []*MCPToolset
	logger   *slog.Logger
}

// mcpClient abstracts the MCP client interface for testability.
type mcpClient interface {
	ListTools(ctx context.Context, request mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

type mcpDialer func(ctx context.Context) (mcpClient, error)

// NewMCPBridge prepares a toolset per server without connecting.
func NewMCPBridge(servers []MCPServerSpec, logger *slog.Logger) *MCPBridge {
	if logger == nil {
		logger = slog.Default()
	}
	b := &MCPBridge{logger: logger}
	for _, srv := range servers {
		b.toolsets = append(b.toolsets, newMCPToolset(srv.Name, func(ctx context.Context) (mcpClient, error) {
			return connectServer(ctx, srv, logger)
		}, logger))
	}
	return b
}

func connectServer(ctx context.Context, srv MCPServerSpec, logger *slog.Logger) (mcpClient, error) {
	var c mcpClient

	switch srv.Transport {
	case "stdio":
		stdio, err := mcpclient.NewStdioMCPClient(srv.Command, envSlice(srv.Env), srv.Args...)
		if err != nil {
			return nil, fmt.Errorf("create stdio client: %w", err)
		}
		c = stdio
	case "sse":
		t, err := transport.NewSSE(srv.URL)
		if err != nil {
			return nil, fmt.Errorf("create sse transport: %w", err)
		}
		sseClient := mcpclient.NewClient(t)
		if err := sseClient.Start(ctx); err != nil {
			return nil, fmt.Errorf("start sse client: %w", err)
		}
		c = sseClient
	case "http":
		t, err := transport.NewStreamableHTTP(srv.URL)
		if err != nil {
			return nil, fmt.Errorf("create http transport: %w", err)
		}
		httpClient := mcpclient.NewClient(t)
		if err := httpClient.Start(ctx); err != nil {
			return nil, fmt.Errorf("start http client: %w", err)
		}
		c = httpClient
	default:
		return nil, fmt.Errorf("unsupported transport %q", srv.Transport)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "arr-agent",
		Version: "1.0.0",
	}

	if ic, ok := c.(interface {
		Initialize(ctx context.Context, request mcp.InitializeRequest) (*mcp.InitializeResult, error)
	}); ok {
		if _, err := ic.Initialize(ctx, initReq); err != nil {
			c.Close()
			return nil, domain.WrapOp("initialize", err)
		}
	}

	logger.Info("mcp server connected", "name", srv.Name, "transport", srv.Transport)
	return c, nil
}

// Toolsets returns one filterable toolset per configured server.
func (b *MCPBridge) Toolsets() []domain.Toolset {
	out := make([]domain.Toolset, len(b.toolsets))
	for i, ts := range b.toolsets {
		out[i] = ts
	}
	return out
}

// Close shuts down every connection opened so far.
func (b *MCPBridge) Close() {
	for _, ts := range b.toolsets {
		ts.close()
	}
}

// MCPToolset is the tool list of one remote server. The connection is opened
// on first use and the list is fetched again on every Tools call, so each
// run sees what the server currently offers. Tools are filtered by the tags
// the server advertises in each tool's _meta.
type MCPToolset struct {
	name   string
	dial   mcpDialer
	logger *slog.Logger

	mu     sync.Mutex
	client mcpClient
}

func newMCPToolset(name string, dial mcpDialer, logger *slog.Logger) *MCPToolset {
	return &MCPToolset{name: name, dial: dial, logger: logger}
}

// Name implements domain.Toolset.
func (s *MCPToolset) Name() string { return s.name }

// Tools implements domain.Toolset.
func (s *MCPToolset) Tools(ctx context.Context) ([]domain.Tool, error) {
	adapters, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Tool, len(adapters))
	for i, t := range adapters {
		out[i] = t
	}
	return out, nil
}

// FilterByTag implements domain.Toolset. The view defers to the server on
// each Tools call.
func (s *MCPToolset) FilterByTag(tag domain.Tag) (domain.Toolset, bool) {
	return &mcpTagView{set: s, tags: []domain.Tag{tag}}, true
}

func (s *MCPToolset) list(ctx context.Context) ([]*mcpToolAdapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		c, err := s.dial(ctx)
		if err != nil {
			return nil, fmt.Errorf("mcp server %q: %w", s.name, err)
		}
		s.client = c
	}

	result, err := s.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		// Drop the connection so the next run dials again.
		s.closeLocked()
		return nil, fmt.Errorf("mcp server %q: list tools: %w", s.name, err)
	}

	adapters := make([]*mcpToolAdapter, 0, len(result.Tools))
	for _, t := range result.Tools {
		adapters = append(adapters, newMCPToolAdapter(s.name, s.client, t, remoteToolTags(t), s.logger))
	}
	s.logger.Debug("mcp tools listed", "server", s.name, "count", len(adapters))
	return adapters, nil
}

func (s *MCPToolset) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *MCPToolset) closeLocked() {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		s.logger.Warn("mcp server close error", "server", s.name, "error", err)
	}
	s.client = nil
}

// mcpTagView is a tag filter over a server's live tool list. Filtering a
// view again narrows it to tools carrying every tag.
type mcpTagView struct {
	set  *MCPToolset
	tags []domain.Tag
}

func (v *mcpTagView) Name() string { return v.set.name }

func (v *mcpTagView) Tools(ctx context.Context) ([]domain.Tool, error) {
	adapters, err := v.set.list(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Tool
	for _, t := range adapters {
		if hasAllTags(t.tags, v.tags) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (v *mcpTagView) FilterByTag(tag domain.Tag) (domain.Toolset, bool) {
	return &mcpTagView{set: v.set, tags: append(slices.Clone(v.tags), tag)}, true
}

func hasAllTags(have, want []domain.Tag) bool {
	for _, w := range want {
		if !domain.HasTag(have, w) {
			return false
		}
	}
	return true
}

// remoteToolTags reads the tags a server attached to t. FastMCP servers
// nest them under _meta._fastmcp.tags; others use _meta.tags.
func remoteToolTags(t mcp.Tool) []domain.Tag {
	data, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	var doc struct {
		Meta json.RawMessage `json:"_meta"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return parseMetaTags(doc.Meta)
}

func parseMetaTags(meta json.RawMessage) []domain.Tag {
	if len(meta) == 0 {
		return nil
	}
	var m struct {
		Tags    []string `json:"tags"`
		FastMCP struct {
			Tags []string `json:"tags"`
		} `json:"_fastmcp"`
	}
	if err := json.Unmarshal(meta, &m); err != nil {
		return nil
	}
	raw := m.FastMCP.Tags
	if len(raw) == 0 {
		raw = m.Tags
	}
	tags := make([]domain.Tag, 0, len(raw))
	for _, t := range raw {
		tags = append(tags, domain.Tag(t))
	}
	return tags
}

// mcpToolAdapter wraps a single MCP tool as a domain.Tool.
type mcpToolAdapter struct {
	serverName string
	client     mcpClient
	mcpTool    mcp.Tool
	tags       []domain.Tag
	logger     *slog.Logger
}

func newMCPToolAdapter(serverName string, client mcpClient, t mcp.Tool, tags []domain.Tag, logger *slog.Logger) *mcpToolAdapter {
	return &mcpToolAdapter{
		serverName: serverName,
		client:     client,
		mcpTool:    t,
		tags:       tags,
		logger:     logger,
	}
}

func (a *mcpToolAdapter) Name() string       { return a.mcpTool.Name }
func (a *mcpToolAdapter) Tags() []domain.Tag { return a.tags }

func (a *mcpToolAdapter) Description() string {
	desc := a.mcpTool.Description
	if desc == "" {
		desc = fmt.Sprintf("MCP tool %q from server %q", a.mcpTool.Name, a.serverName)
	}
	return desc
}

func (a *mcpToolAdapter) Schema() domain.ToolSchema {
	params := json.RawMessage(`{"type": "object"}`)
	if a.mcpTool.RawInputSchema != nil {
		params = a.mcpTool.RawInputSchema
	} else if a.mcpTool.InputSchema.Properties != nil || a.mcpTool.InputSchema.Required != nil {
		if data, err := json.Marshal(a.mcpTool.InputSchema); err == nil {
			params = data
		}
	}

	return domain.ToolSchema{
		Name:        a.mcpTool.Name,
		Description: a.Description(),
		Parameters:  params,
	}
}

// Execute calls the remote tool. Transport failures are returned as errors.
// Error results reported by the server go back to the model as retryable,
// so they count against the run's tool retry budget.
func (a *mcpToolAdapter) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	var args map[string]any
	if len(params) > 0 && string(params) != "null" {
		if err := json.Unmarshal(params, &args); err != nil {
			return &domain.ToolResult{
				Content:     fmt.Sprintf("invalid arguments: %v", err),
				IsError:     true,
				IsRetryable: true,
			}, nil
		}
	}

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = a.mcpTool.Name
	callReq.Params.Arguments = args

	a.logger.Debug("mcp tool call",
		"server", a.serverName,
		"tool", a.mcpTool.Name)

	result, err := a.client.CallTool(ctx, callReq)
	if err != nil {
		return nil, fmt.Errorf("mcp %s/%s: %w", a.serverName, a.mcpTool.Name, err)
	}

	if result.IsError {
		a.logger.Warn("mcp tool reported an error",
			"server", a.serverName,
			"tool", a.mcpTool.Name)
		return &domain.ToolResult{
			Content:     extractMCPContent(result),
			IsError:     true,
			IsRetryable: true,
		}, nil
	}
	return &domain.ToolResult{Content: extractMCPContent(result)}, nil
}

// extractMCPContent converts MCP CallToolResult content to a string.
func extractMCPContent(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		switch v := c.(type) {
		case mcp.TextContent:
			parts = append(parts, v.Text)
		case *mcp.TextContent:
			parts = append(parts, v.Text)
		default:
			if data, err := json.Marshal(v); err == nil {
				parts = append(parts, string(data))
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n")
}

// envSlice converts a map of env vars to KEY=VALUE slices.
func envSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}
