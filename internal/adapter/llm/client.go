package llm

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
	"arr-mcp/internal/infra/tracer"
)

// maxResponseBody is the maximum response body size read from model APIs.
const maxResponseBody = 10 * 1024 * 1024

// Default pool and timeout settings. Model calls go to few hosts with long
// responses, so connections are kept around.
const (
	defaultConnTimeout         = 30 * time.Second
	defaultMaxIdleConns        = 20
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 120 * time.Second
)

// Options configures one provider.
type Options struct {
	Name    string
	Model   string
	BaseURL string
	APIKey  string
	// Insecure skips TLS certificate verification.
	Insecure    bool
	ConnTimeout time.Duration
	// Timeout bounds one whole request. Zero means no client-side bound.
	Timeout time.Duration
	Pool    config.PoolConfig
}

// NewHTTPClient creates a pooled client for opts.
func NewHTTPClient(opts Options) *http.Client {
	connTimeout := opts.ConnTimeout
	if connTimeout <= 0 {
		connTimeout = defaultConnTimeout
	}
	maxIdle := opts.Pool.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	maxIdlePerHost := opts.Pool.MaxIdleConnsPerHost
	if maxIdlePerHost <= 0 {
		maxIdlePerHost = defaultMaxIdleConnsPerHost
	}
	idle := opts.Pool.IdleConnTimeout
	if idle <= 0 {
		idle = defaultIdleConnTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        maxIdle,
		MaxIdleConnsPerHost: maxIdlePerHost,
		MaxConnsPerHost:     opts.Pool.MaxConnsPerHost,
		IdleConnTimeout:     idle,
		ForceAttemptHTTP2:   true,
	}
	if opts.Insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via --insecure
	}
	return &http.Client{Transport: transport, Timeout: opts.Timeout}
}

// requestHeaders merges the provider's auth headers with the configured
// extra headers. Provider headers win.
func requestHeaders(settings domain.ModelSettings, auth map[string]string) map[string]string {
	out := make(map[string]string, len(settings.ExtraHeaders)+len(auth))
	for k, v := range settings.ExtraHeaders {
		out[k] = v
	}
	for k, v := range auth {
		out[k] = v
	}
	return out
}

// marshalWithExtra encodes body and merges extra fields into the top-level
// JSON object. Fields of body win over extra.
func marshalWithExtra(body any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	merged := make(map[string]any, len(extra))
	for k, v := range extra {
		merged[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

func newJSONRequest(ctx context.Context, url string, body []byte, headers map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// doJSONRequest posts body and returns the response body. Non-200 answers
// are mapped to domain errors.
func doJSONRequest(ctx context.Context, client *http.Client, url string, body []byte, headers map[string]string) ([]byte, error) {
	req, err := newJSONRequest(ctx, url, body, headers)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, mapHTTPError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// doStreamRequest posts body for an SSE answer. The caller closes the body.
func doStreamRequest(ctx context.Context, client *http.Client, url string, body []byte, headers map[string]string) (*http.Response, error) {
	req, err := newJSONRequest(ctx, url, body, headers)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, mapHTTPError(resp.StatusCode, respBody)
	}
	return resp, nil
}

// mapHTTPError maps a status code and body to a domain error the error
// classifier and the circuit breaker understand.
func mapHTTPError(statusCode int, body []byte) error {
	detail := fmt.Sprintf("API error %d: %s", statusCode, body)

	switch {
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimit, detail)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrAuthInvalid, detail)
	case statusCode == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", domain.ErrContextOverflow, detail)
	case statusCode >= 500:
		return fmt.Errorf("%w: %s", domain.ErrProviderError, detail)
	default:
		return fmt.Errorf("%s", detail)
	}
}

func startChatSpan(ctx context.Context, provider, model string) (context.Context, trace.Span) {
	return tracer.StartSpan(ctx, "agent.llm_call",
		trace.WithAttributes(
			tracer.StringAttr("llm.provider", provider),
			tracer.StringAttr("llm.model", model),
		),
	)
}

func logChatCompleted(logger *slog.Logger, provider string, result *domain.ChatResponse) {
	logger.Debug("llm chat completed",
		"provider", provider,
		"model", result.Model,
		"tokens", result.Usage.TotalTokens,
		"tool_calls", len(result.Message.ToolCalls),
	)
}

func setUsageAttrs(span trace.Span, usage domain.Usage) {
	span.SetAttributes(
		tracer.IntAttr("llm.prompt_tokens", usage.PromptTokens),
		tracer.IntAttr("llm.completion_tokens", usage.CompletionTokens),
	)
}
