// Package arr talks to the REST APIs of the wrapped media services and
// declares their operation catalogs.
package arr

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/metrics"
	"arr-mcp/internal/infra/tracer"
)

// maxResponseBody bounds how much of a backend response is read.
const maxResponseBody = 32 * 1024 * 1024

// Conn is the connection tuple of one backend instance.
// Clients are pooled per Conn; credentials never cross tuples.
type Conn struct {
	BaseURL string
	APIKey  string
	Verify  bool
}

// Client performs authenticated requests against one backend instance.
type Client struct {
	service string
	base    *url.URL
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for conn. service names the backend in logs and metrics.
func NewClient(service string, conn Conn, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(conn.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid base url %q", domain.ErrInvalidInput, conn.BaseURL)
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !conn.Verify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // *_VERIFY=false is an explicit opt-out
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		service: service,
		base:    base,
		apiKey:  conn.APIKey,
		http:    &http.Client{Transport: transport},
		logger:  logger,
	}, nil
}

// Service returns the backend name this client talks to.
func (c *Client) Service() string { return c.service }

// Do sends one request and normalizes the response:
//
//   - status >= 400: *domain.BackendError carrying status and body verbatim;
//   - 204: {"status":"success"};
//   - 2xx with a non-JSON body: {"status":"success","text":<body>};
//   - otherwise the JSON body as returned.
//
// The endpoint is resolved against the base URL the way a browser resolves
// a link, so an absolute endpoint path replaces the base path.
func (c *Client) Do(ctx context.Context, method, endpoint string, query url.Values, body any) (json.RawMessage, error) {
	ctx, span := tracer.StartSpan(ctx, tracer.SpanBackendRequest,
		trace.WithAttributes(
			tracer.StringAttr("arr.service", c.service),
			tracer.StringAttr("http.method", method),
			tracer.StringAttr("arr.endpoint", endpoint),
		),
	)
	out, status, err := c.do(ctx, method, endpoint, query, body)
	if status > 0 {
		span.SetAttributes(tracer.IntAttr("http.status_code", status))
	}
	tracer.Finish(span, err)
	return out, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) (json.RawMessage, int, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	target := c.base.ResolveReference(ref)
	if len(query) > 0 {
		q := target.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if tok := DelegatedTokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveBackend(c.service, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, 0, fmt.Errorf("%s %s: %w", method, target.Path, ctx.Err())
		}
		return nil, 0, fmt.Errorf("%s %s: %w", method, target.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	metrics.ObserveBackend(c.service, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("backend request",
		"service", c.service,
		"method", method,
		"path", target.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	out, err := normalize(resp.StatusCode, raw)
	return out, resp.StatusCode, err
}

var successStatus = json.RawMessage(`{"status":"success"}`)

// normalize applies the response contract to a status code and body.
func normalize(status int, raw []byte) (json.RawMessage, error) {
	if status >= 400 {
		return nil, &domain.BackendError{Status: status, Body: string(raw)}
	}
	if status == http.StatusNoContent {
		return successStatus, nil
	}
	if len(bytes.TrimSpace(raw)) > 0 && json.Valid(raw) {
		return json.RawMessage(raw), nil
	}
	wrapped, err := json.Marshal(struct {
		Status string `json:"status"`
		Text   string `json:"text"`
	}{"success", string(raw)})
	if err != nil {
		return nil, err
	}
	return wrapped, nil
}

type tokenCtxKey struct{}

// ContextWithDelegatedToken attaches a bearer token that is forwarded to the
// backend next to the API key.
func ContextWithDelegatedToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// DelegatedTokenFromContext returns the token set by ContextWithDelegatedToken.
func DelegatedTokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenCtxKey{}).(string)
	return tok
}
