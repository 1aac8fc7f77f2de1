package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"arr-mcp/internal/adapter/mcpserver/auth"
	"arr-mcp/internal/domain"
)

// Transports.
const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// Endpoint paths of the HTTP transports.
const (
	StreamablePath  = "/mcp"
	SSEPath         = "/sse"
	SSEMessagePath  = "/message"
	HealthPath      = "/health"
	shutdownTimeout = 5 * time.Second
)

// ServeStdio serves JSON-RPC over in and out until ctx ends or in closes.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	s.logger.Info("mcp server listening", "transport", TransportStdio)
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio: %w", err)
	}
	return nil
}

// principalContext carries the principal the auth middleware attached to
// the request into the MCP call context.
func principalContext(ctx context.Context, r *http.Request) context.Context {
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		return auth.WithPrincipal(ctx, p)
	}
	return ctx
}

// Handler returns the HTTP handler of transport: the MCP endpoint plus
// /health and, for OAuth style auth, the discovery and proxy endpoints.
func (s *Server) Handler(transport string) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	})
	public := []string{HealthPath}

	if s.auth.Metadata != nil {
		mux.Handle("GET "+auth.ProtectedResourcePath, s.auth.Metadata)
		public = append(public, auth.ProtectedResourcePath)
	}
	if s.auth.Proxy != nil {
		s.auth.Proxy.Register(mux)
		public = append(public, s.auth.Proxy.Paths()...)
	}

	switch transport {
	case TransportStreamableHTTP:
		h := server.NewStreamableHTTPServer(s.mcp,
			server.WithEndpointPath(StreamablePath),
			server.WithHTTPContextFunc(principalContext),
		)
		mux.Handle(StreamablePath, h)
	case TransportSSE:
		h := server.NewSSEServer(s.mcp,
			server.WithSSEEndpoint(SSEPath),
			server.WithMessageEndpoint(SSEMessagePath),
			server.WithSSEContextFunc(principalContext),
		)
		mux.Handle(SSEPath, h)
		mux.Handle(SSEMessagePath, h)
	default:
		return nil, domain.NewSubSystemError("mcp", "mcpserver.Handler", domain.ErrInvalidInput,
			fmt.Sprintf("transport %q is not served over HTTP", transport))
	}
	return s.auth.Middleware(mux, public...), nil
}

// ListenAndServe listens on addr and serves transport until ctx ends. ready, if
// not nil, receives the bound address once listening.
func (s *Server) ListenAndServe(ctx context.Context, transport, addr string, ready func(string)) error {
	h, err := s.Handler(transport)
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp listen: %w", err)
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	s.logger.Info("mcp server listening", "transport", transport, "addr", ln.Addr().String(), "auth", s.auth.Type)
	if ready != nil {
		ready(ln.Addr().String())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mcp serve: %w", err)
	}
	return nil
}
