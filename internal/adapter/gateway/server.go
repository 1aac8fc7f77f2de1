// Package gateway is the agent's HTTP surface: AG-UI, A2A, a websocket
// event feed, health, status and metrics.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"arr-mcp/internal/adapter/store"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
	"arr-mcp/internal/infra/metrics"
	"arr-mcp/internal/infra/middleware"
	"arr-mcp/internal/usecase"
	"arr-mcp/internal/usecase/multiagent"
)

// RPCHandler handles one method called over the websocket feed.
type RPCHandler func(ctx context.Context, client *ClientInfo, payload json.RawMessage) (json.RawMessage, error)

// Deps are the collaborators the gateway serves.
type Deps struct {
	Service       domain.Service
	Conversations *multiagent.Conversations
	Registry      *multiagent.Registry
	Store         domain.RunStore
	Bus           domain.EventBus
	// Skills are advertised on the agent card. A default skill is used when empty.
	Skills []domain.Skill
	// Tokens counts tokens for AG-UI message pruning.
	Tokens         usecase.TokenCounter
	PruneMaxTokens int
	Version        string
	// PublicURL is advertised on the agent card. Derived from the request when empty.
	PublicURL string
	Metrics   bool
	Logger    *slog.Logger
}

// clientConn tracks a single websocket connection.
type clientConn struct {
	info      *ClientInfo
	ws        *websocket.Conn
	sendCh    chan Frame
	done      chan struct{}
	closeOnce sync.Once
}

// Server is the agent HTTP server.
type Server struct {
	deps       Deps
	cfg        config.GatewayConfig
	auth       *TokenAuth
	clients    sync.Map // connID (uint64) -> *clientConn
	handlersMu sync.RWMutex
	handlers   map[string]RPCHandler
	tasks      *taskTracker
	logger     *slog.Logger
	started    time.Time
	httpSrv    *http.Server
	boundAddr  string
	ready      chan struct{}
	nextID     atomic.Uint64
	unsubAll   func()
}

// NewServer creates a gateway for deps. RPC handlers for the websocket feed
// are registered here.
func NewServer(deps Deps, cfg config.GatewayConfig) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Store == nil {
		deps.Store = store.NewMemoryStore()
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	s := &Server{
		deps:     deps,
		cfg:      cfg,
		auth:     NewTokenAuth(cfg.AuthToken),
		handlers: make(map[string]RPCHandler),
		tasks:    newTaskTracker(),
		logger:   deps.Logger.With("component", "gateway"),
		started:  time.Now(),
		ready:    make(chan struct{}),
	}
	registerDefaultHandlers(s)
	return s
}

// RegisterHandler adds an RPC handler for the given method name.
func (s *Server) RegisterHandler(method string, handler RPCHandler) {
	s.handlersMu.Lock()
	s.handlers[method] = handler
	s.handlersMu.Unlock()
}

// Handler returns the routed and middleware-wrapped HTTP handler. ctx bounds
// background work of the middleware.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})
	mux.HandleFunc("POST /ag-ui", s.handleAGUI)
	mux.HandleFunc("POST /a2a", s.handleA2A)
	mux.HandleFunc("POST /a2a/", s.handleA2A)
	for _, p := range agentCardPaths {
		mux.HandleFunc("GET "+p, s.handleAgentCard)
	}
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleUpgrade)
	if s.deps.Metrics {
		mux.Handle("GET /metrics", metrics.Handler())
	}
	open := append([]string{"/health", "/ws"}, agentCardPaths...)
	if s.cfg.WebUI {
		mux.HandleFunc("GET /{$}", serveChatPage)
		open = append(open, "/")
	}

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.RateLimit(ctx, middleware.RateLimitConfig{
			RequestsPerSecond: s.cfg.RateLimit,
			Burst:             s.cfg.RateBurst,
		}),
		middleware.BearerAuth(s.cfg.AuthToken, open...),
		middleware.RequestLogger(s.logger),
	)
}

// Start listens on addr and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("gateway listen: %w", err)
	}
	s.boundAddr = listener.Addr().String()
	s.httpSrv = &http.Server{Handler: s.Handler(ctx), ReadHeaderTimeout: 10 * time.Second}

	if s.deps.Bus != nil {
		s.unsubAll = s.deps.Bus.SubscribeAll(s.broadcast)
	}

	s.logger.Info("gateway started", "addr", s.boundAddr, "service", s.deps.Service.Name)
	close(s.ready)

	go func() {
		<-ctx.Done()
		_ = s.Stop(context.Background())
	}()

	if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("gateway serve: %w", err)
	}
	return nil
}

// Ready is closed once Start is listening.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// BoundAddr returns the address the server bound to. Only valid after Ready.
func (s *Server) BoundAddr() string { return s.boundAddr }

// Stop closes websocket clients and shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.unsubAll != nil {
		s.unsubAll()
	}
	s.clients.Range(func(key, value any) bool {
		cc := value.(*clientConn)
		cc.closeOnce.Do(func() { close(cc.done) })
		cc.ws.Close(websocket.StatusGoingAway, "server shutting down")
		s.clients.Delete(key)
		return true
	})
	if s.httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
	return nil
}

// broadcast forwards a bus event to every websocket client. Slow clients
// lose events rather than stall the bus.
func (s *Server) broadcast(_ context.Context, event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	frame := Frame{Type: FrameTypeEvent, Payload: payload}
	s.clients.Range(func(_, value any) bool {
		cc := value.(*clientConn)
		select {
		case cc.sendCh <- frame:
		default:
			s.logger.Warn("dropped event for slow client", "event", string(event.Type))
		}
		return true
	})
}

func (s *Server) clientCount() int {
	n := 0
	s.clients.Range(func(_, _ any) bool { n++; return true })
	return n
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	clientInfo, err := s.auth.Authenticate(requestToken(r))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{
			"localhost",
			"localhost:*",
			"127.0.0.1",
			"127.0.0.1:*",
			"[::1]",
			"[::1]:*",
		},
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "error", err)
		return
	}

	connID := s.nextID.Add(1)
	cc := &clientConn{
		info:   clientInfo,
		ws:     ws,
		sendCh: make(chan Frame, 64),
		done:   make(chan struct{}),
	}
	s.clients.Store(connID, cc)
	s.logger.Info("websocket client connected", "conn_id", connID, "client", clientInfo.Name)

	go s.writeLoop(cc)
	s.readLoop(r.Context(), cc)

	cc.closeOnce.Do(func() { close(cc.done) })
	s.clients.Delete(connID)
	ws.Close(websocket.StatusNormalClosure, "")
	s.logger.Info("websocket client disconnected", "conn_id", connID)
}

func (s *Server) readLoop(ctx context.Context, cc *clientConn) {
	for {
		select {
		case <-cc.done:
			return
		default:
		}

		var frame Frame
		if err := wsjson.Read(ctx, cc.ws, &frame); err != nil {
			return
		}
		if frame.Type != FrameTypeRequest {
			continue
		}
		go s.dispatchRPC(ctx, cc, frame)
	}
}

func (s *Server) writeLoop(cc *clientConn) {
	for {
		select {
		case <-cc.done:
			return
		case frame := <-cc.sendCh:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := wsjson.Write(ctx, cc.ws, frame)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

func (s *Server) dispatchRPC(ctx context.Context, cc *clientConn, req Frame) {
	s.handlersMu.RLock()
	handler, ok := s.handlers[req.Method]
	s.handlersMu.RUnlock()
	if !ok {
		s.sendResponse(cc, req.ID, nil, domain.ErrRPCMethodNotFound)
		return
	}
	result, err := handler(ctx, cc.info, req.Payload)
	s.sendResponse(cc, req.ID, result, err)
}

func (s *Server) sendResponse(cc *clientConn, id uint64, result json.RawMessage, err error) {
	resp := Frame{Type: FrameTypeResponse, ID: id, Payload: result}
	if err != nil {
		resp.Error = err.Error()
	}
	select {
	case cc.sendCh <- resp:
	default:
		s.logger.Warn("dropped rpc response for slow client", "frame_id", id)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
