package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/usecase"
	"arr-mcp/internal/usecase/multiagent"
)

// ChannelA2A names runs started through the A2A endpoint.
const ChannelA2A = "a2a"

// A2AProtocolVersion is advertised on the agent card.
const A2AProtocolVersion = "0.3.0"

var agentCardPaths = []string{
	"/a2a/.well-known/agent-card.json",
	"/a2a/.well-known/agent.json",
}

// JSON-RPC 2.0 and A2A error codes.
const (
	rpcParseError        = -32700
	rpcInvalidRequest    = -32600
	rpcMethodNotFound    = -32601
	rpcInvalidParams     = -32602
	rpcInternalError     = -32603
	rpcTaskNotFound      = -32001
	rpcTaskNotCancelable = -32002
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string { return e.Message }

type a2aPart struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

type a2aMessage struct {
	Kind      string    `json:"kind"`
	MessageID string    `json:"messageId"`
	Role      string    `json:"role"`
	Parts     []a2aPart `json:"parts"`
	ContextID string    `json:"contextId,omitempty"`
	TaskID    string    `json:"taskId,omitempty"`
}

type a2aStatus struct {
	State     domain.TaskState `json:"state"`
	Timestamp string           `json:"timestamp"`
	Message   *a2aMessage      `json:"message,omitempty"`
}

type a2aArtifact struct {
	ArtifactID string    `json:"artifactId"`
	Name       string    `json:"name,omitempty"`
	Parts      []a2aPart `json:"parts"`
}

type a2aTask struct {
	Kind      string        `json:"kind"`
	ID        string        `json:"id"`
	ContextID string        `json:"contextId"`
	Status    a2aStatus     `json:"status"`
	Artifacts []a2aArtifact `json:"artifacts,omitempty"`
	History   []a2aMessage  `json:"history,omitempty"`
}

// AgentCard describes the agent to A2A clients.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	ProtocolVersion    string            `json:"protocolVersion"`
	PreferredTransport string            `json:"preferredTransport"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []domain.Skill    `json:"skills"`
}

// AgentCapabilities lists the optional A2A features the agent supports.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

// DefaultSkill is advertised when no skills directory is configured.
func DefaultSkill(svc domain.Service) domain.Skill {
	return domain.Skill{
		ID:          svc.Name + "_agent",
		Name:        svc.Title + " Agent",
		Description: svc.Description,
		Tags:        []string{svc.Name},
		InputModes:  []string{"text"},
		OutputModes: []string{"text"},
	}
}

// Card builds the agent card. baseURL is used when no public URL is set.
func (s *Server) Card(baseURL string) AgentCard {
	skills := s.deps.Skills
	if len(skills) == 0 {
		skills = []domain.Skill{DefaultSkill(s.deps.Service)}
	}
	url := s.deps.PublicURL
	if url == "" {
		url = baseURL
	}
	name := s.deps.Service.Title + " Agent"
	if s.deps.Conversations != nil {
		name = s.deps.Conversations.Supervisor().Name()
	}
	return AgentCard{
		Name:               name,
		Description:        s.deps.Service.Description,
		URL:                strings.TrimSuffix(url, "/") + "/a2a",
		Version:            s.deps.Version,
		ProtocolVersion:    A2AProtocolVersion,
		PreferredTransport: "JSONRPC",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills:             skills,
	}
}

func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, s.Card(scheme+"://"+r.Host))
}

func (s *Server) handleA2A(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxAGUIBody))
	if err != nil {
		writeRPC(w, nil, nil, &rpcError{Code: rpcParseError, Message: "read error"})
		return
	}
	var req rpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeRPC(w, nil, nil, &rpcError{Code: rpcParseError, Message: "parse error"})
		return
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		writeRPC(w, req.ID, nil, &rpcError{Code: rpcInvalidRequest, Message: "invalid request"})
		return
	}

	var (
		result any
		rerr   *rpcError
	)
	switch req.Method {
	case "message/send":
		result, rerr = s.a2aSend(r.Context(), req.Params)
	case "tasks/get":
		result, rerr = s.a2aGet(r.Context(), req.Params)
	case "tasks/cancel":
		result, rerr = s.a2aCancel(r.Context(), req.Params)
	default:
		rerr = &rpcError{Code: rpcMethodNotFound, Message: "method not found: " + req.Method}
	}
	writeRPC(w, req.ID, result, rerr)
}

func writeRPC(w http.ResponseWriter, id json.RawMessage, result any, rerr *rpcError) {
	if id == nil {
		id = json.RawMessage("null")
	}
	resp := rpcResponse{JSONRPC: "2.0", ID: id, Result: result}
	if rerr != nil {
		resp.Result = nil
		resp.Error = rerr
	}
	writeJSON(w, http.StatusOK, resp)
}

func messageText(m a2aMessage) string {
	var parts []string
	for _, p := range m.Parts {
		if p.Kind == "text" && p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func (s *Server) a2aSend(ctx context.Context, params json.RawMessage) (any, *rpcError) {
	var p struct {
		Message a2aMessage `json:"message"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &rpcError{Code: rpcInvalidParams, Message: "invalid params: " + err.Error()}
	}
	prompt := messageText(p.Message)
	if strings.TrimSpace(prompt) == "" {
		return nil, &rpcError{Code: rpcInvalidParams, Message: "message has no text parts"}
	}
	if s.deps.Conversations == nil {
		return nil, &rpcError{Code: rpcInternalError, Message: "agent not configured"}
	}

	contextID := p.Message.ContextID
	if contextID == "" {
		contextID = usecase.NewRunID()
	}
	now := time.Now().UTC()
	rec := domain.TaskRecord{
		ID:        usecase.NewRunID(),
		ContextID: contextID,
		State:     domain.TaskWorking,
		Input:     prompt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.saveTask(ctx, rec)

	runCtx, cancel := context.WithCancel(ctx)
	s.tasks.start(rec.ID, cancel)
	out, err := s.deps.Conversations.Run(runCtx, contextID, multiagent.RunRequest{
		Prompt:  prompt,
		Channel: ChannelA2A,
	})
	canceled := s.tasks.finish(rec.ID)
	cancel()

	if out != nil {
		rec.RunID = out.RunID
	}
	rec.UpdatedAt = time.Now().UTC()
	switch {
	case canceled:
		rec.State = domain.TaskCanceled
	case err != nil:
		rec.State = domain.TaskFailed
		rec.Error = err.Error()
	default:
		rec.State = domain.TaskCompleted
		rec.Output = out.Output
	}
	// The request context may be gone once the run was canceled.
	s.saveTask(context.WithoutCancel(ctx), rec)
	return toA2ATask(rec), nil
}

func (s *Server) a2aGet(ctx context.Context, params json.RawMessage) (any, *rpcError) {
	id, rerr := taskIDParam(params)
	if rerr != nil {
		return nil, rerr
	}
	rec, err := s.deps.Store.GetTask(ctx, id)
	if err != nil {
		return nil, taskLookupError(id, err)
	}
	return toA2ATask(*rec), nil
}

func (s *Server) a2aCancel(ctx context.Context, params json.RawMessage) (any, *rpcError) {
	id, rerr := taskIDParam(params)
	if rerr != nil {
		return nil, rerr
	}
	rec, err := s.deps.Store.GetTask(ctx, id)
	if err != nil {
		return nil, taskLookupError(id, err)
	}
	if !s.tasks.cancel(id) {
		return nil, &rpcError{Code: rpcTaskNotCancelable, Message: "task cannot be canceled: " + string(rec.State)}
	}
	rec.State = domain.TaskCanceled
	rec.UpdatedAt = time.Now().UTC()
	s.saveTask(ctx, *rec)
	return toA2ATask(*rec), nil
}

func (s *Server) saveTask(ctx context.Context, rec domain.TaskRecord) {
	if err := s.deps.Store.SaveTask(ctx, rec); err != nil {
		s.logger.Warn("saving task failed", "task_id", rec.ID, "error", err)
	}
}

func taskIDParam(params json.RawMessage) (string, *rpcError) {
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.ID == "" {
		return "", &rpcError{Code: rpcInvalidParams, Message: "task id is required"}
	}
	return p.ID, nil
}

func taskLookupError(id string, err error) *rpcError {
	if errors.Is(err, domain.ErrNotFound) {
		return &rpcError{Code: rpcTaskNotFound, Message: "task not found: " + id}
	}
	return &rpcError{Code: rpcInternalError, Message: err.Error()}
}

func toA2ATask(rec domain.TaskRecord) a2aTask {
	t := a2aTask{
		Kind:      "task",
		ID:        rec.ID,
		ContextID: rec.ContextID,
		Status: a2aStatus{
			State:     rec.State,
			Timestamp: rec.UpdatedAt.Format(time.RFC3339),
		},
		History: []a2aMessage{{
			Kind:      "message",
			MessageID: rec.ID + "-in",
			Role:      "user",
			Parts:     []a2aPart{{Kind: "text", Text: rec.Input}},
			ContextID: rec.ContextID,
			TaskID:    rec.ID,
		}},
	}
	switch rec.State {
	case domain.TaskCompleted:
		t.Artifacts = []a2aArtifact{{
			ArtifactID: rec.ID + "-result",
			Name:       "result",
			Parts:      []a2aPart{{Kind: "text", Text: rec.Output}},
		}}
	case domain.TaskFailed:
		t.Status.Message = &a2aMessage{
			Kind:      "message",
			MessageID: rec.ID + "-error",
			Role:      "agent",
			Parts:     []a2aPart{{Kind: "text", Text: rec.Error}},
			ContextID: rec.ContextID,
			TaskID:    rec.ID,
		}
	}
	return t
}

// taskTracker holds cancel funcs of tasks whose run is in flight.
type taskTracker struct {
	mu       sync.Mutex
	running  map[string]context.CancelFunc
	canceled map[string]bool
}

func newTaskTracker() *taskTracker {
	return &taskTracker{
		running:  make(map[string]context.CancelFunc),
		canceled: make(map[string]bool),
	}
}

func (t *taskTracker) start(id string, cancel context.CancelFunc) {
	t.mu.Lock()
	t.running[id] = cancel
	t.mu.Unlock()
}

// finish forgets id and reports whether it was canceled while running.
func (t *taskTracker) finish(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.running, id)
	c := t.canceled[id]
	delete(t.canceled, id)
	return c
}

func (t *taskTracker) cancel(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	cancel, ok := t.running[id]
	if !ok {
		return false
	}
	t.canceled[id] = true
	cancel()
	return true
}
