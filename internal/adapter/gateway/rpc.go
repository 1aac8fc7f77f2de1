package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"arr-mcp/internal/domain"
)

// ChannelWebsocket names runs started over the websocket feed.
const ChannelWebsocket = "ws"

type agentSendParams struct {
	Prompt    string `json:"prompt"`
	ContextID string `json:"context_id,omitempty"`
}

type agentSendResult struct {
	RunID  string               `json:"run_id"`
	Output string               `json:"output"`
	Usage  domain.UsageSnapshot `json:"usage"`
}

func registerDefaultHandlers(s *Server) {
	s.RegisterHandler("agent.send", s.rpcAgentSend)
	s.RegisterHandler("agents.list", s.rpcAgentsList)
	s.RegisterHandler("runs.list", s.rpcRunsList)
	s.RegisterHandler("runs.get", s.rpcRunsGet)
}

func decodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRPCInvalidPayload, err)
	}
	return nil
}

func (s *Server) rpcAgentSend(ctx context.Context, _ *ClientInfo, payload json.RawMessage) (json.RawMessage, error) {
	var p agentSendParams
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	if p.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrRPCInvalidPayload)
	}
	if s.deps.Conversations == nil {
		return nil, fmt.Errorf("%w: no agent configured", domain.ErrInvalidInput)
	}
	out, err := s.deps.Conversations.Handle(ctx, ChannelWebsocket, p.ContextID, p.Prompt)
	if err != nil {
		return nil, err
	}
	return json.Marshal(agentSendResult{RunID: out.RunID, Output: out.Output, Usage: out.Usage})
}

func (s *Server) rpcAgentsList(ctx context.Context, _ *ClientInfo, _ json.RawMessage) (json.RawMessage, error) {
	if s.deps.Registry == nil {
		return json.Marshal([]domain.AgentStatus{})
	}
	return json.Marshal(s.deps.Registry.List(ctx))
}

func (s *Server) rpcRunsList(ctx context.Context, _ *ClientInfo, payload json.RawMessage) (json.RawMessage, error) {
	p := struct {
		Limit int `json:"limit"`
	}{Limit: 20}
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	runs, err := s.deps.Store.ListRuns(ctx, p.Limit)
	if err != nil {
		return nil, err
	}
	return json.Marshal(runs)
}

func (s *Server) rpcRunsGet(ctx context.Context, _ *ClientInfo, payload json.RawMessage) (json.RawMessage, error) {
	var p struct {
		ID string `json:"id"`
	}
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	run, err := s.deps.Store.GetRun(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(run)
}
