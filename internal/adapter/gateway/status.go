package gateway

import (
	"net/http"
	"time"

	"arr-mcp/internal/domain"
)

// StatusResponse is the JSON body returned by GET /api/v1/status.
type StatusResponse struct {
	Service       string               `json:"service"`
	Supervisor    string               `json:"supervisor,omitempty"`
	Version       string               `json:"version"`
	UptimeSeconds int64                `json:"uptime_seconds"`
	Agents        []domain.AgentStatus `json:"agents"`
	RecentRuns    []domain.RunRecord   `json:"recent_runs"`
	Clients       int                  `json:"websocket_clients"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Service:       s.deps.Service.Name,
		Version:       s.deps.Version,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Agents:        []domain.AgentStatus{},
		Clients:       s.clientCount(),
	}
	if s.deps.Conversations != nil {
		resp.Supervisor = s.deps.Conversations.Supervisor().Name()
	}
	if s.deps.Registry != nil {
		resp.Agents = s.deps.Registry.List(r.Context())
	}
	runs, err := s.deps.Store.ListRuns(r.Context(), 10)
	if err != nil {
		s.logger.Warn("listing runs failed", "error", err)
	}
	resp.RecentRuns = runs
	if resp.RecentRuns == nil {
		resp.RecentRuns = []domain.RunRecord{}
	}
	writeJSON(w, http.StatusOK, resp)
}
