package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ProtectedResourcePath is where RFC 9728 metadata is served.
const ProtectedResourcePath = "/.well-known/oauth-protected-resource"

// ProtectedResource is the RFC 9728 metadata document.
type ProtectedResource struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers"`
	ScopesSupported        []string `json:"scopes_supported,omitempty"`
	BearerMethodsSupported []string `json:"bearer_methods_supported"`
}

// NewProtectedResource describes the resource at baseURL.
func NewProtectedResource(baseURL string, servers, scopes []string) *ProtectedResource {
	return &ProtectedResource{
		Resource:               strings.TrimRight(baseURL, "/"),
		AuthorizationServers:   servers,
		ScopesSupported:        scopes,
		BearerMethodsSupported: []string{"header"},
	}
}

// URL is the absolute address of the metadata document.
func (m *ProtectedResource) URL() string { return m.Resource + ProtectedResourcePath }

// ServeHTTP implements http.Handler.
func (m *ProtectedResource) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}
