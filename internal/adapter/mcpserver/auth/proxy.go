package auth

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Paths served by OAuthProxy.
const (
	AuthorizationServerPath = "/.well-known/oauth-authorization-server"
	AuthorizePath           = "/authorize"
	TokenPath               = "/token"
	RegisterPath            = "/register"
)

// ProxyConfig describes the upstream identity provider.
type ProxyConfig struct {
	BaseURL             string
	AuthorizationURL    string
	TokenURL            string
	ClientID            string
	ClientSecret        string
	AllowedRedirectURIs []string
	Scopes              []string
}

// OAuthProxy presents this server as an OAuth authorization server to MCP
// clients and forwards the flow to an upstream provider with a single
// pre-registered client.
type OAuthProxy struct {
	cfg    ProxyConfig
	client *http.Client
	logger *slog.Logger
}

// NewOAuthProxy creates a proxy for cfg.
func NewOAuthProxy(cfg ProxyConfig, client *http.Client, logger *slog.Logger) *OAuthProxy {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OAuthProxy{cfg: cfg, client: client, logger: logger}
}

// Register mounts the proxy endpoints on mux.
func (p *OAuthProxy) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+AuthorizationServerPath, p.serveMetadata)
	mux.HandleFunc("GET "+AuthorizePath, p.serveAuthorize)
	mux.HandleFunc("POST "+TokenPath, p.serveToken)
	mux.HandleFunc("POST "+RegisterPath, p.serveRegister)
}

// Paths lists the endpoints that must stay reachable without a token.
func (p *OAuthProxy) Paths() []string {
	return []string{AuthorizationServerPath, AuthorizePath, TokenPath, RegisterPath}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (p *OAuthProxy) serveMetadata(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"issuer":                                p.cfg.BaseURL,
		"authorization_endpoint":                p.cfg.BaseURL + AuthorizePath,
		"token_endpoint":                        p.cfg.BaseURL + TokenPath,
		"registration_endpoint":                 p.cfg.BaseURL + RegisterPath,
		"response_types_supported":              []string{"code"},
		"grant_types_supported":                 []string{"authorization_code", "refresh_token"},
		"code_challenge_methods_supported":      []string{"S256"},
		"token_endpoint_auth_methods_supported": []string{"none", "client_secret_post"},
		"scopes_supported":                      p.cfg.Scopes,
	})
}

// redirectAllowed matches uri against the configured patterns. An empty
// list allows loopback redirects only.
func (p *OAuthProxy) redirectAllowed(uri string) bool {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return false
	}
	if len(p.cfg.AllowedRedirectURIs) == 0 {
		host := u.Hostname()
		return host == "localhost" || host == "127.0.0.1" || host == "::1"
	}
	for _, pattern := range p.cfg.AllowedRedirectURIs {
		if pattern == uri {
			return true
		}
		if ok, _ := path.Match(pattern, uri); ok {
			return true
		}
	}
	return false
}

func (p *OAuthProxy) serveAuthorize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if redirect := q.Get("redirect_uri"); redirect != "" && !p.redirectAllowed(redirect) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_request",
			"error_description": "redirect_uri is not allowed",
		})
		return
	}
	q.Set("client_id", p.cfg.ClientID)
	if q.Get("scope") == "" && len(p.cfg.Scopes) > 0 {
		q.Set("scope", strings.Join(p.cfg.Scopes, " "))
	}
	target, err := url.Parse(p.cfg.AuthorizationURL)
	if err != nil {
		http.Error(w, "bad upstream authorization url", http.StatusInternalServerError)
		return
	}
	existing := target.Query()
	for k, v := range q {
		existing[k] = v
	}
	target.RawQuery = existing.Encode()
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func (p *OAuthProxy) serveToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}
	form := r.PostForm
	form.Set("client_id", p.cfg.ClientID)
	form.Set("client_secret", p.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, p.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		http.Error(w, "bad upstream token url", http.StatusInternalServerError)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("oauth proxy token exchange failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "temporarily_unavailable"})
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, io.LimitReader(resp.Body, 1<<20))
}

// serveRegister answers dynamic client registration with the upstream
// client id. The secret stays on the server and is added at /token.
func (p *OAuthProxy) serveRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RedirectURIs []string `json:"redirect_uris"`
		ClientName   string   `json:"client_name"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_client_metadata"})
		return
	}
	for _, uri := range req.RedirectURIs {
		if !p.redirectAllowed(uri) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_redirect_uri",
				"error_description": uri,
			})
			return
		}
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"client_id":                  p.cfg.ClientID,
		"client_name":                req.ClientName,
		"redirect_uris":              req.RedirectURIs,
		"grant_types":                []string{"authorization_code", "refresh_token"},
		"token_endpoint_auth_method": "none",
	})
}
