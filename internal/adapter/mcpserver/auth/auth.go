// Package auth verifies bearer tokens presented to the MCP server's HTTP
// transports and, when enabled, exchanges them for backend tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

// Principal is the authenticated caller of one request.
type Principal struct {
	Subject  string
	ClientID string
	Scopes   []string
	Claims   map[string]any
	// Token is the raw bearer token, kept for delegation.
	Token string
}

// Name returns the identity policies are evaluated against.
func (p *Principal) Name() string {
	if p == nil {
		return ""
	}
	if p.Subject != "" {
		return p.Subject
	}
	return p.ClientID
}

// HasScopes reports whether p carries every scope in required.
func (p *Principal) HasScopes(required []string) bool {
	have := make(map[string]bool, len(p.Scopes))
	for _, s := range p.Scopes {
		have[s] = true
	}
	for _, s := range required {
		if !have[s] {
			return false
		}
	}
	return true
}

// Verifier checks a bearer token.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

type principalKey struct{}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal attached to ctx, if any.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// ErrUnauthorized is returned for missing, malformed or rejected tokens.
var ErrUnauthorized = fmt.Errorf("unauthorized: %w", domain.ErrAuthInvalid)

func configError(detail string) error {
	return domain.NewSubSystemError("auth", "auth.New", domain.ErrInvalidInput, detail)
}

// Setup is the assembled authentication for one server.
type Setup struct {
	Type     string
	Verifier Verifier
	// Metadata is published at /.well-known/oauth-protected-resource when set.
	Metadata *ProtectedResource
	// Proxy serves the OAuth endpoints of the proxy auth types.
	Proxy *OAuthProxy
	// Exchanger trades caller tokens for backend tokens when delegation is on.
	Exchanger *TokenExchanger
}

// Enabled reports whether requests must carry a bearer token.
func (s *Setup) Enabled() bool { return s != nil && s.Verifier != nil }

// New builds the authentication described by cfg. Discovery documents and
// JWKS are fetched here, so an unreachable identity provider is fatal.
func New(ctx context.Context, cfg config.AuthConfig, client *http.Client, logger *slog.Logger) (*Setup, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	setup := &Setup{Type: cfg.Type}

	switch cfg.Type {
	case "", "none":
		setup.Type = "none"
		if cfg.Delegation.Enabled {
			return nil, configError("delegation requires auth type oidc-proxy")
		}
		return setup, nil

	case "static":
		v, err := NewStaticVerifier(cfg.StaticTokens, cfg.RequiredScopes)
		if err != nil {
			return nil, err
		}
		setup.Verifier = v

	case "jwt":
		v, err := newConfiguredJWT(ctx, cfg)
		if err != nil {
			return nil, err
		}
		setup.Verifier = v

	case "oauth-proxy":
		v, err := newConfiguredJWT(ctx, cfg)
		if err != nil {
			return nil, err
		}
		setup.Verifier = v
		setup.Metadata = NewProtectedResource(cfg.OAuthBaseURL, []string{cfg.OAuthBaseURL}, cfg.RequiredScopes)
		setup.Proxy = NewOAuthProxy(ProxyConfig{
			BaseURL:             cfg.OAuthBaseURL,
			AuthorizationURL:    cfg.OAuthUpstreamAuthEndpoint,
			TokenURL:            cfg.OAuthUpstreamTokenEndpoint,
			ClientID:            cfg.OAuthUpstreamClientID,
			ClientSecret:        cfg.OAuthUpstreamClientSecret,
			AllowedRedirectURIs: cfg.AllowedClientRedirectURIs,
			Scopes:              cfg.RequiredScopes,
		}, client, logger)

	case "oidc-proxy":
		if cfg.OIDCConfigURL == "" || cfg.OIDCClientID == "" || cfg.OIDCClientSecret == "" || cfg.OIDCBaseURL == "" {
			return nil, configError("oidc-proxy requires oidc_config_url, oidc_client_id, oidc_client_secret and oidc_base_url")
		}
		disc, err := FetchDiscovery(ctx, client, cfg.OIDCConfigURL)
		if err != nil {
			return nil, err
		}
		kf, err := JWKSKeyfunc(ctx, disc.JWKSURI)
		if err != nil {
			return nil, err
		}
		audience := cfg.Audience
		if audience == "" {
			audience = cfg.OIDCClientID
		}
		setup.Verifier = NewJWTVerifier(JWTOptions{
			Keyfunc:        kf,
			Issuer:         disc.Issuer,
			Audience:       audience,
			RequiredScopes: cfg.RequiredScopes,
		})
		setup.Metadata = NewProtectedResource(cfg.OIDCBaseURL, []string{cfg.OIDCBaseURL}, cfg.RequiredScopes)
		setup.Proxy = NewOAuthProxy(ProxyConfig{
			BaseURL:             cfg.OIDCBaseURL,
			AuthorizationURL:    disc.AuthorizationEndpoint,
			TokenURL:            disc.TokenEndpoint,
			ClientID:            cfg.OIDCClientID,
			ClientSecret:        cfg.OIDCClientSecret,
			AllowedRedirectURIs: cfg.AllowedClientRedirectURIs,
			Scopes:              cfg.RequiredScopes,
		}, client, logger)

		if cfg.Delegation.Enabled {
			if cfg.Delegation.Audience == "" {
				return nil, configError("delegation requires an audience")
			}
			if disc.TokenEndpoint == "" {
				return nil, configError("oidc discovery document has no token_endpoint")
			}
			setup.Exchanger = NewTokenExchanger(ExchangeConfig{
				TokenURL:     disc.TokenEndpoint,
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				Audience:     cfg.Delegation.Audience,
				Scopes:       cfg.Delegation.Scopes,
			}, client)
		}

	case "remote-oauth":
		if len(cfg.RemoteAuthServers) == 0 || cfg.RemoteBaseURL == "" {
			return nil, configError("remote-oauth requires remote_auth_servers and remote_base_url")
		}
		v, err := newConfiguredJWT(ctx, cfg)
		if err != nil {
			return nil, err
		}
		setup.Verifier = v
		setup.Metadata = NewProtectedResource(cfg.RemoteBaseURL, cfg.RemoteAuthServers, cfg.RequiredScopes)

	default:
		return nil, configError(fmt.Sprintf("unknown auth type %q", cfg.Type))
	}

	if cfg.Delegation.Enabled && setup.Exchanger == nil {
		return nil, configError("delegation requires auth type oidc-proxy")
	}
	logger.Info("mcp auth configured", "type", setup.Type, "delegation", setup.Exchanger != nil)
	return setup, nil
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Middleware rejects requests without a valid bearer token and attaches the
// verified principal to the request context. Paths in public pass through.
func (s *Setup) Middleware(next http.Handler, public ...string) http.Handler {
	if !s.Enabled() {
		return next
	}
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if open[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := BearerToken(r)
		if !ok {
			s.challenge(w, "missing bearer token")
			return
		}
		p, err := s.Verifier.Verify(r.Context(), token)
		if err != nil {
			s.challenge(w, err.Error())
			return
		}
		p.Token = token
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

func (s *Setup) challenge(w http.ResponseWriter, reason string) {
	value := `Bearer error="invalid_token"`
	if s.Metadata != nil {
		value += fmt.Sprintf(`, resource_metadata=%q`, s.Metadata.URL())
	}
	w.Header().Set("WWW-Authenticate", value)
	http.Error(w, "unauthorized: "+reason, http.StatusUnauthorized)
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool { return errors.Is(err, domain.ErrAuthInvalid) }
