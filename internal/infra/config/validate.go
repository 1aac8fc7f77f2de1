package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError accumulates config validation errors.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(v.Errors, "\n  - ")
}

// HasErrors reports whether any validation errors have been recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add records a formatted validation error.
func (v *ValidationError) Add(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural correctness. It returns a *ValidationError
// listing every problem found.
func Validate(cfg *Config) error {
	ve := &ValidationError{}
	validateService(cfg, ve)
	validateLLM(cfg, ve)
	validateAgent(cfg, ve)
	validateServers(cfg, ve)
	validateAuth(&cfg.Auth, ve)
	validateEunomia(&cfg.Eunomia, ve)
	validateSchedules(cfg, ve)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateService(cfg *Config, ve *ValidationError) {
	if cfg.Service == "" {
		return
	}
	if _, ok := ServiceNames[cfg.Service]; !ok {
		ve.Add("service %q is unknown (want one of: %s)", cfg.Service, strings.Join(sortedServiceNames(), ", "))
		return
	}
	if cfg.Connection(cfg.Service).BaseURL == "" {
		ve.Add("services.%s.base_url must not be empty", cfg.Service)
	}
}

var validProviders = map[string]bool{
	"openai":      true,
	"anthropic":   true,
	"google":      true,
	"huggingface": true,
}

func validateLLM(cfg *Config, ve *ValidationError) {
	if !validProviders[cfg.LLM.Provider] {
		ve.Add("llm.provider %q is invalid (want: openai, anthropic, google, huggingface)", cfg.LLM.Provider)
	}
	if cfg.LLM.Model == "" {
		ve.Add("llm.model must not be empty")
	}
	if cfg.Model.MaxTokens < 0 {
		ve.Add("model.max_tokens must be >= 0")
	}
	if cfg.Model.TopP < 0 || cfg.Model.TopP > 1 {
		ve.Add("model.top_p must be between 0 and 1")
	}
	if cfg.LLM.CircuitBreaker.Enabled && cfg.LLM.CircuitBreaker.MaxFailures == 0 {
		ve.Add("llm.circuit_breaker.max_failures must be > 0 when enabled")
	}
}

func validateAgent(cfg *Config, ve *ValidationError) {
	a := cfg.Agent
	if a.MaxIterations <= 0 {
		ve.Add("agent.max_iterations must be > 0")
	}
	if a.ToolTimeout <= 0 {
		ve.Add("agent.tool_timeout must be > 0")
	}
	if a.MaxToolRetries < 0 {
		ve.Add("agent.max_tool_retries must be >= 0")
	}
	if a.RequestLimit < 0 || a.TotalTokensLimit < 0 {
		ve.Add("agent usage limits must be >= 0")
	}
	if a.MaxConcurrentDelegations < 0 {
		ve.Add("agent.max_concurrent_delegations must be >= 0")
	}
}

var validTransports = map[string]bool{
	"stdio":           true,
	"sse":             true,
	"streamable-http": true,
}

func validateServers(cfg *Config, ve *ValidationError) {
	if !validTransports[cfg.MCP.Transport] {
		ve.Add("mcp.transport %q is invalid (want: stdio, sse, streamable-http)", cfg.MCP.Transport)
	}
	if err := ValidatePort(cfg.MCP.Port); err != nil {
		ve.Add("mcp.port: %v", err)
	}
	if err := ValidatePort(cfg.Gateway.Port); err != nil {
		ve.Add("gateway.port: %v", err)
	}
	if cfg.Gateway.RateLimit < 0 {
		ve.Add("gateway.rate_limit must be >= 0")
	}
}

// ValidatePort checks that p is a usable TCP port number.
func ValidatePort(p int) error {
	if p < 0 || p > 65535 {
		return fmt.Errorf("Port %d is out of valid range (0-65535).", p) //nolint:staticcheck // user-facing sentence
	}
	return nil
}

var validAuthTypes = map[string]bool{
	"none":         true,
	"static":       true,
	"jwt":          true,
	"oauth-proxy":  true,
	"oidc-proxy":   true,
	"remote-oauth": true,
}

func validateAuth(a *AuthConfig, ve *ValidationError) {
	if !validAuthTypes[a.Type] {
		ve.Add("auth.type %q is invalid (want: none, static, jwt, oauth-proxy, oidc-proxy, remote-oauth)", a.Type)
		return
	}

	require := func(name, value string) {
		if value == "" {
			ve.Add("auth.%s is required for auth type %s", name, a.Type)
		}
	}

	switch a.Type {
	case "static":
		if len(a.StaticTokens) == 0 {
			ve.Add("auth.static_tokens must not be empty for auth type static")
		}
	case "jwt":
		if a.JWKSURI == "" && a.Secret == "" && a.PublicKey == "" {
			ve.Add("auth type jwt requires jwks_uri, secret or public_key")
		}
		if strings.HasPrefix(strings.ToUpper(a.Algorithm), "HS") {
			if a.Secret == "" {
				ve.Add("auth.secret is required for HMAC algorithm %s", a.Algorithm)
			}
			if a.JWKSURI != "" {
				ve.Add("auth.jwks_uri cannot be combined with HMAC algorithm %s", a.Algorithm)
			}
		}
		require("issuer", a.Issuer)
		require("audience", a.Audience)
	case "oauth-proxy":
		require("oauth_upstream_auth_endpoint", a.OAuthUpstreamAuthEndpoint)
		require("oauth_upstream_token_endpoint", a.OAuthUpstreamTokenEndpoint)
		require("oauth_upstream_client_id", a.OAuthUpstreamClientID)
		require("oauth_upstream_client_secret", a.OAuthUpstreamClientSecret)
		require("oauth_base_url", a.OAuthBaseURL)
		require("jwks_uri", a.JWKSURI)
		require("issuer", a.Issuer)
		require("audience", a.Audience)
	case "oidc-proxy":
		require("oidc_config_url", a.OIDCConfigURL)
		require("oidc_client_id", a.OIDCClientID)
		require("oidc_client_secret", a.OIDCClientSecret)
		require("oidc_base_url", a.OIDCBaseURL)
	case "remote-oauth":
		if len(a.RemoteAuthServers) == 0 {
			ve.Add("auth.remote_auth_servers is required for auth type remote-oauth")
		}
		require("remote_base_url", a.RemoteBaseURL)
		require("jwks_uri", a.JWKSURI)
		require("issuer", a.Issuer)
		require("audience", a.Audience)
	}

	if a.Delegation.Enabled {
		if a.Type != "oidc-proxy" {
			ve.Add("auth.delegation requires auth type oidc-proxy, got %s", a.Type)
		}
		if a.Delegation.Audience == "" {
			ve.Add("auth.delegation.audience is required when delegation is enabled")
		}
	}
}

func validateEunomia(e *EunomiaConfig, ve *ValidationError) {
	switch e.Type {
	case "none", "":
	case "embedded":
		if e.PolicyFile == "" {
			ve.Add("eunomia.policy_file is required for eunomia type embedded")
		}
	case "remote":
		if e.RemoteURL == "" {
			ve.Add("eunomia.remote_url is required for eunomia type remote")
		}
	default:
		ve.Add("eunomia.type %q is invalid (want: none, embedded, remote)", e.Type)
	}
}

func validateSchedules(cfg *Config, ve *ValidationError) {
	seen := make(map[string]bool)
	for i, s := range cfg.Schedules {
		if s.Name == "" {
			ve.Add("schedules[%d].name must not be empty", i)
		} else if seen[s.Name] {
			ve.Add("schedules[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
		if s.Schedule == "" {
			ve.Add("schedules[%d].schedule must not be empty", i)
		}
		if s.Prompt == "" {
			ve.Add("schedules[%d].prompt must not be empty", i)
		}
	}
}

func sortedServiceNames() []string {
	return slices.Sorted(maps.Keys(ServiceNames))
}
