package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides maps environment variables onto cfg. Unparseable values
// are ignored and the previous setting is kept.
func ApplyEnvOverrides(cfg *Config) {
	setString(&cfg.Service, "ARR_SERVICE")
	for name := range ServiceNames {
		applyServiceEnv(cfg, name)
	}

	setString(&cfg.LLM.Provider, "PROVIDER")
	setString(&cfg.LLM.Model, "MODEL_ID")
	setString(&cfg.LLM.BaseURL, "LLM_BASE_URL")
	setString(&cfg.LLM.APIKey, "LLM_API_KEY")
	setBool(&cfg.LLM.SSLVerify, "SSL_VERIFY")

	setInt(&cfg.Model.MaxTokens, "MAX_TOKENS")
	setFloat(&cfg.Model.Temperature, "TEMPERATURE")
	setFloat(&cfg.Model.TopP, "TOP_P")
	setSeconds(&cfg.Model.Timeout, "TIMEOUT")
	setBool(&cfg.Model.ParallelToolCalls, "PARALLEL_TOOL_CALLS")
	if v := os.Getenv("SEED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Model.Seed = &n
		}
	}
	setFloat(&cfg.Model.PresencePenalty, "PRESENCE_PENALTY")
	setFloat(&cfg.Model.FrequencyPenalty, "FREQUENCY_PENALTY")
	setJSON(&cfg.Model.LogitBias, "LOGIT_BIAS")
	if v := os.Getenv("STOP_SEQUENCES"); v != "" {
		cfg.Model.StopSequences = splitAndTrim(v, ",")
	}
	setJSON(&cfg.Model.ExtraHeaders, "EXTRA_HEADERS")
	setJSON(&cfg.Model.ExtraBody, "EXTRA_BODY")

	setSeconds(&cfg.Agent.ToolTimeout, "TOOL_TIMEOUT")
	setString(&cfg.Agent.SupervisorPrompt, "SUPERVISOR_SYSTEM_PROMPT")
	applyPromptEnv(cfg)

	setString(&cfg.MCP.Transport, "TRANSPORT")
	setString(&cfg.MCP.Host, "HOST")
	setString(&cfg.Gateway.Host, "HOST")
	setInt(&cfg.MCP.Port, "PORT")
	setInt(&cfg.Gateway.Port, "PORT")
	setString(&cfg.MCP.URL, "MCP_URL")
	setString(&cfg.MCP.ConfigPath, "MCP_CONFIG")
	setString(&cfg.Skills.Dir, "SKILLS_DIRECTORY")
	setBool(&cfg.Gateway.WebUI, "ENABLE_WEB_UI")
	if v, ok := lookupBool("DEBUG"); ok && v {
		cfg.Logger.Level = "debug"
	}
	setString(&cfg.Logger.Level, "ARR_LOG_LEVEL")
	setString(&cfg.Store.Path, "ARR_STORE_PATH")
	setString(&cfg.Agent.SessionDir, "ARR_SESSION_DIR")
	setBool(&cfg.Metrics.Enabled, "ARR_METRICS_ENABLED")
	setBool(&cfg.Tracer.Enabled, "ARR_TRACER_ENABLED")
	setString(&cfg.Tracer.Exporter, "ARR_TRACER_EXPORTER")

	applyAuthEnv(&cfg.Auth)

	setString(&cfg.Eunomia.Type, "EUNOMIA_TYPE")
	setString(&cfg.Eunomia.PolicyFile, "EUNOMIA_POLICY_FILE")
	setString(&cfg.Eunomia.RemoteURL, "EUNOMIA_REMOTE_URL")
}

func applyServiceEnv(cfg *Config, name string) {
	prefix := strings.ToUpper(name)
	sc := cfg.Connection(name)
	setString(&sc.BaseURL, prefix+"_BASE_URL")
	setString(&sc.APIKey, prefix+"_API_KEY")
	setBool(&sc.Verify, prefix+"_VERIFY")
	if cfg.Services == nil {
		cfg.Services = make(map[string]ServiceConfig)
	}
	cfg.Services[name] = sc
}

// applyPromptEnv reads {TAG}_AGENT_PROMPT overrides from the environment.
func applyPromptEnv(cfg *Config) {
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}
		tag, found := strings.CutSuffix(key, "_AGENT_PROMPT")
		if !found || tag == "" {
			continue
		}
		if cfg.Agent.Prompts == nil {
			cfg.Agent.Prompts = make(map[string]string)
		}
		cfg.Agent.Prompts[strings.ToLower(tag)] = value
	}
}

func applyAuthEnv(a *AuthConfig) {
	setString(&a.Type, "AUTH_TYPE")
	setString(&a.JWKSURI, "TOKEN_JWKS_URI")
	setString(&a.Issuer, "TOKEN_ISSUER")
	setString(&a.Audience, "TOKEN_AUDIENCE")
	setString(&a.Algorithm, "TOKEN_ALGORITHM")
	setString(&a.Secret, "TOKEN_SECRET")
	setString(&a.PublicKey, "TOKEN_PUBLIC_KEY")
	if v := os.Getenv("REQUIRED_SCOPES"); v != "" {
		a.RequiredScopes = splitAndTrim(v, ",")
	}
	if v := os.Getenv("STATIC_TOKENS"); v != "" {
		a.StaticTokens = ParseStaticTokens(v)
	}
	setString(&a.OAuthUpstreamAuthEndpoint, "OAUTH_UPSTREAM_AUTH_ENDPOINT")
	setString(&a.OAuthUpstreamTokenEndpoint, "OAUTH_UPSTREAM_TOKEN_ENDPOINT")
	setString(&a.OAuthUpstreamClientID, "OAUTH_UPSTREAM_CLIENT_ID")
	setString(&a.OAuthUpstreamClientSecret, "OAUTH_UPSTREAM_CLIENT_SECRET")
	setString(&a.OAuthBaseURL, "OAUTH_BASE_URL")
	setString(&a.OIDCConfigURL, "OIDC_CONFIG_URL")
	setString(&a.OIDCClientID, "OIDC_CLIENT_ID")
	setString(&a.OIDCClientSecret, "OIDC_CLIENT_SECRET")
	setString(&a.OIDCBaseURL, "OIDC_BASE_URL")
	if v := os.Getenv("REMOTE_AUTH_SERVERS"); v != "" {
		a.RemoteAuthServers = splitAndTrim(v, ",")
	}
	setString(&a.RemoteBaseURL, "REMOTE_BASE_URL")
	if v := os.Getenv("ALLOWED_CLIENT_REDIRECT_URIS"); v != "" {
		a.AllowedClientRedirectURIs = splitAndTrim(v, ",")
	}
	setBool(&a.Delegation.Enabled, "ENABLE_DELEGATION")
	setString(&a.Delegation.Audience, "AUDIENCE")
	if v := os.Getenv("DELEGATED_SCOPES"); v != "" {
		a.Delegation.Scopes = strings.Fields(strings.ReplaceAll(v, ",", " "))
	}
}

// ParseStaticTokens parses "token=client:scope1|scope2,token2=client2".
func ParseStaticTokens(s string) []StaticToken {
	var out []StaticToken
	for _, entry := range splitAndTrim(s, ",") {
		token, rest, ok := strings.Cut(entry, "=")
		if !ok || token == "" {
			continue
		}
		client, scopes, _ := strings.Cut(rest, ":")
		st := StaticToken{Token: token, ClientID: client}
		if scopes != "" {
			st.Scopes = strings.Split(scopes, "|")
		}
		out = append(out, st)
	}
	return out
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setSeconds(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		} else if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = time.Duration(f * float64(time.Second))
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := lookupBool(key); ok {
		*dst = v
	}
}

func lookupBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func setJSON[T any](dst *T, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	var parsed T
	if err := json.Unmarshal([]byte(v), &parsed); err == nil {
		*dst = parsed
	}
}

// splitAndTrim splits s by sep, trims whitespace and drops empty elements.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
