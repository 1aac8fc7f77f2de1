package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"arr-mcp/internal/domain"
)

// Config is the top-level application configuration.
type Config struct {
	// Service selects the backend wrapped by this process (e.g. "prowlarr").
	Service  string                   `yaml:"service"`
	Services map[string]ServiceConfig `yaml:"services"`
	LLM      LLMConfig                `yaml:"llm"`
	Model    domain.ModelSettings     `yaml:"model"`
	Agent    AgentConfig              `yaml:"agent"`
	MCP      MCPConfig                `yaml:"mcp"`
	Gateway  GatewayConfig            `yaml:"gateway"`
	Auth     AuthConfig               `yaml:"auth"`
	Eunomia  EunomiaConfig            `yaml:"eunomia"`
	Skills   SkillsConfig             `yaml:"skills"`
	Store    StoreConfig              `yaml:"store"`
	Logger   LoggerConfig             `yaml:"logger"`
	Tracer   TracerConfig             `yaml:"tracer"`
	Metrics  MetricsConfig            `yaml:"metrics"`
	// Schedules are cron-driven supervisor prompts.
	Schedules []ScheduleConfig `yaml:"schedules,omitempty"`
}

// ServiceConfig holds the connection tuple of one backend.
type ServiceConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Verify  bool   `yaml:"verify"`
}

// LLMConfig holds the shared model binding.
type LLMConfig struct {
	Provider       string               `yaml:"provider"` // openai, anthropic, google, huggingface
	Model          string               `yaml:"model"`
	BaseURL        string               `yaml:"base_url"`
	APIKey         string               `yaml:"api_key"`
	SSLVerify      bool                 `yaml:"ssl_verify"`
	ConnTimeout    time.Duration        `yaml:"conn_timeout"`
	Pool           PoolConfig           `yaml:"pool"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for the LLM provider.
type CircuitBreakerConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxFailures uint32        `yaml:"max_failures"`
	Timeout     time.Duration `yaml:"timeout"`
	Interval    time.Duration `yaml:"interval"`
}

// PoolConfig holds HTTP connection pool settings.
type PoolConfig struct {
	MaxIdleConns        int           `yaml:"max_idle_conns"`
	MaxIdleConnsPerHost int           `yaml:"max_idle_conns_per_host"`
	MaxConnsPerHost     int           `yaml:"max_conns_per_host"`
	IdleConnTimeout     time.Duration `yaml:"idle_conn_timeout"`
}

// AgentConfig holds supervisor and specialist settings.
type AgentConfig struct {
	Name                     string            `yaml:"name"`
	Description              string            `yaml:"description"`
	SupervisorPrompt         string            `yaml:"supervisor_prompt"`
	Prompts                  map[string]string `yaml:"prompts,omitempty"` // tag -> specialist prompt
	MaxIterations            int               `yaml:"max_iterations"`
	ToolTimeout              time.Duration     `yaml:"tool_timeout"`
	MaxToolRetries           int               `yaml:"max_tool_retries"`
	RequestLimit             int               `yaml:"request_limit"`
	TotalTokensLimit         int               `yaml:"total_tokens_limit"`
	MaxConcurrentDelegations int               `yaml:"max_concurrent_delegations"`
	PruneMaxTokens           int               `yaml:"prune_max_tokens"`
	// SessionDir persists conversation transcripts. Empty keeps them in memory.
	SessionDir string        `yaml:"session_dir"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// MCPConfig holds MCP server and client settings.
type MCPConfig struct {
	Transport string `yaml:"transport"` // stdio, sse, streamable-http
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	// URL and ConfigPath point the agent at external MCP servers.
	URL        string `yaml:"url"`
	ConfigPath string `yaml:"config_path"`
}

// GatewayConfig holds the agent HTTP server settings.
type GatewayConfig struct {
	Host      string  `yaml:"host"`
	Port      int     `yaml:"port"`
	AuthToken string  `yaml:"auth_token"`
	WebUI     bool    `yaml:"web_ui"`
	RateLimit float64 `yaml:"rate_limit"` // requests per second per IP, 0 disables
	RateBurst int     `yaml:"rate_burst"`
}

// AuthConfig holds MCP server authentication settings.
type AuthConfig struct {
	Type           string        `yaml:"type"` // none, static, jwt, oauth-proxy, oidc-proxy, remote-oauth
	JWKSURI        string        `yaml:"jwks_uri"`
	Issuer         string        `yaml:"issuer"`
	Audience       string        `yaml:"audience"`
	Algorithm      string        `yaml:"algorithm"`
	Secret         string        `yaml:"secret"`
	PublicKey      string        `yaml:"public_key"`
	RequiredScopes []string      `yaml:"required_scopes,omitempty"`
	StaticTokens   []StaticToken `yaml:"static_tokens,omitempty"`

	OAuthUpstreamAuthEndpoint  string `yaml:"oauth_upstream_auth_endpoint"`
	OAuthUpstreamTokenEndpoint string `yaml:"oauth_upstream_token_endpoint"`
	OAuthUpstreamClientID      string `yaml:"oauth_upstream_client_id"`
	OAuthUpstreamClientSecret  string `yaml:"oauth_upstream_client_secret"`
	OAuthBaseURL               string `yaml:"oauth_base_url"`

	OIDCConfigURL    string `yaml:"oidc_config_url"`
	OIDCClientID     string `yaml:"oidc_client_id"`
	OIDCClientSecret string `yaml:"oidc_client_secret"`
	OIDCBaseURL      string `yaml:"oidc_base_url"`

	RemoteAuthServers []string `yaml:"remote_auth_servers,omitempty"`
	RemoteBaseURL     string   `yaml:"remote_base_url"`

	AllowedClientRedirectURIs []string `yaml:"allowed_client_redirect_uris,omitempty"`

	Delegation DelegationConfig `yaml:"delegation"`
}

// StaticToken is one bearer token accepted by static auth.
type StaticToken struct {
	Token    string   `yaml:"token"`
	ClientID string   `yaml:"client_id"`
	Scopes   []string `yaml:"scopes,omitempty"`
}

// DelegationConfig controls RFC 8693 token exchange toward the backend.
type DelegationConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Audience string   `yaml:"audience"`
	Scopes   []string `yaml:"scopes,omitempty"`
}

// EunomiaConfig holds tool authorization policy settings.
type EunomiaConfig struct {
	Type       string `yaml:"type"` // none, embedded, remote
	PolicyFile string `yaml:"policy_file"`
	RemoteURL  string `yaml:"remote_url"`
}

// SkillsConfig holds the skills directory.
type SkillsConfig struct {
	Dir string `yaml:"dir"`
}

// StoreConfig selects the run store. An empty Path keeps runs in memory.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ScheduleConfig is one recurring supervisor prompt.
type ScheduleConfig struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"` // cron expression or "@every 1h"
	Prompt   string `yaml:"prompt"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// TracerConfig holds tracing settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// MetricsConfig toggles the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ServiceNames lists the backends with built-in catalogs, with their default ports.
var ServiceNames = map[string]int{
	"bazarr":   6767,
	"prowlarr": 9696,
	"sonarr":   8989,
	"radarr":   7878,
	"lidarr":   8686,
	"chaptarr": 8789,
	"seerr":    5055,
}

const (
	DefaultMCPPort   = 8000
	DefaultAgentPort = 9000
	defaultTimeout   = 32400 * time.Second
)

// Defaults returns a Config with sensible defaults.
func Defaults() *Config {
	services := make(map[string]ServiceConfig, len(ServiceNames))
	for name, port := range ServiceNames {
		services[name] = ServiceConfig{BaseURL: fmt.Sprintf("http://localhost:%d", port)}
	}
	return &Config{
		Services: services,
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "qwen/qwen3-coder-next",
			BaseURL:     "http://host.docker.internal:1234/v1",
			APIKey:      "ollama",
			SSLVerify:   true,
			ConnTimeout: 10 * time.Second,
			Pool: PoolConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			CircuitBreaker: CircuitBreakerConfig{
				Enabled:     true,
				MaxFailures: 5,
				Timeout:     30 * time.Second,
				Interval:    60 * time.Second,
			},
		},
		Model: domain.ModelSettings{
			MaxTokens:         16384,
			Temperature:       0.7,
			TopP:              1.0,
			Timeout:           defaultTimeout,
			ParallelToolCalls: true,
		},
		Agent: AgentConfig{
			MaxIterations:  25,
			ToolTimeout:    defaultTimeout,
			MaxToolRetries: 1,
			RequestLimit:   50,
			PruneMaxTokens: 16000,
			SessionTTL:     24 * time.Hour,
		},
		MCP: MCPConfig{
			Transport: "stdio",
			Host:      "0.0.0.0",
			Port:      DefaultMCPPort,
		},
		Gateway: GatewayConfig{
			Host:      "0.0.0.0",
			Port:      DefaultAgentPort,
			RateLimit: 10,
			RateBurst: 20,
		},
		Auth: AuthConfig{
			Type:       "none",
			Algorithm:  "RS256",
			Delegation: DelegationConfig{Scopes: []string{"api"}},
		},
		Eunomia: EunomiaConfig{
			Type:       "none",
			PolicyFile: "mcp_policies.json",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{Exporter: "noop"},
	}
}

// Connection returns the connection tuple of the named service.
func (c *Config) Connection(name string) ServiceConfig {
	if sc, ok := c.Services[name]; ok {
		return sc
	}
	if port, ok := ServiceNames[name]; ok {
		return ServiceConfig{BaseURL: fmt.Sprintf("http://localhost:%d", port)}
	}
	return ServiceConfig{}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// any), then environment overrides. Secrets stored as enc: values are
// decrypted with ARR_MASTER_KEY. Command-line flags are applied by the caller.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	ApplyEnvOverrides(cfg)

	if passphrase := os.Getenv("ARR_MASTER_KEY"); passphrase != "" {
		if err := decryptSecrets(cfg, passphrase); err != nil {
			return nil, fmt.Errorf("%w: decrypt secrets: %w", domain.ErrConfigLoad, err)
		}
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read config: %w", domain.ErrConfigLoad, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: resolve config path: %w", domain.ErrConfigLoad, err)
	}
	if err := validatePermissions(absPath); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigLoad, err)
	}

	// Unmarshal over a copy so YAML entries merge with the default services.
	defaults := cfg.Services
	cfg.Services = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parse config: %w", domain.ErrConfigLoad, err)
	}
	merged := defaults
	for name, sc := range cfg.Services {
		merged[name] = sc
	}
	cfg.Services = merged
	return nil
}

// validatePermissions rejects config files that are writable by group or others.
func validatePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat config: %w", err)
	}
	mode := info.Mode().Perm()
	if mode&0o022 != 0 {
		return fmt.Errorf("config file %s has insecure permissions %o (want 0600 or 0644)", path, mode)
	}
	return nil
}
