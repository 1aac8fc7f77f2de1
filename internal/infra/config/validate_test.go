package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultsPass(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func validationErrors(t *testing.T, cfg *Config) []string {
	t.Helper()
	err := Validate(cfg)
	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "want *ValidationError, got %T", err)
	return ve.Errors
}

func containsErr(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateUnknownService(t *testing.T) {
	cfg := Defaults()
	cfg.Service = "plex"
	errs := validationErrors(t, cfg)
	assert.True(t, containsErr(errs, `service "plex" is unknown`))
}

func TestValidateProvider(t *testing.T) {
	cfg := Defaults()
	cfg.LLM.Provider = "bedrock"
	assert.True(t, containsErr(validationErrors(t, cfg), "llm.provider"))
}

func TestValidatePortRange(t *testing.T) {
	assert.NoError(t, ValidatePort(0))
	assert.NoError(t, ValidatePort(65535))
	err := ValidatePort(70000)
	require.Error(t, err)
	assert.Equal(t, "Port 70000 is out of valid range (0-65535).", err.Error())

	cfg := Defaults()
	cfg.MCP.Port = -1
	assert.True(t, containsErr(validationErrors(t, cfg), "mcp.port"))
}

func TestValidateTransport(t *testing.T) {
	cfg := Defaults()
	cfg.MCP.Transport = "grpc"
	assert.True(t, containsErr(validationErrors(t, cfg), "mcp.transport"))
}

func TestValidateAgentLimits(t *testing.T) {
	cfg := Defaults()
	cfg.Agent.MaxIterations = 0
	cfg.Agent.ToolTimeout = 0
	errs := validationErrors(t, cfg)
	assert.True(t, containsErr(errs, "agent.max_iterations"))
	assert.True(t, containsErr(errs, "agent.tool_timeout"))
}

func TestValidateAuthJWT(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.Type = "jwt"
	errs := validationErrors(t, cfg)
	assert.True(t, containsErr(errs, "jwks_uri, secret or public_key"))
	assert.True(t, containsErr(errs, "auth.issuer"))
	assert.True(t, containsErr(errs, "auth.audience"))

	cfg.Auth.Algorithm = "HS256"
	cfg.Auth.JWKSURI = "https://idp/jwks"
	cfg.Auth.Issuer = "https://idp"
	cfg.Auth.Audience = "arr"
	errs = validationErrors(t, cfg)
	assert.True(t, containsErr(errs, "auth.secret is required for HMAC"))
	assert.True(t, containsErr(errs, "cannot be combined"))

	cfg.Auth.JWKSURI = ""
	cfg.Auth.Secret = "k"
	assert.NoError(t, Validate(cfg))
}

func TestValidateAuthOIDCProxy(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.Type = "oidc-proxy"
	errs := validationErrors(t, cfg)
	for _, field := range []string{"oidc_config_url", "oidc_client_id", "oidc_client_secret", "oidc_base_url"} {
		assert.True(t, containsErr(errs, field), field)
	}
}

func TestValidateDelegationNeedsOIDC(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.Type = "static"
	cfg.Auth.StaticTokens = []StaticToken{{Token: "t", ClientID: "c"}}
	cfg.Auth.Delegation.Enabled = true
	errs := validationErrors(t, cfg)
	assert.True(t, containsErr(errs, "requires auth type oidc-proxy"))
	assert.True(t, containsErr(errs, "delegation.audience"))
}

func TestValidateEunomia(t *testing.T) {
	cfg := Defaults()
	cfg.Eunomia.Type = "remote"
	assert.True(t, containsErr(validationErrors(t, cfg), "eunomia.remote_url"))

	cfg.Eunomia.Type = "opa"
	assert.True(t, containsErr(validationErrors(t, cfg), "eunomia.type"))
}

func TestValidateSchedules(t *testing.T) {
	cfg := Defaults()
	cfg.Schedules = []ScheduleConfig{
		{Name: "wanted", Schedule: "@every 1h", Prompt: "check wanted"},
		{Name: "wanted", Schedule: "", Prompt: ""},
	}
	errs := validationErrors(t, cfg)
	assert.True(t, containsErr(errs, "duplicate name"))
	assert.True(t, containsErr(errs, "schedules[1].schedule"))
	assert.True(t, containsErr(errs, "schedules[1].prompt"))
}
