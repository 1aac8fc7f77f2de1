package integration

import (
	"context"
	"os"
	"testing"
	"time"
)

// Config holds integration test configuration from environment
type Config struct {
	Service     string
	BaseURL     string
	APIKey      string
	OpenAIKey   string
	Model       string
	TestTimeout time.Duration
	SkipSlow    bool
}

// LoadConfig loads integration test configuration from environment
func LoadConfig() *Config {
	cfg := &Config{
		Service:     os.Getenv("ARR_IT_SERVICE"),
		BaseURL:     os.Getenv("ARR_IT_BASE_URL"),
		APIKey:      os.Getenv("ARR_IT_API_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		Model:       os.Getenv("ARR_IT_MODEL"),
		TestTimeout: 60 * time.Second,
		SkipSlow:    os.Getenv("SKIP_SLOW_TESTS") == "1",
	}
	if cfg.Service == "" {
		cfg.Service = "sonarr"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return cfg
}

// SkipIfNoAPIKey skips the test if the required API key is not set
func SkipIfNoAPIKey(t *testing.T, key, name string) {
	t.Helper()
	if key == "" {
		t.Skipf("Skipping %s integration test: %s_API_KEY not set", name, name)
	}
}

// SkipIfNoBackend skips the test unless a live backend instance is configured.
func SkipIfNoBackend(t *testing.T, cfg *Config) {
	t.Helper()
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		t.Skipf("Skipping %s integration test: ARR_IT_BASE_URL or ARR_IT_API_KEY not set", cfg.Service)
	}
}

// SkipIfShort skips integration tests in short mode
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// NewTestContext creates a context with timeout for integration tests
func NewTestContext(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
