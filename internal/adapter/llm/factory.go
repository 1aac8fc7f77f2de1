package llm

import (
	"fmt"
	"log/slog"
	"strings"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

// NewProvider builds the shared model binding from cfg. It fails only on
// unusable configuration and never contacts the endpoint. The model request
// timeout comes from settings.
func NewProvider(cfg config.LLMConfig, settings domain.ModelSettings, logger *slog.Logger) (domain.LLMProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" {
		name = "openai"
	}
	opts := Options{
		Name:        name,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Insecure:    !cfg.SSLVerify,
		ConnTimeout: cfg.ConnTimeout,
		Timeout:     settings.Timeout,
		Pool:        cfg.Pool,
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("%w: llm.model is required", domain.ErrConfigLoad)
	}

	var provider domain.LLMProvider
	switch name {
	case "openai":
		// A custom base URL usually means a local server that ignores the key.
		if opts.APIKey == "" && opts.BaseURL == "" {
			return nil, missingKey(name)
		}
		provider = NewOpenAIProvider(opts, logger)
	case "huggingface":
		if opts.APIKey == "" {
			return nil, missingKey(name)
		}
		provider = NewHuggingFaceProvider(opts, logger)
	case "anthropic":
		if opts.APIKey == "" {
			return nil, missingKey(name)
		}
		provider = NewAnthropicProvider(opts, logger)
	case "google", "gemini":
		if opts.APIKey == "" {
			return nil, missingKey(name)
		}
		opts.Name = "google"
		provider = NewGeminiProvider(opts, logger)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrProviderNotFound, cfg.Provider)
	}

	if cfg.CircuitBreaker.Enabled {
		provider = NewCircuitBreakerProvider(provider, cfg.CircuitBreaker, logger)
	}
	logger.Info("llm provider configured",
		"provider", provider.Name(),
		"model", opts.Model,
		"base_url", opts.BaseURL,
		"ssl_verify", cfg.SSLVerify,
	)
	return provider, nil
}

func missingKey(provider string) error {
	return fmt.Errorf("%w: provider %s requires llm.api_key", domain.ErrConfigLoad, provider)
}
