package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LLMConfig
		wantName string
		wantErr  error
	}{
		{
			name:     "local openai-compatible server",
			cfg:      config.LLMConfig{Provider: "openai", Model: "qwen", BaseURL: "http://localhost:1234/v1"},
			wantName: "openai",
		},
		{
			name:    "public openai without key",
			cfg:     config.LLMConfig{Provider: "openai", Model: "gpt"},
			wantErr: domain.ErrConfigLoad,
		},
		{
			name:     "gemini alias",
			cfg:      config.LLMConfig{Provider: "Gemini", Model: "gm", APIKey: "g"},
			wantName: "google",
		},
		{
			name:    "anthropic without key",
			cfg:     config.LLMConfig{Provider: "anthropic", Model: "claude"},
			wantErr: domain.ErrConfigLoad,
		},
		{
			name:     "huggingface",
			cfg:      config.LLMConfig{Provider: "huggingface", Model: "m", APIKey: "hf"},
			wantName: "huggingface",
		},
		{
			name:    "unknown provider",
			cfg:     config.LLMConfig{Provider: "bedrock", Model: "m", APIKey: "k"},
			wantErr: domain.ErrProviderNotFound,
		},
		{
			name:    "missing model",
			cfg:     config.LLMConfig{Provider: "openai", BaseURL: "http://x"},
			wantErr: domain.ErrConfigLoad,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg, domain.ModelSettings{}, newTestLogger())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}

func TestNewProviderWrapsCircuitBreaker(t *testing.T) {
	cfg := config.LLMConfig{
		Provider:       "openai",
		Model:          "m",
		BaseURL:        "http://localhost:1234/v1",
		CircuitBreaker: config.CircuitBreakerConfig{Enabled: true},
	}
	p, err := NewProvider(cfg, domain.ModelSettings{}, newTestLogger())
	require.NoError(t, err)
	_, ok := p.(*CircuitBreakerProvider)
	assert.True(t, ok)
	_, ok = p.(domain.StreamingLLMProvider)
	assert.True(t, ok)
}
