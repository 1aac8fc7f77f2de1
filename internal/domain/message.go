package domain

import "time"

// Role constants for message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single message in a conversation.
// Tool result messages carry the originating call in ToolCalls[0].
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Name      string     `json:"name,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Thinking  string     `json:"thinking,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// ModelSettings are applied uniformly to the supervisor and every specialist.
// They are shared read-only; agents copy them into each request.
type ModelSettings struct {
	MaxTokens         int               `json:"max_tokens,omitempty" yaml:"max_tokens"`
	Temperature       float64           `json:"temperature" yaml:"temperature"`
	TopP              float64           `json:"top_p" yaml:"top_p"`
	Timeout           time.Duration     `json:"timeout,omitempty" yaml:"timeout"`
	ParallelToolCalls bool              `json:"parallel_tool_calls" yaml:"parallel_tool_calls"`
	Seed              *int              `json:"seed,omitempty" yaml:"seed,omitempty"`
	PresencePenalty   float64           `json:"presence_penalty,omitempty" yaml:"presence_penalty"`
	FrequencyPenalty  float64           `json:"frequency_penalty,omitempty" yaml:"frequency_penalty"`
	LogitBias         map[string]int    `json:"logit_bias,omitempty" yaml:"logit_bias,omitempty"`
	StopSequences     []string          `json:"stop_sequences,omitempty" yaml:"stop_sequences,omitempty"`
	ExtraHeaders      map[string]string `json:"extra_headers,omitempty" yaml:"extra_headers,omitempty"`
	ExtraBody         map[string]any    `json:"extra_body,omitempty" yaml:"extra_body,omitempty"`
}

// ChatRequest is sent to an LLM provider.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []Message     `json:"messages"`
	Tools    []ToolSchema  `json:"tools,omitempty"`
	Settings ModelSettings `json:"settings"`
	Stream   bool          `json:"stream,omitempty"`
}

// ChatResponse is returned from an LLM provider.
type ChatResponse struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Message   Message   `json:"message"`
	Usage     Usage     `json:"usage"`
	CreatedAt time.Time `json:"created_at"`
}

// Usage tracks token consumption of one model request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
