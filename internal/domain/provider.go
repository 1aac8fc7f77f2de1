package domain

import "context"

// LLMProvider answers chat requests for one configured model backend.
type LLMProvider interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// Name identifies the backend in logs and metrics, e.g. "openai".
	Name() string
}

// StreamingLLMProvider can also answer incrementally. The channel closes
// once the answer is complete or ctx ends.
type StreamingLLMProvider interface {
	LLMProvider
	ChatStream(ctx context.Context, req ChatRequest) (<-chan StreamDelta, error)
}

// StreamDelta is one increment of a streamed answer. ToolCalls are
// positional: entry i continues call i, the first fragment carrying ID and
// Name and later ones appending to Arguments. Usage, when present, covers
// the whole answer so far.
type StreamDelta struct {
	Content   string     `json:"content,omitempty"`
	Thinking  string     `json:"thinking,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Done      bool       `json:"done,omitempty"`
	Usage     *Usage     `json:"usage,omitempty"`
}

// Streaming returns p's streaming side when want is set and p supports it,
// nil otherwise.
func Streaming(p LLMProvider, want bool) StreamingLLMProvider {
	if !want || p == nil {
		return nil
	}
	sp, _ := p.(StreamingLLMProvider)
	return sp
}
