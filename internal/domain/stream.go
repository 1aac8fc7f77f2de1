package domain

// StreamDeltaPayload is the payload for EventStreamDelta events.
// Published for each incremental chunk during a streaming LLM response.
type StreamDeltaPayload struct {
	Agent     string     `json:"agent"`
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Done      bool       `json:"done,omitempty"`
	Iteration int        `json:"iteration"`
}

// StreamCompletedPayload is the payload for EventStreamCompleted events.
type StreamCompletedPayload struct {
	Agent   string `json:"agent"`
	Content string `json:"content"`
	Usage   *Usage `json:"usage,omitempty"`
}

// StreamErrorPayload is the payload for EventStreamError events.
type StreamErrorPayload struct {
	Agent string `json:"agent"`
	Error string `json:"error"`
}
