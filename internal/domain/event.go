package domain

import (
	"context"
	"encoding/json"
	"time"
)

// EventType identifies the kind of event being published.
type EventType string

const (
	EventRunStarted   EventType = "run.started"
	EventRunCompleted EventType = "run.completed"
	EventRunFailed    EventType = "run.failed"

	EventTurnState EventType = "turn.state"

	EventToolCallStarted   EventType = "tool.call.started"
	EventToolCallCompleted EventType = "tool.call.completed"
	EventLLMCallStarted    EventType = "llm.call.started"
	EventLLMCallCompleted  EventType = "llm.call.completed"

	EventStreamStarted   EventType = "stream.started"
	EventStreamDelta     EventType = "stream.delta"
	EventStreamCompleted EventType = "stream.completed"
	EventStreamError     EventType = "stream.error"

	EventAgentDelegated      EventType = "agent.delegated"
	EventDelegationCompleted EventType = "agent.delegation.completed"
	EventAgentError          EventType = "agent.error"
	EventScheduledRunFired   EventType = "schedule.fired"
)

// Event is the envelope published on the event bus.
type Event struct {
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	SessionID string          `json:"session_id,omitempty"`
	RunID     string          `json:"run_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// TurnStatePayload is the payload of EventTurnState.
type TurnStatePayload struct {
	Agent string    `json:"agent"`
	From  TurnState `json:"from"`
	To    TurnState `json:"to"`
}

// ToolCallPayload is the payload of the tool.call.* events.
type ToolCallPayload struct {
	Agent     string `json:"agent"`
	CallID    string `json:"call_id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
	Result    string `json:"result,omitempty"`
	IsError   bool   `json:"is_error,omitempty"`
}

// DelegationPayload is the payload of the agent.delegated and
// agent.delegation.completed events.
type DelegationPayload struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Tag        Tag    `json:"tag"`
	Task       string `json:"task,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewEvent builds an event with a JSON-encoded payload.
func NewEvent(ctx context.Context, typ EventType, payload any) Event {
	ev := Event{
		Type:      typ,
		Timestamp: time.Now(),
		SessionID: SessionIDFromContext(ctx),
		RunID:     RunIDFromContext(ctx),
	}
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			ev.Payload = b
		}
	}
	return ev
}

// EventHandler is a callback invoked when an event is received.
type EventHandler func(ctx context.Context, event Event)

// EventBus provides a publish/subscribe mechanism for domain events.
type EventBus interface {
	// Publish sends an event to all matching subscribers.
	Publish(ctx context.Context, event Event)
	// Subscribe registers a handler for a specific event type.
	// Returns an unsubscribe function.
	Subscribe(eventType EventType, handler EventHandler) func()
	// SubscribeAll registers a handler that receives every event.
	SubscribeAll(handler EventHandler) func()
	// Close drains in-flight handlers and prevents new publishes.
	Close()
}
