package usecase

import (
	"context"
	"fmt"
	"sync"

	"arr-mcp/internal/domain"
)

// Turn tracks the state of one agent turn and publishes every transition.
type Turn struct {
	mu      sync.Mutex
	agent   string
	state   domain.TurnState
	history []domain.TurnState
	bus     domain.EventBus
}

// NewTurn starts a turn in the Received state.
func NewTurn(agent string, bus domain.EventBus) *Turn {
	return &Turn{
		agent:   agent,
		state:   domain.TurnReceived,
		history: []domain.TurnState{domain.TurnReceived},
		bus:     bus,
	}
}

// Advance moves the turn to next. Illegal transitions leave the state
// unchanged and return ErrInvalidTransition.
func (t *Turn) Advance(ctx context.Context, next domain.TurnState) error {
	t.mu.Lock()
	from := t.state
	if !domain.CanTransition(from, next) {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, next)
	}
	t.state = next
	t.history = append(t.history, next)
	t.mu.Unlock()

	if t.bus != nil {
		t.bus.Publish(ctx, domain.NewEvent(ctx, domain.EventTurnState, domain.TurnStatePayload{
			Agent: t.agent,
			From:  from,
			To:    next,
		}))
	}
	return nil
}

// Fail moves the turn to Errored when that is legal from the current state.
func (t *Turn) Fail(ctx context.Context) {
	_ = t.Advance(ctx, domain.TurnErrored)
}

// State returns the current state.
func (t *Turn) State() domain.TurnState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// History returns every state the turn has been in, oldest first.
func (t *Turn) History() []domain.TurnState {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.TurnState, len(t.history))
	copy(out, t.history)
	return out
}
