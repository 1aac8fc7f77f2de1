// Package eventbus is the in-process publish/subscribe bus that carries
// agent events to the AG-UI stream, the websocket feed and the run store.
package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"arr-mcp/internal/domain"
)

// queueSize is the per-subscriber buffer. Publishers block when it is full.
const queueSize = 256

type subscription struct {
	id      uint64
	typ     domain.EventType // empty for all-event subscribers
	handler domain.EventHandler
	queue   chan queued
	done    chan struct{}
	once    sync.Once
}

type queued struct {
	ctx   context.Context
	event domain.Event
}

func (s *subscription) stop() { s.once.Do(func() { close(s.done) }) }

// Bus is an in-process, goroutine-safe event bus. Every subscriber has its
// own goroutine and receives events in the order they were published.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscription
	nextID atomic.Uint64
	logger *slog.Logger
	wg     sync.WaitGroup
	closed atomic.Bool
}

// New creates an event bus.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[uint64]*subscription),
		logger: logger,
	}
}

// Publish queues event for every matching subscriber. It blocks while a
// subscriber's queue is full, until ctx is done.
func (b *Bus) Publish(ctx context.Context, event domain.Event) {
	if b.closed.Load() {
		return
	}

	b.mu.RLock()
	targets := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.typ == "" || s.typ == event.Type {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range targets {
		select {
		case s.queue <- queued{ctx: context.WithoutCancel(ctx), event: event}:
		case <-s.done:
		case <-ctx.Done():
			return
		}
	}
}

// Subscribe registers a handler for one event type and returns its
// unsubscribe function.
func (b *Bus) Subscribe(eventType domain.EventType, handler domain.EventHandler) func() {
	return b.add(eventType, handler)
}

// SubscribeAll registers a handler that receives every event.
func (b *Bus) SubscribeAll(handler domain.EventHandler) func() {
	return b.add("", handler)
}

func (b *Bus) add(typ domain.EventType, handler domain.EventHandler) func() {
	s := &subscription{
		id:      b.nextID.Add(1),
		typ:     typ,
		handler: handler,
		queue:   make(chan queued, queueSize),
		done:    make(chan struct{}),
	}

	b.mu.Lock()
	b.subs[s.id] = s
	b.mu.Unlock()

	b.wg.Add(1)
	go b.run(s)

	return func() {
		b.mu.Lock()
		delete(b.subs, s.id)
		b.mu.Unlock()
		s.stop()
	}
}

// run delivers queued events until the subscription stops, then delivers
// whatever is still queued.
func (b *Bus) run(s *subscription) {
	defer b.wg.Done()
	for {
		select {
		case q := <-s.queue:
			b.deliver(s, q)
		case <-s.done:
			for {
				select {
				case q := <-s.queue:
					b.deliver(s, q)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) deliver(s *subscription, q queued) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", string(q.event.Type),
				"panic", r,
			)
		}
	}()
	s.handler(q.ctx, q.event)
}

// Close stops new publishes, delivers queued events and waits for every
// subscriber goroutine. Close is idempotent.
func (b *Bus) Close() {
	if b.closed.Swap(true) {
		return
	}
	b.mu.Lock()
	for _, s := range b.subs {
		s.stop()
	}
	b.mu.Unlock()
	b.wg.Wait()
}

var _ domain.EventBus = (*Bus)(nil)
