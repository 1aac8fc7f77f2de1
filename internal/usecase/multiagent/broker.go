package multiagent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/metrics"
	"arr-mcp/internal/infra/tracer"
)

// BrokerConfig bounds delegations.
type BrokerConfig struct {
	// From names the delegating agent in events.
	From string
	// Timeout bounds one delegation. Zero means no bound.
	Timeout time.Duration
	// MaxConcurrent caps in-flight delegations. Zero means unlimited.
	MaxConcurrent int
}

// Broker hands supervisor tasks to specialists.
type Broker struct {
	registry *Registry
	cfg      BrokerConfig
	sem      chan struct{}
	bus      domain.EventBus
	logger   *slog.Logger
}

// NewBroker creates a Broker over registry.
func NewBroker(registry *Registry, cfg BrokerConfig, bus domain.EventBus, logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Broker{
		registry: registry,
		cfg:      cfg,
		bus:      bus,
		logger:   logger,
	}
	if cfg.MaxConcurrent > 0 {
		b.sem = make(chan struct{}, cfg.MaxConcurrent)
	}
	return b
}

// Registry returns the specialists the broker delegates to.
func (b *Broker) Registry() *Registry { return b.registry }

// Delegate runs task on the specialist of tag and returns its final text
// unmodified. The specialist shares the RunContext carried by ctx. Failures
// are not retried.
func (b *Broker) Delegate(ctx context.Context, tag domain.Tag, task string) (string, error) {
	sp, err := b.registry.Get(tag)
	if err != nil {
		return "", fmt.Errorf("delegate to %s agent: %w", tag, err)
	}
	tag = sp.Tag()

	if b.sem != nil {
		select {
		case b.sem <- struct{}{}:
			defer func() { <-b.sem }()
		case <-ctx.Done():
			return "", fmt.Errorf("delegate to %s agent: %w", tag, ctx.Err())
		}
	}

	ctx, span := tracer.StartSpan(ctx, "broker.delegate",
		trace.WithAttributes(
			tracer.StringAttr("delegation.tag", string(tag)),
			tracer.StringAttr("delegation.to", sp.Name()),
		),
	)
	defer span.End()

	b.publish(ctx, domain.EventAgentDelegated, domain.DelegationPayload{
		From: b.cfg.From,
		To:   sp.Name(),
		Tag:  tag,
		Task: task,
	})
	b.logger.Info("delegating", "from", b.cfg.From, "to", sp.Name(), "tag", string(tag))

	runCtx := ctx
	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := sp.Run(runCtx, task)
	elapsed := time.Since(start)

	if err != nil && ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrToolTimeout) {
		err = fmt.Errorf("%w: %s did not finish within %s: %w", domain.ErrToolTimeout, sp.Name(), b.cfg.Timeout, err)
	}

	outcome := metrics.OutcomeOK
	switch {
	case errors.Is(err, domain.ErrToolTimeout):
		outcome = metrics.OutcomeTimeout
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.ObserveDelegation(string(tag), outcome, elapsed)

	done := domain.DelegationPayload{
		From:       b.cfg.From,
		To:         sp.Name(),
		Tag:        tag,
		DurationMs: elapsed.Milliseconds(),
	}
	if err != nil {
		done.Error = err.Error()
	}
	b.publish(ctx, domain.EventDelegationCompleted, done)

	if err != nil {
		tracer.RecordError(span, err)
		b.logger.Warn("delegation failed", "to", sp.Name(), "tag", string(tag), "duration", elapsed, "error", err)
		return "", fmt.Errorf("delegate to %s agent: %w", tag, err)
	}
	tracer.SetOK(span)
	return res.Output, nil
}

func (b *Broker) publish(ctx context.Context, typ domain.EventType, payload domain.DelegationPayload) {
	if b.bus == nil {
		return
	}
	b.bus.Publish(ctx, domain.NewEvent(ctx, typ, payload))
}
