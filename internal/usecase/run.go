package usecase

import (
	"context"

	"github.com/oklog/ulid/v2"

	"arr-mcp/internal/domain"
)

// NewRunID returns a new sortable run identifier.
func NewRunID() string { return ulid.Make().String() }

// NewRunContext starts the ledger of one top-level run.
func NewRunContext(limits domain.UsageLimits, deps any) *domain.RunContext {
	return &domain.RunContext{
		RunID:  NewRunID(),
		Usage:  domain.NewRunUsage(),
		Limits: limits,
		Deps:   deps,
	}
}

// EnsureRunContext returns ctx and its RunContext, starting a new top-level
// run with limits when ctx carries none. A carried RunContext is shared as is.
func EnsureRunContext(ctx context.Context, limits domain.UsageLimits) (context.Context, *domain.RunContext) {
	if rc := domain.RunContextFrom(ctx); rc != nil && rc.Usage != nil {
		return ctx, rc
	}
	rc := NewRunContext(limits, nil)
	return domain.WithRunContext(ctx, rc), rc
}
