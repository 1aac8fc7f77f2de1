package domain

import "context"

// Keys for the values a run threads through its context. Each is a
// distinct type so lookups from other packages cannot collide.
type (
	sessionKey struct{}
	runKey     struct{}
)

// ContextWithSessionID tags ctx with the conversation session a run serves.
// Events published under ctx carry it.
func ContextWithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionIDFromContext returns the session tagged on ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// WithRunContext returns a context carrying rc. Delegated runs started
// under it share rc's usage ledger.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runKey{}, rc)
}

// RunContextFrom returns the RunContext carried by ctx, or nil.
func RunContextFrom(ctx context.Context) *RunContext {
	rc, _ := ctx.Value(runKey{}).(*RunContext)
	return rc
}

// RunIDFromContext returns the id of the run ctx belongs to, or "".
func RunIDFromContext(ctx context.Context) string {
	if rc := RunContextFrom(ctx); rc != nil {
		return rc.RunID
	}
	return ""
}
