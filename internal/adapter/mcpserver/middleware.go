package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/adapter/mcpserver/auth"
	"arr-mcp/internal/adapter/mcpserver/policy"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/metrics"
	"arr-mcp/internal/infra/tracer"
)

type chainConfig struct {
	auth    *auth.Setup
	policy  policy.Evaluator
	limiter *rate.Limiter
	logger  *slog.Logger
}

// newChain returns the tool middleware stack, outermost first: token
// capture, error handling, rate limiting, timing, logging, claims logging
// and policy.
func newChain(cfg chainConfig) server.ToolHandlerMiddleware {
	var mws []server.ToolHandlerMiddleware
	if cfg.auth.Exchanger != nil || cfg.auth.Enabled() {
		mws = append(mws, tokenCapture(cfg.auth, cfg.logger))
	}
	mws = append(mws,
		errorHandling(cfg.logger),
		rateLimit(cfg.limiter),
		timing(),
		logging(cfg.logger),
		claimsLogging(cfg.logger),
	)
	if cfg.policy != nil {
		mws = append(mws, policyCheck(cfg.policy, cfg.logger))
	}
	return func(h server.ToolHandlerFunc) server.ToolHandlerFunc {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// tokenCapture requires a principal on HTTP transports with auth and, when
// delegation is on, swaps the caller's token for a backend token.
func tokenCapture(setup *auth.Setup, logger *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			p, ok := auth.PrincipalFrom(ctx)
			if !ok {
				// stdio carries no bearer token; the process boundary is the trust boundary.
				return next(ctx, req)
			}
			if setup.Exchanger != nil {
				tok, err := setup.Exchanger.Exchange(ctx, p.Token)
				if err != nil {
					logger.Warn("token delegation failed", "tool", req.Params.Name, "principal", p.Name(), "error", err)
					return mcp.NewToolResultError("token delegation failed: " + err.Error()), nil
				}
				ctx = arr.ContextWithDelegatedToken(ctx, tok)
			}
			return next(ctx, req)
		}
	}
}

// errorHandling recovers panics and converts returned errors into error
// results carrying the error text.
func errorHandling(logger *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("tool panicked", "tool", req.Params.Name, "panic", r, "stack", string(debug.Stack()))
					res, err = mcp.NewToolResultError(fmt.Sprintf("internal error in %s", req.Params.Name)), nil
				}
			}()
			res, err = next(ctx, req)
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			return res, nil
		}
	}
}

func errorText(err error) string {
	var be *domain.BackendError
	if errors.As(err, &be) {
		return be.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "tool call timed out"
	}
	return err.Error()
}

func rateLimit(l *rate.Limiter) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if !l.Allow() {
				return mcp.NewToolResultError("rate limit exceeded, retry later"), nil
			}
			return next(ctx, req)
		}
	}
}

// timing wraps the call in an mcp.tool span and records the outcome.
func timing() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx, span := tracer.StartSpan(ctx, "mcp.tool",
				trace.WithAttributes(tracer.StringAttr("tool.name", req.Params.Name)))
			defer span.End()

			res, err := next(ctx, req)
			outcome := metrics.OutcomeOK
			switch {
			case err != nil:
				outcome = metrics.OutcomeError
				tracer.RecordError(span, err)
			case res != nil && res.IsError:
				outcome = metrics.OutcomeError
			default:
				tracer.SetOK(span)
			}
			metrics.ObserveToolCall(req.Params.Name, outcome)
			return res, err
		}
	}
}

func logging(logger *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			res, err := next(ctx, req)
			attrs := []any{"tool", req.Params.Name, "duration", time.Since(start)}
			if p, ok := auth.PrincipalFrom(ctx); ok {
				attrs = append(attrs, "principal", p.Name())
			}
			switch {
			case err != nil:
				logger.Warn("tool call failed", append(attrs, "error", err)...)
			case res != nil && res.IsError:
				logger.Info("tool call returned error", attrs...)
			default:
				logger.Debug("tool call", attrs...)
			}
			return res, err
		}
	}
}

func claimsLogging(logger *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if p, ok := auth.PrincipalFrom(ctx); ok && len(p.Claims) > 0 && logger.Enabled(ctx, slog.LevelDebug) {
				logger.Debug("caller claims", "tool", req.Params.Name, "subject", p.Subject,
					"client_id", p.ClientID, "scopes", p.Scopes)
			}
			return next(ctx, req)
		}
	}
}

// policyCheck denies calls the evaluator rejects. Evaluator failures deny.
func policyCheck(ev policy.Evaluator, logger *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			preq := policy.Request{Tool: req.Params.Name, Arguments: req.GetArguments()}
			if p, ok := auth.PrincipalFrom(ctx); ok {
				preq.Principal = p.Name()
			}
			d, err := ev.Evaluate(ctx, preq)
			if err != nil {
				logger.Warn("policy evaluation failed", "tool", preq.Tool, "error", err)
				d = policy.Decision{Reason: "policy evaluation failed"}
			}
			if !d.Allowed {
				logger.Info("tool call denied", "tool", preq.Tool, "principal", preq.Principal, "reason", d.Reason)
				return mcp.NewToolResultError(policy.Denied(preq, d).Error()), nil
			}
			return next(ctx, req)
		}
	}
}
