// Package policy decides whether a principal may call a tool.
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

// Request is one tool call to authorize.
type Request struct {
	Principal string         `json:"principal"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Decision is the outcome of an evaluation.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Evaluator authorizes tool calls.
type Evaluator interface {
	Evaluate(ctx context.Context, req Request) (Decision, error)
}

// New returns the evaluator selected by cfg, or nil when policies are off.
func New(cfg config.EunomiaConfig, client *http.Client, logger *slog.Logger) (Evaluator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.Type {
	case "", "none":
		return nil, nil
	case "embedded":
		e, err := LoadFile(cfg.PolicyFile)
		if err != nil {
			return nil, err
		}
		logger.Info("eunomia policy loaded", "file", cfg.PolicyFile, "rules", len(e.rules))
		return e, nil
	case "remote":
		if cfg.RemoteURL == "" {
			return nil, domain.NewSubSystemError("mcp", "policy.New", domain.ErrInvalidInput, "remote policy requires remote_url")
		}
		return NewRemote(cfg.RemoteURL, client), nil
	default:
		return nil, domain.NewSubSystemError("mcp", "policy.New", domain.ErrInvalidInput,
			fmt.Sprintf("unknown eunomia type %q", cfg.Type))
	}
}

// Denied converts a negative decision into an error.
func Denied(req Request, d Decision) error {
	if d.Reason == "" {
		return fmt.Errorf("%w: %s may not call %s", domain.ErrPolicyDenied, req.Principal, req.Tool)
	}
	return fmt.Errorf("%w: %s", domain.ErrPolicyDenied, d.Reason)
}
