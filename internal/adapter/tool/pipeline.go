package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/tracer"
)

// Feedback is a handler error meant for the model. Run turns it into an
// error tool result so the model can correct itself; every other handler
// error fails the calling run.
type Feedback struct {
	Err error
}

func (f *Feedback) Error() string { return f.Err.Error() }
func (f *Feedback) Unwrap() error { return f.Err }

// Feedbackf formats a Feedback error.
func Feedbackf(format string, args ...any) error {
	return &Feedback{Err: fmt.Errorf(format, args...)}
}

// Handler runs one tool call with its decoded arguments. The returned value
// becomes the tool result: strings verbatim, *domain.ToolResult as is,
// anything else as indented JSON.
type Handler[P any] func(ctx context.Context, args P) (any, error)

// Run is the call pipeline shared by the built-in tools. It decodes raw
// into P (empty input and null decode to the zero value), runs h inside a
// tool.<name> span and formats the result.
func Run[P any](ctx context.Context, name string, logger *slog.Logger, raw json.RawMessage, h Handler[P]) (*domain.ToolResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, span := tracer.StartSpan(ctx, "tool."+name,
		trace.WithAttributes(tracer.StringAttr("tool.name", name)),
	)
	defer span.End()

	var args P
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &args); err != nil {
			tracer.RecordError(span, err)
			return &domain.ToolResult{
				IsError:     true,
				IsRetryable: true,
				Content:     fmt.Sprintf("invalid arguments: %v", err),
			}, nil
		}
	}

	out, err := h(ctx, args)
	if err != nil {
		tracer.RecordError(span, err)
		var fb *Feedback
		if !errors.As(err, &fb) {
			return nil, err
		}
		logger.Debug("tool feedback", "tool", name, "error", err)
		res := &domain.ToolResult{IsError: true, Content: err.Error()}
		if isTransient(fb.Err) {
			res.IsRetryable = true
			res.Content += " (transient error, may succeed on retry)"
		}
		return res, nil
	}

	res, err := toResult(out)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if res.IsError {
		tracer.RecordError(span, errors.New(res.Content))
	} else {
		tracer.SetOK(span)
	}
	return res, nil
}

func toResult(out any) (*domain.ToolResult, error) {
	switch v := out.(type) {
	case nil:
		return &domain.ToolResult{}, nil
	case *domain.ToolResult:
		return v, nil
	case string:
		return &domain.ToolResult{Content: v}, nil
	case json.RawMessage:
		return &domain.ToolResult{Content: string(v)}, nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("format result: %w", err)
		}
		return &domain.ToolResult{Content: string(data)}, nil
	}
}
