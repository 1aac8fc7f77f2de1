package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"arr-mcp/internal/domain"
)

// validatedTool checks arguments against the schema the model was shown
// before the call reaches the wrapped tool. Failures come back as
// retryable results so the model can correct itself within the run's
// tool retry budget.
type validatedTool struct {
	domain.Tool
	schema *jsonschema.Schema
}

// WithSchemaValidation wraps t with argument validation. Tools without a
// parameter schema are returned as is.
func WithSchemaValidation(t domain.Tool) (domain.Tool, error) {
	raw := t.Schema().Parameters
	if len(raw) == 0 || string(raw) == "null" {
		return t, nil
	}
	compiled, err := jsonschema.CompileString("mem://tools/"+t.Name()+".json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema for %q: %w", t.Name(), err)
	}
	return &validatedTool{Tool: t, schema: compiled}, nil
}

// Tags forwards the wrapped tool's tags so tag views still see them.
func (v *validatedTool) Tags() []domain.Tag { return domain.ToolTags(v.Tool) }

// Unwrap returns the validated tool.
func (v *validatedTool) Unwrap() domain.Tool { return v.Tool }

func (v *validatedTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	if len(params) == 0 || string(params) == "null" {
		params = json.RawMessage(`{}`)
	}
	var doc any
	if err := json.Unmarshal(params, &doc); err != nil {
		return retryWith("arguments for %s are not valid JSON: %v", v.Name(), err), nil
	}
	if err := v.schema.Validate(doc); err != nil {
		return retryWith("arguments for %s do not match its schema: %s", v.Name(), describeViolations(err)), nil
	}
	return v.Tool.Execute(ctx, params)
}

func retryWith(format string, args ...any) *domain.ToolResult {
	return &domain.ToolResult{
		Content:     fmt.Sprintf(format, args...) + ". Fix the arguments and call the tool again.",
		IsError:     true,
		IsRetryable: true,
	}
}

// describeViolations flattens a validation error into "location: message"
// pairs, one per failing leaf.
func describeViolations(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var parts []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			parts = append(parts, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(parts, "; ")
}
