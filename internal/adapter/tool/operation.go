package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/domain"
)

// OperationTool exposes one catalog operation of a service as a tagged tool.
type OperationTool struct {
	svc     domain.Service
	op      domain.Operation
	conn    arr.Conn
	invoker *arr.Invoker
	schema  json.RawMessage
	hidden  map[string]bool
}

// NewOperationTool binds op to the backend instance at conn.
func NewOperationTool(svc domain.Service, op domain.Operation, conn arr.Conn, invoker *arr.Invoker) *OperationTool {
	hidden := make(map[string]bool)
	for _, p := range svc.ConnectionParams() {
		hidden[p.Name] = true
	}
	for _, p := range op.Params {
		if p.Hidden {
			hidden[p.Name] = true
		}
	}
	return &OperationTool{
		svc:     svc,
		op:      op,
		conn:    conn,
		invoker: invoker,
		schema:  OperationSchema(op),
		hidden:  hidden,
	}
}

func (t *OperationTool) Name() string        { return t.op.Name }
func (t *OperationTool) Description() string { return t.op.Description }
func (t *OperationTool) Tags() []domain.Tag  { return []domain.Tag{t.op.Tag} }

// Operation returns the wrapped catalog entry.
func (t *OperationTool) Operation() domain.Operation { return t.op }

func (t *OperationTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.op.Name,
		Description: t.op.Description,
		Parameters:  t.schema,
	}
}

// Execute calls the backend. Backend and transport failures are returned
// as errors so they abort the calling run.
func (t *OperationTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Run(ctx, t.op.Name, nil, params, func(ctx context.Context, args map[string]any) (any, error) {
		if args == nil {
			args = map[string]any{}
		}
		for name := range t.hidden {
			delete(args, name)
		}
		out, err := t.invoker.Invoke(ctx, t.svc, t.op, t.conn, args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.op.Name, err)
		}
		return out, nil
	})
}

type schemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
}

type objectSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// OperationSchema renders the advertised JSON schema of op. Hidden params
// never appear in it.
func OperationSchema(op domain.Operation) json.RawMessage {
	s := objectSchema{Type: "object", Properties: map[string]schemaProperty{}}
	for _, p := range op.VisibleParams() {
		s.Properties[p.Name] = schemaProperty{Type: p.Type, Description: p.Description, Default: p.Default}
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}

// NewServiceRegistry registers every operation of svc, in catalog order.
func NewServiceRegistry(svc domain.Service, conn arr.Conn, invoker *arr.Invoker, logger *slog.Logger) (*Registry, error) {
	reg := NewRegistry(svc.Name, logger)
	for _, op := range svc.Operations {
		if err := reg.Register(NewOperationTool(svc, op, conn, invoker)); err != nil {
			return nil, fmt.Errorf("register %s: %w", op.Name, err)
		}
	}
	return reg, nil
}
