package tool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"arr-mcp/internal/domain"
)

// Registry holds named tools in registration order. It is both a
// domain.ToolExecutor and a filterable domain.Toolset.
type Registry struct {
	mu     sync.RWMutex
	name   string
	order  []string
	tools  map[string]domain.Tool
	logger *slog.Logger
}

// NewRegistry creates an empty tool registry. Every registered tool is
// wrapped with schema validation; a schema that does not compile leaves the
// tool unwrapped and is reported through logger when one is set.
func NewRegistry(name string, logger *slog.Logger) *Registry {
	return &Registry{
		name:   name,
		tools:  make(map[string]domain.Tool),
		logger: logger,
	}
}

// Register adds a tool. Returns error if name already registered.
func (r *Registry) Register(t domain.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: tool %q already registered", domain.ErrDuplicate, name)
	}

	wrapped, err := WithSchemaValidation(t)
	switch {
	case err == nil:
		t = wrapped
	case r.logger != nil:
		r.logger.Warn("schema validation disabled for tool", "tool", name, "error", err)
	}

	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (domain.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	if !ok {
		return nil, domain.NewDomainError("Registry.Get", domain.ErrToolNotFound, name)
	}
	return t, nil
}

// List returns all registered tools in registration order.
func (r *Registry) List() []domain.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]domain.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Schemas returns all tool schemas for LLM function-calling, in order.
func (r *Registry) Schemas() []domain.ToolSchema {
	tools := r.List()
	schemas := make([]domain.ToolSchema, 0, len(tools))
	for _, t := range tools {
		schemas = append(schemas, t.Schema())
	}
	return schemas
}

// Name implements domain.Toolset.
func (r *Registry) Name() string { return r.name }

// Tools implements domain.Toolset.
func (r *Registry) Tools(context.Context) ([]domain.Tool, error) { return r.List(), nil }

// FilterByTag returns a new registry holding only the tools tagged tag,
// in their original order. The receiver is not modified.
func (r *Registry) FilterByTag(tag domain.Tag) (domain.Toolset, bool) {
	view := &Registry{
		name:   r.name,
		tools:  make(map[string]domain.Tool),
		logger: r.logger,
	}
	for _, t := range r.List() {
		if domain.HasTag(domain.ToolTags(t), tag) {
			view.tools[t.Name()] = t
			view.order = append(view.order, t.Name())
		}
	}
	return view, true
}
