package multiagent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"arr-mcp/internal/domain"
)

// Registry holds the specialists of one service keyed by tag. Lookups are
// case-insensitive and listing keeps registration order.
type Registry struct {
	mu     sync.RWMutex
	byTag  map[string]*Specialist
	order  []*Specialist
	logger *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		byTag:  make(map[string]*Specialist),
		logger: logger,
	}
}

// BuildRegistry creates one specialist per entry of svc's tag table.
// prompts maps lower-case tags to prompt overrides.
func BuildRegistry(svc domain.Service, toolsets []domain.Toolset, shared SharedModel, prompts map[string]string, logger *slog.Logger) (*Registry, error) {
	reg := NewRegistry(logger)
	for _, def := range svc.Tags {
		if p, ok := prompts[def.Tag.Lower()]; ok && p != "" {
			def.Prompt = p
		}
		if err := reg.Register(BuildSpecialist(svc.Title, def, toolsets, shared, logger)); err != nil {
			return nil, fmt.Errorf("register %s specialist: %w", def.Tag, err)
		}
	}
	return reg, nil
}

// Register adds s. Returns ErrDuplicate if its tag is already registered.
func (r *Registry) Register(s *Specialist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := s.Tag().Lower()
	if _, exists := r.byTag[key]; exists {
		return domain.ErrDuplicate
	}
	r.byTag[key] = s
	r.order = append(r.order, s)
	r.logger.Debug("specialist registered", "agent", s.Name(), "tag", string(s.Tag()))
	return nil
}

// Get returns the specialist of tag, or ErrUnknownTag.
func (r *Registry) Get(tag domain.Tag) (*Specialist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byTag[tag.Lower()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTag, tag)
	}
	return s, nil
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []domain.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Tag, len(r.order))
	for i, s := range r.order {
		out[i] = s.Tag()
	}
	return out
}

// List returns a status snapshot for every specialist in registration order.
func (r *Registry) List(ctx context.Context) []domain.AgentStatus {
	r.mu.RLock()
	specs := make([]*Specialist, len(r.order))
	copy(specs, r.order)
	r.mu.RUnlock()

	statuses := make([]domain.AgentStatus, 0, len(specs))
	for _, s := range specs {
		statuses = append(statuses, s.Status(ctx))
	}
	return statuses
}
