package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"arr-mcp/internal/domain"
)

// Delegator forwards a task to the specialist of tag.
type Delegator interface {
	Delegate(ctx context.Context, tag domain.Tag, task string) (string, error)
}

// DelegationToolName returns the supervisor tool name for tag.
func DelegationToolName(tag domain.Tag) string {
	return "assign_task_to_" + tag.Lower() + "_agent"
}

var delegationSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"task": {
			"type": "string",
			"description": "The task to hand to the agent, in plain language"
		}
	},
	"required": ["task"]
}`)

// DelegationTool is the supervisor's entry point to one specialist.
type DelegationTool struct {
	tag       domain.Tag
	delegator Delegator
}

// NewDelegationTool creates the delegation tool for tag.
func NewDelegationTool(tag domain.Tag, d Delegator) *DelegationTool {
	return &DelegationTool{tag: tag, delegator: d}
}

func (t *DelegationTool) Name() string { return DelegationToolName(t.tag) }

func (t *DelegationTool) Description() string {
	return fmt.Sprintf("Assign a task related to %s to the %s Agent.", t.tag, t.tag)
}

// Tag returns the specialist tag this tool routes to.
func (t *DelegationTool) Tag() domain.Tag { return t.tag }

func (t *DelegationTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  delegationSchema,
	}
}

type delegationParams struct {
	Task string `json:"task"`
}

// Execute returns the specialist's final text unmodified. Delegation errors
// are returned as errors so the supervisor turn fails with them.
func (t *DelegationTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Run(ctx, t.Name(), nil, params, func(ctx context.Context, p delegationParams) (any, error) {
		out, err := t.delegator.Delegate(ctx, t.tag, p.Task)
		if err != nil {
			return nil, err
		}
		return out, nil
	})
}

// NewDelegationRegistry builds the supervisor toolset: one delegation tool
// per tag, in tag order.
func NewDelegationRegistry(name string, tags []domain.Tag, d Delegator, logger *slog.Logger) (*Registry, error) {
	reg := NewRegistry(name, logger)
	for _, tag := range tags {
		if err := reg.Register(NewDelegationTool(tag, d)); err != nil {
			return nil, fmt.Errorf("register delegation to %s: %w", tag, err)
		}
	}
	return reg, nil
}
