package skill

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/domain"
)

// Toolset offers the loaded skills to an agent. Skills carry no domain tag,
// so the toolset is opaque to tag filtering.
type Toolset struct {
	domain.OpaqueToolset
	provider domain.SkillProvider
	logger   *slog.Logger
}

// NewToolset creates the skills toolset over provider.
func NewToolset(provider domain.SkillProvider, logger *slog.Logger) *Toolset {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolset{provider: provider, logger: logger}
}

// Name implements domain.Toolset.
func (s *Toolset) Name() string { return "skills" }

// Tools implements domain.Toolset.
func (s *Toolset) Tools(context.Context) ([]domain.Tool, error) {
	return []domain.Tool{&listSkillsTool{s}, &loadSkillTool{s}}, nil
}

type listSkillsTool struct{ ts *Toolset }

func (t *listSkillsTool) Name() string { return "list_skills" }
func (t *listSkillsTool) Description() string {
	return "List the available skills with their descriptions."
}

func (t *listSkillsTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
	}
}

type skillSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

func (t *listSkillsTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return tool.Run(ctx, t.Name(), t.ts.logger, params,
		func(context.Context, struct{}) (any, error) {
			skills := t.ts.provider.List()
			out := make([]skillSummary, len(skills))
			for i, sk := range skills {
				out[i] = skillSummary{Name: sk.Name, Description: sk.Description, Tags: sk.Tags}
			}
			return out, nil
		})
}

type loadSkillTool struct{ ts *Toolset }

func (t *loadSkillTool) Name() string { return "load_skill" }
func (t *loadSkillTool) Description() string {
	return "Load the full instructions of a skill by name."
}

func (t *loadSkillTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Skill name as returned by list_skills"}
			},
			"required": ["name"]
		}`),
	}
}

type loadSkillParams struct {
	Name string `json:"name"`
}

func (t *loadSkillTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return tool.Run(ctx, t.Name(), t.ts.logger, params,
		func(_ context.Context, p loadSkillParams) (any, error) {
			if strings.TrimSpace(p.Name) == "" {
				return nil, tool.Feedbackf("'name' is required")
			}
			sk, err := t.ts.provider.Get(p.Name)
			if err != nil {
				return nil, tool.Feedbackf("unknown skill %q", p.Name)
			}
			return fmt.Sprintf("# %s\n\n%s", sk.Name, sk.Body), nil
		})
}
