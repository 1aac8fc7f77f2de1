package multiagent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/usecase"
)

// SharedModel is the model binding every agent of one service uses. It is
// read-only after startup; agents copy Settings into each request.
type SharedModel struct {
	LLM             domain.LLMProvider
	Model           string
	Settings        domain.ModelSettings
	ToolTimeout     time.Duration
	MaxToolRetries  int
	MaxIterations   int
	ErrorClassifier *usecase.ErrorClassifier
	Bus             domain.EventBus
}

// Specialist is the agent owning the operations of one tag.
type Specialist struct {
	tag    domain.Tag
	name   string
	prompt string
	opaque int
	agent  *usecase.Agent
	log    *slog.Logger
}

// SpecialistName returns the agent name for tag, e.g. "Prowlarr_Indexer_Agent".
func SpecialistName(title string, tag domain.Tag) string {
	return title + "_" + string(tag) + "_Agent"
}

// DefaultSpecialistPrompt renders the prompt a specialist gets when no
// override is configured.
func DefaultSpecialistPrompt(title string, def domain.TagDef) string {
	words := def.Words
	if words == "" {
		words = def.Tag.Words()
	}
	return fmt.Sprintf("You are the %s %s Agent.\n"+
		"Your goal is to manage %s resources.\n"+
		"You have access to tools specifically tagged with '%s'.\n"+
		"Use these tools to fulfill the user's request.", title, def.Tag, words, def.Tag)
}

// BuildSpecialist creates the specialist for def over the tag-filtered view
// of toolsets. It never contacts the model or any tool source and succeeds
// when the filtered view is empty.
func BuildSpecialist(title string, def domain.TagDef, toolsets []domain.Toolset, shared SharedModel, logger *slog.Logger) *Specialist {
	if logger == nil {
		logger = slog.Default()
	}
	prompt := def.Prompt
	if prompt == "" {
		prompt = DefaultSpecialistPrompt(title, def)
	}
	name := SpecialistName(title, def.Tag)
	filtered := usecase.FilterToolsets(toolsets, def.Tag, logger)

	agent := usecase.NewAgent(usecase.AgentDeps{
		LLM:            shared.LLM,
		Toolsets:       filtered,
		ContextBuilder: usecase.NewContextBuilder(prompt, shared.Model, 0),
		Identity: domain.AgentIdentity{
			Name:         name,
			Tag:          def.Tag,
			Description:  fmt.Sprintf("Manages %s resources", def.Tag.Words()),
			SystemPrompt: prompt,
		},
		Settings:        shared.Settings,
		MaxToolRetries:  shared.MaxToolRetries,
		MaxIterations:   shared.MaxIterations,
		ToolTimeout:     shared.ToolTimeout,
		Bus:             shared.Bus,
		ErrorClassifier: shared.ErrorClassifier,
		Logger:          logger,
	})

	return &Specialist{
		tag:    def.Tag,
		name:   name,
		prompt: prompt,
		opaque: usecase.OpaqueCount(toolsets),
		agent:  agent,
		log:    logger.With("agent", name, "tag", string(def.Tag)),
	}
}

func (s *Specialist) Tag() domain.Tag       { return s.tag }
func (s *Specialist) Name() string          { return s.name }
func (s *Specialist) SystemPrompt() string  { return s.prompt }
func (s *Specialist) Agent() *usecase.Agent { return s.agent }

// Toolsets returns the filtered toolsets the specialist works with.
func (s *Specialist) Toolsets() []domain.Toolset { return s.agent.Toolsets() }

// Status reports the specialist with its tool count.
func (s *Specialist) Status(ctx context.Context) domain.AgentStatus {
	n := 0
	for _, ts := range s.agent.Toolsets() {
		tools, err := ts.Tools(ctx)
		if err != nil {
			s.log.Debug("listing tools failed", "toolset", ts.Name(), "error", err)
			continue
		}
		n += len(tools)
	}
	return domain.AgentStatus{Name: s.name, Tag: s.tag, ToolCount: n, Opaque: s.opaque}
}

// Run handles one task in a fresh session. The run joins the RunContext
// carried by ctx, so usage lands on the caller's ledger.
func (s *Specialist) Run(ctx context.Context, task string) (*usecase.RunResult, error) {
	session := usecase.NewSession("delegate|" + s.name)
	return s.agent.Run(ctx, session, task)
}
