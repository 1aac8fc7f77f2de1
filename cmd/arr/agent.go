package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/adapter/gateway"
	"arr-mcp/internal/adapter/llm"
	"arr-mcp/internal/adapter/skill"
	"arr-mcp/internal/adapter/store"
	"arr-mcp/internal/adapter/tokenizer"
	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
	"arr-mcp/internal/infra/logger"
	"arr-mcp/internal/infra/tracer"
	"arr-mcp/internal/usecase"
	"arr-mcp/internal/usecase/eventbus"
	"arr-mcp/internal/usecase/multiagent"
	"arr-mcp/internal/usecase/schedule"
)

const sessionReapInterval = 10 * time.Minute

type agentOptions struct {
	service   string
	host      string
	port      int
	provider  string
	modelID   string
	baseURL   string
	apiKey    string
	mcpURL    string
	mcpConfig string
	skillsDir string
	web       bool
	insecure  bool
}

func newAgentCmd(g *globalOptions) *cobra.Command {
	o := &agentOptions{}
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Run the supervisor agent over A2A and AG-UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			o.apply(cmd, cfg)
			if err := finalize(cfg, cfg.Gateway.Port); err != nil {
				return err
			}
			return runAgent(cmd.Context(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.service, "service", "", "backend service the agent manages")
	f.StringVar(&o.host, "host", "0.0.0.0", "listen host")
	f.IntVar(&o.port, "port", config.DefaultAgentPort, "listen port")
	f.StringVar(&o.provider, "provider", "openai", "model provider: openai, anthropic, google, huggingface")
	f.StringVar(&o.modelID, "model-id", "", "model id")
	f.StringVar(&o.baseURL, "base-url", "", "inference endpoint base URL")
	f.StringVar(&o.apiKey, "api-key", "", "inference API key")
	f.StringVar(&o.mcpURL, "mcp-url", "", "use the tools of this MCP server")
	f.StringVar(&o.mcpConfig, "mcp-config", "", "mcpServers JSON file")
	f.StringVar(&o.skillsDir, "skills-directory", "", "directory of SKILL.md skills")
	f.BoolVar(&o.web, "web", false, "serve the chat page at /")
	f.BoolVar(&o.insecure, "insecure", false, "skip TLS verification toward the inference endpoint")
	return cmd
}

func (o *agentOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("service") {
		cfg.Service = o.service
	}
	if f.Changed("host") {
		cfg.Gateway.Host = o.host
	}
	if f.Changed("port") {
		cfg.Gateway.Port = o.port
	}
	if f.Changed("provider") {
		cfg.LLM.Provider = o.provider
	}
	if f.Changed("model-id") {
		cfg.LLM.Model = o.modelID
	}
	if f.Changed("base-url") {
		cfg.LLM.BaseURL = o.baseURL
	}
	if f.Changed("api-key") {
		cfg.LLM.APIKey = o.apiKey
	}
	if f.Changed("mcp-url") {
		cfg.MCP.URL = o.mcpURL
	}
	if f.Changed("mcp-config") {
		cfg.MCP.ConfigPath = o.mcpConfig
	}
	if f.Changed("skills-directory") {
		cfg.Skills.Dir = o.skillsDir
	}
	if f.Changed("web") {
		cfg.Gateway.WebUI = o.web
	}
	if o.insecure {
		cfg.LLM.SSLVerify = false
	}
}

// agentStack is the composed multi-agent runtime.
type agentStack struct {
	supervisor    *multiagent.Supervisor
	registry      *multiagent.Registry
	conversations *multiagent.Conversations
	sessions      *usecase.SessionManager
	skills        []domain.Skill
	close         func()
}

// buildAgent wires toolsets, specialists, the broker and the supervisor.
func buildAgent(ctx context.Context, cfg *config.Config, svc domain.Service, provider domain.LLMProvider,
	bus domain.EventBus, runs domain.RunStore, log *slog.Logger) (*agentStack, error) {
	toolsets, skills, closeTools, err := buildToolsets(ctx, cfg, svc, log)
	if err != nil {
		return nil, err
	}

	shared := multiagent.SharedModel{
		LLM:             provider,
		Model:           cfg.LLM.Model,
		Settings:        cfg.Model,
		ToolTimeout:     cfg.Agent.ToolTimeout,
		MaxToolRetries:  cfg.Agent.MaxToolRetries,
		MaxIterations:   cfg.Agent.MaxIterations,
		ErrorClassifier: usecase.NewErrorClassifier(),
		Bus:             bus,
	}
	registry, err := multiagent.BuildRegistry(svc, toolsets, shared, cfg.Agent.Prompts, log)
	if err != nil {
		closeTools()
		return nil, fmt.Errorf("specialists: %w", err)
	}
	broker := multiagent.NewBroker(registry, multiagent.BrokerConfig{
		From:          multiagent.SupervisorName(svc.Title),
		MaxConcurrent: cfg.Agent.MaxConcurrentDelegations,
	}, bus, log)
	delegations, err := tool.NewDelegationRegistry("delegations", svc.KnownTags(), broker, log)
	if err != nil {
		closeTools()
		return nil, fmt.Errorf("delegations: %w", err)
	}

	sup := multiagent.NewSupervisor(multiagent.SupervisorConfig{
		Service:     svc,
		Prompt:      cfg.Agent.SupervisorPrompt,
		Delegations: delegations,
		Shared:      shared,
		Limits: domain.UsageLimits{
			RequestLimit:     cfg.Agent.RequestLimit,
			TotalTokensLimit: cfg.Agent.TotalTokensLimit,
		},
		Stream: true,
		Store:  runs,
		Logger: log,
	})
	sessions := usecase.NewSessionManager(cfg.Agent.SessionDir)

	return &agentStack{
		supervisor:    sup,
		registry:      registry,
		conversations: multiagent.NewConversations(sup, sessions, log),
		sessions:      sessions,
		skills:        skills,
		close:         closeTools,
	}, nil
}

// buildToolsets returns the specialists' toolsets: external MCP servers when
// configured, otherwise the in-process operation registry, plus the skills
// toolset when a skills directory is set.
func buildToolsets(ctx context.Context, cfg *config.Config, svc domain.Service, log *slog.Logger) ([]domain.Toolset, []domain.Skill, func(), error) {
	var (
		toolsets []domain.Toolset
		closeFn  = func() {}
	)

	var servers []tool.MCPServerSpec
	switch {
	case cfg.MCP.URL != "":
		servers = []tool.MCPServerSpec{tool.MCPServerFromURL(cfg.MCP.URL)}
	case cfg.MCP.ConfigPath != "":
		specs, err := tool.LoadMCPConfig(cfg.MCP.ConfigPath)
		if err != nil {
			return nil, nil, nil, err
		}
		servers = specs
	}

	if len(servers) > 0 {
		// Servers are dialed when a run first lists tools.
		bridge := tool.NewMCPBridge(servers, log)
		toolsets = append(toolsets, bridge.Toolsets()...)
		closeFn = bridge.Close
	} else {
		reg, err := tool.NewServiceRegistry(svc, connFor(cfg, svc.Name), arr.NewInvoker(arr.NewPool(log), log), log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("tools: %w", err)
		}
		toolsets = append(toolsets, reg)
	}

	var skills []domain.Skill
	if cfg.Skills.Dir != "" {
		provider := skill.NewFileSkillProvider(cfg.Skills.Dir)
		loaded, err := provider.Load(ctx)
		if err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("skills: %w", err)
		}
		skills = loaded
		toolsets = append(toolsets, skill.NewToolset(provider, log))
	}
	return toolsets, skills, closeFn, nil
}

func schedulePrompts(cfg []config.ScheduleConfig) []schedule.Prompt {
	out := make([]schedule.Prompt, len(cfg))
	for i, s := range cfg {
		out[i] = schedule.Prompt{Name: s.Name, Schedule: s.Schedule, Prompt: s.Prompt}
	}
	return out
}

func runAgent(parent context.Context, cfg *config.Config) error {
	svc, err := resolveService(cfg)
	if err != nil {
		return err
	}

	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logCloser()
	log = logger.WithService(log, svc.Name)

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracerShutdown, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	defer tracerShutdown(context.Background())

	provider, err := llm.NewProvider(cfg.LLM, cfg.Model, log)
	if err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	bus := eventbus.New(log)
	defer bus.Close()

	runs, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer runs.Close()

	stack, err := buildAgent(ctx, cfg, svc, provider, bus, runs, log)
	if err != nil {
		return err
	}
	defer stack.close()

	scheduler := schedule.NewScheduler(log)
	if err := schedule.AddPrompts(scheduler, stack.supervisor, schedulePrompts(cfg.Schedules), bus, log); err != nil {
		return fmt.Errorf("schedules: %w", err)
	}
	if err := scheduler.Start(ctx); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	defer scheduler.Stop()

	go reapSessions(ctx, stack.sessions, cfg.Agent.SessionTTL, log)

	gw := gateway.NewServer(gateway.Deps{
		Service:        svc,
		Conversations:  stack.conversations,
		Registry:       stack.registry,
		Store:          runs,
		Bus:            bus,
		Skills:         stack.skills,
		Tokens:         tokenizer.New("cl100k_base", log),
		PruneMaxTokens: cfg.Agent.PruneMaxTokens,
		Version:        version,
		Metrics:        cfg.Metrics.Enabled,
		Logger:         log,
	}, cfg.Gateway)

	log.Info("arr agent starting",
		"supervisor", stack.supervisor.Name(),
		"specialists", len(stack.registry.List(ctx)),
		"provider", provider.Name(),
		"model", cfg.LLM.Model,
		"schedules", len(cfg.Schedules),
	)

	addr := net.JoinHostPort(cfg.Gateway.Host, strconv.Itoa(cfg.Gateway.Port))
	if err := gw.Start(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func reapSessions(ctx context.Context, sessions *usecase.SessionManager, ttl time.Duration, log *slog.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(sessionReapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.ReapStaleSessions(ttl); n > 0 {
				log.Debug("reaped stale sessions", "count", n)
			}
		}
	}
}
