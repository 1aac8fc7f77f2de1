package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/adapter/mcpserver"
	"arr-mcp/internal/adapter/mcpserver/auth"
	"arr-mcp/internal/adapter/mcpserver/policy"
	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/infra/config"
	"arr-mcp/internal/infra/logger"
	"arr-mcp/internal/infra/tracer"
)

type mcpOptions struct {
	service   string
	transport string
	host      string
	port      int

	authType         string
	jwksURI          string
	issuer           string
	audience         string
	requiredScopes   []string
	enableDelegation bool

	eunomiaType   string
	eunomiaPolicy string
	eunomiaRemote string
}

func newMCPCmd(g *globalOptions) *cobra.Command {
	o := &mcpOptions{}
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the operations of one service as MCP tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			o.apply(cmd, cfg)
			if err := finalize(cfg, cfg.MCP.Port); err != nil {
				return err
			}
			return runMCP(cmd.Context(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.service, "service", "", "backend service to expose")
	f.StringVar(&o.transport, "transport", "stdio", "transport: stdio, sse or streamable-http")
	f.StringVar(&o.host, "host", "0.0.0.0", "listen host for HTTP transports")
	f.IntVar(&o.port, "port", config.DefaultMCPPort, "listen port for HTTP transports")
	f.StringVar(&o.authType, "auth-type", "none", "auth: none, static, jwt, oauth-proxy, oidc-proxy, remote-oauth")
	f.StringVar(&o.jwksURI, "token-jwks-uri", "", "JWKS URI for token verification")
	f.StringVar(&o.issuer, "token-issuer", "", "expected token issuer")
	f.StringVar(&o.audience, "token-audience", "", "expected token audience")
	f.StringSliceVar(&o.requiredScopes, "required-scopes", nil, "scopes every token must carry")
	f.BoolVar(&o.enableDelegation, "enable-delegation", false, "exchange caller tokens for backend tokens (oidc-proxy only)")
	f.StringVar(&o.eunomiaType, "eunomia-type", "none", "tool policy: none, embedded or remote")
	f.StringVar(&o.eunomiaPolicy, "eunomia-policy-file", "mcp_policies.json", "embedded policy file")
	f.StringVar(&o.eunomiaRemote, "eunomia-remote-url", "", "remote policy endpoint")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (o *mcpOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("service") {
		cfg.Service = o.service
	}
	if f.Changed("transport") {
		cfg.MCP.Transport = o.transport
	}
	if f.Changed("host") {
		cfg.MCP.Host = o.host
	}
	if f.Changed("port") {
		cfg.MCP.Port = o.port
	}
	if f.Changed("auth-type") {
		cfg.Auth.Type = o.authType
	}
	if f.Changed("token-jwks-uri") {
		cfg.Auth.JWKSURI = o.jwksURI
	}
	if f.Changed("token-issuer") {
		cfg.Auth.Issuer = o.issuer
	}
	if f.Changed("token-audience") {
		cfg.Auth.Audience = o.audience
	}
	if f.Changed("required-scopes") {
		cfg.Auth.RequiredScopes = o.requiredScopes
	}
	if f.Changed("enable-delegation") {
		cfg.Auth.Delegation.Enabled = o.enableDelegation
	}
	if f.Changed("eunomia-type") {
		cfg.Eunomia.Type = o.eunomiaType
	}
	if f.Changed("eunomia-policy-file") {
		cfg.Eunomia.PolicyFile = o.eunomiaPolicy
	}
	if f.Changed("eunomia-remote-url") {
		cfg.Eunomia.RemoteURL = o.eunomiaRemote
	}
}

func runMCP(parent context.Context, cfg *config.Config) error {
	svc, err := resolveService(cfg)
	if err != nil {
		return err
	}

	logCfg := cfg.Logger
	if cfg.MCP.Transport == mcpserver.TransportStdio {
		logCfg = logger.ForStdio(logCfg)
	}
	log, logCloser, err := logger.New(logCfg)
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

	pool := arr.NewPool(log)
	tools, err := tool.NewServiceRegistry(svc, connFor(cfg, svc.Name), arr.NewInvoker(pool, log), log)
	if err != nil {
		return fmt.Errorf("tools: %w", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	authSetup, err := auth.New(ctx, cfg.Auth, httpClient, log)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	evaluator, err := policy.New(cfg.Eunomia, httpClient, log)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}

	srv, err := mcpserver.New(ctx, mcpserver.Options{
		Service: svc,
		Tools:   tools,
		Auth:    authSetup,
		Policy:  evaluator,
		Version: version,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	log.Info("arr mcp starting",
		"transport", cfg.MCP.Transport,
		"tools", len(srv.ToolNames()),
		"auth", authSetup.Type,
		"policy", cfg.Eunomia.Type,
	)

	if cfg.MCP.Transport == mcpserver.TransportStdio {
		return srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	}
	addr := net.JoinHostPort(cfg.MCP.Host, strconv.Itoa(cfg.MCP.Port))
	return srv.ListenAndServe(ctx, cfg.MCP.Transport, addr, func(bound string) {
		log.Info("mcp server listening", "addr", bound)
	})
}
