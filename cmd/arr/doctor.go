package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/adapter/skill"
	"arr-mcp/internal/adapter/store"
	"arr-mcp/internal/adapter/tool"
	"arr-mcp/internal/infra/config"
)

// CheckStatus represents the result of a health check.
type CheckStatus string

const (
	StatusPass CheckStatus = "PASS"
	StatusWarn CheckStatus = "WARN"
	StatusFail CheckStatus = "FAIL"
)

// CheckResult holds the outcome of a single health check.
type CheckResult struct {
	Name    string
	Status  CheckStatus
	Message string
	Fix     string // optional fix suggestion
}

// Check is a named health check function.
type Check struct {
	Name string
	Fn   func(cfg *config.Config) CheckResult
}

const doctorTimeout = 10 * time.Second

func newDoctorCmd(g *globalOptions) *cobra.Command {
	var service string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check backend and inference connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := g.configPath
			if path == "" {
				path = os.Getenv("ARR_CONFIG")
			}
			cfg, cfgErr := g.load()
			if cmd.Flags().Changed("service") && cfg != nil {
				cfg.Service = service
			}
			return runDoctor(cmd.OutOrStdout(), doctorChecks(path, cfgErr), cfg)
		},
	}
	cmd.Flags().StringVar(&service, "service", "", "backend service to check")
	return cmd
}

func doctorChecks(cfgPath string, cfgErr error) []Check {
	return []Check{
		{Name: "Config file", Fn: checkConfigFile(cfgPath, cfgErr)},
		{Name: "Service", Fn: checkService},
		{Name: "Backend", Fn: checkBackend},
		{Name: "Inference endpoint", Fn: checkLLMConnectivity},
		{Name: "Run store", Fn: checkStore},
		{Name: "Skills", Fn: checkSkills},
		{Name: "MCP servers", Fn: checkMCPConfig},
	}
}

// runDoctor executes checks and reports results to w.
func runDoctor(w io.Writer, checks []Check, cfg *config.Config) error {
	fmt.Fprintln(w, "arr doctor")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w)

	var pass, warn, fail int
	for _, check := range checks {
		result := check.Fn(cfg)
		result.Name = check.Name

		fmt.Fprintf(w, "  %s %s: %s\n", statusIcon(result.Status), result.Name, result.Message)
		if result.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", result.Fix)
		}

		switch result.Status {
		case StatusPass:
			pass++
		case StatusWarn:
			warn++
		case StatusFail:
			fail++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "Results: %d passed, %d warnings, %d failed\n", pass, warn, fail)

	if fail > 0 {
		return fmt.Errorf("%d check(s) failed", fail)
	}
	return nil
}

func statusIcon(s CheckStatus) string {
	switch s {
	case StatusPass:
		return "[PASS]"
	case StatusWarn:
		return "[WARN]"
	case StatusFail:
		return "[FAIL]"
	default:
		return "[????]"
	}
}

func notLoaded() CheckResult {
	return CheckResult{Status: StatusFail, Message: "cannot check, config not loaded"}
}

// checkConfigFile reports whether the config file loaded. Running without a
// file is fine: defaults and the environment apply.
func checkConfigFile(cfgPath string, cfgErr error) func(*config.Config) CheckResult {
	return func(_ *config.Config) CheckResult {
		if cfgErr != nil {
			return CheckResult{
				Status:  StatusFail,
				Message: fmt.Sprintf("config error: %v", cfgErr),
				Fix:     "Check the YAML syntax and file permissions (0600 or 0644)",
			}
		}
		if cfgPath == "" {
			return CheckResult{Status: StatusPass, Message: "no config file, using defaults and environment"}
		}
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			return CheckResult{
				Status:  StatusWarn,
				Message: fmt.Sprintf("config file not found at %s, using defaults and environment", cfgPath),
			}
		}
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("config loaded from %s", cfgPath)}
	}
}

func checkService(cfg *config.Config) CheckResult {
	if cfg == nil {
		return notLoaded()
	}
	if cfg.Service == "" {
		return CheckResult{
			Status:  StatusFail,
			Message: "no service selected",
			Fix:     "Pass --service or set ARR_SERVICE (one of: " + strings.Join(arr.Names(), ", ") + ")",
		}
	}
	svc, err := arr.Lookup(cfg.Service)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %d operations across %d tags", svc.Title, len(svc.Operations), len(svc.Tags)),
	}
}

// checkBackend sends one authenticated request to the service base URL.
func checkBackend(cfg *config.Config) CheckResult {
	if cfg == nil {
		return notLoaded()
	}
	if cfg.Service == "" {
		return CheckResult{Status: StatusWarn, Message: "skipped, no service selected"}
	}
	sc := cfg.Connection(cfg.Service)
	prefix := strings.ToUpper(cfg.Service)
	if sc.APIKey == "" {
		return CheckResult{
			Status:  StatusWarn,
			Message: fmt.Sprintf("no API key for %s", cfg.Service),
			Fix:     fmt.Sprintf("Set %s_API_KEY", prefix),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(sc.BaseURL, "/")+"/", nil)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("bad base URL: %v", err)}
	}
	req.Header.Set("X-Api-Key", sc.APIKey)

	start := time.Now()
	resp, err := probeClient(sc.Verify).Do(req)
	latency := time.Since(start)
	if err != nil {
		return CheckResult{
			Status:  StatusFail,
			Message: fmt.Sprintf("cannot reach %s: %v", sc.BaseURL, err),
			Fix:     fmt.Sprintf("Check %s_BASE_URL and that the backend is running", prefix),
		}
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return CheckResult{
			Status:  StatusFail,
			Message: fmt.Sprintf("%s rejected the API key (%d)", sc.BaseURL, resp.StatusCode),
			Fix:     fmt.Sprintf("Check %s_API_KEY", prefix),
		}
	case resp.StatusCode >= 500:
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%s answered %d", sc.BaseURL, resp.StatusCode)}
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("%s reachable (latency: %dms)", sc.BaseURL, latency.Milliseconds()),
	}
}

// checkLLMConnectivity tests if the inference endpoint is reachable.
func checkLLMConnectivity(cfg *config.Config) CheckResult {
	if cfg == nil {
		return notLoaded()
	}
	endpoint := providerEndpoint(cfg.LLM)
	if endpoint == "" {
		return CheckResult{
			Status:  StatusWarn,
			Message: fmt.Sprintf("no known endpoint for provider %q, skipping connectivity test", cfg.LLM.Provider),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	if cfg.LLM.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.LLM.APIKey)
	}

	start := time.Now()
	resp, err := probeClient(cfg.LLM.SSLVerify).Do(req)
	latency := time.Since(start)
	if err != nil {
		return CheckResult{
			Status:  StatusFail,
			Message: fmt.Sprintf("cannot reach %s: %v", endpoint, err),
			Fix:     "Check LLM_BASE_URL, or pass --insecure for self-signed certificates",
		}
	}
	resp.Body.Close()

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("%s reachable (latency: %dms)", cfg.LLM.Provider, latency.Milliseconds()),
	}
}

// providerEndpoint returns a URL to probe for the configured provider.
func providerEndpoint(c config.LLMConfig) string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/") + "/models"
	}
	switch c.Provider {
	case "openai", "":
		return "https://api.openai.com/v1/models"
	case "anthropic":
		return "https://api.anthropic.com/v1/models"
	case "google":
		return "https://generativelanguage.googleapis.com/v1beta/models"
	case "huggingface":
		return "https://router.huggingface.co/v1/models"
	default:
		return ""
	}
}

func checkStore(cfg *config.Config) CheckResult {
	if cfg == nil {
		return notLoaded()
	}
	if cfg.Store.Path == "" {
		return CheckResult{Status: StatusPass, Message: "runs kept in memory"}
	}
	runs, err := store.Open(cfg.Store)
	if err != nil {
		return CheckResult{
			Status:  StatusFail,
			Message: fmt.Sprintf("cannot open %s: %v", cfg.Store.Path, err),
			Fix:     "Check that the directory exists and is writable",
		}
	}
	runs.Close()
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("sqlite store at %s", cfg.Store.Path)}
}

func checkSkills(cfg *config.Config) CheckResult {
	if cfg == nil {
		return notLoaded()
	}
	if cfg.Skills.Dir == "" {
		return CheckResult{Status: StatusPass, Message: "no skills directory, default skill card"}
	}
	skills, err := skill.NewFileSkillProvider(cfg.Skills.Dir).Load(context.Background())
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error(), Fix: "Check SKILLS_DIRECTORY"}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d skill(s) in %s", len(skills), cfg.Skills.Dir)}
}

func checkMCPConfig(cfg *config.Config) CheckResult {
	if cfg == nil {
		return notLoaded()
	}
	switch {
	case cfg.MCP.URL != "":
		spec := tool.MCPServerFromURL(cfg.MCP.URL)
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s over %s", spec.URL, spec.Transport)}
	case cfg.MCP.ConfigPath != "":
		specs, err := tool.LoadMCPConfig(cfg.MCP.ConfigPath)
		if err != nil {
			return CheckResult{Status: StatusFail, Message: err.Error(), Fix: "Check the mcpServers JSON file"}
		}
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d server(s) in %s", len(specs), cfg.MCP.ConfigPath)}
	}
	return CheckResult{Status: StatusPass, Message: "using the built-in operation catalog"}
}

func probeClient(verify bool) *http.Client {
	return &http.Client{
		Timeout: doctorTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: !verify}, //nolint:gosec // user-controlled verify flag
		},
	}
}
