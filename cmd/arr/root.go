package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

// usageError is reported as "Error: ..." instead of a fatal startup error.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type globalOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "arr",
		Short: "MCP server and multi-agent service for *arr media backends",
		Long: `arr exposes the API of one media backend (` + strings.Join(arr.Names(), ", ") + `)
as MCP tools, or runs a supervisor agent that delegates to one specialist
agent per API tag and serves it over A2A and AG-UI.

Configuration: defaults < YAML file (--config, ARR_CONFIG) < environment < flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $ARR_CONFIG)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &usageError{err} })

	root.AddCommand(
		newMCPCmd(opts),
		newAgentCmd(opts),
		newServicesCmd(),
		newDoctorCmd(opts),
		newRunsCmd(opts),
		newEncryptCmd(),
	)
	return root
}

// load reads the configuration file and environment. Flags are applied by
// the caller afterwards.
func (o *globalOptions) load() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv("ARR_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.debug {
		cfg.Logger.Level = "debug"
	}
	return cfg, nil
}

// resolveService validates the selected service and returns its catalog.
func resolveService(cfg *config.Config) (domain.Service, error) {
	if cfg.Service == "" {
		return domain.Service{}, &usageError{fmt.Errorf("--service is required (one of: %s)", strings.Join(arr.Names(), ", "))}
	}
	return arr.Lookup(cfg.Service)
}

// finalize checks the port and validates the merged configuration.
func finalize(cfg *config.Config, port int) error {
	if err := config.ValidatePort(port); err != nil {
		return &usageError{err}
	}
	return config.Validate(cfg)
}

func connFor(cfg *config.Config, service string) arr.Conn {
	sc := cfg.Connection(service)
	return arr.Conn{BaseURL: sc.BaseURL, APIKey: sc.APIKey, Verify: sc.Verify}
}
