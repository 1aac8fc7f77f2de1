package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"arr-mcp/internal/adapter/store"
	"arr-mcp/internal/domain"
)

func newRunsCmd(g *globalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded agent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if cfg.Store.Path == "" {
				return &usageError{fmt.Errorf("no run store configured (store.path or ARR_STORE_PATH)")}
			}
			runs, err := store.Open(cfg.Store)
			if err != nil {
				return err
			}
			defer runs.Close()
			list, err := runs.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printRuns(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs")
	return cmd
}

func printRuns(w io.Writer, runs []domain.RunRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSERVICE\tCHANNEL\tSTATE\tREQUESTS\tTOKENS\tSTARTED\tDURATION")
	for _, r := range runs {
		dur := "-"
		if r.FinishedAt != nil {
			dur = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID, r.Service, r.Channel, r.State,
			r.Usage.Requests, r.Usage.TotalTokens,
			r.StartedAt.Format(time.RFC3339), dur)
	}
	return tw.Flush()
}
