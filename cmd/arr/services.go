package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"arr-mcp/internal/adapter/arr"
	"arr-mcp/internal/domain"
)

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List services, their tags and operation counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printServices(cmd.OutOrStdout(), arr.Services())
		},
	}
}

func printServices(w io.Writer, services []domain.Service) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tPORT\tTAG\tOPERATIONS")
	for _, svc := range services {
		counts := make(map[domain.Tag]int)
		for _, op := range svc.Operations {
			counts[op.Tag]++
		}
		for i, td := range svc.Tags {
			name, port := "", ""
			if i == 0 {
				name, port = svc.Name, fmt.Sprint(svc.DefaultPort)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", name, port, td.Tag, counts[td.Tag])
		}
	}
	return tw.Flush()
}
