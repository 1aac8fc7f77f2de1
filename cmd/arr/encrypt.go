package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arr-mcp/internal/infra/config"
)

func newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt VALUE",
		Short: "Print an enc: value for a config secret (key from ARR_MASTER_KEY)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase := os.Getenv("ARR_MASTER_KEY")
			if passphrase == "" {
				return &usageError{errors.New("ARR_MASTER_KEY must be set")}
			}
			enc, err := config.EncryptValue(args[0], passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "enc:"+enc)
			return nil
		},
	}
}
