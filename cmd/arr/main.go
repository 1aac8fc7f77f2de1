// Command arr serves one *arr backend as an MCP server or as a
// multi-agent A2A / AG-UI service.
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", ue.err)
		} else {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
		os.Exit(1)
	}
}
