package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the semantic version of the CLI. It can be overridden at build
// time via -ldflags.
var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gild version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gild %s\n", version)
	},
}
