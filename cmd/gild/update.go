package main

import "github.com/spf13/cobra"

var updateCmd = &cobra.Command{
	Use:   "update <dir>",
	Short: "Promote a directory of produced output to become the golden files",
	Long: `Copy every regular file under <dir> to the golden file at the same
relative path under the golden root, overwriting existing golden files and
creating parent directories as needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	goldenFlag, err := cmd.Root().PersistentFlags().GetString("golden")
	if err != nil {
		return err
	}
	return replay(replayOptions{
		dir:        args[0],
		goldenFlag: goldenFlag,
		update:     true,
		out:        cmd.OutOrStdout(),
	})
}
