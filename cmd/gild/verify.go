package main

import "github.com/spf13/cobra"

var verifyCmd = &cobra.Command{
	Use:   "verify <dir>",
	Short: "Compare a directory of produced output against its golden files",
	Long: `Compare every regular file under <dir> against the golden file at the
same relative path under the golden root. The golden root comes from the
--golden flag or from the gild.toml manifest found by walking up from <dir>.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	goldenFlag, err := cmd.Root().PersistentFlags().GetString("golden")
	if err != nil {
		return err
	}
	return replay(replayOptions{
		dir:        args[0],
		goldenFlag: goldenFlag,
		update:     false,
		out:        cmd.OutOrStdout(),
	})
}
