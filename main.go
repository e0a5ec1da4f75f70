package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/no-preserve-root/quanteq/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "quanteq [subcommand]",
	Short:        "quanteq\n equality-query playground for quantifier instantiation",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.SolveCmd)
}
