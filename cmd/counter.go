package cmd

import (
	"github.com/spf13/cobra"
)

// counterCmd represents the counter command.
var counterCmd = newCounterCmd()

func newCounterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Create a counter and show its value",
		Long: `Create a fresh counter and report its value. The counter can only be
advanced from inside the sample package, so the value is always zero here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newWorkflow(cmd).Counter(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(counterCmd)
}
