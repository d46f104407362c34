package cmd

import (
	"github.com/spf13/cobra"

	"fixture.dev/pkg/fixture/internal/domain"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <signal>...",
		Short:   "Build signals and report their variant and payload",
		Long:    inspectLongDescription,
		Example: "  fixture inspect marker payload:42\n  fixture inspect -f yaml payload:-1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).Inspect(cmd.Context(), domain.InspectArgs{Signals: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
