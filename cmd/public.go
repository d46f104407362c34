package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fixture.dev/pkg/fixture/pkg/sample"
)

// publicCmd represents the public command.
var publicCmd = newPublicCmd()

func newPublicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public",
		Short: "Call the exported printing function",
		Long:  `Call sample.PublicFunction, which prints "public" to standard output.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			slog.Debug("Calling public function")
			sample.PublicFunction()
		},
	}
}

func init() {
	rootCmd.AddCommand(publicCmd)
}
