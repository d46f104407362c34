// Package cmd provides the root command and CLI setup for fixture.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fixture.dev/pkg/fixture/internal/controller"
	"fixture.dev/pkg/fixture/internal/domain"
)

// logFileFlag overrides log.filename for this run.
var logFileFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// formatFlag selects table or yaml output.
var formatFlag string

func init() {
	configureRootFlags(rootCmd)
}

const signalSyntaxHelp = `Signals are written as:
  - marker         the payload-less variant
  - payload:<int>  the variant carrying an integer, e.g. payload:-3`

const rootLongDescription = `Fixture drives a small sample package of basic Go constructs: a counter
that only its own package can advance, a closed two-variant signal type and
a pair of printing functions.

` + signalSyntaxHelp

const inspectLongDescription = `Parse each argument into a signal and report which variant it holds.

` + signalSyntaxHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "fixture",
		Short:        "Drive the sample fixture package",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().
		StringVarP(
			&formatFlag, formatFlagName, "f",
			viper.GetString(formatConfigKey),
			"output format: table or yaml",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds a workflow that writes to cmd's output in the configured format.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	format := controller.ParseFormat(viper.GetString(formatConfigKey))

	isTTY := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		isTTY = controller.IsTTY(f)
	}

	return domain.NewWorkflow(controller.NewUI(cmd, format, isTTY))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
