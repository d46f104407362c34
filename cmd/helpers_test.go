package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newTestRootCmd returns a root command with sub attached, logging into a
// temporary file and writing output to the returned buffers.
func newTestRootCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	originalLogger := slog.Default()
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() {
		viper.Set(logFilenameKey, defaultLogFilename)
		slog.SetDefault(originalLogger)
	})

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

// withFormat sets the output format for the duration of the test.
func withFormat(t *testing.T, format string) {
	t.Helper()

	viper.Set(formatConfigKey, format)
	t.Cleanup(func() { viper.Set(formatConfigKey, defaultFormat) })
}
