// Package controller provides output adapters for displaying fixture results.
package controller

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "fixture.dev/pkg/fixture/internal/model"
)

// Format selects how results are rendered.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format. Unknown names fall back
// to FormatTable.
func ParseFormat(value string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatYAML:
		return FormatYAML
	default:
		return FormatTable
	}
}

// UI defines the interface for displaying inspected signals and counters.
// Implementations can use different output methods (simple text, TUI, YAML).
type UI interface {
	DisplayInspections(ctx context.Context, inspections []m.Inspection) error
	DisplayCounter(ctx context.Context, report m.CounterReport) error
}

// NewUI picks a UI for the given format. Table output goes to the TUI when
// stdout is a terminal.
func NewUI(cmd *cobra.Command, format Format, isTTY bool) UI {
	if format == FormatYAML {
		return NewYAMLUI(cmd)
	}

	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
