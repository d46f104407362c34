package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "fixture.dev/pkg/fixture/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayInspections prints the inspections as a table.
func (s *SimpleUI) DisplayInspections(ctx context.Context, inspections []m.Inspection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderInspectionTable(inspections))
}

// DisplayCounter prints the counter value.
func (s *SimpleUI) DisplayCounter(ctx context.Context, report m.CounterReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("counter value: %d\n", report.Value)
}

func renderInspectionTable(inspections []m.Inspection) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Input", "Variant", "Payload"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, inspection := range inspections {
		table.Append([]string{inspection.Input, string(inspection.Variant), payloadCell(inspection)})
	}

	table.SetFooter([]string{"", "Total", strconv.Itoa(len(inspections))})
	table.Render()

	return tableBuffer.String()
}

func payloadCell(inspection m.Inspection) string {
	if !inspection.HasPayload() {
		return "-"
	}

	return strconv.Itoa(*inspection.Payload)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
