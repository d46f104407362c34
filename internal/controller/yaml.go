package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "fixture.dev/pkg/fixture/internal/model"
)

// YAMLUI implements UI by writing YAML documents to the command output.
type YAMLUI struct {
	cmd *cobra.Command
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

// DisplayInspections writes the inspections as a YAML sequence.
func (y *YAMLUI) DisplayInspections(ctx context.Context, inspections []m.Inspection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if inspections == nil {
		inspections = []m.Inspection{}
	}

	return y.encode(map[string][]m.Inspection{"signals": inspections})
}

// DisplayCounter writes the counter report as a YAML mapping.
func (y *YAMLUI) DisplayCounter(ctx context.Context, report m.CounterReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(map[string]m.CounterReport{"counter": report})
}

func (y *YAMLUI) encode(v interface{}) error {
	encoder := yaml.NewEncoder(y.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return encoder.Close()
}
