package domain

import (
	"context"
	"fmt"
	"log/slog"

	"fixture.dev/pkg/fixture/internal/controller"
	m "fixture.dev/pkg/fixture/internal/model"
	"fixture.dev/pkg/fixture/pkg/sample"
)

// InspectArgs contains the arguments for inspecting signals.
type InspectArgs struct {
	Signals []string
}

// Workflow drives the fixture operations exposed on the command line.
type Workflow interface {
	Inspect(ctx context.Context, args InspectArgs) error
	Counter(ctx context.Context) error
}

type workflow struct {
	controller.UI
}

// NewWorkflow creates a new Workflow that reports through ui.
func NewWorkflow(ui controller.UI) Workflow {
	return &workflow{UI: ui}
}

// Inspect parses every signal first and displays nothing if any of them is
// invalid.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("Inspecting signals", "count", len(args.Signals))

	inspections := make([]m.Inspection, 0, len(args.Signals))

	for i, text := range args.Signals {
		signal, err := ParseSignal(text)
		if err != nil {
			slog.Warn("Failed to parse signal", "index", i, "input", text, "error", err)
			return fmt.Errorf("parse signal %d: %w", i, err)
		}

		inspection := Inspect(text, signal)
		slog.Debug("Inspected signal", "input", text, "variant", inspection.Variant)

		inspections = append(inspections, inspection)
	}

	if err := w.DisplayInspections(ctx, inspections); err != nil {
		return fmt.Errorf("display inspections: %w", err)
	}

	return nil
}

// Counter creates a fresh counter and displays its value.
func (w *workflow) Counter(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	counter := sample.NewCounter()
	slog.Debug("Created counter", "value", counter.Value())

	if err := w.DisplayCounter(ctx, m.CounterReport{Value: counter.Value()}); err != nil {
		return fmt.Errorf("display counter: %w", err)
	}

	return nil
}
