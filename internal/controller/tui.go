package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "fixture.dev/pkg/fixture/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	payloadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	// faint gray for missing payloads
	emptyStyle  = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("240"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using lipgloss styling, paging long output with Bubble Tea.
type TUI struct {
	output io.Writer
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	tui := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			tui.width = width
			tui.height = height
		}
	}

	return tui
}

// DisplayInspections shows the inspections, opening a pager when they do not
// fit on screen.
func (p *TUI) DisplayInspections(ctx context.Context, inspections []m.Inspection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := titleStyle.Render(fmt.Sprintf("Signals (%d)", len(inspections)))
	body := renderInspectionLines(inspections)

	if !p.needsPagination(body) {
		_, err := fmt.Fprintf(p.output, "%s\n\n%s\n", title, body)
		return err
	}

	model := newPagerModel(title, body, p.width, p.height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCounter shows the counter value.
func (p *TUI) DisplayCounter(ctx context.Context, report m.CounterReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.output, "%s %s\n", titleStyle.Render("Counter"), payloadStyle.Render(strconv.Itoa(report.Value)))

	return err
}

func (p *TUI) needsPagination(body string) bool {
	if p.height <= 0 {
		return false
	}

	return lipgloss.Height(body)+pagerChromeHeight > p.height
}

func renderInspectionLines(inspections []m.Inspection) string {
	lines := make([]string, 0, len(inspections))

	for _, inspection := range inspections {
		var variant, payload string

		switch inspection.Variant {
		case m.VariantPayload:
			variant = payloadStyle.Render(string(inspection.Variant))
		default:
			variant = markerStyle.Render(string(inspection.Variant))
		}

		if inspection.HasPayload() {
			payload = strconv.Itoa(*inspection.Payload)
		} else {
			payload = emptyStyle.Render("-")
		}

		lines = append(lines, fmt.Sprintf("  %-20s %s %s", inspection.Input, variant, payload))
	}

	return strings.Join(lines, "\n")
}

// title, blank line and footer.
const pagerChromeHeight = 3

// pagerModel is the Bubble Tea model for scrolling through long output.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, body string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChromeHeight, 1))
	vp.SetContent(body)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChromeHeight, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100))

	return pm.title + "\n\n" + pm.viewport.View() + "\n" + footer
}
