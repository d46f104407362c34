package controller

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fixture.dev/pkg/fixture/internal/model"
)

func TestTUI_DisplayInspections_ShortList(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	err := ui.DisplayInspections(context.Background(), []m.Inspection{
		{Input: "marker", Variant: m.VariantMarker},
		{Input: "payload:3", Variant: m.VariantPayload, Payload: intPtr(3)},
	})
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "Signals (2)")
	assert.Contains(t, got, "payload:3")
	assert.Contains(t, got, "marker")
}

func TestTUI_DisplayCounter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTUI(&buf).DisplayCounter(context.Background(), m.CounterReport{Value: 0}))
	assert.Contains(t, buf.String(), "Counter")
	assert.Contains(t, buf.String(), "0")
}

func TestTUI_NeedsPagination(t *testing.T) {
	inspections := make([]m.Inspection, 0, 20)
	for i := 0; i < 20; i++ {
		inspections = append(inspections, m.Inspection{
			Input:   "payload:" + strconv.Itoa(i),
			Variant: m.VariantPayload,
			Payload: intPtr(i),
		})
	}

	body := renderInspectionLines(inspections)

	assert.False(t, (&TUI{height: 0}).needsPagination(body), "unknown height never pages")
	assert.False(t, (&TUI{height: 40}).needsPagination(body))
	assert.True(t, (&TUI{height: 10}).needsPagination(body))
}

func TestPagerModel_Update(t *testing.T) {
	model := newPagerModel("title", "a\nb\nc\nd\ne\nf", 40, 5)

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Nil(t, cmd)

	pm := updated.(pagerModel)
	assert.Equal(t, 80, pm.viewport.Width)
	assert.Equal(t, 10-pagerChromeHeight, pm.viewport.Height)
	assert.Contains(t, pm.View(), "title")

	updated, cmd = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.(pagerModel).View())
}

func TestPagerModel_TinyWindow(t *testing.T) {
	model := newPagerModel("title", "body", 10, 1)
	assert.Equal(t, 1, model.viewport.Height)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	assert.Equal(t, 1, updated.(pagerModel).viewport.Height)
}
