package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"tablekit/internal/tablestate"
)

func TestSortHeader(t *testing.T) {
	assert.Equal(t, "NAME ↕", SortHeader("Name", tablestate.Unsorted, true))
	assert.Equal(t, "NAME ▲", SortHeader("Name", tablestate.Ascending, true))
	assert.Equal(t, "NAME ▼", SortHeader("Name", tablestate.Descending, true))
	assert.Equal(t, "ACTIONS", SortHeader("Actions", tablestate.Ascending, false))
}

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[x]", Checkbox(true, false))
	assert.Equal(t, "[x]", Checkbox(true, true))
	assert.Equal(t, "[-]", Checkbox(false, true))
	assert.Equal(t, "[ ]", Checkbox(false, false))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct    int
		filled int
		label  string
	}{
		{0, 0, "0%"},
		{50, 5, "50%"},
		{85, 8, "85%"},
		{100, 10, "100%"},
		{150, 10, "100%"},
		{-20, 0, "0%"},
	}
	for _, tt := range tests {
		out := plain(ProgressBar(tt.pct, 10))
		assert.Equal(t, tt.filled, strings.Count(out, "█"), "pct %d", tt.pct)
		assert.Equal(t, 10-tt.filled, strings.Count(out, "░"), "pct %d", tt.pct)
		assert.True(t, strings.HasSuffix(out, " "+tt.label), out)
	}
}

func TestDataCell(t *testing.T) {
	assert.Equal(t, "ab   ", plain(DataCell("ab", 5, CellOptions{})))
	assert.Equal(t, "   42", plain(DataCell("42", 5, CellOptions{Variant: CellNumeric})))
	assert.Equal(t, " ab  ", plain(DataCell("ab", 5, CellOptions{Align: lipgloss.Center})))
	assert.Equal(t, "abcd…", plain(DataCell("abcdefgh", 5, CellOptions{})))
	assert.Equal(t, 5, lipgloss.Width(DataCell("hi", 5, CellOptions{Variant: CellEmphasized})))
	assert.Equal(t, 5, lipgloss.Width(DataCell("hi", 5, CellOptions{Variant: CellMuted})))
}
