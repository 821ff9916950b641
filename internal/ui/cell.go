package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablekit/internal/tablestate"
	"tablekit/internal/ui/textutil"
)

// Sort indicator glyphs.
const (
	GlyphSortAsc      = "▲"
	GlyphSortDesc     = "▼"
	GlyphSortUnsorted = "↕"
)

// SortHeader renders a column title in header style with a sort indicator.
// Columns that cannot sort show only the title.
func SortHeader(title string, dir tablestate.SortDirection, canSort bool) string {
	title = strings.ToUpper(title)
	if !canSort {
		return title
	}
	glyph := GlyphSortUnsorted
	switch dir {
	case tablestate.Ascending:
		glyph = GlyphSortAsc
	case tablestate.Descending:
		glyph = GlyphSortDesc
	}
	return title + " " + glyph
}

// CellVariant is the text treatment of a data cell.
type CellVariant int

const (
	CellDefault CellVariant = iota
	CellNumeric
	CellEmphasized
	CellMuted
)

// CellOptions configures DataCell.
type CellOptions struct {
	Align   lipgloss.Position
	Variant CellVariant
}

// DataCell styles content for its variant and fits it to width columns.
// Content wider than the cell is truncated with an ellipsis.
func DataCell(content string, width int, opts CellOptions) string {
	switch opts.Variant {
	case CellNumeric:
		if opts.Align == lipgloss.Left {
			opts.Align = lipgloss.Right
		}
	case CellEmphasized:
		content = lipgloss.NewStyle().Bold(true).Render(content)
	case CellMuted:
		content = Styles.Muted.Render(content)
	}
	return textutil.Fit(content, width, alignOf(opts.Align))
}

func alignOf(p lipgloss.Position) textutil.Align {
	switch {
	case p >= lipgloss.Right:
		return textutil.AlignRight
	case p > lipgloss.Left:
		return textutil.AlignCenter
	default:
		return textutil.AlignLeft
	}
}

// Checkbox renders a selection checkbox; indeterminate wins over unchecked.
func Checkbox(checked, indeterminate bool) string {
	switch {
	case checked:
		return "[x]"
	case indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// ProgressBar renders pct (0-100) as a bar of the given width followed by the percentage.
func ProgressBar(pct, width int) string {
	pct = max(0, min(pct, 100))
	if width <= 0 {
		width = 10
	}
	filled := pct * width / 100
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(strings.Repeat("█", filled)) +
		Styles.Skeleton.Render(strings.Repeat("░", width-filled))
	return bar + " " + Styles.Muted.Render(fmt.Sprintf("%d%%", pct))
}
