package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablekit/internal/tablestate"
	"tablekit/internal/ui/textutil"
)

// DefaultEmptyMessage is shown when no rows survive filtering.
const DefaultEmptyMessage = "No results found."

const (
	columnGap      = "  "
	maxAutoWidth   = 40
	minColumnWidth = 3
	skeletonGlyph  = "░"
	selectedMarker = "▌"
)

// TableBody renders the header row and the current page of an engine.
type TableBody[T any] struct {
	engine       *tablestate.Engine[T]
	emptyMessage string
	skeletonRows int
	headerStyle  lipgloss.Style
}

// NewTableBody creates a renderer over engine. skeletonRows is the number of
// placeholder rows drawn while loading.
func NewTableBody[T any](engine *tablestate.Engine[T], emptyMessage string, skeletonRows int) *TableBody[T] {
	if emptyMessage == "" {
		emptyMessage = DefaultEmptyMessage
	}
	return &TableBody[T]{
		engine:       engine,
		emptyMessage: emptyMessage,
		skeletonRows: skeletonRows,
		headerStyle:  Styles.Header,
	}
}

// SetHeaderStyle overrides the header row style.
func (b *TableBody[T]) SetHeaderStyle(s lipgloss.Style) { b.headerStyle = s }

// BodyState is the per-frame input of the renderer.
type BodyState struct {
	Loading   bool
	Focused   bool
	CursorRow int
	CursorCol int
}

// headerContent renders a column header. While loading it reads no rows.
func (b *TableBody[T]) headerContent(col *tablestate.Column[T], loading bool) string {
	e := b.engine
	ctx := tablestate.HeaderContext[T]{
		Column:  col,
		Sorted:  e.SortDirection(col.ID),
		CanSort: e.CanSort(col.ID),
	}
	if !loading {
		ctx.PageCount = e.PageCount()
	}
	if !loading && e.Options().RowSelection() {
		ctx.AllPage = e.IsAllPageRowsSelected()
		ctx.SomePage = e.IsSomePageRowsSelected()
	}
	if col.Header != nil {
		return col.Header.RenderHeader(ctx)
	}
	return SortHeader(col.DisplayTitle(), ctx.Sorted, ctx.CanSort)
}

func (b *TableBody[T]) cellContent(col *tablestate.Column[T], row tablestate.Row[T], index int) string {
	value := col.Value(row.Original)
	if col.Cell != nil {
		return col.Cell.RenderCell(tablestate.CellContext[T]{
			Row:      row.Original,
			RowID:    row.ID,
			Index:    index,
			Column:   col,
			Value:    value,
			Selected: b.engine.IsSelected(row.ID),
		})
	}
	return tablestate.FormatValue(value)
}

// widths sizes each visible column. Auto-sized columns fit their header and,
// unless loading, the cells of the current page.
func (b *TableBody[T]) widths(cols []*tablestate.Column[T], headers []string, cells [][]string, loading bool) []int {
	out := make([]int, len(cols))
	for i, col := range cols {
		if col.Width > 0 {
			out[i] = col.Width
			continue
		}
		w := textutil.VisualWidthStyled(headers[i])
		if loading {
			w = max(w, 8)
		}
		for _, row := range cells {
			w = max(w, textutil.VisualWidthStyled(row[i]))
		}
		out[i] = max(minColumnWidth, min(w, maxAutoWidth))
	}
	return out
}

func totalWidth(widths []int) int {
	total := textutil.VisualWidth(selectedMarker)
	for i, w := range widths {
		if i > 0 {
			total += len(columnGap)
		}
		total += w
	}
	return total
}

// Lines renders the table as lines: header, rule, then one line per body row.
func (b *TableBody[T]) Lines(st BodyState) []string {
	cols := b.engine.VisibleColumns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = b.headerContent(c, st.Loading)
	}

	var (
		rows  []tablestate.Row[T]
		cells [][]string
	)
	if !st.Loading {
		rows = b.engine.PageRows()
		cells = make([][]string, len(rows))
		for r, row := range rows {
			cells[r] = make([]string, len(cols))
			for c, col := range cols {
				cells[r][c] = b.cellContent(col, row, r)
			}
		}
	}
	widths := b.widths(cols, headers, cells, st.Loading)

	width := totalWidth(widths)
	empty := !st.Loading && len(rows) == 0
	if empty {
		// The empty row spans the table and always shows the whole message.
		width = max(width, textutil.VisualWidth(b.emptyMessage))
	}

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, b.headerLine(cols, headers, widths, st))
	lines = append(lines, Styles.Separator.Render(strings.Repeat("─", width)))

	switch {
	case st.Loading:
		for range b.skeletonRows {
			lines = append(lines, skeletonLine(widths))
		}
	case empty:
		lines = append(lines, Styles.Empty.Render(textutil.Fit(b.emptyMessage, width, textutil.AlignCenter)))
	default:
		for r, row := range rows {
			lines = append(lines, b.rowLine(cols, cells[r], widths, row, r, st))
		}
	}
	return lines
}

// View renders the table body as a single string.
func (b *TableBody[T]) View(st BodyState) string {
	return strings.Join(b.Lines(st), "\n")
}

func (b *TableBody[T]) headerLine(cols []*tablestate.Column[T], headers []string, widths []int, st BodyState) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := DataCell(headers[i], widths[i], CellOptions{Align: col.Align})
		if st.Focused && i == st.CursorCol {
			parts[i] = Styles.Focused.Render(cell)
		} else {
			parts[i] = b.headerStyle.Render(cell)
		}
	}
	return " " + strings.Join(parts, columnGap)
}

func (b *TableBody[T]) rowLine(cols []*tablestate.Column[T], cells []string, widths []int, row tablestate.Row[T], index int, st BodyState) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = DataCell(cells[i], widths[i], CellOptions{Align: col.Align})
	}
	line := strings.Join(parts, columnGap)
	marker := " "
	selected := b.engine.IsSelected(row.ID)
	if selected {
		marker = Styles.Selected.Render(selectedMarker)
	}
	switch {
	case st.Focused && index == st.CursorRow:
		line = Styles.Cursor.Render(line)
	case selected:
		line = Styles.Selected.Render(line)
	}
	return marker + line
}

func skeletonLine(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = Styles.Skeleton.Render(strings.Repeat(skeletonGlyph, w))
	}
	return " " + strings.Join(parts, columnGap)
}
