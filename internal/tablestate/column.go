package tablestate

import "github.com/charmbracelet/lipgloss"

// SortDirection is the sort state of a single column.
type SortDirection int

const (
	Unsorted SortDirection = iota
	Ascending
	Descending
)

// HeaderContext is what a header renderer sees.
type HeaderContext[T any] struct {
	Column    *Column[T]
	Sorted    SortDirection
	CanSort   bool
	AllPage   bool // every row on the current page is selected
	SomePage  bool // at least one, but not every, page row is selected
	PageCount int
}

// CellContext is what a cell renderer sees for one row/column intersection.
type CellContext[T any] struct {
	Row      T
	RowID    string
	Index    int // position within the current page
	Column   *Column[T]
	Value    any
	Selected bool
}

// HeaderRenderer produces the header content of a column.
type HeaderRenderer[T any] interface {
	RenderHeader(ctx HeaderContext[T]) string
}

// CellRenderer produces the content of a single cell.
type CellRenderer[T any] interface {
	RenderCell(ctx CellContext[T]) string
}

// HeaderFunc adapts an ordinary function to HeaderRenderer.
type HeaderFunc[T any] func(ctx HeaderContext[T]) string

// RenderHeader calls f(ctx).
func (f HeaderFunc[T]) RenderHeader(ctx HeaderContext[T]) string { return f(ctx) }

// CellFunc adapts an ordinary function to CellRenderer.
type CellFunc[T any] func(ctx CellContext[T]) string

// RenderCell calls f(ctx).
func (f CellFunc[T]) RenderCell(ctx CellContext[T]) string { return f(ctx) }

// FilterFunc reports whether a row's column value matches a filter value.
type FilterFunc func(value any, filter string) bool

// Column describes one column of the table. Only ID is required.
type Column[T any] struct {
	ID       string
	Title    string
	Accessor func(row T) any

	// Header and Cell are optional; the table falls back to a sort header
	// and the formatted accessor value.
	Header HeaderRenderer[T]
	Cell   CellRenderer[T]

	// Sortable and Hideable default to true for columns with an accessor
	// when left nil. Display-only columns (no accessor) never sort.
	Sortable *bool
	Hideable *bool

	FilterFn FilterFunc

	Width int // 0 sizes the column from its header and content
	Align lipgloss.Position
}

// Value returns the accessor value for row, or nil for display-only columns.
func (c *Column[T]) Value(row T) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(row)
}

// CanSort reports whether the column takes part in sorting.
func (c *Column[T]) CanSort() bool {
	if c.Accessor == nil {
		return false
	}
	return c.Sortable == nil || *c.Sortable
}

// CanHide reports whether the column may be hidden by the user.
func (c *Column[T]) CanHide() bool {
	if c.Hideable == nil {
		return c.Accessor != nil
	}
	return *c.Hideable
}

// CanFilter reports whether a column filter can be evaluated for this column.
func (c *Column[T]) CanFilter() bool {
	return c.Accessor != nil
}

// DisplayTitle is Title, or ID when no title was given.
func (c *Column[T]) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}
