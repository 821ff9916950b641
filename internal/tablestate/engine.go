package tablestate

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrDuplicateColumn is returned when two columns share an ID.
var ErrDuplicateColumn = errors.New("duplicate column id")

// ErrMissingColumnID is returned for a column without an ID.
var ErrMissingColumnID = errors.New("column id is required")

// Row is one row of the dataset together with its identity.
type Row[T any] struct {
	ID       string
	Index    int // position in the dataset passed to SetData
	Original T
}

// Config configures an Engine.
type Config[T any] struct {
	Columns []Column[T]
	Options Options
	Initial InitialState

	// RowID derives a stable identity for a row. Without it, rows are
	// identified by their position in the dataset.
	RowID func(row T) string

	// OnChange is called with a copy of the state after every mutation.
	OnChange func(State)
}

// Engine owns a table's view state and derives the filtered, sorted and
// paginated rows from it. It is not safe for concurrent use; it belongs to
// the UI goroutine.
type Engine[T any] struct {
	columns  []*Column[T]
	byID     map[string]*Column[T]
	opts     Options
	rowID    func(T) string
	onChange func(State)
	cmp      *comparator

	data  []T
	state State

	// Derived rows, rebuilt lazily after a mutation.
	stale    bool
	core     []Row[T]
	filtered []Row[T]
	sorted   []Row[T]
}

// New validates the column model and builds an engine seeded with cfg.Initial.
func New[T any](cfg Config[T]) (*Engine[T], error) {
	e := &Engine[T]{
		byID:     make(map[string]*Column[T], len(cfg.Columns)),
		opts:     cfg.Options,
		rowID:    cfg.RowID,
		onChange: cfg.OnChange,
		cmp:      newComparator(),
		stale:    true,
	}
	for i := range cfg.Columns {
		col := cfg.Columns[i]
		if col.ID == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrMissingColumnID)
		}
		if _, dup := e.byID[col.ID]; dup {
			return nil, fmt.Errorf("column %q: %w", col.ID, ErrDuplicateColumn)
		}
		e.columns = append(e.columns, &col)
		e.byID[col.ID] = &col
	}
	e.state = e.initialState(cfg.Initial)
	return e, nil
}

func (e *Engine[T]) initialState(in InitialState) State {
	st := State{
		Filters:    map[string]string{},
		Selection:  map[string]bool{},
		Visibility: map[string]bool{},
		Pagination: Pagination{PageSize: in.PageSize},
	}
	if st.Pagination.PageSize <= 0 {
		st.Pagination.PageSize = DefaultPageSize
	}
	if e.opts.Sorting() {
		for _, s := range in.Sorting {
			if col, ok := e.byID[s.ColumnID]; ok && col.CanSort() && !slices.ContainsFunc(st.Sorting, sameColumn(s.ColumnID)) {
				st.Sorting = append(st.Sorting, s)
			}
		}
	}
	if e.opts.Filtering() {
		for id, v := range in.Filters {
			if col, ok := e.byID[id]; ok && col.CanFilter() && v != "" {
				st.Filters[id] = v
			}
		}
	}
	if e.opts.RowSelection() {
		for id, v := range in.Selection {
			if v {
				st.Selection[id] = true
			}
		}
	}
	if e.opts.ColumnVisibility() {
		for id, v := range in.Visibility {
			if col, ok := e.byID[id]; ok && (v || col.CanHide()) {
				st.Visibility[id] = v
			}
		}
	}
	return st
}

func sameColumn(id string) func(SortSpec) bool {
	return func(s SortSpec) bool { return s.ColumnID == id }
}

// Options returns the feature toggles the engine was built with.
func (e *Engine[T]) Options() Options { return e.opts }

// State returns a copy of the current view state.
func (e *Engine[T]) State() State { return e.state.Clone() }

// Columns returns all columns in declaration order.
func (e *Engine[T]) Columns() []*Column[T] { return e.columns }

// Column looks up a column by ID.
func (e *Engine[T]) Column(id string) (*Column[T], bool) {
	col, ok := e.byID[id]
	return col, ok
}

// SetData replaces the dataset and returns to the first page.
func (e *Engine[T]) SetData(rows []T) {
	e.data = rows
	e.state.Pagination.PageIndex = 0
	e.changed()
}

// Data returns the dataset as given to SetData.
func (e *Engine[T]) Data() []T { return e.data }

func (e *Engine[T]) changed() {
	e.stale = true
	if e.onChange != nil {
		e.onChange(e.state.Clone())
	}
}

func (e *Engine[T]) derive() {
	if !e.stale {
		return
	}
	e.stale = false

	e.core = make([]Row[T], len(e.data))
	for i, r := range e.data {
		id := strconv.Itoa(i)
		if e.rowID != nil {
			id = e.rowID(r)
		}
		e.core[i] = Row[T]{ID: id, Index: i, Original: r}
	}

	e.filtered = e.core
	if e.opts.Filtering() && len(e.state.Filters) > 0 {
		e.filtered = make([]Row[T], 0, len(e.core))
		for _, row := range e.core {
			if e.matches(row.Original) {
				e.filtered = append(e.filtered, row)
			}
		}
	}

	e.sorted = e.filtered
	if e.opts.Sorting() && len(e.state.Sorting) > 0 {
		e.sorted = slices.Clone(e.filtered)
		slices.SortStableFunc(e.sorted, e.compareRows)
	}
}

func (e *Engine[T]) matches(row T) bool {
	for id, filter := range e.state.Filters {
		col := e.byID[id]
		fn := col.FilterFn
		if fn == nil {
			fn = IncludesString
		}
		if !fn(col.Value(row), filter) {
			return false
		}
	}
	return true
}

func (e *Engine[T]) compareRows(a, b Row[T]) int {
	for _, s := range e.state.Sorting {
		col := e.byID[s.ColumnID]
		va, vb := col.Value(a.Original), col.Value(b.Original)
		an, bn := isNil(va), isNil(vb)
		switch {
		case an && bn:
			continue
		case an:
			return 1
		case bn:
			return -1
		}
		c := e.cmp.compare(va, vb)
		if s.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

// CoreRows returns every row in dataset order.
func (e *Engine[T]) CoreRows() []Row[T] {
	e.derive()
	return e.core
}

// FilteredRows returns the rows that pass every active column filter.
func (e *Engine[T]) FilteredRows() []Row[T] {
	e.derive()
	return e.filtered
}

// SortedRows returns the filtered rows in sort order.
func (e *Engine[T]) SortedRows() []Row[T] {
	e.derive()
	return e.sorted
}

// PageRows returns the rows of the current page.
func (e *Engine[T]) PageRows() []Row[T] {
	rows := e.SortedRows()
	if !e.opts.Paginating() {
		return rows
	}
	p := e.state.Pagination
	start := min(p.PageIndex*p.PageSize, len(rows))
	end := min(start+p.PageSize, len(rows))
	return rows[start:end]
}

// Sorting returns the active sort specs, highest priority first.
func (e *Engine[T]) Sorting() []SortSpec {
	return slices.Clone(e.state.Sorting)
}

// SortDirection returns how the given column is currently sorted.
func (e *Engine[T]) SortDirection(id string) SortDirection {
	for _, s := range e.state.Sorting {
		if s.ColumnID == id {
			if s.Desc {
				return Descending
			}
			return Ascending
		}
	}
	return Unsorted
}

// CanSort reports whether the column exists, is sortable and sorting is enabled.
func (e *Engine[T]) CanSort(id string) bool {
	col, ok := e.byID[id]
	return ok && e.opts.Sorting() && col.CanSort()
}

// ToggleSorting advances a column through unsorted, ascending, descending.
// With multi the column is added to or updated in the existing sort; without
// it the column replaces the current sort.
func (e *Engine[T]) ToggleSorting(id string, multi bool) {
	if !e.CanSort(id) {
		return
	}
	next := Ascending
	switch e.SortDirection(id) {
	case Ascending:
		next = Descending
	case Descending:
		next = Unsorted
	}

	if !multi {
		e.state.Sorting = nil
		if next != Unsorted {
			e.state.Sorting = []SortSpec{{ColumnID: id, Desc: next == Descending}}
		}
	} else {
		i := slices.IndexFunc(e.state.Sorting, sameColumn(id))
		switch {
		case next == Unsorted && i >= 0:
			e.state.Sorting = slices.Delete(e.state.Sorting, i, i+1)
		case i >= 0:
			e.state.Sorting[i].Desc = next == Descending
		default:
			e.state.Sorting = append(e.state.Sorting, SortSpec{ColumnID: id, Desc: next == Descending})
		}
	}
	e.state.Pagination.PageIndex = 0
	e.changed()
}

// ClearSorting removes every sort.
func (e *Engine[T]) ClearSorting() {
	if !e.opts.Sorting() || len(e.state.Sorting) == 0 {
		return
	}
	e.state.Sorting = nil
	e.changed()
}

// ColumnFilter returns the filter value of a column, or "" when there is none.
func (e *Engine[T]) ColumnFilter(id string) string {
	return e.state.Filters[id]
}

// SetColumnFilter sets a column's filter value. An empty value removes the
// filter. Unknown columns are ignored.
func (e *Engine[T]) SetColumnFilter(id, value string) {
	col, ok := e.byID[id]
	if !ok || !e.opts.Filtering() || !col.CanFilter() {
		return
	}
	if e.state.Filters[id] == value {
		return
	}
	if value == "" {
		delete(e.state.Filters, id)
	} else {
		e.state.Filters[id] = value
	}
	e.state.Pagination.PageIndex = 0
	e.changed()
}

// PageIndex returns the zero-based current page.
func (e *Engine[T]) PageIndex() int {
	if !e.opts.Paginating() {
		return 0
	}
	return e.state.Pagination.PageIndex
}

// PageSize returns the number of rows per page.
func (e *Engine[T]) PageSize() int {
	return e.state.Pagination.PageSize
}

// PageCount returns the number of pages of filtered rows, at least one.
func (e *Engine[T]) PageCount() int {
	if !e.opts.Paginating() {
		return 1
	}
	n := len(e.FilteredRows())
	size := e.state.Pagination.PageSize
	return max(1, (n+size-1)/size)
}

// CanPreviousPage reports whether there is a page before the current one.
func (e *Engine[T]) CanPreviousPage() bool {
	return e.PageIndex() > 0
}

// CanNextPage reports whether there is a page after the current one.
func (e *Engine[T]) CanNextPage() bool {
	return e.PageIndex() < e.PageCount()-1
}

// SetPageIndex moves to page i, clamped to the valid range.
func (e *Engine[T]) SetPageIndex(i int) {
	if !e.opts.Paginating() {
		return
	}
	i = max(0, min(i, e.PageCount()-1))
	if i == e.state.Pagination.PageIndex {
		return
	}
	e.state.Pagination.PageIndex = i
	e.changed()
}

// FirstPage moves to the first page.
func (e *Engine[T]) FirstPage() { e.SetPageIndex(0) }

// LastPage moves to the last page.
func (e *Engine[T]) LastPage() { e.SetPageIndex(e.PageCount() - 1) }

// NextPage advances one page if possible.
func (e *Engine[T]) NextPage() { e.SetPageIndex(e.PageIndex() + 1) }

// PreviousPage goes back one page if possible.
func (e *Engine[T]) PreviousPage() { e.SetPageIndex(e.PageIndex() - 1) }

// SetPageSize changes the page size and keeps the first row of the current
// page on screen. Non-positive sizes are ignored.
func (e *Engine[T]) SetPageSize(size int) {
	if !e.opts.Paginating() || size <= 0 || size == e.state.Pagination.PageSize {
		return
	}
	top := e.state.Pagination.PageIndex * e.state.Pagination.PageSize
	e.state.Pagination.PageSize = size
	e.state.Pagination.PageIndex = max(0, min(top/size, e.PageCount()-1))
	e.changed()
}

// IsSelected reports whether the row with the given ID is selected.
func (e *Engine[T]) IsSelected(id string) bool {
	return e.opts.RowSelection() && e.state.Selection[id]
}

// SetRowSelected selects or deselects a row.
func (e *Engine[T]) SetRowSelected(id string, selected bool) {
	if !e.opts.RowSelection() || e.state.Selection[id] == selected {
		return
	}
	if selected {
		e.state.Selection[id] = true
	} else {
		delete(e.state.Selection, id)
	}
	e.changed()
}

// ToggleRowSelected flips the selection of a row.
func (e *Engine[T]) ToggleRowSelected(id string) {
	e.SetRowSelected(id, !e.IsSelected(id))
}

// IsAllPageRowsSelected reports whether the page has rows and all are selected.
func (e *Engine[T]) IsAllPageRowsSelected() bool {
	rows := e.PageRows()
	if len(rows) == 0 || !e.opts.RowSelection() {
		return false
	}
	for _, r := range rows {
		if !e.state.Selection[r.ID] {
			return false
		}
	}
	return true
}

// IsSomePageRowsSelected reports whether some, but not all, page rows are selected.
func (e *Engine[T]) IsSomePageRowsSelected() bool {
	if e.IsAllPageRowsSelected() {
		return false
	}
	return slices.ContainsFunc(e.PageRows(), func(r Row[T]) bool { return e.IsSelected(r.ID) })
}

// ToggleAllPageRowsSelected selects every page row, or clears them when all
// were already selected.
func (e *Engine[T]) ToggleAllPageRowsSelected() {
	if !e.opts.RowSelection() {
		return
	}
	rows := e.PageRows()
	if len(rows) == 0 {
		return
	}
	selectAll := !e.IsAllPageRowsSelected()
	for _, r := range rows {
		if selectAll {
			e.state.Selection[r.ID] = true
		} else {
			delete(e.state.Selection, r.ID)
		}
	}
	e.changed()
}

// ClearSelection deselects every row.
func (e *Engine[T]) ClearSelection() {
	if len(e.state.Selection) == 0 {
		return
	}
	clear(e.state.Selection)
	e.changed()
}

// SelectedRows returns the selected rows among the filtered rows.
func (e *Engine[T]) SelectedRows() []Row[T] {
	var out []Row[T]
	for _, r := range e.FilteredRows() {
		if e.IsSelected(r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// SelectedFilteredCount counts selected rows that survive filtering.
func (e *Engine[T]) SelectedFilteredCount() int {
	return len(e.SelectedRows())
}

// IsColumnVisible reports whether the column is shown.
func (e *Engine[T]) IsColumnVisible(id string) bool {
	if !e.opts.ColumnVisibility() {
		return true
	}
	v, ok := e.state.Visibility[id]
	return !ok || v
}

// SetColumnVisibility shows or hides a column. Only hideable columns can be hidden.
func (e *Engine[T]) SetColumnVisibility(id string, visible bool) {
	col, ok := e.byID[id]
	if !ok || !e.opts.ColumnVisibility() {
		return
	}
	if !visible && !col.CanHide() {
		return
	}
	if e.IsColumnVisible(id) == visible {
		return
	}
	e.state.Visibility[id] = visible
	e.changed()
}

// ToggleColumnVisibility flips a column between shown and hidden.
func (e *Engine[T]) ToggleColumnVisibility(id string) {
	e.SetColumnVisibility(id, !e.IsColumnVisible(id))
}

// ResetColumnVisibility shows every column again.
func (e *Engine[T]) ResetColumnVisibility() {
	if len(e.state.Visibility) == 0 {
		return
	}
	hidden := false
	for _, v := range e.state.Visibility {
		hidden = hidden || !v
	}
	clear(e.state.Visibility)
	if hidden {
		e.changed()
	}
}

// VisibleColumns returns the shown columns in declaration order.
func (e *Engine[T]) VisibleColumns() []*Column[T] {
	out := make([]*Column[T], 0, len(e.columns))
	for _, c := range e.columns {
		if e.IsColumnVisible(c.ID) {
			out = append(out, c)
		}
	}
	return out
}
