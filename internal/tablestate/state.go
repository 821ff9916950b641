package tablestate

import "maps"

// DefaultPageSize is used when no initial page size is configured.
const DefaultPageSize = 20

// SortSpec is one entry of a multi-column sort, highest priority first.
type SortSpec struct {
	ColumnID string
	Desc     bool
}

// Pagination is the current page window.
type Pagination struct {
	PageIndex int
	PageSize  int
}

// State is the view state derived data is computed from.
// It lives only as long as the engine that owns it.
type State struct {
	Sorting    []SortSpec
	Filters    map[string]string
	Selection  map[string]bool
	Visibility map[string]bool
	Pagination Pagination
}

// Clone returns a deep copy so OnChange observers cannot mutate engine state.
func (s State) Clone() State {
	return State{
		Sorting:    append([]SortSpec(nil), s.Sorting...),
		Filters:    maps.Clone(s.Filters),
		Selection:  maps.Clone(s.Selection),
		Visibility: maps.Clone(s.Visibility),
		Pagination: s.Pagination,
	}
}

// Options toggles the engine's features. A nil knob takes its default:
// everything on except column visibility.
type Options struct {
	EnableSorting          *bool
	EnableFiltering        *bool
	EnablePagination       *bool
	EnableRowSelection     *bool
	EnableColumnVisibility *bool
}

// Bool returns a pointer to v, for filling Options and Column flags.
func Bool(v bool) *bool { return &v }

func knob(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Sorting reports whether sorting is enabled.
func (o Options) Sorting() bool { return knob(o.EnableSorting, true) }

// Filtering reports whether column filtering is enabled.
func (o Options) Filtering() bool { return knob(o.EnableFiltering, true) }

// Paginating reports whether pagination is enabled.
func (o Options) Paginating() bool { return knob(o.EnablePagination, true) }

// RowSelection reports whether row selection is enabled.
func (o Options) RowSelection() bool { return knob(o.EnableRowSelection, true) }

// ColumnVisibility reports whether users may hide columns.
func (o Options) ColumnVisibility() bool { return knob(o.EnableColumnVisibility, false) }

// InitialState seeds the view state at construction.
type InitialState struct {
	PageSize   int
	Sorting    []SortSpec
	Filters    map[string]string
	Selection  map[string]bool
	Visibility map[string]bool
}
