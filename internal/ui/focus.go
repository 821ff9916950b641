package ui

// Region is a focusable area of a DataTable.
type Region string

const (
	RegionTabs       Region = "tabs"
	RegionSearch     Region = "search"
	RegionBody       Region = "body"
	RegionPagination Region = "pagination"
)

// FocusManager tracks and rotates focus across the regions a table shows.
type FocusManager struct {
	Current  Region   // currently focused region
	Order    []Region // Tab order for focus rotation
	OnChange func(from, to Region)
}

// Next advances focus to the next region in order.
// Returns the new current region.
func (f *FocusManager) Next() Region {
	return f.step(1)
}

// Prev moves focus to the previous region in order.
func (f *FocusManager) Prev() Region {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) Region {
	if len(f.Order) == 0 {
		return ""
	}
	idx := -1
	for i, r := range f.Order {
		if r == f.Current {
			idx = i
			break
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := (idx + delta + len(f.Order)) % len(f.Order)
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses the given region.
// Returns false if the region is not part of the order.
func (f *FocusManager) SetFocus(r Region) bool {
	for _, o := range f.Order {
		if o == r {
			f.set(r)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(r Region) {
	from := f.Current
	f.Current = r
	if f.OnChange != nil && from != r {
		f.OnChange(from, r)
	}
}
