package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPager(t *testing.T, rows, pageSize int, cfg PaginationConfig) (*PaginationBar, engineView[person]) {
	t.Helper()
	view := engineView[person]{newPersonEngine(t, rows, pageSize)}
	return NewPaginationBar(view, cfg, true), view
}

func TestPaginationConfig_Options(t *testing.T) {
	assert.Equal(t, DefaultPageSizeOptions, PaginationConfig{}.Options())
	assert.Equal(t, DefaultPageSizeOptions, PaginationConfig{PageSizeOptions: []int{0, -3}}.Options())
	assert.Equal(t, []int{5, 10}, PaginationConfig{PageSizeOptions: []int{5, 5, 10}}.Options())
}

func TestPaginationConfig_SkeletonRows(t *testing.T) {
	assert.Equal(t, 20, PaginationConfig{}.SkeletonRows(20))
	assert.Equal(t, 20, PaginationConfig{PageSizeOptions: []int{7}}.SkeletonRows(20))
	assert.Equal(t, 10, PaginationConfig{PageSizeOptions: []int{50, 10, 20}}.SkeletonRows(20))
	assert.Equal(t, 20, PaginationConfig{PageSizeOptions: []int{5, 0}}.SkeletonRows(20))
}

func TestPaginationBar_PageText(t *testing.T) {
	p, _ := newTestPager(t, 25, 10, PaginationConfig{})
	assert.Equal(t, "Page 1 of 3", p.PageText())

	empty, _ := newTestPager(t, 0, 10, PaginationConfig{})
	assert.Equal(t, "Page 1 of 1", empty.PageText())
}

func TestPaginationBar_Controls(t *testing.T) {
	p, view := newTestPager(t, 25, 10, PaginationConfig{})

	first, prev, next, last := p.Controls()
	assert.Equal(t, []bool{false, false, true, true}, []bool{first, prev, next, last})

	view.LastPage()
	first, prev, next, last = p.Controls()
	assert.Equal(t, []bool{true, true, false, false}, []bool{first, prev, next, last})

	single, _ := newTestPager(t, 3, 10, PaginationConfig{})
	first, prev, next, last = single.Controls()
	assert.Equal(t, []bool{false, false, false, false}, []bool{first, prev, next, last})
}

func TestPaginationBar_NavigationKeys(t *testing.T) {
	p, view := newTestPager(t, 25, 10, PaginationConfig{})

	steps := []struct {
		key  string
		want int
	}{
		{"]", 1},
		{"]", 2},
		{"]", 2},
		{"[", 1},
		{"{", 0},
		{"}", 2},
	}
	for _, s := range steps {
		used, _ := p.Update(keyMsg(s.key))
		require.True(t, used, s.key)
		assert.Equal(t, s.want, view.PageIndex(), "after %q", s.key)
	}

	used, _ := p.Update(keyMsg("x"))
	assert.False(t, used)
	used, _ = p.Update("not a key")
	assert.False(t, used)
}

func TestPaginationBar_PageSizeKeys(t *testing.T) {
	p, view := newTestPager(t, 25, 10, PaginationConfig{PageSizeOptions: []int{5, 10, 20}})

	var sizes []int
	p.OnPageSize(func(n int) { sizes = append(sizes, n) })

	p.Update(keyMsg("+"))
	assert.Equal(t, 20, view.PageSize())
	p.Update(keyMsg("+"))
	assert.Equal(t, 20, view.PageSize(), "clamped at the largest option")
	p.Update(keyMsg("-"))
	p.Update(keyMsg("-"))
	assert.Equal(t, 5, view.PageSize())
	assert.Equal(t, []int{20, 10, 5}, sizes)
}

func TestPaginationBar_StepPageSizeSnapsToOptions(t *testing.T) {
	p, view := newTestPager(t, 25, 7, PaginationConfig{PageSizeOptions: []int{5, 10, 20}})

	p.StepPageSize(1)
	assert.Equal(t, 10, view.PageSize())

	p2, view2 := newTestPager(t, 25, 7, PaginationConfig{PageSizeOptions: []int{5, 10, 20}})
	p2.StepPageSize(-1)
	assert.Equal(t, 5, view2.PageSize())
}

func TestPaginationBar_SelectionText(t *testing.T) {
	p, view := newTestPager(t, 5, 10, PaginationConfig{})
	view.SetRowSelected("a", true)
	view.SetRowSelected("c", true)
	assert.Equal(t, "2 of 5 row(s) selected", p.SelectionText())

	view.SetColumnFilter("team", "red")
	assert.Equal(t, "1 of 2 row(s) selected", p.SelectionText(), "counts follow the filtered rows")
}

func TestPaginationBar_Labels(t *testing.T) {
	p, _ := newTestPager(t, 5, 10, PaginationConfig{Labels: PaginationLabels{Page: "Seite", Of: "von"}})
	assert.Equal(t, "Seite 1 von 1", p.PageText())
}

func TestPaginationBar_View(t *testing.T) {
	p, _ := newTestPager(t, 25, 10, PaginationConfig{})
	out := plain(p.View())
	assert.Contains(t, out, "0 of 25 row(s) selected")
	assert.Contains(t, out, "Rows per page")
	assert.Contains(t, out, "[10]")
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "« ‹ › »")
}

func TestPaginationBar_HiddenSections(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PaginationConfig
		missing []string
	}{
		{"selection", PaginationConfig{HideSelection: true}, []string{"selected"}},
		{"page size", PaginationConfig{HidePageSize: true}, []string{"Rows per page"}},
		{"navigation", PaginationConfig{HideNavigation: true}, []string{"«", "»"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPager(t, 25, 10, tt.cfg)
			out := plain(p.View())
			assert.Contains(t, out, "Page 1 of 3")
			for _, m := range tt.missing {
				assert.NotContains(t, out, m)
			}
		})
	}

	hidden, _ := newTestPager(t, 25, 10, PaginationConfig{HidePagination: true})
	assert.Empty(t, hidden.View())
}

func TestPaginationBar_HiddenSectionsDisableKeys(t *testing.T) {
	p, view := newTestPager(t, 25, 10, PaginationConfig{HideNavigation: true, HidePageSize: true})

	used, _ := p.Update(keyMsg("]"))
	assert.False(t, used)
	used, _ = p.Update(keyMsg("+"))
	assert.False(t, used)
	assert.Equal(t, 0, view.PageIndex())
	assert.Equal(t, 10, view.PageSize())
}

func TestPaginationBar_NoSelectionWhenTableDisablesIt(t *testing.T) {
	view := engineView[person]{newPersonEngine(t, 5, 10)}
	p := NewPaginationBar(view, PaginationConfig{}, false)
	assert.NotContains(t, plain(p.View()), "selected")
}
