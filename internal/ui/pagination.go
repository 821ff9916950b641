package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPageSizeOptions is offered when a table configures no page sizes.
var DefaultPageSizeOptions = []int{10, 20, 30, 40, 50}

// Pager is the slice of view state the pagination bar reads and drives.
type Pager interface {
	PageIndex() int
	PageSize() int
	PageCount() int
	CanPreviousPage() bool
	CanNextPage() bool
	FirstPage()
	PreviousPage()
	NextPage()
	LastPage()
	SetPageSize(size int)
	FilteredCount() int
	SelectedFilteredCount() int
}

// PaginationLabels overrides the bar's text. Empty fields keep the defaults.
type PaginationLabels struct {
	RowsSelected string
	RowsPerPage  string
	Page         string
	Of           string
	First        string
	Previous     string
	Next         string
	Last         string
}

func (l PaginationLabels) withDefaults() PaginationLabels {
	def := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	def(&l.RowsSelected, "row(s) selected")
	def(&l.RowsPerPage, "Rows per page")
	def(&l.Page, "Page")
	def(&l.Of, "of")
	def(&l.First, "First")
	def(&l.Previous, "Previous")
	def(&l.Next, "Next")
	def(&l.Last, "Last")
	return l
}

// PaginationConfig configures the pagination bar. Every section is shown
// unless hidden.
type PaginationConfig struct {
	HidePagination  bool
	HideSelection   bool
	HidePageSize    bool
	HideNavigation  bool
	PageSizeOptions []int
	Labels          PaginationLabels
}

// Options returns the configured page sizes, or the defaults.
func (c PaginationConfig) Options() []int {
	var opts []int
	for _, o := range c.PageSizeOptions {
		if o > 0 && !slices.Contains(opts, o) {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		return DefaultPageSizeOptions
	}
	return opts
}

// SkeletonRows is the number of placeholder rows drawn while loading: the
// second page-size option as given, or fallback when there is none.
func (c PaginationConfig) SkeletonRows(fallback int) int {
	if len(c.PageSizeOptions) > 1 && c.PageSizeOptions[1] > 0 {
		return c.PageSizeOptions[1]
	}
	return fallback
}

// PaginationBar shows selection and page info and drives page navigation.
type PaginationBar struct {
	pager         Pager
	cfg           PaginationConfig
	labels        PaginationLabels
	options       []int
	showSelection bool
	onPageSize    func(size int)
	keys          paginationKeys
}

type paginationKeys struct {
	First, Prev, Next, Last, Bigger, Smaller key.Binding
}

func newPaginationKeys(l PaginationLabels) paginationKeys {
	return paginationKeys{
		First:   key.NewBinding(key.WithKeys("{", "home"), key.WithHelp("{", strings.ToLower(l.First))),
		Prev:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", strings.ToLower(l.Previous))),
		Next:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", strings.ToLower(l.Next))),
		Last:    key.NewBinding(key.WithKeys("}", "end"), key.WithHelp("}", strings.ToLower(l.Last))),
		Bigger:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "page size")),
		Smaller: key.NewBinding(key.WithKeys("-")),
	}
}

// NewPaginationBar creates a bar over pager. showSelection is false when the
// table has row selection turned off.
func NewPaginationBar(pager Pager, cfg PaginationConfig, showSelection bool) *PaginationBar {
	labels := cfg.Labels.withDefaults()
	p := &PaginationBar{
		pager:         pager,
		cfg:           cfg,
		labels:        labels,
		options:       cfg.Options(),
		showSelection: showSelection && !cfg.HideSelection,
		keys:          newPaginationKeys(labels),
	}
	if cfg.HideNavigation {
		p.keys.First.SetEnabled(false)
		p.keys.Prev.SetEnabled(false)
		p.keys.Next.SetEnabled(false)
		p.keys.Last.SetEnabled(false)
	}
	if cfg.HidePageSize {
		p.keys.Bigger.SetEnabled(false)
		p.keys.Smaller.SetEnabled(false)
	}
	return p
}

// OnPageSize registers an observer for page-size changes.
func (p *PaginationBar) OnPageSize(fn func(size int)) { p.onPageSize = fn }

// Controls reports which of first, previous, next and last are enabled.
func (p *PaginationBar) Controls() (first, prev, next, last bool) {
	canPrev, canNext := p.pager.CanPreviousPage(), p.pager.CanNextPage()
	return canPrev, canPrev, canNext, canNext
}

// StepPageSize moves delta steps through the page-size options.
func (p *PaginationBar) StepPageSize(delta int) {
	cur := p.pager.PageSize()
	i := slices.Index(p.options, cur)
	if i < 0 {
		// Current size is not an option: snap to the nearest larger one.
		i = len(p.options) - 1
		for j, o := range p.options {
			if o >= cur {
				i = j
				break
			}
		}
		if (delta > 0 && p.options[i] > cur) || (delta < 0 && p.options[i] < cur) {
			delta = 0
		}
	}
	i = max(0, min(i+delta, len(p.options)-1))
	if p.options[i] == cur {
		return
	}
	p.pager.SetPageSize(p.options[i])
	if p.onPageSize != nil {
		p.onPageSize(p.options[i])
	}
}

// Update handles pagination keys. It reports whether the key was used.
func (p *PaginationBar) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(km, p.keys.First):
		p.pager.FirstPage()
	case key.Matches(km, p.keys.Prev):
		p.pager.PreviousPage()
	case key.Matches(km, p.keys.Next):
		p.pager.NextPage()
	case key.Matches(km, p.keys.Last):
		p.pager.LastPage()
	case key.Matches(km, p.keys.Bigger):
		p.StepPageSize(1)
	case key.Matches(km, p.keys.Smaller):
		p.StepPageSize(-1)
	default:
		return false, nil
	}
	return true, nil
}

// SelectionText is the "N of M row(s) selected" line.
func (p *PaginationBar) SelectionText() string {
	return fmt.Sprintf("%d of %d %s", p.pager.SelectedFilteredCount(), p.pager.FilteredCount(), p.labels.RowsSelected)
}

// PageText is the "Page X of Y" line, 1-based.
func (p *PaginationBar) PageText() string {
	return fmt.Sprintf("%s %d %s %d", p.labels.Page, p.pager.PageIndex()+1, p.labels.Of, p.pager.PageCount())
}

func (p *PaginationBar) pageSizeView() string {
	cur := p.pager.PageSize()
	opts := make([]string, len(p.options))
	for i, o := range p.options {
		s := strconv.Itoa(o)
		if o == cur {
			opts[i] = Styles.Selected.Render("[" + s + "]")
		} else {
			opts[i] = Styles.Muted.Render(s)
		}
	}
	return p.labels.RowsPerPage + " " + strings.Join(opts, " ")
}

func control(glyph string, enabled bool) string {
	if enabled {
		return Styles.Control.Render(glyph)
	}
	return Styles.ControlDisabled.Render(glyph)
}

// View renders the bar on a single line.
func (p *PaginationBar) View() string {
	if p.cfg.HidePagination {
		return ""
	}
	var parts []string
	if p.showSelection {
		parts = append(parts, Styles.Muted.Render(p.SelectionText()))
	}
	if !p.cfg.HidePageSize {
		parts = append(parts, p.pageSizeView())
	}
	parts = append(parts, lipgloss.NewStyle().Bold(true).Render(p.PageText()))
	if !p.cfg.HideNavigation {
		first, prev, next, last := p.Controls()
		parts = append(parts, strings.Join([]string{
			control("«", first), control("‹", prev), control("›", next), control("»", last),
		}, " "))
	}
	return strings.Join(parts, "    ")
}

// ShortHelp implements help.KeyMap.
func (p *PaginationBar) ShortHelp() []key.Binding {
	return []key.Binding{p.keys.First, p.keys.Prev, p.keys.Next, p.keys.Last, p.keys.Bigger}
}

// FullHelp implements help.KeyMap.
func (p *PaginationBar) FullHelp() [][]key.Binding { return [][]key.Binding{p.ShortHelp()} }
