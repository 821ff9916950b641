package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tablekit/internal/tablestate"
)

// defaultSkeletonRows is drawn while loading when fewer than two page sizes are configured.
const defaultSkeletonRows = 20

// FilterTabsConfig wires the tab bar. The parent owns Active and updates it
// through SetActiveTab when OnChange fires.
type FilterTabsConfig struct {
	Tabs     []FilterTab
	Active   string
	OnChange func(value string) tea.Cmd
}

// Messages holds user-facing text.
type Messages struct {
	Empty string
}

// DataTableConfig configures a DataTable.
type DataTableConfig[T any] struct {
	Title       string
	Description string
	Columns     []tablestate.Column[T]
	Options     tablestate.Options
	Initial     tablestate.InitialState
	RowID       func(row T) string

	Styling    Styling
	FilterTabs FilterTabsConfig
	Search     SearchConfig
	Pagination PaginationConfig
	Messages   Messages
	Loading    bool

	Logger *log.Logger  // nil discards
	Tracer trace.Tracer // nil uses the global provider
}

// engineView adapts an engine to the interfaces the sub-components consume.
type engineView[T any] struct {
	*tablestate.Engine[T]
}

func (v engineView[T]) HasColumn(id string) bool {
	_, ok := v.Column(id)
	return ok
}

func (v engineView[T]) FilteredCount() int { return len(v.FilteredRows()) }

// DataTable composes filter tabs, a search bar, the table body and a
// pagination bar around one view-state engine.
type DataTable[T any] struct {
	title       string
	description string
	styling     Styling
	engine      *tablestate.Engine[T]

	tabs   *FilterTabs
	search *SearchBar
	body   *TableBody[T]
	pager  *PaginationBar

	focus     FocusManager
	keys      tableKeys
	help      help.Model
	spinner   spinner.Model
	loading   bool
	cursorRow int
	cursorCol int
	disposed  bool

	logger *log.Logger
	tracer trace.Tracer
}

// Ensure DataTable implements View.
var _ View = (*DataTable[struct{}])(nil)

// NewDataTable builds a table from cfg. It fails only on an invalid column model.
func NewDataTable[T any](cfg DataTableConfig[T]) (*DataTable[T], error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer("tablekit/ui")
	}

	engine, err := tablestate.New(tablestate.Config[T]{
		Columns: cfg.Columns,
		Options: cfg.Options,
		Initial: cfg.Initial,
		RowID:   cfg.RowID,
		OnChange: func(s tablestate.State) {
			logger.Debug("view state changed",
				"sorting", len(s.Sorting),
				"filters", len(s.Filters),
				"selected", len(s.Selection),
				"page", s.Pagination.PageIndex,
				"pageSize", s.Pagination.PageSize)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build table engine: %w", err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	t := &DataTable[T]{
		title:       cfg.Title,
		description: cfg.Description,
		styling:     cfg.Styling,
		engine:      engine,
		keys:        newTableKeys(),
		help:        newHelpModel(),
		spinner:     s,
		loading:     cfg.Loading,
		logger:      logger,
		tracer:      tracer,
	}
	view := engineView[T]{engine}

	if len(cfg.FilterTabs.Tabs) > 0 {
		onChange := cfg.FilterTabs.OnChange
		t.tabs = NewFilterTabs(cfg.FilterTabs.Tabs, cfg.FilterTabs.Active, func(value string) tea.Cmd {
			logger.Debug("filter tab chosen", "value", value)
			if onChange == nil {
				return nil
			}
			return onChange(value)
		})
	}

	if cfg.Search.Enabled && cfg.Search.ColumnID != "" {
		t.search = NewSearchBar(view, cfg.Search)
		if t.search.Inert() {
			logger.Warn("search column not found; search disabled", "column", cfg.Search.ColumnID)
		}
		t.search.OnCommit(func(v string) {
			logger.Debug("search committed", "column", cfg.Search.ColumnID, "value", v)
		})
	}

	t.body = NewTableBody(engine, cfg.Messages.Empty, cfg.Pagination.SkeletonRows(defaultSkeletonRows))
	if cfg.Styling.Header != nil {
		t.body.SetHeaderStyle(*cfg.Styling.Header)
	}

	if !cfg.Pagination.HidePagination && cfg.Options.Paginating() {
		t.pager = NewPaginationBar(view, cfg.Pagination, cfg.Options.RowSelection())
		t.pager.OnPageSize(func(size int) {
			logger.Debug("page size changed", "size", size, "page", engine.PageIndex())
		})
	}

	t.rebuildFocus()
	t.focus.SetFocus(RegionBody)
	return t, nil
}

func (t *DataTable[T]) rebuildFocus() {
	var order []Region
	if t.tabs != nil && len(t.tabs.Tabs) > 0 {
		order = append(order, RegionTabs)
	}
	if t.search != nil && !t.search.Inert() {
		order = append(order, RegionSearch)
	}
	order = append(order, RegionBody)
	if t.pager != nil {
		order = append(order, RegionPagination)
	}
	t.focus.Order = order
	t.focus.OnChange = func(from, to Region) {
		if t.search == nil {
			return
		}
		if from == RegionSearch {
			t.search.Blur()
		}
	}
}

// Engine exposes the view-state engine.
func (t *DataTable[T]) Engine() *tablestate.Engine[T] { return t.engine }

// Focused returns the focused region.
func (t *DataTable[T]) Focused() Region { return t.focus.Current }

// Cursor returns the row (within the page) and visible column under the cursor.
func (t *DataTable[T]) Cursor() (row, col int) { return t.cursorRow, t.cursorCol }

// CurrentRow returns the row under the cursor.
func (t *DataTable[T]) CurrentRow() (tablestate.Row[T], bool) {
	if t.loading {
		return tablestate.Row[T]{}, false
	}
	rows := t.engine.PageRows()
	if t.cursorRow < 0 || t.cursorRow >= len(rows) {
		return tablestate.Row[T]{}, false
	}
	return rows[t.cursorRow], true
}

// Loading reports whether skeleton rows are shown.
func (t *DataTable[T]) Loading() bool { return t.loading }

// SearchBar returns the search bar, or nil when search is off.
func (t *DataTable[T]) SearchBar() *SearchBar { return t.search }

// FilterTabs returns the tab bar, or nil when there are no tabs.
func (t *DataTable[T]) FilterTabs() *FilterTabs { return t.tabs }

// PaginationBar returns the pagination bar, or nil when it is hidden.
func (t *DataTable[T]) PaginationBar() *PaginationBar { return t.pager }

// SetRows replaces the dataset.
func (t *DataTable[T]) SetRows(rows []T) {
	t.engine.SetData(rows)
	t.clampCursor()
}

// SetLoading switches skeleton rendering and returns a command to start the spinner.
func (t *DataTable[T]) SetLoading(loading bool) tea.Cmd {
	t.loading = loading
	if loading {
		return t.spinner.Tick
	}
	t.clampCursor()
	return nil
}

// SetActiveTab records the parent's active filter tab.
func (t *DataTable[T]) SetActiveTab(value string) {
	if t.tabs != nil {
		t.tabs.SetActive(value)
	}
}

// SetFilterTabs replaces the tab list, for example to refresh counts.
func (t *DataTable[T]) SetFilterTabs(tabs []FilterTab) {
	if t.tabs == nil {
		return
	}
	t.tabs.Tabs = tabs
	t.tabs.SetActive(t.tabs.Active())
	t.rebuildFocus()
}

// Dispose releases the table: a pending search commit is cancelled and
// further messages are ignored.
func (t *DataTable[T]) Dispose() {
	t.disposed = true
	if t.search != nil {
		t.search.Dispose()
	}
}

// Typing reports whether keystrokes currently go to the search input.
func (t *DataTable[T]) Typing() bool {
	return t.focus.Current == RegionSearch
}

// Init implements View.
func (t *DataTable[T]) Init() tea.Cmd {
	if t.loading {
		return t.spinner.Tick
	}
	return nil
}

// Update implements View.
func (t *DataTable[T]) Update(msg tea.Msg) (View, tea.Cmd) {
	if t.disposed {
		return t, nil
	}
	switch msg := msg.(type) {
	case searchCommitMsg:
		if t.search != nil {
			cmd := t.search.Update(msg)
			t.clampCursor()
			return t, cmd
		}
		return t, nil
	case spinner.TickMsg:
		if t.loading {
			var cmd tea.Cmd
			t.spinner, cmd = t.spinner.Update(msg)
			return t, cmd
		}
		return t, nil
	case tea.WindowSizeMsg:
		t.help.Width = msg.Width
		return t, nil
	case tea.KeyMsg:
		return t, t.handleKey(msg)
	}
	if t.search != nil {
		return t, t.search.Update(msg)
	}
	return t, nil
}

func (t *DataTable[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, t.keys.NextRegion):
		return t.moveFocus(t.focus.Next())
	case key.Matches(msg, t.keys.PrevRegion):
		return t.moveFocus(t.focus.Prev())
	}
	if t.loading {
		return nil
	}

	if t.focus.Current == RegionSearch {
		if msg.String() == "esc" && t.search.Draft() == "" {
			return t.moveFocus(RegionBody)
		}
		return t.search.Update(msg)
	}

	if key.Matches(msg, t.keys.Search) && t.search != nil && !t.search.Inert() {
		return t.moveFocus(RegionSearch)
	}
	if t.pager != nil {
		if used, cmd := t.pager.Update(msg); used {
			t.clampCursor()
			return cmd
		}
	}

	switch t.focus.Current {
	case RegionTabs:
		return t.tabs.Update(msg)
	case RegionBody:
		t.handleBodyKey(msg)
	}
	return nil
}

func (t *DataTable[T]) moveFocus(r Region) tea.Cmd {
	t.focus.SetFocus(r)
	if r == RegionSearch && t.search != nil {
		return t.search.Focus()
	}
	return nil
}

func (t *DataTable[T]) cursorColumn() (*tablestate.Column[T], bool) {
	cols := t.engine.VisibleColumns()
	if t.cursorCol < 0 || t.cursorCol >= len(cols) {
		return nil, false
	}
	return cols[t.cursorCol], true
}

func (t *DataTable[T]) handleBodyKey(msg tea.KeyMsg) {
	rows := t.engine.PageRows()
	switch {
	case key.Matches(msg, t.keys.Up):
		t.cursorRow--
	case key.Matches(msg, t.keys.Down):
		t.cursorRow++
	case key.Matches(msg, t.keys.Left):
		t.cursorCol--
	case key.Matches(msg, t.keys.Right):
		t.cursorCol++
	case key.Matches(msg, t.keys.Select):
		if t.cursorRow >= 0 && t.cursorRow < len(rows) {
			t.engine.ToggleRowSelected(rows[t.cursorRow].ID)
		}
	case key.Matches(msg, t.keys.SelectPage):
		t.engine.ToggleAllPageRowsSelected()
	case key.Matches(msg, t.keys.Sort), key.Matches(msg, t.keys.SortMulti):
		if col, ok := t.cursorColumn(); ok {
			t.engine.ToggleSorting(col.ID, key.Matches(msg, t.keys.SortMulti))
			t.logger.Debug("sort toggled", "column", col.ID, "direction", t.engine.SortDirection(col.ID))
		}
	case key.Matches(msg, t.keys.Hide):
		if col, ok := t.cursorColumn(); ok {
			t.engine.SetColumnVisibility(col.ID, false)
		}
	case key.Matches(msg, t.keys.ShowAll):
		t.engine.ResetColumnVisibility()
	}
	t.clampCursor()
}

func (t *DataTable[T]) clampCursor() {
	if t.loading {
		return
	}
	rows := len(t.engine.PageRows())
	cols := len(t.engine.VisibleColumns())
	t.cursorRow = max(0, min(t.cursorRow, rows-1))
	t.cursorCol = max(0, min(t.cursorCol, cols-1))
}

func (t *DataTable[T]) helpKeys() help.KeyMap {
	set := bindingSet{t.keys.NextRegion}
	switch t.focus.Current {
	case RegionTabs:
		set = append(set, t.tabs.ShortHelp()...)
	case RegionSearch:
		set = append(set, t.search.ShortHelp()...)
	case RegionBody:
		if t.search != nil && !t.search.Inert() {
			set = append(set, t.keys.Search)
		}
		set = append(set, t.keys.Up, t.keys.Down, t.keys.Left, t.keys.Right)
		opts := t.engine.Options()
		if opts.RowSelection() {
			set = append(set, t.keys.Select, t.keys.SelectPage)
		}
		if opts.Sorting() {
			set = append(set, t.keys.Sort)
		}
		if opts.ColumnVisibility() {
			set = append(set, t.keys.Hide, t.keys.ShowAll)
		}
	}
	if t.pager != nil && t.focus.Current != RegionSearch {
		set = append(set, t.pager.ShortHelp()...)
	}
	return set
}

// bodyView renders the table inside its frame and records a span for the
// derivation it triggers.
func (t *DataTable[T]) bodyView() string {
	_, span := t.tracer.Start(context.Background(), "tablekit.derive")
	defer span.End()

	focused := t.focus.Current == RegionBody
	out := t.body.View(BodyState{
		Loading:   t.loading,
		Focused:   focused,
		CursorRow: t.cursorRow,
		CursorCol: t.cursorCol,
	})
	span.SetAttributes(attribute.Bool("tablekit.loading", t.loading))
	if !t.loading {
		span.SetAttributes(
			attribute.Int("tablekit.rows.total", len(t.engine.CoreRows())),
			attribute.Int("tablekit.rows.filtered", len(t.engine.FilteredRows())),
			attribute.Int("tablekit.rows.page", len(t.engine.PageRows())),
		)
	}

	frame := Styles.Box
	if focused {
		frame = Styles.BoxFocused
	}
	if t.styling.Table != nil {
		frame = *t.styling.Table
	}
	return frame.Render(out)
}

// View implements View.
func (t *DataTable[T]) View() string {
	var sections []string
	if t.title != "" || t.loading {
		title := Styles.Title.Render(t.title)
		if t.loading {
			title = strings.TrimSpace(title + " " + t.spinner.View())
		}
		sections = append(sections, title)
	}
	if t.description != "" {
		sections = append(sections, Styles.Hint.Render(t.description))
	}

	// While loading only the skeleton table is drawn.
	if !t.loading {
		if t.tabs != nil {
			if v := t.tabs.View(t.focus.Current == RegionTabs); v != "" {
				sections = append(sections, v)
			}
		}
		if t.search != nil {
			if v := t.search.View(); v != "" {
				sections = append(sections, v)
			}
		}
	}
	sections = append(sections, t.bodyView())
	if !t.loading && t.pager != nil {
		if v := t.pager.View(); v != "" {
			sections = append(sections, v)
		}
	}
	if !t.loading {
		sections = append(sections, t.help.View(t.helpKeys()))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if t.styling.Container != nil {
		out = t.styling.Container.Render(out)
	}
	return out
}
