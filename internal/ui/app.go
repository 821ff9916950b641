package ui

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"tablekit/internal/project"
	"tablekit/internal/tablestate"
)

// Defaults of the projects page.
const (
	DefaultAppTitle        = "Projects Dashboard"
	DefaultAppSubtitle     = "Manage your projects"
	DefaultAppPageSize     = 10
	DefaultAppSearchColumn = "name"
	DefaultAppSearchHint   = "Search projects..."
	DefaultAppEmptyMessage = "No projects found. Create your first project to get started."
	DefaultAppActiveTab    = project.FilterAll
)

// DefaultAppPageSizeOptions are the page sizes offered by the projects page.
var DefaultAppPageSizeOptions = []int{5, 10, 20, 50}

// ProjectsLoadedMsg carries the result of an asynchronous dataset load.
type ProjectsLoadedMsg struct {
	Projects []project.Project
	Err      error
}

// TabChangedMsg is emitted when the user chooses a filter tab.
type TabChangedMsg struct {
	Value string
}

// AppConfig configures the projects page.
type AppConfig struct {
	Title    string
	Subtitle string

	// Projects is shown immediately. When Load is set the page starts in the
	// loading state and Load's result replaces Projects.
	Projects []project.Project
	Load     func() ([]project.Project, error)
	// StayLoading keeps the skeleton up even after data arrives.
	StayLoading bool

	ActiveTab  string
	Now        func() time.Time
	Options    tablestate.Options
	PageSize   int
	Search     SearchConfig
	Pagination PaginationConfig
	Messages   Messages
	Styling    Styling

	Logger *log.Logger
	Tracer trace.Tracer
}

// AppModel is the root model: it owns the active tab and the full dataset
// and feeds the partition for that tab to the table.
type AppModel struct {
	title    string
	subtitle string

	all      []project.Project
	active   string
	now      func() time.Time
	load     func() ([]project.Project, error)
	stay     bool
	loadErr  error
	table    *DataTable[project.Project]
	overlays OverlayStack
	width    int
	height   int
	logger   *log.Logger
	quitting bool
	keys     appKeys
	help     help.Model
}

type appKeys struct {
	Quit, Details, Delete, DeleteSelected key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Details:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Delete:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		DeleteSelected: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
	}
}

// NewAppModel creates the root application model.
func NewAppModel(cfg AppConfig) (*AppModel, error) {
	if cfg.Title == "" {
		cfg.Title = DefaultAppTitle
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ActiveTab == "" {
		cfg.ActiveTab = DefaultAppActiveTab
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultAppPageSize
	}
	if len(cfg.Pagination.PageSizeOptions) == 0 {
		cfg.Pagination.PageSizeOptions = DefaultAppPageSizeOptions
	}
	if cfg.Messages.Empty == "" {
		cfg.Messages.Empty = DefaultAppEmptyMessage
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &AppModel{
		title:    cfg.Title,
		subtitle: cfg.Subtitle,
		all:      cfg.Projects,
		active:   cfg.ActiveTab,
		now:      cfg.Now,
		load:     cfg.Load,
		stay:     cfg.StayLoading,
		logger:   logger,
		keys:     newAppKeys(),
		help:     newHelpModel(),
	}

	table, err := NewDataTable(DataTableConfig[project.Project]{
		Title:       a.title,
		Description: a.subtitle,
		Columns:     ProjectColumns(),
		Options:     cfg.Options,
		Initial:     tablestate.InitialState{PageSize: cfg.PageSize},
		RowID:       func(p project.Project) string { return p.ID },
		Styling:     cfg.Styling,
		FilterTabs: FilterTabsConfig{
			Tabs:   a.tabs(),
			Active: a.active,
			OnChange: func(value string) tea.Cmd {
				return func() tea.Msg { return TabChangedMsg{Value: value} }
			},
		},
		Search:     cfg.Search,
		Pagination: cfg.Pagination,
		Messages:   cfg.Messages,
		Loading:    cfg.Load != nil || cfg.StayLoading,
		Logger:     logger,
		Tracer:     cfg.Tracer,
	})
	if err != nil {
		return nil, err
	}
	a.table = table
	a.table.SetRows(a.visible())
	return a, nil
}

// Table returns the projects table.
func (a *AppModel) Table() *DataTable[project.Project] { return a.table }

// ActiveTab returns the value of the active filter tab.
func (a *AppModel) ActiveTab() string { return a.active }

// LoadErr returns the error of the last failed load, if any.
func (a *AppModel) LoadErr() error { return a.loadErr }

func (a *AppModel) visible() []project.Project {
	return project.Partition(a.now())(a.all, a.active)
}

func (a *AppModel) tabs() []FilterTab {
	specs := project.Tabs(a.all, a.now())
	tabs := make([]FilterTab, len(specs))
	for i, s := range specs {
		tabs[i] = FilterTab{ID: s.Value, Label: s.Label, Value: s.Value, Count: Count(s.Count)}
	}
	return tabs
}

func (a *AppModel) loadCmd() tea.Cmd {
	load := a.load
	return func() tea.Msg {
		rows, err := load()
		if err != nil {
			err = fmt.Errorf("load projects: %w", err)
		}
		return ProjectsLoadedMsg{Projects: rows, Err: err}
	}
}

// Init implements View.
func (a *AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{a.table.Init()}
	if a.load != nil {
		cmds = append(cmds, a.loadCmd())
	}
	return tea.Batch(cmds...)
}

// Overlays returns the open modals.
func (a *AppModel) Overlays() *OverlayStack { return &a.overlays }

// Update implements View.
func (a *AppModel) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		return a, a.quit()
	}
	switch msg := msg.(type) {
	case DismissModalMsg:
		a.overlays.Pop()
		return a, nil
	case DeleteProjectsMsg:
		a.overlays.Pop()
		a.deleteProjects(msg.IDs)
		return a, nil
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if cmd, consumed := a.overlays.Update(msg); consumed {
			return a, cmd
		}
	}

	switch msg := msg.(type) {
	case ProjectsLoadedMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			a.logger.Error("loading projects failed", "err", msg.Err)
		} else {
			a.loadErr = nil
			a.all = msg.Projects
			a.logger.Info("projects loaded", "count", len(msg.Projects))
		}
		a.table.SetFilterTabs(a.tabs())
		a.table.SetRows(a.visible())
		if !a.stay {
			return a, a.table.SetLoading(false)
		}
		return a, nil
	case TabChangedMsg:
		a.active = msg.Value
		a.table.SetActiveTab(msg.Value)
		a.table.SetRows(a.visible())
		a.logger.Debug("tab changed", "tab", msg.Value, "rows", len(a.table.Engine().CoreRows()))
		return a, nil
	case tea.KeyMsg:
		if !a.table.Typing() {
			if key.Matches(msg, a.keys.Quit) {
				return a, a.quit()
			}
			if a.handleRowAction(msg) {
				return a, nil
			}
		}
	}
	_, cmd := a.table.Update(msg)
	return a, cmd
}

// handleRowAction opens a modal for the row keys while the table body has focus.
func (a *AppModel) handleRowAction(msg tea.KeyMsg) bool {
	if a.table.Focused() != RegionBody || a.table.Loading() {
		return false
	}
	switch {
	case key.Matches(msg, a.keys.Details):
		if row, ok := a.table.CurrentRow(); ok {
			a.overlays.Push(Overlay{View: NewDetailsModal(row.Original), Dismiss: "esc"})
		}
		return true
	case key.Matches(msg, a.keys.Delete):
		if row, ok := a.table.CurrentRow(); ok {
			a.overlays.Push(Overlay{View: NewDeleteProjectsConfirmModal([]project.Project{row.Original})})
		}
		return true
	case key.Matches(msg, a.keys.DeleteSelected):
		selected := a.table.Engine().SelectedRows()
		if len(selected) == 0 {
			return true
		}
		projects := make([]project.Project, len(selected))
		for i, r := range selected {
			projects[i] = r.Original
		}
		a.overlays.Push(Overlay{View: NewDeleteProjectsConfirmModal(projects)})
		return true
	}
	return false
}

// deleteProjects drops projects from the session's dataset.
func (a *AppModel) deleteProjects(ids []string) {
	a.all = slices.DeleteFunc(slices.Clone(a.all), func(p project.Project) bool {
		return slices.Contains(ids, p.ID)
	})
	for _, id := range ids {
		a.table.Engine().SetRowSelected(id, false)
	}
	a.table.SetFilterTabs(a.tabs())
	a.table.SetRows(a.visible())
	a.logger.Info("projects deleted", "ids", ids, "remaining", len(a.all))
}

func (a *AppModel) quit() tea.Cmd {
	a.quitting = true
	a.table.Dispose()
	return tea.Quit
}

// View implements View.
func (a *AppModel) View() string {
	if a.quitting {
		return ""
	}
	base := a.table.View()
	if !a.table.Loading() {
		base = lipgloss.JoinVertical(lipgloss.Left, base, a.help.View(bindingSet{
			a.keys.Details, a.keys.Delete, a.keys.DeleteSelected, a.keys.Quit,
		}))
	}
	if a.loadErr != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render(a.loadErr.Error())
		base = lipgloss.JoinVertical(lipgloss.Left, base, errLine)
	}
	return a.overlays.Render(base, a.width, a.height)
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.AppModel.Update(msg)
	return a, cmd
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
