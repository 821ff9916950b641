package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/internal/project"
	"tablekit/internal/tablestate"
)

var appNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, mutate func(*AppConfig)) *AppModel {
	t.Helper()
	cfg := AppConfig{
		Projects: project.Sample(),
		Now:      func() time.Time { return appNow },
		Search:   SearchConfig{Enabled: true, ColumnID: DefaultAppSearchColumn, Debounce: time.Millisecond},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := NewAppModel(cfg)
	require.NoError(t, err)
	return a
}

func send(a *AppModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

func pressApp(a *AppModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = send(a, keyMsg(k))
	}
	return cmd
}

func rowIDs(a *AppModel) []string {
	var out []string
	for _, r := range a.Table().Engine().CoreRows() {
		out = append(out, r.ID)
	}
	return out
}

func TestAppModel_Defaults(t *testing.T) {
	a := newTestApp(t, nil)

	assert.Equal(t, project.FilterAll, a.ActiveTab())
	assert.Len(t, rowIDs(a), 7)
	assert.Equal(t, DefaultAppPageSize, a.Table().Engine().PageSize())
	assert.False(t, a.Table().Loading())

	out := plain(a.View())
	assert.Contains(t, out, DefaultAppTitle)
	assert.Contains(t, out, "All Projects")
	assert.Contains(t, out, "Website Redesign")
	assert.Contains(t, out, "PROJECT NAME")
	assert.Contains(t, out, "5 [10] 20 50", "the page-size choices are the demo ones")
}

func TestAppModel_TabChangeRepartitions(t *testing.T) {
	tests := []struct {
		tab  string
		want []string
	}{
		{project.FilterActive, []string{"1", "4", "6", "7"}},
		{project.FilterCompleted, []string{"2"}},
		{project.FilterOverdue, []string{"3", "5"}},
		{project.FilterAll, []string{"1", "2", "3", "4", "5", "6", "7"}},
	}
	a := newTestApp(t, nil)
	for _, tt := range tests {
		send(a, TabChangedMsg{Value: tt.tab})
		assert.Equal(t, tt.tab, a.ActiveTab())
		assert.Equal(t, tt.tab, a.Table().FilterTabs().Active())
		assert.Equal(t, tt.want, rowIDs(a), tt.tab)
	}
}

func TestAppModel_EmptyMessageSurvivesHiddenColumns(t *testing.T) {
	a := newTestApp(t, func(c *AppConfig) {
		c.Options.EnableColumnVisibility = tablestate.Bool(true)
	})
	pressApp(a, "right", "x", "x", "x", "x")
	require.Len(t, a.Table().Engine().VisibleColumns(), 4)

	send(a, TabChangedMsg{Value: project.FilterCompleted})
	a.deleteProjects([]string{"2"})
	require.Empty(t, rowIDs(a))

	assert.Contains(t, plain(a.View()), DefaultAppEmptyMessage)
}

func TestAppModel_TabKeysEmitChange(t *testing.T) {
	a := newTestApp(t, nil)
	pressApp(a, "tab", "tab")
	require.Equal(t, RegionTabs, a.Table().Focused())

	msg := runCmd(pressApp(a, "4"))
	require.Equal(t, TabChangedMsg{Value: project.FilterOverdue}, msg)
	assert.Equal(t, project.FilterAll, a.ActiveTab(), "nothing changes until the message arrives")

	send(a, msg)
	assert.Equal(t, []string{"3", "5"}, rowIDs(a))
}

func TestAppModel_TabCountsFromData(t *testing.T) {
	a := newTestApp(t, nil)
	out := plain(a.Table().FilterTabs().View(false))
	assert.Regexp(t, `All Projects\s+7`, out)
	assert.Regexp(t, `Active\s+4`, out)
	assert.Regexp(t, `Completed\s+1`, out)
	assert.Regexp(t, `Overdue\s+2`, out)
}

func TestAppModel_Quit(t *testing.T) {
	a := newTestApp(t, nil)
	cmd := pressApp(a, "q")
	assert.IsType(t, tea.QuitMsg{}, runCmd(cmd))
	assert.Empty(t, a.View())

	b := newTestApp(t, nil)
	cmd = pressApp(b, "ctrl+c")
	assert.IsType(t, tea.QuitMsg{}, runCmd(cmd))
}

func TestAppModel_QWhileSearchingTypes(t *testing.T) {
	a := newTestApp(t, nil)
	pressApp(a, "/")
	require.True(t, a.Table().Typing())

	pressApp(a, "q")
	assert.False(t, a.quitting)
	assert.Equal(t, "q", a.Table().SearchBar().Draft())
	assert.NotEmpty(t, a.View())

	cmd := pressApp(a, "ctrl+c")
	assert.IsType(t, tea.QuitMsg{}, runCmd(cmd))
}

func TestAppModel_AsyncLoad(t *testing.T) {
	loaded := project.Sample()[:3]
	a := newTestApp(t, func(c *AppConfig) {
		c.Projects = nil
		c.Load = func() ([]project.Project, error) { return loaded, nil }
	})
	require.True(t, a.Table().Loading())
	assert.NotContains(t, plain(a.View()), "All Projects")

	pressApp(a, "d")
	assert.Zero(t, a.Overlays().Len(), "row actions wait for data")

	msg := runCmd(a.loadCmd())
	require.Equal(t, ProjectsLoadedMsg{Projects: loaded}, msg)

	send(a, msg)
	assert.False(t, a.Table().Loading())
	assert.Equal(t, []string{"1", "2", "3"}, rowIDs(a))
	assert.Regexp(t, `All Projects\s+3`, plain(a.View()))
}

func TestAppModel_LoadError(t *testing.T) {
	a := newTestApp(t, func(c *AppConfig) {
		c.Load = func() ([]project.Project, error) { return nil, errors.New("disk on fire") }
	})
	send(a, runCmd(a.loadCmd()))

	require.Error(t, a.LoadErr())
	assert.ErrorContains(t, a.LoadErr(), "load projects: disk on fire")
	assert.False(t, a.Table().Loading())
	assert.Len(t, rowIDs(a), 7, "the previous dataset stays")
	assert.Contains(t, plain(a.View()), "disk on fire")
}

func TestAppModel_StayLoading(t *testing.T) {
	a := newTestApp(t, func(c *AppConfig) { c.StayLoading = true })
	require.True(t, a.Table().Loading())

	send(a, ProjectsLoadedMsg{Projects: project.Sample()})
	assert.True(t, a.Table().Loading())
	assert.NotContains(t, plain(a.View()), "Website Redesign")
}

func TestAppModel_DeleteCurrentRow(t *testing.T) {
	a := newTestApp(t, nil)

	pressApp(a, "d")
	require.Equal(t, 1, a.Overlays().Len())
	assert.Contains(t, plain(a.View()), "Delete project?")

	msg := runCmd(pressApp(a, "y"))
	require.Equal(t, DeleteProjectsMsg{IDs: []string{"1"}}, msg)
	send(a, msg)

	assert.Zero(t, a.Overlays().Len())
	assert.Equal(t, []string{"2", "3", "4", "5", "6", "7"}, rowIDs(a))
	assert.Regexp(t, `All Projects\s+6`, plain(a.Table().FilterTabs().View(false)))
	assert.Regexp(t, `Active\s+3`, plain(a.Table().FilterTabs().View(false)))
}

func TestAppModel_DeleteCancelled(t *testing.T) {
	a := newTestApp(t, nil)
	pressApp(a, "d")
	msg := runCmd(pressApp(a, "n"))
	require.Equal(t, DismissModalMsg{}, msg)
	send(a, msg)

	assert.Zero(t, a.Overlays().Len())
	assert.Len(t, rowIDs(a), 7)
}

func TestAppModel_DeleteSelected(t *testing.T) {
	a := newTestApp(t, nil)

	pressApp(a, "D")
	assert.Zero(t, a.Overlays().Len(), "nothing selected")

	pressApp(a, " ", "down", "down", " ")
	pressApp(a, "D")
	require.Equal(t, 1, a.Overlays().Len())
	assert.Contains(t, plain(a.View()), "Delete 2 projects?")

	send(a, runCmd(pressApp(a, "enter")))
	assert.Equal(t, []string{"2", "4", "5", "6", "7"}, rowIDs(a))
	assert.Empty(t, a.Table().Engine().SelectedRows())
}

func TestAppModel_DetailsModal(t *testing.T) {
	a := newTestApp(t, nil)
	pressApp(a, "down", "enter")
	require.Equal(t, 1, a.Overlays().Len())

	out := plain(a.View())
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "100%")

	msg := runCmd(pressApp(a, "q"))
	require.Equal(t, DismissModalMsg{}, msg, "keys go to the modal first")
	send(a, msg)
	assert.Zero(t, a.Overlays().Len())
	assert.False(t, a.quitting)
}

func TestAppModel_DetailsDismissKey(t *testing.T) {
	a := newTestApp(t, nil)
	pressApp(a, "enter")
	require.Equal(t, 1, a.Overlays().Len())

	assert.Nil(t, pressApp(a, "esc"))
	assert.Zero(t, a.Overlays().Len())
}

func TestAppModel_OverlayCentersWhenSized(t *testing.T) {
	a := newTestApp(t, nil)
	send(a, tea.WindowSizeMsg{Width: 120, Height: 40})
	pressApp(a, "enter")

	lines := plainLines(a.View())
	assert.Len(t, lines, 40)
	assert.NotContains(t, plain(a.View()), "All Projects", "the modal replaces the page")
}

func TestAppModel_AsTeaModel(t *testing.T) {
	a := newTestApp(t, nil)
	m := a.AsTeaModel()

	next, _ := m.Update(TabChangedMsg{Value: project.FilterCompleted})
	assert.Same(t, m, next)
	assert.Equal(t, []string{"2"}, rowIDs(a))
	assert.Equal(t, a.View(), m.View())
}
