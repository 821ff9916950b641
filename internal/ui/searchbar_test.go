package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTarget records column filter writes.
type fakeTarget struct {
	columns map[string]bool
	filters map[string]string
	writes  []string
}

func newFakeTarget(columns ...string) *fakeTarget {
	f := &fakeTarget{columns: map[string]bool{}, filters: map[string]string{}}
	for _, c := range columns {
		f.columns[c] = true
	}
	return f
}

func (f *fakeTarget) HasColumn(id string) bool { return f.columns[id] }
func (f *fakeTarget) ColumnFilter(id string) string { return f.filters[id] }
func (f *fakeTarget) SetColumnFilter(id, value string) {
	f.filters[id] = value
	f.writes = append(f.writes, value)
}

func newTestSearch(t *testing.T, target *fakeTarget) *SearchBar {
	t.Helper()
	s := NewSearchBar(target, SearchConfig{Enabled: true, ColumnID: "name", Debounce: time.Millisecond})
	require.False(t, s.Inert())
	s.Focus()
	return s
}

func TestSearchBar_InertWithoutColumn(t *testing.T) {
	target := newFakeTarget("team")
	s := NewSearchBar(target, SearchConfig{Enabled: true, ColumnID: "name"})

	assert.True(t, s.Inert())
	assert.Empty(t, s.View())
	assert.Nil(t, s.Focus())
	assert.Nil(t, s.SetDraft("x"))
	assert.Nil(t, s.Update(keyMsg("x")))
	s.Clear()
	assert.Empty(t, target.writes)
}

func TestSearchBar_Defaults(t *testing.T) {
	s := NewSearchBar(newFakeTarget("name"), SearchConfig{Enabled: true, ColumnID: "name"})
	assert.Equal(t, DefaultSearchDebounce, s.debounce)
	assert.Contains(t, plain(s.View()), DefaultSearchPlaceholder)
}

func TestSearchBar_SeedsDraftFromFilter(t *testing.T) {
	target := newFakeTarget("name")
	target.filters["name"] = "ali"
	s := NewSearchBar(target, SearchConfig{Enabled: true, ColumnID: "name"})
	assert.Equal(t, "ali", s.Draft())
}

func TestSearchBar_TypingDoesNotCommitImmediately(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)

	typeText("abc", func(m tea.Msg) { s.Update(m) })
	assert.Equal(t, "abc", s.Draft())
	assert.Empty(t, target.writes)
}

func TestSearchBar_BurstCommitsOnceWithFinalValue(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)

	typeText("abc", func(m tea.Msg) { s.Update(m) })
	require.Equal(t, 3, s.gen)

	// Ticks armed by the first two keystrokes are stale.
	s.Update(searchCommitMsg{bar: s, gen: 1})
	s.Update(searchCommitMsg{bar: s, gen: 2})
	assert.Empty(t, target.writes)

	s.Update(searchCommitMsg{bar: s, gen: 3})
	assert.Equal(t, []string{"abc"}, target.writes)
	assert.Equal(t, "abc", target.filters["name"])
}

func TestSearchBar_IgnoresOtherBarsTicks(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)
	other := newTestSearch(t, newFakeTarget("name"))

	typeText("a", func(m tea.Msg) { s.Update(m) })
	s.Update(searchCommitMsg{bar: other, gen: s.gen})
	assert.Empty(t, target.writes)
}

func TestSearchBar_SetDraftArmsTimer(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)

	var commits []string
	s.OnCommit(func(v string) { commits = append(commits, v) })

	cmd := s.SetDraft("bob")
	require.NotNil(t, cmd)
	msg := runCmd(cmd)
	require.IsType(t, searchCommitMsg{}, msg)

	s.Update(msg)
	assert.Equal(t, []string{"bob"}, target.writes)
	assert.Equal(t, []string{"bob"}, commits)
}

func TestSearchBar_ClearCommitsImmediatelyAndCancelsPending(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)

	typeText("ab", func(m tea.Msg) { s.Update(m) })
	pending := s.gen

	s.Update(keyMsg("esc"))
	assert.Equal(t, "", s.Draft())
	assert.Equal(t, []string{""}, target.writes)

	s.Update(searchCommitMsg{bar: s, gen: pending})
	assert.Equal(t, []string{""}, target.writes, "the pending commit was cancelled")
}

func TestSearchBar_ClearOnEmptyDraftIsNoop(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)

	s.Update(keyMsg("ctrl+u"))
	s.Update(keyMsg("esc"))
	assert.Empty(t, target.writes)
}

func TestSearchBar_DisposeDropsPendingCommit(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)

	typeText("zed", func(m tea.Msg) { s.Update(m) })
	gen := s.gen
	s.Dispose()

	s.Update(searchCommitMsg{bar: s, gen: gen})
	s.Update(searchCommitMsg{bar: s, gen: s.gen})
	assert.Empty(t, target.writes)
	assert.Nil(t, s.SetDraft("again"))
}

func TestSearchBar_ClearHint(t *testing.T) {
	target := newFakeTarget("name")
	s := newTestSearch(t, target)
	assert.NotContains(t, plain(s.View()), "×")

	s.SetDraft("x")
	assert.Contains(t, plain(s.View()), "× esc")

	hidden := NewSearchBar(target, SearchConfig{Enabled: true, ColumnID: "name", HideClearButton: true})
	hidden.SetDraft("x")
	assert.NotContains(t, plain(hidden.View()), "×")
}
