package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultSearchDebounce is the quiet period before a draft is committed.
const DefaultSearchDebounce = 300 * time.Millisecond

// DefaultSearchPlaceholder is shown in an empty search bar.
const DefaultSearchPlaceholder = "Search..."

// FilterTarget is the view state a search bar writes its committed value to.
type FilterTarget interface {
	HasColumn(id string) bool
	ColumnFilter(id string) string
	SetColumnFilter(id, value string)
}

// SearchConfig configures a SearchBar.
type SearchConfig struct {
	Enabled     bool
	ColumnID    string
	Placeholder string
	Debounce    time.Duration
	// HideClearButton drops the × affordance shown while the draft is non-empty.
	HideClearButton bool
}

// searchCommitMsg fires when a debounce period ends. Only the tick carrying
// the bar's current generation commits.
type searchCommitMsg struct {
	bar *SearchBar
	gen int
}

// SearchBar keeps a local draft and commits it to one column filter after
// a quiet period. Every edit re-arms the timer, so a burst of keystrokes
// produces one commit with the final value.
type SearchBar struct {
	input     textinput.Model
	target    FilterTarget
	columnID  string
	debounce  time.Duration
	showClear bool
	inert     bool
	disposed  bool
	gen       int
	onCommit  func(value string)
	keys      searchKeys
}

type searchKeys struct {
	Clear key.Binding
}

// NewSearchBar binds a search bar to cfg.ColumnID on target. When the column
// does not exist the bar is inert: it renders nothing and never commits.
func NewSearchBar(target FilterTarget, cfg SearchConfig) *SearchBar {
	in := textinput.New()
	in.Prompt = "⌕ "
	in.Placeholder = cfg.Placeholder
	if in.Placeholder == "" {
		in.Placeholder = DefaultSearchPlaceholder
	}
	s := &SearchBar{
		input:     in,
		target:    target,
		columnID:  cfg.ColumnID,
		debounce:  cfg.Debounce,
		showClear: !cfg.HideClearButton,
		inert:     target == nil || !target.HasColumn(cfg.ColumnID),
		keys: searchKeys{
			Clear: key.NewBinding(key.WithKeys("ctrl+u", "esc"), key.WithHelp("esc", "clear search")),
		},
	}
	if s.debounce <= 0 {
		s.debounce = DefaultSearchDebounce
	}
	if !s.inert {
		s.input.SetValue(target.ColumnFilter(cfg.ColumnID))
	}
	return s
}

// OnCommit registers an observer called after each commit.
func (s *SearchBar) OnCommit(fn func(value string)) { s.onCommit = fn }

// Inert reports whether the bar is bound to nothing.
func (s *SearchBar) Inert() bool { return s.inert }

// Draft returns the text currently in the input.
func (s *SearchBar) Draft() string { return s.input.Value() }

// Focus gives the input keyboard focus.
func (s *SearchBar) Focus() tea.Cmd {
	if s.inert {
		return nil
	}
	return s.input.Focus()
}

// Blur removes keyboard focus.
func (s *SearchBar) Blur() { s.input.Blur() }

// Focused reports whether the input has focus.
func (s *SearchBar) Focused() bool { return s.input.Focused() }

// SetDraft replaces the draft as if typed and arms the debounce timer.
func (s *SearchBar) SetDraft(v string) tea.Cmd {
	if s.inert || s.disposed {
		return nil
	}
	s.input.SetValue(v)
	return s.arm()
}

// Clear empties the draft, drops any pending commit and commits "" at once.
func (s *SearchBar) Clear() {
	if s.inert || s.disposed {
		return
	}
	s.gen++
	s.input.SetValue("")
	s.commit("")
}

// Dispose cancels the pending commit for good. Ticks arriving later are ignored.
func (s *SearchBar) Dispose() {
	s.disposed = true
	s.gen++
}

func (s *SearchBar) arm() tea.Cmd {
	s.gen++
	gen := s.gen
	return tea.Tick(s.debounce, func(time.Time) tea.Msg {
		return searchCommitMsg{bar: s, gen: gen}
	})
}

func (s *SearchBar) commit(v string) {
	s.target.SetColumnFilter(s.columnID, v)
	if s.onCommit != nil {
		s.onCommit(v)
	}
}

// Update handles edits and debounce ticks.
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	if s.inert || s.disposed {
		return nil
	}
	switch msg := msg.(type) {
	case searchCommitMsg:
		if msg.bar == s && msg.gen == s.gen {
			s.commit(s.input.Value())
		}
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Clear) {
			if s.input.Value() == "" {
				return nil
			}
			s.Clear()
			return nil
		}
		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() != before {
			return tea.Batch(cmd, s.arm())
		}
		return cmd
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the input, with a clear hint while there is a draft.
func (s *SearchBar) View() string {
	if s.inert {
		return ""
	}
	v := s.input.View()
	if s.showClear && s.input.Value() != "" {
		v += "  " + Styles.Hint.Render("× esc")
	}
	return v
}

// ShortHelp implements help.KeyMap.
func (s *SearchBar) ShortHelp() []key.Binding { return []key.Binding{s.keys.Clear} }

// FullHelp implements help.KeyMap.
func (s *SearchBar) FullHelp() [][]key.Binding { return [][]key.Binding{s.ShortHelp()} }
