package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FilterTab is one mutually exclusive data partition offered above the table.
type FilterTab struct {
	ID       string
	Label    string
	Value    string
	Count    *int // nil hides the count pill
	Disabled bool
}

// Count is a helper for filling FilterTab.Count.
func Count(n int) *int { return &n }

// FilterTabs renders a row of tabs and reports activation upward.
// It never filters data or changes the active tab itself: the parent owns the
// active value and feeds it back through SetActive.
type FilterTabs struct {
	Tabs     []FilterTab
	active   string
	cursor   int
	onChange func(value string) tea.Cmd
	keys     filterTabKeys
}

type filterTabKeys struct {
	Prev, Next, Activate key.Binding
}

func newFilterTabKeys() filterTabKeys {
	return filterTabKeys{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose tab")),
	}
}

// NewFilterTabs creates a tab bar. onChange may be nil.
func NewFilterTabs(tabs []FilterTab, active string, onChange func(value string) tea.Cmd) *FilterTabs {
	f := &FilterTabs{Tabs: tabs, onChange: onChange, keys: newFilterTabKeys()}
	f.SetActive(active)
	return f
}

// Active returns the value of the active tab as last set by the parent.
func (f *FilterTabs) Active() string { return f.active }

// SetActive records the parent's active value and moves the cursor onto it.
func (f *FilterTabs) SetActive(value string) {
	f.active = value
	for i, t := range f.Tabs {
		if t.Value == value {
			f.cursor = i
			return
		}
	}
}

// IsActive reports whether tab is the active one.
func (f *FilterTabs) IsActive(tab FilterTab) bool {
	return tab.Value == f.active
}

// Cursor returns the index of the focused tab.
func (f *FilterTabs) Cursor() int { return f.cursor }

// Activate invokes the change callback for the tab at index i.
// Disabled tabs and out-of-range indexes do nothing.
func (f *FilterTabs) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(f.Tabs) || f.Tabs[i].Disabled {
		return nil
	}
	f.cursor = i
	if f.onChange == nil {
		return nil
	}
	return f.onChange(f.Tabs[i].Value)
}

func (f *FilterTabs) moveCursor(delta int) {
	if len(f.Tabs) == 0 {
		return
	}
	f.cursor = (f.cursor + delta + len(f.Tabs)) % len(f.Tabs)
}

// Update handles keys while the tab bar has focus.
func (f *FilterTabs) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, f.keys.Prev):
		f.moveCursor(-1)
	case key.Matches(km, f.keys.Next):
		f.moveCursor(1)
	case key.Matches(km, f.keys.Activate):
		return f.Activate(f.cursor)
	default:
		// 1-9 jump straight to a tab.
		if s := km.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return f.Activate(int(s[0] - '1'))
		}
	}
	return nil
}

// View renders the tabs separated by vertical rules. focused underlines the cursor tab.
func (f *FilterTabs) View(focused bool) string {
	if len(f.Tabs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f.Tabs))
	for i, t := range f.Tabs {
		label := t.Label
		style := Styles.TabInactive
		countStyle := Styles.Count
		switch {
		case t.Disabled:
			style = Styles.TabDisabled
		case f.IsActive(t):
			style = Styles.TabActive
			countStyle = Styles.CountActive
		}
		if focused && i == f.cursor {
			label = "›" + label
		}
		s := style.Render(label)
		if t.Count != nil {
			s += " " + countStyle.Render(fmt.Sprintf("%d", *t.Count))
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, Styles.Separator.Render(" │ "))
}

// ShortHelp implements help.KeyMap.
func (f *FilterTabs) ShortHelp() []key.Binding {
	return []key.Binding{f.keys.Prev, f.keys.Next, f.keys.Activate}
}

// FullHelp implements help.KeyMap.
func (f *FilterTabs) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}
