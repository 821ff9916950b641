package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// tableKeys are the bindings handled by DataTable itself.
type tableKeys struct {
	NextRegion key.Binding
	PrevRegion key.Binding
	Search     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	SelectPage key.Binding
	Sort       key.Binding
	SortMulti  key.Binding
	Hide       key.Binding
	ShowAll    key.Binding
}

func newTableKeys() tableKeys {
	return tableKeys{
		NextRegion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next region")),
		PrevRegion: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev region")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column right")),
		Select:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
		SelectPage: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "sort column")),
		SortMulti:  key.NewBinding(key.WithKeys("S")),
		Hide:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide column")),
		ShowAll:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "show all columns")),
	}
}

// bindingSet implements help.KeyMap over a flat list of bindings.
type bindingSet []key.Binding

// ShortHelp implements help.KeyMap.
func (b bindingSet) ShortHelp() []key.Binding { return b }

// FullHelp implements help.KeyMap.
func (b bindingSet) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// newHelpModel returns a help.Model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
