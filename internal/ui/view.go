package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a component with Bubble Tea's Init/Update/View shape whose Update
// may return a replacement. DataTable, AppModel and the modals implement it,
// which lets an OverlayStack hold any of them.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
