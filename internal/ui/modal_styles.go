package ui

import "github.com/charmbracelet/lipgloss"

// ModalStyles contains shared style definitions for modals.
var ModalStyles = struct {
	BoxDefault lipgloss.Style // Details box
	BoxWarning lipgloss.Style // Destructive confirmation box

	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Label        lipgloss.Style
	Field        lipgloss.Style // Field names in the details box
	Help         lipgloss.Style
	Details      lipgloss.Style // Consequences of a destructive action
}{
	BoxDefault: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle(),
	Field: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Width(10),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}
