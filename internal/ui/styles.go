package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - active tab, focused region, spinner
	ColorHighlight = "205" // Magenta - selected rows, cursor
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - headers, hints, disabled controls
	ColorText      = "252" // Light gray - cell text
	ColorDim       = "243" // Darker gray - separators, skeletons
	ColorWarning   = "208" // Orange - warnings
)

// Styles contains shared style definitions used by the table components.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - page titles

	Box        lipgloss.Style // Table frame
	BoxFocused lipgloss.Style // Table frame while the body has focus

	Selected  lipgloss.Style // Selected rows
	Cursor    lipgloss.Style // Row under the cursor
	Muted     lipgloss.Style // Dimmed text
	Normal    lipgloss.Style // Cell text
	Hint      lipgloss.Style // Help/hint text
	Header    lipgloss.Style // Column headers
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Skeleton  lipgloss.Style // Loading placeholders
	Separator lipgloss.Style // Vertical rules between tabs

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabDisabled lipgloss.Style
	CountActive lipgloss.Style
	Count       lipgloss.Style

	Control         lipgloss.Style // Enabled pagination control
	ControlDisabled lipgloss.Style
	Focused         lipgloss.Style // Region label when focused
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Cursor: lipgloss.NewStyle().
		Reverse(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Header: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Skeleton: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	TabDisabled: lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(ColorMuted)),
	CountActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("238")).
		Padding(0, 1),
	Control: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ControlDisabled: lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
}

// Styling lets a caller override the outer, table and header styles of a
// DataTable. Nil fields keep the defaults.
type Styling struct {
	Container *lipgloss.Style
	Table     *lipgloss.Style
	Header    *lipgloss.Style
}
