// Package textutil provides unicode- and ANSI-aware text utilities for table cells.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// Align is a horizontal alignment inside a fixed-width cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a string that may carry ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate cuts s to at most maxWidth visual columns, appending … when it had to cut.
// Escape sequences are preserved, so styled cell content keeps its colors.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidthStyled(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return ansi.Truncate(s, maxWidth, TruncateEllipsis)
}

// Fit pads or truncates s so that it occupies exactly width columns.
func Fit(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	s = firstLine(s)
	w := VisualWidthStyled(s)
	if w > width {
		return Truncate(s, width)
	}
	gap := width - w
	switch align {
	case AlignRight:
		return runewidth.FillLeft("", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + runewidth.FillRight("", gap)
	}
}

// PadRightVisual pads s on the right to targetWidth columns, truncating when wider.
func PadRightVisual(s string, targetWidth int) string {
	return Fit(s, targetWidth, AlignLeft)
}

// PadLeftVisual pads s on the left to targetWidth columns, truncating when wider.
func PadLeftVisual(s string, targetWidth int) string {
	return Fit(s, targetWidth, AlignRight)
}

// firstLine keeps cells single-line; renderers occasionally return trailing newlines.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
