package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DismissModalMsg is sent when the user cancels a modal.
type DismissModalMsg struct{}

// Overlay is a modal view drawn above the page. The dismiss key closes it
// without running the modal's action.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Update routes msg to the top overlay. A dismiss key pops it instead.
// The bool is false when the stack is empty and msg was not consumed.
func (s *OverlayStack) Update(msg tea.Msg) (tea.Cmd, bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	if km, isKey := msg.(tea.KeyMsg); isKey && top.IsDismissKey(km.String()) {
		s.Pop()
		return nil, true
	}
	v, cmd := top.View.Update(msg)
	s.Stack[len(s.Stack)-1].View = v
	return cmd, true
}

// Render draws the top overlay centered over a base of the given size, or
// below base when the size is unknown.
func (s *OverlayStack) Render(base string, width, height int) string {
	top, ok := s.Peek()
	if !ok {
		return base
	}
	modal := top.View.View()
	if width <= 0 || height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, base, modal)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}
