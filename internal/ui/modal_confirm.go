package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tablekit/internal/project"
)

// DeleteProjectsMsg asks the page to remove projects by ID.
type DeleteProjectsMsg struct {
	IDs []string
}

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title       string
	Label       string
	Details     string
	OnConfirm   func() tea.Msg
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    ModalStyles.BoxWarning,
		titleStyle:  ModalStyles.TitleWarning,
		detailStyle: ModalStyles.Details,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteProjectsConfirmModal asks before removing projects from the list.
func NewDeleteProjectsConfirmModal(projects []project.Project) *ConfirmModal {
	ids := make([]string, len(projects))
	names := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		names[i] = p.Name
	}

	title := "Delete project?"
	label := "Project: " + names[0]
	if len(projects) != 1 {
		title = fmt.Sprintf("Delete %d projects?", len(projects))
		label = strings.Join(names, "\n")
	}
	modal := NewConfirmModal(title, label, func() tea.Msg {
		return DeleteProjectsMsg{IDs: ids}
	})
	return modal.WithDetails("Deleted projects are dropped for this session only")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += ModalStyles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + ModalStyles.Help.Render("y/Enter: confirm  Esc: cancel")
	return m.boxStyle.Render(content)
}
