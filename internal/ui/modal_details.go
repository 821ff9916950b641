package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tablekit/internal/project"
)

// DetailsModal shows every field of one project.
type DetailsModal struct {
	Project project.Project
}

// Ensure DetailsModal implements View.
var _ View = (*DetailsModal)(nil)

// NewDetailsModal creates a details modal for p.
func NewDetailsModal(p project.Project) *DetailsModal {
	return &DetailsModal{Project: p}
}

// Init implements View.
func (m *DetailsModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *DetailsModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *DetailsModal) View() string {
	p := m.Project
	due := "—"
	if !p.DueDate.IsZero() {
		due = p.DueDate.Format(DueDateLayout)
	}
	rows := [][2]string{
		{"ID", p.ID},
		{"Status", StatusBadge(Capitalize(p.Status), BadgeOptions{Variant: ParseVariant(p.Status), ShowDot: true})},
		{"Priority", StatusBadge(Capitalize(p.Priority), BadgeOptions{Variant: PriorityVariant(p.Priority), Size: BadgeSmall})},
		{"Assignee", p.Assignee},
		{"Due", due},
		{"Progress", ProgressBar(p.Progress, 20)},
	}

	var b strings.Builder
	b.WriteString(ModalStyles.Title.Render(p.Name))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s%s\n", ModalStyles.Field.Render(r[0]), r[1])
	}
	b.WriteString("\n")
	b.WriteString(ModalStyles.Help.Render("Esc: close"))
	return ModalStyles.BoxDefault.Render(b.String())
}
