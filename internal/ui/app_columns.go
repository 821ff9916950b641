package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tablekit/internal/project"
	"tablekit/internal/tablestate"
)

// DueDateLayout formats the due date column.
const DueDateLayout = "Jan 2, 2006"

const progressBarWidth = 10

type projectCell = tablestate.CellContext[project.Project]

// ProjectColumns returns the column model of the projects table.
func ProjectColumns() []tablestate.Column[project.Project] {
	return []tablestate.Column[project.Project]{
		{
			ID: "select",
			Header: tablestate.HeaderFunc[project.Project](func(ctx tablestate.HeaderContext[project.Project]) string {
				return Checkbox(ctx.AllPage, ctx.SomePage)
			}),
			Cell: tablestate.CellFunc[project.Project](func(ctx projectCell) string {
				return Checkbox(ctx.Selected, false)
			}),
			Sortable: tablestate.Bool(false),
			Hideable: tablestate.Bool(false),
			Width:    3,
		},
		{
			ID:       "name",
			Title:    "Project Name",
			Accessor: func(p project.Project) any { return p.Name },
			Cell: tablestate.CellFunc[project.Project](func(ctx projectCell) string {
				return lipgloss.NewStyle().Bold(true).Render(ctx.Row.Name)
			}),
		},
		{
			ID:       "status",
			Title:    "Status",
			Accessor: func(p project.Project) any { return p.Status },
			Cell: tablestate.CellFunc[project.Project](func(ctx projectCell) string {
				return StatusBadge(Capitalize(ctx.Row.Status), BadgeOptions{
					Variant: ParseVariant(ctx.Row.Status),
					ShowDot: true,
				})
			}),
			FilterFn: tablestate.EqualsString,
		},
		{
			ID:       "priority",
			Title:    "Priority",
			Accessor: func(p project.Project) any { return p.Priority },
			Cell: tablestate.CellFunc[project.Project](func(ctx projectCell) string {
				return StatusBadge(Capitalize(ctx.Row.Priority), BadgeOptions{
					Variant: PriorityVariant(ctx.Row.Priority),
					Size:    BadgeSmall,
				})
			}),
			FilterFn: tablestate.EqualsString,
		},
		{
			ID:       "assignee",
			Title:    "Assignee",
			Accessor: func(p project.Project) any { return p.Assignee },
		},
		{
			ID:       "dueDate",
			Title:    "Due Date",
			Accessor: func(p project.Project) any { return p.DueDate },
			Cell: tablestate.CellFunc[project.Project](func(ctx projectCell) string {
				if ctx.Row.DueDate.IsZero() {
					return Styles.Muted.Render("—")
				}
				return ctx.Row.DueDate.Format(DueDateLayout)
			}),
		},
		{
			ID:       "progress",
			Title:    "Progress",
			Accessor: func(p project.Project) any { return p.Progress },
			Cell: tablestate.CellFunc[project.Project](func(ctx projectCell) string {
				return ProgressBar(ctx.Row.Progress, progressBarWidth)
			}),
		},
		{
			ID:    "actions",
			Title: "Actions",
			Cell: tablestate.CellFunc[project.Project](func(projectCell) string {
				return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render("Edit") + " " +
					lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render("Delete")
			}),
			Sortable: tablestate.Bool(false),
			Hideable: tablestate.Bool(false),
		},
	}
}
