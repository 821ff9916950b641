package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"tablekit/internal/tablestate"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds each rune of s to update as a separate key press.
func typeText(s string, update func(tea.Msg)) {
	for _, r := range s {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// plain strips ANSI styling so assertions can match on visible text.
func plain(s string) string {
	return ansi.Strip(s)
}

func plainLines(s string) []string {
	return strings.Split(plain(s), "\n")
}

// person is the row type of the component tests.
type person struct {
	ID   string
	Name string
	Team string
	Age  int
}

func people(n int) []person {
	teams := []string{"red", "blue", "green"}
	out := make([]person, n)
	for i := range out {
		out[i] = person{
			ID:   string(rune('a' + i)),
			Name: "person-" + string(rune('a'+i)),
			Team: teams[i%len(teams)],
			Age:  20 + i,
		}
	}
	return out
}

func personColumns() []tablestate.Column[person] {
	return []tablestate.Column[person]{
		{
			ID: "select",
			Header: tablestate.HeaderFunc[person](func(ctx tablestate.HeaderContext[person]) string {
				return Checkbox(ctx.AllPage, ctx.SomePage)
			}),
			Cell: tablestate.CellFunc[person](func(ctx tablestate.CellContext[person]) string {
				return Checkbox(ctx.Selected, false)
			}),
			Width: 3,
		},
		{ID: "name", Title: "Name", Accessor: func(p person) any { return p.Name }},
		{ID: "team", Title: "Team", Accessor: func(p person) any { return p.Team }, FilterFn: tablestate.EqualsString},
		{ID: "age", Title: "Age", Accessor: func(p person) any { return p.Age }},
	}
}

func newPersonEngine(t *testing.T, n int, pageSize int) *tablestate.Engine[person] {
	t.Helper()
	e, err := tablestate.New(tablestate.Config[person]{
		Columns: personColumns(),
		Initial: tablestate.InitialState{PageSize: pageSize},
		RowID:   func(p person) string { return p.ID },
	})
	require.NoError(t, err)
	e.SetData(people(n))
	return e
}

// runCmd executes cmd and returns its message, or nil for a nil command.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
