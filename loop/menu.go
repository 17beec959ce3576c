package loop

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)

// menuModel is the BubbleTea model for navigate-mode choose prompts
type menuModel struct {
	choices  []string
	cursor   int
	selected int
}

func newMenuModel(choices []string) menuModel {
	return menuModel{
		choices:  choices,
		selected: -1,
	}
}

// Init initializes the menu model
func (m menuModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			m.selected = m.cursor
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu
func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(hintStyle.Render("  [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("  " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("    " + choice + "\n")
		}
	}

	return b.String()
}

// runMenu shows the arrow-key menu and returns the chosen index, or -1 when
// the user cancelled.
func runMenu(choices []string) (int, error) {
	finalModel, err := tea.NewProgram(newMenuModel(choices)).Run()
	if err != nil {
		return -1, err
	}
	return finalModel.(menuModel).selected, nil
}
