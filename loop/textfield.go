package loop

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// textFieldModel is the BubbleTea model for navigate-mode questions
type textFieldModel struct {
	input     textinput.Model
	prompt    string
	submitted bool
}

func newTextFieldModel(prompt string) textFieldModel {
	ti := textinput.New()
	ti.Focus()
	return textFieldModel{
		input:  ti,
		prompt: prompt,
	}
}

// Init starts the cursor blink
func (m textFieldModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keyboard input
func (m textFieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt and the input field
func (m textFieldModel) View() string {
	return promptStyle.Render(m.prompt) + "\n" + m.input.View() + "\n"
}

// runTextField shows a styled input field and returns the submitted text.
// An abandoned field reports the input as closed.
func runTextField(prompt string) (string, error) {
	finalModel, err := tea.NewProgram(newTextFieldModel(prompt)).Run()
	if err != nil {
		return "", fmt.Errorf("show input: %w", err)
	}

	result := finalModel.(textFieldModel)
	if !result.submitted {
		return "", ErrInputClosed
	}
	return result.input.Value(), nil
}
