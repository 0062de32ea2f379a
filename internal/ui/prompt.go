package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TitlePrompt is a one-line Bubble Tea input for a new todo title.
type TitlePrompt struct {
	label     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewTitlePrompt creates a focused prompt
func NewTitlePrompt(label string) TitlePrompt {
	input := textinput.New()
	input.Placeholder = "what needs doing?"
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	return TitlePrompt{label: label, input: input}
}

// Init implements tea.Model
func (m TitlePrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m TitlePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m TitlePrompt) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return PromptStyle.Render(m.label) + "\n" +
		m.input.View() + "\n" +
		HintStyle.Render("enter to add • esc to cancel") + "\n"
}

// Value returns the trimmed title, or "" when the prompt was cancelled
func (m TitlePrompt) Value() string {
	if m.cancelled {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

// PromptTitle runs a TitlePrompt on the given streams and returns the
// entered title. An empty result means the user cancelled.
func PromptTitle(in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(NewTitlePrompt("New todo"), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("title prompt failed: %w", err)
	}
	return final.(TitlePrompt).Value(), nil
}
