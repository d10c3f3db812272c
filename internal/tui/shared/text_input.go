package shared

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"todaysthought/internal/tui/theme"
)

// TextInputModel wraps bubbles/textinput with validation
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
}

// TextInputResultMsg is sent when input is confirmed or cancelled
type TextInputResultMsg struct {
	Value     string
	Cancelled bool
}

// NewTextInput creates a focused text input component
func NewTextInput(prompt, placeholder string, validator func(string) error) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Focus()
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
	}
}

// Update handles a message. Enter validates and emits the value, esc cancels.
func (m *TextInputModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := m.Input.Value()
			if m.Validator != nil {
				if err := m.Validator(value); err != nil {
					m.Error = err.Error()
					return nil
				}
			}
			return func() tea.Msg { return TextInputResultMsg{Value: value} }
		case "esc":
			return func() tea.Msg { return TextInputResultMsg{Cancelled: true} }
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.Error = ""
	return cmd
}

func (m *TextInputModel) View() string {
	content := lipgloss.NewStyle().Foreground(theme.Secondary).Render(m.Prompt+": ") + m.Input.View() + "\n"
	if m.Error != "" {
		content += theme.Error.Render("Error: "+m.Error) + "\n"
	}
	content += theme.HelpHint.Render("[enter] confirm  [esc] cancel")

	return theme.InputBox.Width(m.Width).Render(content)
}

// Value returns the current input value
func (m *TextInputModel) Value() string {
	return m.Input.Value()
}

// SetValue sets the input value and moves the cursor to the end
func (m *TextInputModel) SetValue(v string) {
	m.Input.SetValue(v)
	m.Input.CursorEnd()
}

// SetWidth sets both the outer box and inner input widths
func (m *TextInputModel) SetWidth(w int) {
	// border (2) and padding (2)
	m.Width = w - 4
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ") - 1
}
