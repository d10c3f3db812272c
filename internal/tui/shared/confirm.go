package shared

import (
	tea "github.com/charmbracelet/bubbletea"
	"todaysthought/internal/tui/theme"
)

// ConfirmationModal displays a simple yes/no confirmation dialog
type ConfirmationModal struct {
	Message string // Primary question
	Details string // Additional context (optional)
	Width   int
}

// ConfirmationResultMsg is sent when the user confirms or cancels
type ConfirmationResultMsg struct {
	Confirmed bool
}

// NewConfirmationModal creates a new confirmation modal
func NewConfirmationModal(message, details string, width int) *ConfirmationModal {
	return &ConfirmationModal{
		Message: message,
		Details: details,
		Width:   width,
	}
}

// Update handles key events for the confirmation modal
func (m *ConfirmationModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		return func() tea.Msg { return ConfirmationResultMsg{Confirmed: true} }
	case "n", "esc":
		return func() tea.Msg { return ConfirmationResultMsg{Confirmed: false} }
	}
	return nil
}

func (m *ConfirmationModal) View() string {
	content := theme.ModalTitle.Render(m.Message) + "\n"
	if m.Details != "" {
		content += "\n" + m.Details + "\n"
	}
	content += "\n" + theme.Ok.Render("[y]") + " Yes  " + theme.Error.Render("[n/esc]") + " No"

	return theme.ModalBox.Width(m.Width).Render(content)
}
