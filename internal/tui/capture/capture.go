package capture

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"todaysthought/internal/thoughts"
	"todaysthought/internal/tui/messages"
	"todaysthought/internal/tui/shared"
	"todaysthought/internal/tui/theme"
)

var (
	promptStyle = theme.Prompt.MarginBottom(1)
	noticeStyle = theme.Warn
	errorStyle  = theme.Error
)

// CaptureModel asks today's question and edits the answer
type CaptureModel struct {
	prompt string
	editor textarea.Model
	notice string
	err    string
	width  int
	height int
}

// NewCaptureModel creates the capture view for the given prompt
func NewCaptureModel(prompt string) CaptureModel {
	ed := textarea.New()
	ed.Placeholder = "Write your thought here..."
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.SetHeight(6)
	ed.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(theme.Surface)
	ed.Focus()

	return CaptureModel{
		prompt: prompt,
		editor: ed,
	}
}

func (m CaptureModel) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize sets the available size for the view
func (m *CaptureModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	w := width - 4
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	m.editor.SetWidth(w)
}

// Prompt returns the question shown above the editor
func (m CaptureModel) Prompt() string {
	return m.prompt
}

// Value returns the text currently in the editor
func (m CaptureModel) Value() string {
	return m.editor.Value()
}

func (m CaptureModel) Update(msg tea.Msg) (CaptureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ThoughtSavedMsg:
		if msg.Err != nil {
			m.err = fmt.Sprintf("Error saving thought: %v", msg.Err)
			return m, nil
		}
		m.err = ""
		m.notice = ""
		m.editor.Reset()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			thought, err := thoughts.ValidateThought(m.editor.Value())
			if err != nil {
				m.notice = "Please enter a thought or choose \"No thoughts or time\"."
				return m, nil
			}
			return m, saveThought(thought, false)
		case "ctrl+n":
			return m, saveThought("", true)
		case "ctrl+r":
			return m, messages.SwitchView(messages.ViewReview)
		case "ctrl+g":
			return m, messages.SwitchView(messages.ViewPrompts)
		case "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
	}
	return m, cmd
}

func saveThought(thought string, none bool) tea.Cmd {
	return func() tea.Msg {
		return messages.SaveThoughtMsg{Thought: thought, None: none}
	}
}

func (m CaptureModel) View() string {
	content := promptStyle.Render(m.prompt) + "\n"
	content += theme.InputBox.Render(m.editor.View()) + "\n"

	if m.notice != "" {
		content += "\n" + noticeStyle.Render(m.notice)
	}
	if m.err != "" {
		content += "\n" + errorStyle.Render(m.err)
	}

	hints := theme.HelpHint.Render("ctrl+s: save  ctrl+n: no thoughts or time  ctrl+r: review  ctrl+g: prompts  esc: quit")
	block := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	return shared.CenterWithBottomHints(block, hints, m.height)
}
