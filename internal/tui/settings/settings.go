package settings

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"todaysthought/internal/prompts"
	"todaysthought/internal/tui/messages"
	"todaysthought/internal/tui/shared"
	"todaysthought/internal/tui/theme"
)

var (
	sectionStyle = theme.Title
	labelStyle   = theme.Muted.Width(9)
	valueStyle   = theme.Bold
	cursorStyle  = theme.Cursor
	itemStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	activeStyle  = theme.SelectedBg
	filterStyle  = theme.Warn
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeAdd
	modeEdit
	modeFolder
	modeFormat
	modeConfirmDelete
)

// SettingsModel manages the prompt list and the daily-note layout
type SettingsModel struct {
	prompts []string
	folder  string
	format  string

	visible []int // indices into prompts, after filtering
	cursor  int
	query   string

	mode    mode
	input   *shared.TextInputModel
	confirm *shared.ConfirmationModal

	width  int
	height int
}

// NewSettingsModel creates the settings view
func NewSettingsModel(list []string, folder, format string) SettingsModel {
	m := SettingsModel{}
	m.SetData(list, folder, format)
	return m
}

// SetSize sets the available size for the view
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.input != nil {
		m.input.SetWidth(m.inputWidth())
	}
}

// SetData replaces the prompts and layout, keeping the filter and cursor
func (m *SettingsModel) SetData(list []string, folder, format string) {
	m.prompts = append([]string(nil), list...)
	m.folder = folder
	m.format = format
	m.applyFilter()
}

// IsInModalState reports whether keys go to an input or dialog
func (m SettingsModel) IsInModalState() bool {
	return m.mode != modeList
}

// Selected returns the index of the prompt under the cursor, or -1
func (m SettingsModel) Selected() int {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return -1
	}
	return m.visible[m.cursor]
}

func (m *SettingsModel) applyFilter() {
	m.visible = prompts.Find(m.prompts, m.query)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m SettingsModel) inputWidth() int {
	w := m.width - 4
	if w > 80 {
		w = 80
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *SettingsModel) openInput(md mode, prompt, value string, validator func(string) error) {
	m.mode = md
	m.input = shared.NewTextInput(prompt, "", validator)
	m.input.SetValue(value)
	m.input.SetWidth(m.inputWidth())
}

func (m *SettingsModel) closeInput() {
	m.mode = modeList
	m.input = nil
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.TextInputResultMsg:
		return m.handleInputResult(msg)

	case shared.ConfirmationResultMsg:
		return m.handleConfirmation(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirmDelete:
			if m.confirm != nil {
				return m, m.confirm.Update(msg)
			}
			m.mode = modeList
			return m, nil
		case modeList:
			return m.handleListKey(msg)
		}
	}

	if m.input != nil {
		cmd := m.input.Update(msg)
		if m.mode == modeSearch {
			m.query = m.input.Value()
			m.applyFilter()
		}
		return m, cmd
	}
	return m, nil
}

func (m SettingsModel) handleListKey(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "/":
		m.openInput(modeSearch, "Search", m.query, nil)
	case "esc":
		if m.query != "" {
			m.query = ""
			m.applyFilter()
			return m, nil
		}
		return m, messages.SwitchView(messages.ViewCapture)
	case "n", "a":
		m.openInput(modeAdd, "New prompt", prompts.NewPromptText, nil)
	case "enter", "e":
		if idx := m.Selected(); idx >= 0 {
			m.openInput(modeEdit, "Edit prompt", m.prompts[idx], validatePrompt)
		}
	case "d", "x":
		if idx := m.Selected(); idx >= 0 {
			m.mode = modeConfirmDelete
			m.confirm = shared.NewConfirmationModal("Delete this prompt?", m.prompts[idx], m.inputWidth())
		}
	case "f":
		m.openInput(modeFolder, "Daily note folder", m.folder, nil)
	case "F":
		m.openInput(modeFormat, "Daily note format", m.format, validateFormat)
	}
	return m, nil
}

func (m SettingsModel) handleInputResult(msg shared.TextInputResultMsg) (SettingsModel, tea.Cmd) {
	md := m.mode
	m.closeInput()

	if md == modeSearch {
		m.query = msg.Value
		m.applyFilter()
		return m, nil
	}
	if msg.Cancelled {
		return m, nil
	}

	switch md {
	case modeAdd:
		updated := prompts.Add(m.prompts, msg.Value)
		return m, promptsChanged(updated, fmt.Sprintf("Added prompt %d", len(updated)))

	case modeEdit:
		idx := m.Selected()
		updated, err := prompts.Set(m.prompts, idx, msg.Value)
		if err != nil {
			return m, settingsError(err)
		}
		return m, promptsChanged(updated, fmt.Sprintf("Updated prompt %d", idx+1))

	case modeFolder:
		return m, layoutChanged(strings.TrimSpace(msg.Value), m.format)

	case modeFormat:
		return m, layoutChanged(m.folder, strings.TrimSpace(msg.Value))
	}
	return m, nil
}

func (m SettingsModel) handleConfirmation(msg shared.ConfirmationResultMsg) (SettingsModel, tea.Cmd) {
	m.mode = modeList
	m.confirm = nil
	if !msg.Confirmed {
		return m, nil
	}

	idx := m.Selected()
	updated, err := prompts.Remove(m.prompts, idx)
	if err != nil {
		return m, settingsError(err)
	}
	return m, promptsChanged(updated, "Deleted prompt")
}

func promptsChanged(list []string, status string) tea.Cmd {
	return func() tea.Msg {
		return messages.PromptsChangedMsg{Prompts: list, Status: status}
	}
}

func layoutChanged(folder, format string) tea.Cmd {
	return func() tea.Msg {
		return messages.LayoutChangedMsg{Folder: folder, Format: format}
	}
}

func settingsError(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.SettingsSavedMsg{Err: err}
	}
}

func validatePrompt(s string) error {
	if strings.TrimSpace(s) == "" {
		return prompts.ErrEmptyPrompt
	}
	return nil
}

func validateFormat(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("format cannot be empty")
	}
	return nil
}

func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Daily Notes") + "\n")
	b.WriteString(labelStyle.Render("Folder") + valueStyle.Render(displayFolder(m.folder)) + "\n")
	b.WriteString(labelStyle.Render("Format") + valueStyle.Render(m.format) + "\n\n")

	title := fmt.Sprintf("Prompts (%d)", len(m.prompts))
	if m.query != "" && m.mode != modeSearch {
		title += " " + filterStyle.Render("/"+m.query)
	}
	b.WriteString(sectionStyle.Render(title) + "\n")

	switch {
	case len(m.prompts) == 0:
		b.WriteString(theme.Missing.Render("No prompts. The default is used: "+prompts.DefaultPrompt) + "\n")
	case len(m.visible) == 0:
		b.WriteString(theme.Missing.Render("No matching prompts") + "\n")
	}

	lineWidth := m.width - 6
	for i, idx := range m.visible {
		text := fmt.Sprintf("%2d. %s", idx+1, m.prompts[idx])
		if lineWidth > 0 {
			text = shared.Truncate(text, lineWidth)
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + activeStyle.Render(text) + "\n")
		} else {
			b.WriteString("  " + itemStyle.Render(text) + "\n")
		}
	}

	switch {
	case m.mode == modeConfirmDelete && m.confirm != nil:
		b.WriteString("\n" + m.confirm.View() + "\n")
	case m.input != nil:
		b.WriteString("\n" + m.input.View() + "\n")
	default:
		b.WriteString("\n" + theme.HelpHint.Render("j/k: move  /: search  n: new  enter: edit  d: delete  f: folder  F: format  esc: back") + "\n")
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(b.String())
}

func displayFolder(folder string) string {
	if strings.Trim(folder, "/") == "" {
		return "/ (vault root)"
	}
	return folder
}
