package review

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"todaysthought/internal/thoughts"
	"todaysthought/internal/tui/messages"
	"todaysthought/internal/tui/theme"
)

var (
	headerStyle  = theme.Title.MarginBottom(1)
	labelStyle   = theme.Subtitle
	dateStyle    = theme.Muted
	thoughtStyle = theme.EntryBox.Foreground(theme.Text)
	missingStyle = theme.EntryBox.Inherit(theme.Missing)
	errorStyle   = theme.EntryBox.Foreground(theme.Danger)
)

// ReviewModel shows the thoughts recorded on the reference dates
type ReviewModel struct {
	recent thoughts.Recent
	loaded bool
	offset int
	width  int
	height int
}

// NewReviewModel creates an empty review view
func NewReviewModel() ReviewModel {
	return ReviewModel{}
}

// SetSize sets the available size for the view
func (m *ReviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the displayed thoughts
func (m *ReviewModel) SetData(recent thoughts.Recent) {
	m.recent = recent
	m.loaded = true
	m.offset = 0
}

func (m ReviewModel) Update(msg tea.Msg) (ReviewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.offset++
		m.clampOffset()
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
	case "r":
		return m, func() tea.Msg { return messages.DataRefreshMsg{} }
	case "enter", "c", "esc":
		return m, messages.SwitchView(messages.ViewCapture)
	}
	return m, nil
}

func (m *ReviewModel) clampOffset() {
	limit := len(m.lines()) - m.height
	if limit < 0 {
		limit = 0
	}
	if m.offset > limit {
		m.offset = limit
	}
}

// Visible returns the entries shown: Today only when it holds a thought
func (m ReviewModel) Visible() []thoughts.Entry {
	var entries []thoughts.Entry
	for _, entry := range m.recent.Entries() {
		if entry.Offset == 0 && !entry.Found && entry.Err == nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func (m ReviewModel) lines() []string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Previous Thoughts") + "\n")

	width := m.width - 2
	if width > 78 {
		width = 78
	}

	for _, entry := range m.Visible() {
		b.WriteString(labelStyle.Render(entry.Label) + " " + dateStyle.Render(entry.Date.Format("Monday, January 2")) + "\n")

		style := thoughtStyle
		switch {
		case entry.Err != nil:
			style = errorStyle
		case !entry.Found:
			style = missingStyle
		}
		if width > 0 {
			style = style.Width(width)
		}
		b.WriteString(style.Render(entry.Text()) + "\n\n")
	}

	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}

func (m ReviewModel) View() string {
	if !m.loaded {
		return theme.Muted.Render("Loading thoughts...")
	}

	lines := m.lines()
	if m.height > 0 && len(lines) > m.height {
		end := m.offset + m.height
		if end > len(lines) {
			end = len(lines)
		}
		lines = lines[m.offset:end]
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().PaddingLeft(1).Render(content)
}
