package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"todaysthought/internal/config"
	"todaysthought/internal/logs"
	"todaysthought/internal/prompts"
	"todaysthought/internal/thoughts"
	captureview "todaysthought/internal/tui/capture"
	reviewview "todaysthought/internal/tui/review"
	settingsview "todaysthought/internal/tui/settings"
	"todaysthought/internal/tui/messages"
	"todaysthought/internal/tui/shared"
	"todaysthought/internal/tui/theme"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg          *config.Config
	thoughtSvc   thoughts.ThoughtService
	now          func() time.Time
	currentView  ViewType
	captureView  captureview.CaptureModel
	reviewView   reviewview.ReviewModel
	settingsView settingsview.SettingsModel
	status       string
	statusErr    bool
	showHelp     bool
	width        int
	height       int
	ready        bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, thoughtSvc thoughts.ThoughtService, selector *prompts.Selector, view ViewType) AppModel {
	m := AppModel{
		cfg:          cfg,
		thoughtSvc:   thoughtSvc,
		now:          time.Now,
		currentView:  view,
		captureView:  captureview.NewCaptureModel(selector.Choose(cfg.Prompts)),
		reviewView:   reviewview.NewReviewModel(),
		settingsView: settingsview.NewSettingsModel(cfg.Prompts, cfg.DailyNoteFolder, cfg.DailyNoteFormat),
	}
	m.refreshReview()
	return m
}

// SetClock replaces the clock used to pick "today"
func (m *AppModel) SetClock(now func() time.Time) {
	m.now = now
	m.refreshReview()
}

func (m AppModel) Init() tea.Cmd {
	return m.captureView.Init()
}

func (m *AppModel) refreshReview() {
	m.reviewView.SetData(m.thoughtSvc.FetchRecent(m.now(), m.cfg.Layout()))
}

func (m *AppModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 4 // Reserve space for tab and status bars
		m.captureView.SetSize(msg.Width, contentHeight)
		m.reviewView.SetSize(msg.Width, contentHeight)
		m.settingsView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewReview {
			m.refreshReview()
		}
		return m, nil

	case DataRefreshMsg:
		m.refreshReview()
		return m, nil

	case SaveThoughtMsg:
		return m.saveThought(msg)

	case PromptsChangedMsg:
		previous := m.cfg.Prompts
		m.cfg.Prompts = msg.Prompts
		if err := m.cfg.Save(); err != nil {
			m.cfg.Prompts = previous
			return m.settingsSaved(SettingsSavedMsg{Err: err})
		}
		m.settingsView.SetData(m.cfg.Prompts, m.cfg.DailyNoteFolder, m.cfg.DailyNoteFormat)
		return m.settingsSaved(SettingsSavedMsg{Status: msg.Status})

	case LayoutChangedMsg:
		previous := *m.cfg
		m.cfg.DailyNoteFolder = msg.Folder
		m.cfg.DailyNoteFormat = msg.Format
		err := m.cfg.Validate()
		if err == nil {
			err = m.cfg.Save()
		}
		if err != nil {
			*m.cfg = previous
			return m.settingsSaved(SettingsSavedMsg{Err: err})
		}
		m.settingsView.SetData(m.cfg.Prompts, m.cfg.DailyNoteFolder, m.cfg.DailyNoteFormat)
		m.refreshReview()
		return m.settingsSaved(SettingsSavedMsg{Status: "Daily notes: " + m.thoughtSvc.NotePath(m.now(), m.cfg.Layout())})

	case SettingsSavedMsg:
		return m.settingsSaved(msg)

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		m.setStatus("", false)

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.acceptsGlobalKeys() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1":
				return m, messages.SwitchView(ViewCapture)
			case "2":
				return m, messages.SwitchView(ViewReview)
			case "3":
				return m, messages.SwitchView(ViewPrompts)
			case "tab":
				return m, messages.SwitchView((m.currentView + 1) % 3)
			case "shift+tab":
				return m, messages.SwitchView((m.currentView + 2) % 3)
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCapture:
		m.captureView, cmd = m.captureView.Update(msg)
	case ViewReview:
		m.reviewView, cmd = m.reviewView.Update(msg)
	case ViewPrompts:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// acceptsGlobalKeys reports whether single-letter keys belong to the app.
// The capture editor and any open settings input consume all typing.
func (m AppModel) acceptsGlobalKeys() bool {
	switch m.currentView {
	case ViewCapture:
		return false
	case ViewPrompts:
		return !m.settingsView.IsInModalState()
	}
	return true
}

func (m AppModel) saveThought(msg SaveThoughtMsg) (tea.Model, tea.Cmd) {
	today := m.now()
	layout := m.cfg.Layout()

	var err error
	if msg.None {
		err = m.thoughtSvc.RecordNone(today, layout)
	} else {
		err = m.thoughtSvc.Record(today, msg.Thought, layout)
	}

	result := ThoughtSavedMsg{Path: m.thoughtSvc.NotePath(today, layout), Err: err}
	m.captureView, _ = m.captureView.Update(result)

	if err != nil {
		logs.Logger.Printf("Error saving thought to %s: %v", result.Path, err)
		m.setStatus(fmt.Sprintf("Error saving thought: %v", err), true)
		return m, nil
	}

	m.setStatus("Thought saved!", false)
	m.currentView = ViewReview
	m.refreshReview()
	return m, nil
}

func (m AppModel) settingsSaved(msg SettingsSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logs.Logger.Printf("Error saving settings: %v", msg.Err)
		m.setStatus(fmt.Sprintf("Error saving settings: %v", msg.Err), true)
		return m, nil
	}
	m.setStatus(msg.Status, false)
	return m, nil
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup("Today's Thought - Keyboard Shortcuts", helpSections(), m.width, m.height)
	}

	var content string
	switch m.currentView {
	case ViewCapture:
		content = m.captureView.View()
	case ViewReview:
		content = m.reviewView.View()
	case ViewPrompts:
		content = m.settingsView.View()
	}

	statusText := m.status
	statusStyle := StatusOkStyle
	if m.statusErr {
		statusStyle = StatusErrStyle
	}
	if statusText == "" {
		statusText = "1:today 2:review 3:prompts | tab: next | ?:help | q:quit"
		statusStyle = HelpStyle
	}
	statusBar := StatusBarStyle.Width(m.width).Render(statusStyle.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), content, statusBar)
}

func (m AppModel) renderTabs() string {
	var tabs []string
	for _, v := range []ViewType{ViewCapture, ViewReview, ViewPrompts} {
		label := fmt.Sprintf("%d %s", int(v)+1, v)
		if v == m.currentView {
			tabs = append(tabs, theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(label))
		}
	}
	return theme.TabBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(tabs, "   ")...))
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, item)
	}
	return out
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{Title: "Global Navigation", Binds: []shared.HelpBind{
			{Key: "1 / 2 / 3", Desc: "Today / review / prompts"},
			{Key: "tab", Desc: "Next view"},
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		}},
		{Title: "Today", Binds: []shared.HelpBind{
			{Key: "ctrl+s", Desc: "Save thought"},
			{Key: "ctrl+n", Desc: "No thoughts or time"},
			{Key: "ctrl+r", Desc: "Review"},
			{Key: "ctrl+g", Desc: "Prompts"},
			{Key: "esc", Desc: "Quit"},
		}},
		{Title: "Review", Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Scroll"},
			{Key: "r", Desc: "Reload"},
			{Key: "enter / c", Desc: "Back to today"},
		}},
		{Title: "Prompts", Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Navigate prompts"},
			{Key: "/", Desc: "Search"},
			{Key: "n", Desc: "New prompt"},
			{Key: "enter", Desc: "Edit prompt"},
			{Key: "d", Desc: "Delete prompt"},
			{Key: "f / F", Desc: "Edit folder / format"},
		}},
	}
}
