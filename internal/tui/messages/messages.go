package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewCapture ViewType = iota
	ViewReview
	ViewPrompts
)

// String returns the tab label of the view
func (v ViewType) String() string {
	switch v {
	case ViewCapture:
		return "Today"
	case ViewReview:
		return "Review"
	case ViewPrompts:
		return "Prompts"
	}
	return "Unknown"
}

// ParseView maps a -view flag value to a ViewType, defaulting to capture
func ParseView(name string) ViewType {
	switch name {
	case "review":
		return ViewReview
	case "prompts", "settings":
		return ViewPrompts
	}
	return ViewCapture
}

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// SaveThoughtMsg asks the app to record today's thought.
// None records "no thoughts or time" and ignores Thought.
type SaveThoughtMsg struct {
	Thought string
	None    bool
}

// ThoughtSavedMsg reports the outcome of a SaveThoughtMsg
type ThoughtSavedMsg struct {
	Path string
	Err  error
}

// PromptsChangedMsg carries the edited prompt list to be persisted
type PromptsChangedMsg struct {
	Prompts []string
	Status  string
}

// LayoutChangedMsg carries an edited daily-note folder or format
type LayoutChangedMsg struct {
	Folder string
	Format string
}

// SettingsSavedMsg reports the outcome of persisting a settings change
type SettingsSavedMsg struct {
	Status string
	Err    error
}

// DataRefreshMsg signals that data should be reloaded
type DataRefreshMsg struct{}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
