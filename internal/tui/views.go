package tui

import "todaysthought/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewCapture = messages.ViewCapture
	ViewReview  = messages.ViewReview
	ViewPrompts = messages.ViewPrompts
)

type SwitchViewMsg = messages.SwitchViewMsg
type SaveThoughtMsg = messages.SaveThoughtMsg
type ThoughtSavedMsg = messages.ThoughtSavedMsg
type PromptsChangedMsg = messages.PromptsChangedMsg
type LayoutChangedMsg = messages.LayoutChangedMsg
type SettingsSavedMsg = messages.SettingsSavedMsg
type DataRefreshMsg = messages.DataRefreshMsg
