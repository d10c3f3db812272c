package tui

import "todaysthought/internal/tui/theme"

var (
	StatusBarStyle = theme.StatusBar
	HelpStyle      = theme.HelpHint
	StatusOkStyle  = theme.Ok
	StatusErrStyle = theme.Error
)
