package shared

import "strings"

// CenterWithBottomHints renders content vertically centered in the available
// height, with hint text pinned to the very bottom line.
func CenterWithBottomHints(content, hints string, height int) string {
	contentLines := splitLines(content)
	hintLines := splitLines(hints)

	gap := height - len(contentLines) - len(hintLines)
	if gap <= 0 {
		return strings.Join(append(contentLines, hintLines...), "\n")
	}

	topPad := gap / 2
	lines := make([]string, 0, height)
	lines = append(lines, make([]string, topPad)...)
	lines = append(lines, contentLines...)
	lines = append(lines, make([]string, gap-topPad)...)
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
