package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and info on the right.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [f]ilter  [+/-]years  [g]enerate  [?]help  [q]uit"
	right := ""
	if info != "" {
		right = info + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the info before clipping the key hints.
		right = ""
		padding = max(0, width-lipgloss.Width(left))
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
