package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

// RatioBar renders a labeled bar for a ratio such as a year's margin.
// Negative ratios draw an empty bar in the Negative color; the printed
// percentage keeps its sign.
func RatioBar(label string, ratio float64, labelW, barWidth int) string {
	t := theme.Active

	fill := t.Positive
	if ratio < 0 {
		fill = t.Negative
	}
	pct := min(max(ratio, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(fill).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%6.1f%%", ratio*100))
}
