package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashflow/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	negativeStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	positiveStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)
)

// SignStyle returns the red style for negative cash flow and blue otherwise.
func SignStyle(sc model.SignClass) lipgloss.Style {
	if sc == model.SignNegative {
		return negativeStyle
	}
	return positiveStyle
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil

	// Signs optionally colours the cells listed in SignCols for each row.
	Signs    []model.SignClass
	SignCols []int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(62).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderSubtitle renders a muted line under a title.
func RenderSubtitle(s string) string {
	return "  " + mutedStyle.Render(s)
}

// RenderTable renders a bordered table with headers and rows. A row holding a
// single "---" cell renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	signCol := make(map[int]bool, len(t.SignCols))
	for _, c := range t.SignCols {
		signCol[c] = true
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(ruleLine("╭", "┬", "╮", widths))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		b.WriteString(ruleLine("├", "┼", "┤", widths))
	}

	for r, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(ruleLine("├", "┼", "┤", widths))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align every column except the first
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			var padded string
			if i == 0 {
				padded = " " + cell + strings.Repeat(" ", pad) + " "
			} else {
				padded = " " + strings.Repeat(" ", pad) + cell + " "
			}

			style := valueStyle
			if signCol[i] && r < len(t.Signs) {
				style = SignStyle(t.Signs[r])
			}
			b.WriteString(style.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(ruleLine("╰", "┴", "╯", widths))
	return b.String()
}

func ruleLine(left, mid, right string, widths []int) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series of values.
// Values are scaled between the series minimum and maximum so negative
// amounts still render.
func RenderSparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := float64(hi - lo)

	var b strings.Builder
	for _, v := range values {
		idx := len(blocks) - 1
		if span > 0 {
			idx = int(float64(v-lo) / span * float64(len(blocks)-1))
		}
		b.WriteRune(blocks[min(max(idx, 0), len(blocks)-1)])
	}
	return b.String()
}

// RenderSignedBar renders a bar centred on a zero axis: negative values grow
// left in red, non-negative values grow right in blue. halfWidth is the
// maximum bar length on each side.
func RenderSignedBar(value, maxAbs int64, halfWidth int) string {
	if halfWidth < 1 {
		halfWidth = 1
	}
	n := 0
	if maxAbs > 0 {
		abs := value
		if abs < 0 {
			abs = -abs
		}
		n = int(float64(abs) / float64(maxAbs) * float64(halfWidth))
		n = min(n, halfWidth)
		if n == 0 && value != 0 {
			n = 1
		}
	}

	left := strings.Repeat(" ", halfWidth)
	right := strings.Repeat(" ", halfWidth)
	if value < 0 {
		left = strings.Repeat(" ", halfWidth-n) + negativeStyle.Render(strings.Repeat("█", n))
	} else {
		right = positiveStyle.Render(strings.Repeat("█", n)) + strings.Repeat(" ", halfWidth-n)
	}
	return left + dimStyle.Render("│") + right
}

// RenderHorizontalBar renders a single-colour bar proportional to value.
func RenderHorizontalBar(value, maxValue int64, maxWidth int, color lipgloss.Color) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	barLen := int(float64(value) / float64(maxValue) * float64(maxWidth))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
}
