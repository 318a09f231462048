package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

// LineSeries is one named line of a LineChart.
type LineSeries struct {
	Name   string
	Values []int64
	Color  lipgloss.Color
}

// Sparkline renders a unicode sparkline scaled between the series minimum
// and maximum, so negative amounts still render.
func Sparkline(values []int64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := float64(hi - lo)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := len(blocks) - 1
		if span > 0 {
			idx = int(float64(v-lo) / span * float64(len(blocks)-1))
		}
		buf.WriteRune(blocks[min(max(idx, 0), len(blocks)-1)])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// SignedBarChart renders one bar per value around a zero axis. Bars above
// the axis use the theme's Positive color and bars below it Negative, so a
// bar's color depends only on its own value.
func SignedBarChart(values []int64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	if width < 15 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	var maxPos, maxNeg int64
	for _, v := range values {
		if v > maxPos {
			maxPos = v
		}
		if -v > maxNeg {
			maxNeg = -v
		}
	}
	if maxPos == 0 && maxNeg == 0 {
		maxPos = 1
	}
	maxPos = int64(niceCeiling(float64(maxPos)))
	maxNeg = int64(niceCeiling(float64(maxNeg)))

	// Split rows between the two halves in proportion to their extent,
	// keeping at least one row for any non-empty half.
	plotH := height - 1 // one row for the axis
	posRows := int(math.Round(float64(plotH) * float64(maxPos) / float64(maxPos+maxNeg)))
	if maxPos > 0 && posRows == 0 {
		posRows = 1
	}
	if maxNeg > 0 && posRows == plotH {
		posRows = plotH - 1
	}
	negRows := plotH - posRows

	topLabel := formatChartLabel(float64(maxPos))
	bottomLabel := formatChartLabel(-float64(maxNeg))
	yLabelW := max(len(topLabel), len(bottomLabel), 1) + 1

	chartW := max(width-yLabelW-1, 5)
	values, labels, barW, gap := fitBars(values, labels, chartW)
	n := len(values)
	axisLen := n*barW + max(0, n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	posStyle := lipgloss.NewStyle().Foreground(t.Positive).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Negative).Background(t.Surface)

	upBlocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	writeBars := func(cell func(v int64) (string, lipgloss.Style)) {
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(spaceStyle.Render(strings.Repeat(" ", gap)))
			}
			s, style := cell(v)
			b.WriteString(style.Render(strings.Repeat(s, barW)))
		}
		b.WriteString("\n")
	}

	for row := posRows; row >= 1; row-- {
		rowTop := float64(maxPos) * float64(row) / float64(posRows)
		rowBottom := float64(maxPos) * float64(row-1) / float64(posRows)

		label := ""
		if row == posRows {
			label = topLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))
		writeBars(func(v int64) (string, lipgloss.Style) {
			fv := float64(v)
			switch {
			case fv >= rowTop:
				return "█", posStyle
			case fv > rowBottom:
				idx := int((fv - rowBottom) / (rowTop - rowBottom) * 8)
				return string(upBlocks[min(max(idx, 1), 8)]), posStyle
			default:
				return " ", spaceStyle
			}
		})
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	for row := 1; row <= negRows; row++ {
		b.WriteString("\n")
		rowTop := float64(maxNeg) * float64(row-1) / float64(negRows)
		rowBottom := float64(maxNeg) * float64(row) / float64(negRows)
		half := (rowTop + rowBottom) / 2

		label := ""
		if row == negRows {
			label = bottomLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(spaceStyle.Render(strings.Repeat(" ", gap)))
			}
			depth := -float64(v)
			switch {
			case depth >= rowBottom:
				b.WriteString(negStyle.Render(strings.Repeat("█", barW)))
			case depth >= half:
				b.WriteString(negStyle.Render(strings.Repeat("▀", barW)))
			default:
				b.WriteString(spaceStyle.Render(strings.Repeat(" ", barW)))
			}
		}
	}

	if xl := xAxisLabels(labels, n, barW, gap, axisLen); xl != "" {
		b.WriteString("\n")
		b.WriteString(spaceStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(xl))
	}

	return b.String()
}

// LineChart plots every series on a shared y scale. Points are joined by
// dotted segments; later series draw over earlier ones. A legend line
// follows the x-axis labels.
func LineChart(series []LineSeries, labels []string, width, height int) string {
	n := 0
	for _, s := range series {
		n = max(n, len(s.Values))
	}
	if n == 0 {
		return ""
	}
	t := theme.Active

	lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
	for _, s := range series {
		for _, v := range s.Values {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}

	hiLabel := formatChartLabel(float64(hi))
	loLabel := formatChartLabel(float64(lo))
	yLabelW := max(len(hiLabel), len(loLabel)) + 1

	plotW := max(width-yLabelW-1, 5)
	plotH := max(height-3, 3) // x-axis, labels, legend

	type cell struct {
		r     rune
		color lipgloss.Color
	}
	grid := make([][]cell, plotH)
	for i := range grid {
		grid[i] = make([]cell, plotW)
	}

	xOf := func(i int) int {
		if n == 1 {
			return 0
		}
		return i * (plotW - 1) / (n - 1)
	}
	yOf := func(v float64) int {
		frac := (float64(hi) - v) / float64(hi-lo)
		return min(max(int(math.Round(frac*float64(plotH-1))), 0), plotH-1)
	}

	for _, s := range series {
		for i := 1; i < len(s.Values); i++ {
			x0, x1 := xOf(i-1), xOf(i)
			v0, v1 := float64(s.Values[i-1]), float64(s.Values[i])
			for x := x0 + 1; x < x1; x++ {
				frac := float64(x-x0) / float64(x1-x0)
				grid[yOf(v0+(v1-v0)*frac)][x] = cell{'·', s.Color}
			}
		}
		for i, v := range s.Values {
			grid[yOf(float64(v))][xOf(i)] = cell{'●', s.Color}
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := 0; row < plotH; row++ {
		label := ""
		switch row {
		case 0:
			label = hiLabel
		case plotH - 1:
			label = loLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))
		for _, c := range grid[row] {
			if c.r == 0 {
				b.WriteString(spaceStyle.Render(" "))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(c.color).Background(t.Surface).Render(string(c.r)))
		}
		b.WriteString("\n")
	}

	b.WriteString(spaceStyle.Render(strings.Repeat(" ", yLabelW)))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", plotW)))
	b.WriteString("\n")

	buf := []rune(strings.Repeat(" ", plotW))
	if len(labels) == n {
		lastEnd := -1
		for i, lbl := range labels {
			pos := xOf(i)
			if pos <= lastEnd || pos+len(lbl) > plotW {
				continue
			}
			copy(buf[pos:], []rune(lbl))
			lastEnd = pos + len(lbl)
		}
	}
	b.WriteString(spaceStyle.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(string(buf)))
	b.WriteString("\n")

	b.WriteString(spaceStyle.Render(strings.Repeat(" ", yLabelW+1)))
	for i, s := range series {
		if i > 0 {
			b.WriteString(spaceStyle.Render("  "))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■"))
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(" " + s.Name))
	}

	return b.String()
}

// fitBars picks a bar width and gap for n bars in chartW columns,
// sampling the values down when they cannot all fit.
func fitBars(values []int64, labels []string, chartW int) ([]int64, []string, int, int) {
	n := len(values)
	gap := 1
	if n <= 1 {
		return values, labels, min(chartW, 6), 0
	}

	barW := (chartW - (n - 1)) / n
	if barW < 1 {
		gap = 0
		barW = chartW / n
	}
	if barW < 1 {
		maxN := max(chartW, 2)
		sampled := make([]int64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			src := i * (n - 1) / (maxN - 1)
			sampled[i] = values[src]
			if sampledLabels != nil {
				sampledLabels[i] = labels[src]
			}
		}
		values, labels = sampled, sampledLabels
		barW = 1
	}
	return values, labels, min(barW, 6), gap
}

// xAxisLabels lays out labels under their bars, skipping any that would
// collide with the previous one.
func xAxisLabels(labels []string, n, barW, gap, axisLen int) string {
	if len(labels) != n || n == 0 {
		return ""
	}
	buf := []rune(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, lbl := range labels {
		pos := i * (barW + gap)
		r := []rune(lbl)
		if pos <= lastEnd || pos+len(r) > axisLen {
			continue
		}
		copy(buf[pos:], r)
		lastEnd = pos + len(r)
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// niceCeiling rounds v up to the next multiple of its tick step.
func niceCeiling(v float64) float64 {
	if v <= 0 {
		return 0
	}
	step := chartTickStep(v)
	return math.Ceil(v/step) * step
}

func formatChartLabel(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%s%.0fM", sign, v/1e6)
		}
		return fmt.Sprintf("%s%.1fM", sign, v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%s%.0fk", sign, v/1e3)
		}
		return fmt.Sprintf("%s%.1fk", sign, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", sign, v)
	}
}
