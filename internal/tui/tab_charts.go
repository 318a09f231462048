package tui

import (
	"strconv"

	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/tui/components"
	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

// chartHeight is the drawable height inside a ContentCard of outer height h.
func chartHeight(h int) int {
	return max(h-3, 3) // border + title
}

func (a App) renderCashFlowTab(cw, h int) string {
	if len(a.rows) == 0 {
		return components.EmptyCard("Monthly Cash Flow", cw)
	}

	multiYear := len(a.series) > 1
	values := make([]int64, len(a.rows))
	labels := make([]string, len(a.rows))
	for i, r := range a.rows {
		values[i] = r.CashFlow
		labels[i] = rowLabel(r, multiYear)
	}

	chart := components.SignedBarChart(values, labels, components.CardInnerWidth(cw), chartHeight(h)-1)
	return components.ContentCard("Monthly Cash Flow", chart, cw)
}

func (a App) renderCompareTab(cw, h int) string {
	if len(a.series) == 0 {
		return components.EmptyCard("Revenue vs Expense", cw)
	}

	chart := components.LineChart(compareLines(a.series, theme.Active), a.series[0].Labels(), components.CardInnerWidth(cw), chartHeight(h))
	return components.ContentCard("Revenue vs Expense", chart, cw)
}

// compareLines returns a revenue and an expense line per year. A single year
// keeps the theme's revenue and expense colors.
func compareLines(series []model.Series, t theme.Theme) []components.LineSeries {
	lines := make([]components.LineSeries, 0, 2*len(series))
	for i, s := range series {
		revColor, expColor := t.Revenue, t.Expense
		if len(series) > 1 {
			revColor, expColor = t.SeriesColor(2*i), t.SeriesColor(2*i+1)
		}
		year := strconv.Itoa(s.Year)
		lines = append(lines,
			components.LineSeries{Name: "Revenue " + year, Values: s.Revenue, Color: revColor},
			components.LineSeries{Name: "Expense " + year, Values: s.Expense, Color: expColor},
		)
	}
	return lines
}

func (a App) renderCumulativeTab(cw, h int) string {
	if len(a.series) == 0 {
		return components.EmptyCard("Cumulative Cash Flow", cw)
	}
	t := theme.Active

	lines := make([]components.LineSeries, len(a.series))
	for i, s := range a.series {
		lines[i] = components.LineSeries{
			Name:   strconv.Itoa(s.Year),
			Values: s.Cumulative,
			Color:  t.SeriesColor(i),
		}
	}

	chart := components.LineChart(lines, a.series[0].Labels(), components.CardInnerWidth(cw), chartHeight(h))
	return components.ContentCard("Cumulative Cash Flow", chart, cw)
}
