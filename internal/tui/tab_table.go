package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/tui/components"
	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

// Tab indexes, matching components.Tabs.
const (
	tabTable = iota
	tabCashFlow
	tabCompare
	tabCumulative
)

// Fixed chrome around the content zone: tab bar + pill, metric cards,
// status bar.
const (
	headerHeight = 2
	cardsHeight  = 4
	statusHeight = 1
)

func newReportTable() table.Model {
	t := theme.Active

	columns := []table.Column{
		{Title: "Year", Width: 4},
		{Title: "Month", Width: 5},
		{Title: "Revenue", Width: 13},
		{Title: "Expense", Width: 13},
		{Title: "Cash Flow", Width: 15},
		{Title: "Cumulative", Width: 13},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	s.Selected = s.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(false)
	tbl.SetStyles(s)

	return tbl
}

// tableRows formats report rows for the table. Cash flow carries a sign
// marker because table cells are uncolored.
func tableRows(rows []model.ReportRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		marker := "▲"
		if r.SignClass == model.SignNegative {
			marker = "▼"
		}
		out[i] = table.Row{
			strconv.Itoa(r.Year),
			r.Month.String(),
			cli.FormatMoney(r.Revenue),
			cli.FormatMoney(r.Expense),
			marker + " " + cli.FormatMoney(r.CashFlow),
			cli.FormatMoney(r.CumulativeCashFlow),
		}
	}
	return out
}

// summaryCardHeight is the height of the per-year card under the table.
func (a App) summaryCardHeight() int {
	if len(a.summaries) == 0 {
		return 0
	}
	return 3 + len(a.summaries) // border, title, one line per year
}

// syncTableHeight fits the table to the space left by the surrounding chrome.
func (a *App) syncTableHeight() {
	if a.height == 0 {
		return
	}
	contentH := max(a.height-headerHeight-cardsHeight-statusHeight, minContentHeight)
	a.table.SetHeight(max(contentH-3-a.summaryCardHeight(), 3))
}

func (a App) renderTableTab(cw int) string {
	if len(a.rows) == 0 {
		return components.EmptyCard("Report", cw)
	}

	tableCard := components.ContentCard("Report", a.table.View(), cw)
	if len(a.summaries) == 0 {
		return tableCard
	}
	return tableCard + "\n" + a.renderYearSummaries(cw)
}

// renderYearSummaries lists each year's margin bar, cash flow and worst month.
func (a App) renderYearSummaries(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	barW := max(inner/4, 10)
	lines := make([]string, 0, len(a.summaries))
	for _, s := range a.summaries {
		flow := lipgloss.NewStyle().Foreground(t.SignColor(s.CashFlow)).Background(t.Surface).
			Render(fmt.Sprintf("%14s", cli.FormatMoney(s.CashFlow)))
		worst := muted.Render(fmt.Sprintf("worst %s %s", s.WorstMonth, cli.FormatMoney(s.WorstCashFlow)))
		lines = append(lines, components.RatioBar(strconv.Itoa(s.Year), s.Margin.InexactFloat64(), 4, barW)+
			space.Render("  ")+flow+space.Render("  ")+worst)
	}
	return components.ContentCard("Margin by Year", strings.Join(lines, "\n"), cw)
}
