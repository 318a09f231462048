// Package tui provides the interactive Bubble Tea cash-flow dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/config"
	"github.com/theirongolddev/cashflow/internal/generator"
	"github.com/theirongolddev/cashflow/internal/logger"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
	"github.com/theirongolddev/cashflow/internal/tui/components"
	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

// Options seeds the dashboard's initial state.
type Options struct {
	Years         int
	MaxYears      int
	Months        []model.Month // nil means every month, empty means none
	SelectedYears []int         // nil means every generated year, empty means none
	Seed          *int64

	// Persist saves filter changes to the config file.
	Persist bool
	Logger  zerolog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	// Selection
	years         int
	maxYears      int
	months        []model.Month
	selectedYears []int // nil means every generated year
	seed          *int64
	draw          int64 // bumped by each regenerate

	// Pre-computed for current selection
	rows      []model.ReportRow
	summaries []model.YearSummary
	totals    model.YearSummary
	series    []model.Series
	err       error

	table table.Model

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	filterForm *huh.Form
	filterVals *filterValues

	persist bool
	log     zerolog.Logger
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// NewApp builds the dashboard and computes the first report.
func NewApp(opts Options) App {
	if opts.MaxYears < 1 {
		opts.MaxYears = config.DefaultConfig().General.MaxYears
	}
	years := min(max(opts.Years, 1), opts.MaxYears)

	months := pipeline.AllMonths()
	if opts.Months != nil {
		months = normalizeMonths(opts.Months)
	}

	var selected []int
	if opts.SelectedYears != nil {
		selected = normalizeYears(opts.SelectedYears)
	}

	a := App{
		years:         years,
		maxYears:      opts.MaxYears,
		months:        months,
		selectedYears: selected,
		seed:          opts.Seed,
		table:         newReportTable(),
		persist:       opts.Persist,
		log:           logger.Component(opts.Logger, "tui"),
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// yearSelection resolves the active year filter.
func (a App) yearSelection() []int {
	if a.selectedYears == nil {
		return pipeline.GeneratedYears(a.years)
	}
	return a.selectedYears
}

// drawSeed derives the seed for the current draw so that regenerating a
// seeded dashboard walks a reproducible sequence.
func (a App) drawSeed() *int64 {
	if a.seed == nil {
		return nil
	}
	s := *a.seed + a.draw
	return &s
}

// recompute rebuilds the report for the current selection.
func (a *App) recompute() {
	rows, err := pipeline.BuildReport(a.years, a.months, a.yearSelection(), generator.NewSource(a.drawSeed()))
	if err != nil {
		a.err = err
		a.rows, a.summaries, a.series = nil, nil, nil
		a.totals = pipeline.Totals(nil)
		a.table.SetRows(nil)
		a.log.Error().Err(err).Msg("building report")
		return
	}

	a.err = nil
	a.rows = rows
	a.summaries = pipeline.Summarize(rows)
	a.totals = pipeline.Totals(rows)
	a.series = pipeline.SeriesByYear(rows)
	a.table.SetRows(tableRows(rows))
	a.table.GotoTop()
	a.syncTableHeight()

	a.log.Debug().
		Int(logger.FieldYears, a.years).
		Int(logger.FieldRows, len(rows)).
		Int64("draw", a.draw).
		Msg("report rebuilt")
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.syncTableHeight()
		if a.filterForm != nil {
			a.filterForm = a.filterForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.filterForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The filter form intercepts all keys while open
		if a.filterForm != nil {
			return a.updateFilterForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "f":
			return a.openFilterForm()
		case "+", "=":
			if a.years < a.maxYears {
				a.setYears(a.years + 1)
			}
			return a, nil
		case "-", "_":
			if a.years > 1 {
				a.setYears(a.years - 1)
			}
			return a, nil
		case "g":
			a.draw++
			a.recompute()
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		// Remaining keys scroll the table
		if a.activeTab == tabTable {
			var cmd tea.Cmd
			a.table, cmd = a.table.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the filter form (cursor blinks, etc.)
	if a.filterForm != nil {
		return a.updateFilterForm(msg)
	}

	return a, nil
}

// setYears changes the generated span. The year filter resets to every
// generated year because the set of available years changed.
func (a *App) setYears(n int) {
	a.years = n
	a.selectedYears = nil
	a.recompute()
	a.saveSelection()
}

func (a App) openFilterForm() (tea.Model, tea.Cmd) {
	a.filterVals = &filterValues{
		months: append([]model.Month(nil), a.months...),
		years:  append([]int(nil), a.yearSelection()...),
	}
	a.filterForm = newFilterForm(a.filterVals, pipeline.GeneratedYears(a.years))
	if a.width > 0 {
		a.filterForm = a.filterForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.filterForm.Init()
}

func (a App) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.filterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.filterForm = f
	}

	switch a.filterForm.State {
	case huh.StateCompleted:
		a.applyFilter(*a.filterVals)
		a.filterForm, a.filterVals = nil, nil
		return a, nil
	case huh.StateAborted:
		a.filterForm, a.filterVals = nil, nil
		return a, nil
	}
	return a, cmd
}

// applyFilter installs a new selection. Empty selections are kept as-is and
// render placeholders.
func (a *App) applyFilter(v filterValues) {
	a.months = normalizeMonths(v.months)
	years := normalizeYears(v.years)
	if sameInts(years, pipeline.GeneratedYears(a.years)) {
		years = nil
	}
	a.selectedYears = years
	a.recompute()
	a.saveSelection()
}

// saveSelection persists the selection to the config file, best-effort.
func (a App) saveSelection() {
	if !a.persist {
		return
	}
	cfg, err := config.LoadFile()
	if err != nil {
		a.log.Warn().Err(err).Msg("loading config; selection not saved")
		return
	}
	cfg.General.Years = a.years

	// The file reads a missing list as "all", so an empty filter keeps the
	// previously saved one.
	if len(a.months) == 0 || (a.selectedYears != nil && len(a.selectedYears) == 0) {
		a.log.Debug().Msg("empty filter not saved")
	} else {
		cfg.General.Months = nil
		if len(a.months) != len(model.Months) {
			cfg.General.Months = make([]string, len(a.months))
			for i, m := range a.months {
				cfg.General.Months[i] = m.String()
			}
		}
		cfg.General.SelectedYears = a.selectedYears
	}
	if err := config.Save(cfg); err != nil {
		a.log.Warn().Err(err).Str(logger.FieldPath, config.Path()).Msg("saving selection")
	}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.filterForm != nil {
		return a.filterForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cashflow needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"t c r u", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"↑ ↓ j k", "Scroll the table"},
		}},
		{"Selection", []struct{ key, desc string }{
			{"f", "Filter months and years"},
			{"+ -", fmt.Sprintf("Years to generate (1-%d)", a.maxYears)},
			{"g", "Regenerate with a fresh draw"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + selection pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	yearsLabel := "years"
	if a.years == 1 {
		yearsLabel = "year"
	}
	selYears := "none"
	if ys := a.yearSelection(); len(ys) > 0 {
		selYears = cli.FormatYears(ys)
	}
	selMonths := "none"
	if len(a.months) > 0 {
		selMonths = cli.FormatMonths(a.months)
	}
	pill := pillStyle.Render(" ") +
		accentStyle.Render(fmt.Sprintf("%d %s", a.years, yearsLabel)) +
		pillStyle.Render(" │ ") + accentStyle.Render(selYears) +
		pillStyle.Render(" │ ") + accentStyle.Render(selMonths) +
		pillStyle.Render(" ")

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill)

	// 2. Status bar
	info := fmt.Sprintf("%d rows", len(a.rows))
	if a.seed != nil {
		info = fmt.Sprintf("seed %d · draw %d · %s", *a.seed, a.draw, info)
	} else if a.draw > 0 {
		info = fmt.Sprintf("draw %d · %s", a.draw, info)
	}
	statusBar := components.RenderStatusBar(w, info)

	// 3. Metric cards
	cards := a.renderMetricCards(cw)

	// 4. Content zone
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar)-lipgloss.Height(cards), minContentHeight)

	var content string
	switch {
	case a.err != nil:
		content = components.ContentCard("Error", a.err.Error(), cw)
	case a.activeTab == tabTable:
		content = a.renderTableTab(cw)
	case a.activeTab == tabCashFlow:
		content = a.renderCashFlowTab(cw, contentH)
	case a.activeTab == tabCompare:
		content = a.renderCompareTab(cw, contentH)
	case a.activeTab == tabCumulative:
		content = a.renderCumulativeTab(cw, contentH)
	}

	body := cards + "\n" + padHeight(truncateHeight(content, contentH), contentH)
	body = fillLinesWithBackground(body, cw, t.Background)
	body = lipgloss.Place(w, lipgloss.Height(body), lipgloss.Center, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderMetricCards(cw int) string {
	t := theme.Active
	tot := a.totals

	negative := fmt.Sprintf("%d / %d", tot.NegativeMonths, tot.Months)
	metrics := []components.Metric{
		{Label: "Revenue", Value: cli.FormatMoney(tot.Revenue), Color: t.Revenue},
		{Label: "Expense", Value: cli.FormatMoney(tot.Expense), Color: t.Expense},
		{Label: "Cash Flow", Value: cli.FormatMoney(tot.CashFlow), Color: t.SignColor(tot.CashFlow)},
		{Label: "Negative Months", Value: negative},
	}
	if !a.isCompactLayout() {
		metrics = append(metrics,
			components.Metric{Label: "Margin", Value: cli.FormatMargin(tot.Margin)},
			components.Metric{Label: "Avg / Month", Value: cli.FormatDecimalMoney(tot.AverageCashFlow)},
		)
	}
	return components.MetricCardRow(metrics, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

// rowLabel names a row on a chart axis, adding the year when several years
// share the axis.
func rowLabel(r model.ReportRow, multiYear bool) string {
	if !multiYear {
		return r.Month.String()
	}
	return fmt.Sprintf("%s'%02d", r.Month, r.Year%100)
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color,
// so gaps between cards and empty lines keep the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
