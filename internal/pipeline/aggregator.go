// Package pipeline filters generated records and derives the report table.
package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cashflow/internal/generator"
	"github.com/theirongolddev/cashflow/internal/model"
)

// Aggregate augments records with a sign class and a per-year running sum of
// cash flow. The sum follows input order: a year's first occurrence starts a
// new total, later records of that year add to it even if other years are
// interleaved. Records are not re-sorted and missing months are not filled.
func Aggregate(records []model.FinancialRecord) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(records))
	running := make(map[int]int64)

	for _, r := range records {
		running[r.Year] += r.CashFlow
		rows = append(rows, model.ReportRow{
			FinancialRecord:    r,
			SignClass:          model.ClassifySign(r.CashFlow),
			CumulativeCashFlow: running[r.Year],
		})
	}
	return rows
}

// BuildReport generates years of data, keeps the selected months and years,
// and aggregates the result. It is the single entry point for presentation.
func BuildReport(years int, months []model.Month, selectedYears []int, src generator.Source) ([]model.ReportRow, error) {
	records, err := generator.Generate(years, src)
	if err != nil {
		return nil, err
	}
	return Aggregate(Filter(records, months, selectedYears)), nil
}

// Summarize computes one summary per year in first-appearance order.
func Summarize(rows []model.ReportRow) []model.YearSummary {
	years := YearsOf(rows)
	groups := make(map[int][]model.ReportRow, len(years))
	for _, r := range rows {
		groups[r.Year] = append(groups[r.Year], r)
	}

	summaries := make([]model.YearSummary, 0, len(years))
	for _, y := range years {
		summaries = append(summaries, summarize(y, groups[y]))
	}
	return summaries
}

// Totals summarizes every row together. The returned Year is 0.
func Totals(rows []model.ReportRow) model.YearSummary {
	return summarize(0, rows)
}

func summarize(year int, rows []model.ReportRow) model.YearSummary {
	s := model.YearSummary{
		Year:            year,
		AverageCashFlow: decimal.Zero,
		Margin:          decimal.Zero,
	}
	for i, r := range rows {
		s.Months++
		s.Revenue += r.Revenue
		s.Expense += r.Expense
		s.CashFlow += r.CashFlow
		if r.SignClass == model.SignNegative {
			s.NegativeMonths++
		}
		if i == 0 || r.CashFlow > s.BestCashFlow {
			s.BestMonth, s.BestCashFlow = r.Month, r.CashFlow
		}
		if i == 0 || r.CashFlow < s.WorstCashFlow {
			s.WorstMonth, s.WorstCashFlow = r.Month, r.CashFlow
		}
	}

	if s.Months > 0 {
		s.AverageCashFlow = decimal.NewFromInt(s.CashFlow).
			Div(decimal.NewFromInt(int64(s.Months))).
			Round(2)
	}
	if s.Revenue > 0 {
		s.Margin = decimal.NewFromInt(s.CashFlow).
			Div(decimal.NewFromInt(s.Revenue)).
			Round(4)
	}
	return s
}

// SeriesByYear splits rows into per-year chart series, years in
// first-appearance order and values in row order.
func SeriesByYear(rows []model.ReportRow) []model.Series {
	idx := make(map[int]int)
	var series []model.Series

	for _, r := range rows {
		i, ok := idx[r.Year]
		if !ok {
			i = len(series)
			idx[r.Year] = i
			series = append(series, model.Series{Year: r.Year})
		}
		s := &series[i]
		s.Months = append(s.Months, r.Month)
		s.Revenue = append(s.Revenue, r.Revenue)
		s.Expense = append(s.Expense, r.Expense)
		s.CashFlow = append(s.CashFlow, r.CashFlow)
		s.Cumulative = append(s.Cumulative, r.CumulativeCashFlow)
	}
	return series
}
