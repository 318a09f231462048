package pipeline

import "github.com/theirongolddev/cashflow/internal/model"

// Filter returns the records whose month is in months and whose year is in
// years, preserving input order. An empty months or years selection yields an
// empty, non-nil slice. The input is never modified.
func Filter(records []model.FinancialRecord, months []model.Month, years []int) []model.FinancialRecord {
	result := make([]model.FinancialRecord, 0)
	if len(months) == 0 || len(years) == 0 {
		return result
	}

	monthSet := make(map[model.Month]struct{}, len(months))
	for _, m := range months {
		monthSet[m] = struct{}{}
	}
	yearSet := make(map[int]struct{}, len(years))
	for _, y := range years {
		yearSet[y] = struct{}{}
	}

	for _, r := range records {
		if _, ok := monthSet[r.Month]; !ok {
			continue
		}
		if _, ok := yearSet[r.Year]; !ok {
			continue
		}
		result = append(result, r)
	}
	return result
}

// YearsOf returns the distinct years of rows in first-appearance order.
func YearsOf(rows []model.ReportRow) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range rows {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	return years
}

// GeneratedYears returns the years a span of n generated years covers.
func GeneratedYears(n int) []int {
	if n < 1 {
		return nil
	}
	years := make([]int, n)
	for i := range years {
		years[i] = model.FirstYear + i
	}
	return years
}

// AllMonths returns a fresh copy of the calendar-ordered month list.
func AllMonths() []model.Month {
	return append([]model.Month(nil), model.Months...)
}
