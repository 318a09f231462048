package tui

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/cashflow/internal/model"
)

// filterValues is bound to the filter form's fields.
type filterValues struct {
	months []model.Month
	years  []int
}

// newFilterForm builds the month and year multiselects. available lists the
// years in the current span; both fields start from the active selection.
func newFilterForm(vals *filterValues, available []int) *huh.Form {
	monthOpts := make([]huh.Option[model.Month], len(model.Months))
	for i, m := range model.Months {
		monthOpts[i] = huh.NewOption(m.String(), m).Selected(slices.Contains(vals.months, m))
	}

	yearOpts := make([]huh.Option[int], len(available))
	for i, y := range available {
		yearOpts[i] = huh.NewOption(strconv.Itoa(y), y).Selected(slices.Contains(vals.years, y))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[model.Month]().
				Title("Months").
				Description("x to toggle, enter to confirm").
				Options(monthOpts...).
				Height(14).
				Value(&vals.months),
			huh.NewMultiSelect[int]().
				Title("Years").
				Options(yearOpts...).
				Value(&vals.years),
		),
	).WithShowHelp(true)
}

// normalizeMonths returns months deduplicated in calendar order.
func normalizeMonths(months []model.Month) []model.Month {
	out := make([]model.Month, 0, len(months))
	for _, m := range model.Months {
		if slices.Contains(months, m) {
			out = append(out, m)
		}
	}
	return out
}

// normalizeYears returns years deduplicated in ascending order. The result
// is never nil, so an empty selection stays distinct from "every year".
func normalizeYears(years []int) []int {
	out := append([]int{}, years...)
	slices.Sort(out)
	return slices.Compact(out)
}
