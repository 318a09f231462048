// Package generator fabricates synthetic monthly revenue and expense figures.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/theirongolddev/cashflow/internal/model"
)

// Draw bounds, half-open: [min, max).
const (
	RevenueMin = 10000
	RevenueMax = 20000
	ExpenseMin = 5000
	ExpenseMax = 15000
)

// Source supplies uniform integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for a non-nil seed and a freshly
// seeded one otherwise.
func NewSource(seed *int64) Source {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // synthetic data
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)) //nolint:gosec // synthetic data
}

// Generate produces 12 records per year for years [FirstYear, FirstYear+years),
// grouped by year ascending with months in calendar order. For each year all
// twelve revenues are drawn before the twelve expenses. A nil src draws from a
// fresh unseeded source.
func Generate(years int, src Source) ([]model.FinancialRecord, error) {
	if years < 1 {
		return nil, fmt.Errorf("%w: years must be >= 1, got %d", model.ErrInvalidArgument, years)
	}
	if src == nil {
		src = NewSource(nil)
	}

	records := make([]model.FinancialRecord, 0, years*len(model.Months))
	revenues := make([]int64, len(model.Months))
	expenses := make([]int64, len(model.Months))

	for year := model.FirstYear; year < model.FirstYear+years; year++ {
		for i := range revenues {
			revenues[i] = draw(src, RevenueMin, RevenueMax)
		}
		for i := range expenses {
			expenses[i] = draw(src, ExpenseMin, ExpenseMax)
		}
		for i, m := range model.Months {
			records = append(records, model.NewRecord(year, m, revenues[i], expenses[i]))
		}
	}
	return records, nil
}

func draw(src Source, lo, hi int) int64 {
	return int64(lo + src.IntN(hi-lo))
}
