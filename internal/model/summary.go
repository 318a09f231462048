package model

import "github.com/shopspring/decimal"

// YearSummary holds aggregate figures for one year of a report.
// Year is 0 for a grand total across years.
type YearSummary struct {
	Year           int   `json:"year"`
	Months         int   `json:"months"`
	NegativeMonths int   `json:"negative_months"`
	Revenue        int64 `json:"revenue"`
	Expense        int64 `json:"expense"`
	CashFlow       int64 `json:"cash_flow"`

	BestMonth     Month `json:"best_month,omitempty"`
	BestCashFlow  int64 `json:"best_cash_flow"`
	WorstMonth    Month `json:"worst_month,omitempty"`
	WorstCashFlow int64 `json:"worst_cash_flow"`

	AverageCashFlow decimal.Decimal `json:"average_cash_flow"`
	Margin          decimal.Decimal `json:"margin"` // cash flow / revenue
}

// Series holds one year's values in presentation order, for charts.
type Series struct {
	Year       int
	Months     []Month
	Revenue    []int64
	Expense    []int64
	CashFlow   []int64
	Cumulative []int64
}

// Labels returns the month labels of the series.
func (s Series) Labels() []string {
	labels := make([]string, len(s.Months))
	for i, m := range s.Months {
		labels[i] = m.String()
	}
	return labels
}
