// Package model defines domain types for the cash-flow report.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned (wrapped) for out-of-range or unparseable inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// FirstYear is the first year of every generated dataset.
const FirstYear = 2023

// Month is a calendar month, 1 (Jan) through 12 (Dec).
type Month int

// Calendar months.
const (
	Jan Month = iota + 1
	Feb
	Mar
	Apr
	May
	Jun
	Jul
	Aug
	Sep
	Oct
	Nov
	Dec
)

// Months lists every month in calendar order.
var Months = []Month{Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec}

var monthLabels = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthAliases maps lower-cased alternative spellings to months.
// Includes the Portuguese abbreviations the dashboard historically used.
var monthAliases = map[string]Month{
	"january": Jan, "february": Feb, "march": Mar, "april": Apr,
	"june": Jun, "july": Jul, "august": Aug, "september": Sep,
	"october": Oct, "november": Nov, "december": Dec,
	"fev": Feb, "abr": Apr, "mai": May, "ago": Aug, "set": Sep, "out": Oct, "dez": Dec,
}

// Valid reports whether m is one of the twelve calendar months.
func (m Month) Valid() bool {
	return m >= Jan && m <= Dec
}

// String returns the three-letter label, e.g. "Jan".
func (m Month) String() string {
	if !m.Valid() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthLabels[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidArgument, int(m))
	}
	return []byte(monthLabels[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMonth accepts a label ("Jan"), a full English name, a number 1-12,
// or a Portuguese abbreviation ("Fev"). Matching is case-insensitive.
func ParseMonth(s string) (Month, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i := 1; i < len(monthLabels); i++ {
		if strings.ToLower(monthLabels[i]) == key {
			return Month(i), nil
		}
	}
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	if n, err := strconv.Atoi(key); err == nil && Month(n).Valid() {
		return Month(n), nil
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidArgument, s)
}

// ParseMonths parses every entry, splitting comma-separated values.
func ParseMonths(values []string) ([]Month, error) {
	var out []Month
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			m, err := ParseMonth(part)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
	}
	return out, nil
}

// SignClass labels a cash flow as negative or non-negative for styling.
type SignClass string

// Sign classes.
const (
	SignNegative    SignClass = "negative"
	SignNonNegative SignClass = "non-negative"
)

// ClassifySign returns SignNegative iff cashFlow < 0.
func ClassifySign(cashFlow int64) SignClass {
	if cashFlow < 0 {
		return SignNegative
	}
	return SignNonNegative
}

// FinancialRecord is one synthetic (year, month) row.
type FinancialRecord struct {
	Year     int   `json:"year"`
	Month    Month `json:"month"`
	Revenue  int64 `json:"revenue"`
	Expense  int64 `json:"expense"`
	CashFlow int64 `json:"cash_flow"`
}

// NewRecord builds a record with CashFlow derived from revenue and expense.
func NewRecord(year int, month Month, revenue, expense int64) FinancialRecord {
	return FinancialRecord{
		Year:     year,
		Month:    month,
		Revenue:  revenue,
		Expense:  expense,
		CashFlow: revenue - expense,
	}
}

// ReportRow is a filtered record augmented for presentation.
type ReportRow struct {
	FinancialRecord
	SignClass          SignClass `json:"sign_class"`
	CumulativeCashFlow int64     `json:"cumulative_cash_flow"`
}
