// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/theirongolddev/cashflow/internal/model"
)

var (
	moneyMu      sync.RWMutex
	moneyPrinter = message.NewPrinter(language.English)
	moneySymbol  = "R$"
)

// SetMoneyFormat sets the locale used for digit grouping and the currency
// symbol prefixed to amounts.
func SetMoneyFormat(locale, symbol string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("%w: locale %q: %v", model.ErrInvalidArgument, locale, err)
	}
	moneyMu.Lock()
	defer moneyMu.Unlock()
	moneyPrinter = message.NewPrinter(tag)
	moneySymbol = symbol
	return nil
}

// FormatMoney formats a whole-unit amount with the currency symbol and two
// decimals, e.g. 15000 -> "R$15,000.00", -4000 -> "R$-4,000.00".
func FormatMoney(amount int64) string {
	moneyMu.RLock()
	defer moneyMu.RUnlock()
	return moneySymbol + moneyPrinter.Sprintf("%.2f", float64(amount))
}

// FormatDecimalMoney formats a decimal amount like FormatMoney.
func FormatDecimalMoney(d decimal.Decimal) string {
	moneyMu.RLock()
	defer moneyMu.RUnlock()
	return moneySymbol + moneyPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// FormatMargin formats a ratio as a percentage with one decimal.
// e.g., 0.2431 -> "24.3%"
func FormatMargin(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatCompact formats an amount with a K/M suffix for chart labels.
// e.g., 1234 -> "1.2K", -15000 -> "-15.0K"
func FormatCompact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDelta formats the signed difference between two amounts.
func FormatDelta(current, previous int64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}

// FormatYears joins years for titles, e.g. [2023 2024] -> "2023, 2024".
func FormatYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}

// FormatMonths joins month labels, collapsing the full year to "all months".
func FormatMonths(months []model.Month) string {
	seen := make(map[model.Month]struct{}, len(months))
	parts := make([]string, len(months))
	for i, m := range months {
		seen[m] = struct{}{}
		parts[i] = m.String()
	}
	if len(seen) == len(model.Months) {
		return "all months"
	}
	return strings.Join(parts, " ")
}
