package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cashflow/internal/model"
)

func resetMoneyFormat(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { _ = SetMoneyFormat("en", "R$") })
	if err := SetMoneyFormat("en", "R$"); err != nil {
		t.Fatal(err)
	}
}

func TestFormatMoney(t *testing.T) {
	resetMoneyFormat(t)

	tests := []struct {
		in   int64
		want string
	}{
		{0, "R$0.00"},
		{999, "R$999.00"},
		{15000, "R$15,000.00"},
		{-4000, "R$-4,000.00"},
		{1234567, "R$1,234,567.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetMoneyFormat_Locale(t *testing.T) {
	resetMoneyFormat(t)

	if err := SetMoneyFormat("pt-BR", "R$ "); err != nil {
		t.Fatalf("SetMoneyFormat: %v", err)
	}
	got := FormatMoney(15000)
	if !strings.HasPrefix(got, "R$ ") || !strings.HasSuffix(got, ",00") {
		t.Errorf("pt-BR FormatMoney(15000) = %q", got)
	}
}

func TestSetMoneyFormat_BadLocale(t *testing.T) {
	resetMoneyFormat(t)

	if err := SetMoneyFormat("not a locale!", "$"); err == nil {
		t.Fatal("expected error for bad locale")
	}
	if got := FormatMoney(1); got != "R$1.00" {
		t.Errorf("format changed after failed SetMoneyFormat: %q", got)
	}
}

func TestFormatDecimalMoney(t *testing.T) {
	resetMoneyFormat(t)

	if got := FormatDecimalMoney(decimal.RequireFromString("3000.456")); got != "R$3,000.46" {
		t.Errorf("FormatDecimalMoney = %q", got)
	}
}

func TestFormatMargin(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.2431", "24.3%"},
		{"0", "0.0%"},
		{"-0.5", "-50.0%"},
	}
	for _, tt := range tests {
		if got := FormatMargin(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMargin(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234, "1.2K"},
		{-15000, "-15.0K"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
		{-98765, "-98,765"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	resetMoneyFormat(t)

	if got := FormatDelta(12000, 10000); got != "+R$2,000.00" {
		t.Errorf("positive delta = %q", got)
	}
	if got := FormatDelta(10000, 12500); got != "-R$2,500.00" {
		t.Errorf("negative delta = %q", got)
	}
}

func TestFormatYearsAndMonths(t *testing.T) {
	if got := FormatYears([]int{2023, 2024}); got != "2023, 2024" {
		t.Errorf("FormatYears = %q", got)
	}
	if got := FormatMonths([]model.Month{model.Jan, model.Mar}); got != "Jan Mar" {
		t.Errorf("FormatMonths = %q", got)
	}
	if got := FormatMonths(model.Months); got != "all months" {
		t.Errorf("FormatMonths(all) = %q", got)
	}
}
