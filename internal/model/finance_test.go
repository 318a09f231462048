package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want Month
	}{
		{"Jan", Jan},
		{"jan", Jan},
		{" DEC ", Dec},
		{"february", Feb},
		{"Fev", Feb},
		{"Mai", May},
		{"Ago", Aug},
		{"Set", Sep},
		{"Out", Oct},
		{"Dez", Dec},
		{"7", Jul},
		{"12", Dec},
	}
	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		if err != nil {
			t.Errorf("ParseMonth(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMonth(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, in := range []string{"", "Janu", "13", "0", "Smarch"} {
		if _, err := ParseMonth(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseMonth(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestParseMonths_CommaLists(t *testing.T) {
	got, err := ParseMonths([]string{"Jan,Feb", "mar", ""})
	if err != nil {
		t.Fatal(err)
	}
	want := []Month{Jan, Feb, Mar}
	if len(got) != len(want) {
		t.Fatalf("ParseMonths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseMonths = %v, want %v", got, want)
		}
	}
}

func TestMonthsCalendarOrder(t *testing.T) {
	if len(Months) != 12 {
		t.Fatalf("len(Months) = %d, want 12", len(Months))
	}
	labels := make([]string, len(Months))
	for i, m := range Months {
		if int(m) != i+1 {
			t.Errorf("Months[%d] = %d, want %d", i, int(m), i+1)
		}
		labels[i] = m.String()
	}
	if got := strings.Join(labels, " "); got != "Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec" {
		t.Errorf("labels = %q", got)
	}
}

func TestClassifySign(t *testing.T) {
	if ClassifySign(-1) != SignNegative {
		t.Error("ClassifySign(-1) should be negative")
	}
	if ClassifySign(0) != SignNonNegative {
		t.Error("ClassifySign(0) should be non-negative")
	}
	if ClassifySign(10000) != SignNonNegative {
		t.Error("ClassifySign(10000) should be non-negative")
	}
}

func TestNewRecordDerivesCashFlow(t *testing.T) {
	r := NewRecord(2023, Mar, 11000, 14000)
	if r.CashFlow != -3000 {
		t.Fatalf("CashFlow = %d, want -3000", r.CashFlow)
	}
}

func TestReportRowJSON(t *testing.T) {
	row := ReportRow{
		FinancialRecord:    NewRecord(2023, Jan, 15000, 5000),
		SignClass:          SignNonNegative,
		CumulativeCashFlow: 10000,
	}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"year":2023,"month":"Jan","revenue":15000,"expense":5000,"cash_flow":10000,"sign_class":"non-negative","cumulative_cash_flow":10000}`
	if string(data) != want {
		t.Fatalf("json = %s\nwant   %s", data, want)
	}

	var back ReportRow
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != row {
		t.Fatalf("round trip = %+v, want %+v", back, row)
	}
}
