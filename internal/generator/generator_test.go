package generator

import (
	"errors"
	"testing"

	"github.com/theirongolddev/cashflow/internal/model"
)

// scriptedSource replays offsets, cycling when exhausted.
type scriptedSource struct {
	offsets []int
	pos     int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.offsets[s.pos%len(s.offsets)]
	s.pos++
	if v >= n {
		return n - 1
	}
	return v
}

func TestGenerate_ShapeAndOrder(t *testing.T) {
	for _, years := range []int{1, 2, 5, 9} {
		records, err := Generate(years, NewSource(nil))
		if err != nil {
			t.Fatalf("Generate(%d): %v", years, err)
		}
		if len(records) != 12*years {
			t.Fatalf("Generate(%d) returned %d records, want %d", years, len(records), 12*years)
		}
		for i, r := range records {
			wantYear := model.FirstYear + i/12
			wantMonth := model.Months[i%12]
			if r.Year != wantYear || r.Month != wantMonth {
				t.Fatalf("record %d = (%d, %s), want (%d, %s)", i, r.Year, r.Month, wantYear, wantMonth)
			}
		}
	}
}

func TestGenerate_RangesAndCashFlow(t *testing.T) {
	records, err := Generate(5, NewSource(nil))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range records {
		if r.Revenue < RevenueMin || r.Revenue >= RevenueMax {
			t.Errorf("%d %s revenue %d out of [%d,%d)", r.Year, r.Month, r.Revenue, RevenueMin, RevenueMax)
		}
		if r.Expense < ExpenseMin || r.Expense >= ExpenseMax {
			t.Errorf("%d %s expense %d out of [%d,%d)", r.Year, r.Month, r.Expense, ExpenseMin, ExpenseMax)
		}
		if r.CashFlow != r.Revenue-r.Expense {
			t.Errorf("%d %s cash flow %d != %d - %d", r.Year, r.Month, r.CashFlow, r.Revenue, r.Expense)
		}
	}
}

func TestGenerate_BoundsReachable(t *testing.T) {
	low := &scriptedSource{offsets: []int{0}}
	records, err := Generate(1, low)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Revenue != RevenueMin || records[0].Expense != ExpenseMin {
		t.Fatalf("low draw = %d/%d, want %d/%d", records[0].Revenue, records[0].Expense, RevenueMin, ExpenseMin)
	}

	high := &scriptedSource{offsets: []int{1 << 30}}
	records, err = Generate(1, high)
	if err != nil {
		t.Fatal(err)
	}
	if records[11].Revenue != RevenueMax-1 || records[11].Expense != ExpenseMax-1 {
		t.Fatalf("high draw = %d/%d, want %d/%d", records[11].Revenue, records[11].Expense, RevenueMax-1, ExpenseMax-1)
	}
}

func TestGenerate_RevenuesDrawnBeforeExpenses(t *testing.T) {
	offsets := make([]int, 24)
	for i := 0; i < 12; i++ {
		offsets[i] = i      // revenues
		offsets[12+i] = 100 // expenses
	}
	records, err := Generate(1, &scriptedSource{offsets: offsets})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range records {
		if r.Revenue != int64(RevenueMin+i) {
			t.Errorf("%s revenue = %d, want %d", r.Month, r.Revenue, RevenueMin+i)
		}
		if r.Expense != ExpenseMin+100 {
			t.Errorf("%s expense = %d, want %d", r.Month, r.Expense, ExpenseMin+100)
		}
	}
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	seed := int64(42)
	a, err := Generate(3, NewSource(&seed))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(3, NewSource(&seed))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs between seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_NilSource(t *testing.T) {
	records, err := Generate(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 12 {
		t.Fatalf("got %d records, want 12", len(records))
	}
}

func TestGenerate_InvalidYears(t *testing.T) {
	for _, years := range []int{0, -1, -100} {
		_, err := Generate(years, nil)
		if !errors.Is(err, model.ErrInvalidArgument) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidArgument", years, err)
		}
	}
}
