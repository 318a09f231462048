package cmd

import (
	"errors"
	"slices"
	"testing"

	"github.com/theirongolddev/cashflow/internal/config"
	"github.com/theirongolddev/cashflow/internal/export"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

func setFlags(t *testing.T, years int, months []string, yearSel []int, seed int64) {
	t.Helper()
	oldYears, oldMonths, oldSel, oldSeed := flagYears, flagMonths, flagYearSel, flagSeed
	flagYears, flagMonths, flagYearSel, flagSeed = years, months, yearSel, seed
	t.Cleanup(func() {
		flagYears, flagMonths, flagYearSel, flagSeed = oldYears, oldMonths, oldSel, oldSeed
	})
}

func changedSet(names ...string) func(string) bool {
	return func(name string) bool { return slices.Contains(names, name) }
}

func TestResolveSelection_ConfigDefaults(t *testing.T) {
	c := config.DefaultConfig()
	sel, err := resolveSelection(c, changedSet())
	if err != nil {
		t.Fatalf("resolveSelection: %v", err)
	}
	if sel.Years != 1 {
		t.Errorf("Years = %d, want 1", sel.Years)
	}
	if !slices.Equal(sel.Months, model.Months) {
		t.Errorf("Months = %v, want all", sel.Months)
	}
	if sel.SelectedYears != nil {
		t.Errorf("SelectedYears = %v, want nil", sel.SelectedYears)
	}
	if !slices.Equal(sel.FilterYears(), []int{2023}) {
		t.Errorf("FilterYears = %v, want [2023]", sel.FilterYears())
	}
	if sel.Seed != nil {
		t.Errorf("Seed = %v, want nil", *sel.Seed)
	}
}

func TestResolveSelection_FlagsOverrideConfig(t *testing.T) {
	setFlags(t, 3, []string{"Fev,Mar", "dez"}, []int{2024}, 42)

	c := config.DefaultConfig()
	c.General.Months = []string{"Jan"}
	c.General.SelectedYears = []int{2023}

	sel, err := resolveSelection(c, changedSet("years", "month", "year", "seed"))
	if err != nil {
		t.Fatalf("resolveSelection: %v", err)
	}
	if sel.Years != 3 {
		t.Errorf("Years = %d, want 3", sel.Years)
	}
	wantMonths := []model.Month{model.Feb, model.Mar, model.Dec}
	if !slices.Equal(sel.Months, wantMonths) {
		t.Errorf("Months = %v, want %v", sel.Months, wantMonths)
	}
	if !slices.Equal(sel.FilterYears(), []int{2024}) {
		t.Errorf("FilterYears = %v, want [2024]", sel.FilterYears())
	}
	if sel.Seed == nil || *sel.Seed != 42 {
		t.Errorf("Seed = %v, want 42", sel.Seed)
	}
}

func TestResolveSelection_ConfigYearsAndSeed(t *testing.T) {
	seed := int64(7)
	c := config.DefaultConfig()
	c.General.Years = 2
	c.General.SelectedYears = []int{2024}
	c.Generator.Seed = &seed

	sel, err := resolveSelection(c, changedSet())
	if err != nil {
		t.Fatalf("resolveSelection: %v", err)
	}
	if !slices.Equal(sel.FilterYears(), []int{2024}) {
		t.Errorf("FilterYears = %v, want [2024]", sel.FilterYears())
	}
	if sel.Seed == nil || *sel.Seed != 7 {
		t.Errorf("Seed = %v, want 7", sel.Seed)
	}
}

func TestResolveSelection_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		years   int
		months  []string
		changed []string
	}{
		{"zero years", 0, nil, []string{"years"}},
		{"above max", 6, nil, []string{"years"}},
		{"unknown month", 1, []string{"Foo"}, []string{"month"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, tt.years, tt.months, nil, 0)
			_, err := resolveSelection(config.DefaultConfig(), changedSet(tt.changed...))
			if !errors.Is(err, model.ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestResolveSelection_EmptyMonthFlag(t *testing.T) {
	setFlags(t, 1, []string{""}, nil, 0)
	sel, err := resolveSelection(config.DefaultConfig(), changedSet("month"))
	if err != nil {
		t.Fatalf("resolveSelection: %v", err)
	}
	if sel.Months == nil || len(sel.Months) != 0 {
		t.Errorf("Months = %#v, want empty non-nil", sel.Months)
	}
}

func TestBuildReport_SeededIsDeterministic(t *testing.T) {
	seed := int64(11)
	sel := selection{Years: 2, Months: pipeline.AllMonths(), Seed: &seed}

	a, err := buildReport(sel)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	b, err := buildReport(sel)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if len(a) != 24 {
		t.Fatalf("len = %d, want 24", len(a))
	}
	if !slices.Equal(a, b) {
		t.Error("same seed produced different reports")
	}
}

func TestReportTable_TotalsRow(t *testing.T) {
	rows := pipeline.Aggregate([]model.FinancialRecord{
		model.NewRecord(2023, model.Jan, 15000, 5000),
		model.NewRecord(2023, model.Feb, 10000, 14000),
	})

	tbl := reportTable(rows)
	if len(tbl.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 (2 data, separator, total)", len(tbl.Rows))
	}
	if len(tbl.Signs) != len(tbl.Rows) {
		t.Fatalf("signs = %d, want %d", len(tbl.Signs), len(tbl.Rows))
	}
	if tbl.Signs[1] != model.SignNegative {
		t.Errorf("Feb sign = %q, want negative", tbl.Signs[1])
	}
	total := tbl.Rows[3]
	if total[0] != "Total" || total[4] != "R$6,000.00" {
		t.Errorf("total row = %v", total)
	}
}

func TestSummaryTable_TotalOnlyForSeveralYears(t *testing.T) {
	rows := pipeline.Aggregate([]model.FinancialRecord{
		model.NewRecord(2023, model.Jan, 15000, 5000),
		model.NewRecord(2024, model.Jan, 10000, 14000),
	})

	one := summaryTable(pipeline.Summarize(rows[:1]), pipeline.Totals(rows[:1]))
	if len(one.Rows) != 1 {
		t.Errorf("single year rows = %d, want 1", len(one.Rows))
	}

	two := summaryTable(pipeline.Summarize(rows), pipeline.Totals(rows))
	if len(two.Rows) != 4 {
		t.Fatalf("two year rows = %d, want 4", len(two.Rows))
	}
	if two.Rows[3][0] != "Total" {
		t.Errorf("last row = %v, want Total", two.Rows[3])
	}
	if two.Rows[3][7] != "" {
		t.Errorf("total best month = %q, want blank", two.Rows[3][7])
	}
}

func TestExportFormat(t *testing.T) {
	tests := []struct {
		explicit, output string
		want             export.Format
		wantErr          bool
	}{
		{"", "-", export.FormatJSON, false},
		{"", "out/report.xlsx", export.FormatXLSX, false},
		{"", "report.CSV", export.FormatCSV, false},
		{"csv", "report.xlsx", export.FormatCSV, false},
		{"", "report", "", true},
		{"pdf", "-", "", true},
	}
	for _, tt := range tests {
		got, err := exportFormat(tt.explicit, tt.output)
		if tt.wantErr {
			if !errors.Is(err, model.ErrInvalidArgument) {
				t.Errorf("exportFormat(%q, %q) err = %v, want ErrInvalidArgument", tt.explicit, tt.output, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("exportFormat(%q, %q) = %q, %v; want %q", tt.explicit, tt.output, got, err, tt.want)
		}
	}
}

func TestApplySetup(t *testing.T) {
	v := setupValues{
		years:    2,
		maxYears: "4",
		months:   []model.Month{model.Mar, model.Jan},
		seed:     " 99 ",
		theme:    "tokyo-night",
		locale:   "pt-BR",
		currency: "R$",
	}
	c, err := applySetup(config.DefaultConfig(), v)
	if err != nil {
		t.Fatalf("applySetup: %v", err)
	}
	if c.General.Years != 2 || c.General.MaxYears != 4 {
		t.Errorf("years = %d/%d, want 2/4", c.General.Years, c.General.MaxYears)
	}
	if !slices.Equal(c.General.Months, []string{"Jan", "Mar"}) {
		t.Errorf("Months = %v, want [Jan Mar]", c.General.Months)
	}
	if c.Generator.Seed == nil || *c.Generator.Seed != 99 {
		t.Errorf("Seed = %v, want 99", c.Generator.Seed)
	}

	v.months = model.Months
	v.seed = ""
	c, err = applySetup(config.DefaultConfig(), v)
	if err != nil {
		t.Fatalf("applySetup: %v", err)
	}
	if c.General.Months != nil || c.Generator.Seed != nil {
		t.Errorf("want all months and no seed, got %v / %v", c.General.Months, c.Generator.Seed)
	}

	v.months = []model.Month{}
	if _, err := applySetup(config.DefaultConfig(), v); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("no months: err = %v, want ErrInvalidArgument", err)
	}
	v.months = model.Months

	v.years = 5
	if _, err := applySetup(config.DefaultConfig(), v); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("years above max: err = %v, want ErrInvalidArgument", err)
	}
}
