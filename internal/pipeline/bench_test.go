package pipeline

import (
	"testing"

	"github.com/theirongolddev/cashflow/internal/generator"
	"github.com/theirongolddev/cashflow/internal/model"
)

func BenchmarkBuildReport(b *testing.B) {
	seed := int64(1)
	months := AllMonths()
	years := GeneratedYears(5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rows, err := BuildReport(5, months, years, generator.NewSource(&seed))
		if err != nil {
			b.Fatal(err)
		}
		_ = rows
	}
}

func BenchmarkFilter(b *testing.B) {
	seed := int64(1)
	records, err := generator.Generate(5, generator.NewSource(&seed))
	if err != nil {
		b.Fatal(err)
	}
	months := []model.Month{model.Jan, model.Apr, model.Jul, model.Oct}
	years := []int{2024, 2026}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(records, months, years)
	}
}

func BenchmarkAggregate(b *testing.B) {
	seed := int64(1)
	records, err := generator.Generate(5, generator.NewSource(&seed))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Aggregate(records)
	}
}

func BenchmarkSummarize(b *testing.B) {
	seed := int64(1)
	rows, err := BuildReport(5, AllMonths(), GeneratedYears(5), generator.NewSource(&seed))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Summarize(rows)
		_ = Totals(rows)
	}
}
