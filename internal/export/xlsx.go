package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/cashflow/internal/model"
)

// Sheet names in exported workbooks.
const (
	SheetReport  = "Report"
	SheetSummary = "Summary"
)

const (
	colorHeader   = "#3AA99F"
	colorNegative = "#D14D41"
	colorPositive = "#4385BE"

	// #,##0.00
	numFmtMoney = 4
	// 0.00%
	numFmtPercent = 10
)

var (
	reportHeaders  = []string{"Year", "Month", "Revenue", "Expense", "Cash Flow", "Sign", "Cumulative"}
	summaryHeaders = []string{"Year", "Months", "Revenue", "Expense", "Cash Flow", "Average", "Margin", "Negative Months", "Best Month", "Worst Month"}
)

type sheetStyles struct {
	header   int
	money    int
	negative int
	positive int
	percent  int
}

// WriteXLSX writes rep as a workbook with a Report and a Summary sheet.
func WriteXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetReport); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	st, err := newSheetStyles(f)
	if err != nil {
		return err
	}
	if err := writeReportSheet(f, st, rep); err != nil {
		return err
	}
	if err := writeSummarySheet(f, st, rep); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error

	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorHeader}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return st, fmt.Errorf("creating header style: %w", err)
	}
	if st.money, err = f.NewStyle(&excelize.Style{NumFmt: numFmtMoney}); err != nil {
		return st, fmt.Errorf("creating money style: %w", err)
	}
	if st.negative, err = f.NewStyle(&excelize.Style{
		NumFmt: numFmtMoney,
		Font:   &excelize.Font{Color: colorNegative},
	}); err != nil {
		return st, fmt.Errorf("creating negative style: %w", err)
	}
	if st.positive, err = f.NewStyle(&excelize.Style{
		NumFmt: numFmtMoney,
		Font:   &excelize.Font{Color: colorPositive},
	}); err != nil {
		return st, fmt.Errorf("creating positive style: %w", err)
	}
	if st.percent, err = f.NewStyle(&excelize.Style{NumFmt: numFmtPercent}); err != nil {
		return st, fmt.Errorf("creating percent style: %w", err)
	}
	return st, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing %s header: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeReportSheet(f *excelize.File, st sheetStyles, rep Report) error {
	if err := writeHeader(f, SheetReport, reportHeaders, st.header); err != nil {
		return err
	}

	for i, r := range rep.Rows {
		row := i + 2
		values := []any{r.Year, r.Month.String(), r.Revenue, r.Expense, r.CashFlow, string(r.SignClass), r.CumulativeCashFlow}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetReport, cell, &values); err != nil {
			return fmt.Errorf("writing report row %d: %w", row, err)
		}

		flow := st.positive
		if r.CashFlow < 0 {
			flow = st.negative
		}
		cells := []struct {
			from, to string
			style    int
		}{
			{fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), st.money},
			{fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), flow},
			{fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), st.money},
		}
		for _, c := range cells {
			if err := f.SetCellStyle(SheetReport, c.from, c.to, c.style); err != nil {
				return fmt.Errorf("styling report row %d: %w", row, err)
			}
		}
	}
	return f.SetColWidth(SheetReport, "A", "G", 14)
}

func writeSummarySheet(f *excelize.File, st sheetStyles, rep Report) error {
	if err := writeHeader(f, SheetSummary, summaryHeaders, st.header); err != nil {
		return err
	}

	summaries := rep.Summaries
	if len(rep.Rows) > 0 {
		summaries = append(summaries[:len(summaries):len(summaries)], rep.Totals)
	}

	for i, s := range summaries {
		row := i + 2
		var year any = s.Year
		if s.Year == 0 {
			year = "Total"
		}
		values := []any{
			year, s.Months, s.Revenue, s.Expense, s.CashFlow,
			s.AverageCashFlow.InexactFloat64(), s.Margin.InexactFloat64(),
			s.NegativeMonths, monthLabel(s.BestMonth), monthLabel(s.WorstMonth),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return fmt.Errorf("writing summary row %d: %w", row, err)
		}
		if err := f.SetCellStyle(SheetSummary, fmt.Sprintf("C%d", row), fmt.Sprintf("F%d", row), st.money); err != nil {
			return fmt.Errorf("styling summary row %d: %w", row, err)
		}
		if err := f.SetCellStyle(SheetSummary, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), st.percent); err != nil {
			return fmt.Errorf("styling summary row %d: %w", row, err)
		}
	}
	return f.SetColWidth(SheetSummary, "A", "J", 14)
}

func monthLabel(m model.Month) string {
	if !m.Valid() {
		return ""
	}
	return m.String()
}
