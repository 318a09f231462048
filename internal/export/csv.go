package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/cashflow/internal/model"
)

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"year", "month", "revenue", "expense", "cash_flow", "sign_class", "cumulative_cash_flow"}

// WriteCSV writes one line per row with raw integer amounts.
func WriteCSV(w io.Writer, rows []model.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Year),
			r.Month.String(),
			strconv.FormatInt(r.Revenue, 10),
			strconv.FormatInt(r.Expense, 10),
			strconv.FormatInt(r.CashFlow, 10),
			string(r.SignClass),
			strconv.FormatInt(r.CumulativeCashFlow, 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
