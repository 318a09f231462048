// Package export writes report tables as spreadsheets, CSV or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

// Format names an export encoding.
type Format string

const (
	// FormatXLSX is an Excel workbook with report and summary sheets.
	FormatXLSX Format = "xlsx"
	// FormatCSV is the report rows as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON is the full report document as indented JSON.
	FormatJSON Format = "json"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatXLSX, FormatCSV, FormatJSON}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown export format %q (want xlsx, csv or json)", model.ErrInvalidArgument, s)
}

// Report is a built report together with the selection that produced it.
type Report struct {
	GeneratedAt   time.Time           `json:"generated_at"`
	Years         int                 `json:"years"`
	Months        []model.Month       `json:"months"`
	SelectedYears []int               `json:"selected_years"`
	Rows          []model.ReportRow   `json:"rows"`
	Summaries     []model.YearSummary `json:"summaries"`
	Totals        model.YearSummary   `json:"totals"`
}

// NewReport derives summaries and totals for rows.
func NewReport(years int, months []model.Month, selectedYears []int, rows []model.ReportRow, now time.Time) Report {
	if rows == nil {
		rows = []model.ReportRow{}
	}
	if months == nil {
		months = []model.Month{}
	}
	if selectedYears == nil {
		selectedYears = []int{}
	}
	return Report{
		GeneratedAt:   now.UTC(),
		Years:         years,
		Months:        months,
		SelectedYears: selectedYears,
		Rows:          rows,
		Summaries:     pipeline.Summarize(rows),
		Totals:        pipeline.Totals(rows),
	}
}

// Write encodes rep to w in the given format.
func Write(w io.Writer, format Format, rep Report) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, rep)
	case FormatCSV:
		return WriteCSV(w, rep.Rows)
	case FormatJSON:
		return WriteJSON(w, rep)
	default:
		return fmt.Errorf("%w: unknown export format %q", model.ErrInvalidArgument, format)
	}
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
