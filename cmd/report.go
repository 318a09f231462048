// Package cmd implements the cashflow CLI commands.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Month-by-month cash flow table",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	sel, rows, err := loadReport(cmd)
	if err != nil {
		return err
	}

	printHeader("CASH FLOW REPORT", sel)
	if len(rows) == 0 {
		printEmpty()
		return nil
	}

	fmt.Print(cli.RenderTable(reportTable(rows)))
	fmt.Println()
	return nil
}

// reportTable lays out one line per row followed by a totals line.
func reportTable(rows []model.ReportRow) cli.Table {
	out := make([][]string, 0, len(rows)+2)
	signs := make([]model.SignClass, 0, len(rows)+2)
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Year),
			r.Month.String(),
			cli.FormatMoney(r.Revenue),
			cli.FormatMoney(r.Expense),
			cli.FormatMoney(r.CashFlow),
			cli.FormatMoney(r.CumulativeCashFlow),
		})
		signs = append(signs, r.SignClass)
	}

	total := pipeline.Totals(rows)
	out = append(out,
		[]string{"---"},
		[]string{"Total", "", cli.FormatMoney(total.Revenue), cli.FormatMoney(total.Expense), cli.FormatMoney(total.CashFlow), ""},
	)
	signs = append(signs, model.SignNonNegative, model.ClassifySign(total.CashFlow))

	return cli.Table{
		Headers:  []string{"Year", "Month", "Revenue", "Expense", "Cash Flow", "Cumulative"},
		Rows:     out,
		Signs:    signs,
		SignCols: []int{4},
	}
}
