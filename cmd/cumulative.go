package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

var cumulativeCmd = &cobra.Command{
	Use:   "cumulative",
	Short: "Running cash flow within each year",
	RunE:  runCumulative,
}

func init() {
	rootCmd.AddCommand(cumulativeCmd)
}

func runCumulative(cmd *cobra.Command, _ []string) error {
	sel, rows, err := loadReport(cmd)
	if err != nil {
		return err
	}

	printHeader("CUMULATIVE CASH FLOW", sel)
	if len(rows) == 0 {
		printEmpty()
		return nil
	}

	for _, s := range pipeline.SeriesByYear(rows) {
		tableRows := make([][]string, len(s.Months))
		signs := make([]model.SignClass, len(s.Months))
		for i, m := range s.Months {
			tableRows[i] = []string{
				m.String(),
				cli.FormatMoney(s.CashFlow[i]),
				cli.FormatMoney(s.Cumulative[i]),
			}
			signs[i] = model.ClassifySign(s.Cumulative[i])
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Title:    fmt.Sprintf("%d", s.Year),
			Headers:  []string{"Month", "Cash Flow", "Cumulative"},
			Rows:     tableRows,
			Signs:    signs,
			SignCols: []int{2},
		}))

		last := s.Cumulative[len(s.Cumulative)-1]
		fmt.Printf("  Trend  %s  ends at %s\n\n",
			cli.RenderSparkline(s.Cumulative),
			cli.SignStyle(model.ClassifySign(last)).Render(cli.FormatMoney(last)))
	}
	return nil
}
