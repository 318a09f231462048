package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

var flagBarWidth int

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Monthly cash flow bars, red below zero",
	RunE:  runCashflow,
}

func init() {
	cashflowCmd.Flags().IntVar(&flagBarWidth, "width", 24, "Maximum bar length on each side of the axis")
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(cmd *cobra.Command, _ []string) error {
	sel, rows, err := loadReport(cmd)
	if err != nil {
		return err
	}

	printHeader("MONTHLY CASH FLOW", sel)
	if len(rows) == 0 {
		printEmpty()
		return nil
	}

	// One scale for every year so bars compare across groups
	var maxAbs int64
	for _, r := range rows {
		maxAbs = max(maxAbs, r.CashFlow, -r.CashFlow)
	}

	for _, s := range pipeline.SeriesByYear(rows) {
		fmt.Printf("  %d\n", s.Year)
		for i, m := range s.Months {
			cf := s.CashFlow[i]
			amount := cli.SignStyle(model.ClassifySign(cf)).Render(fmt.Sprintf("%14s", cli.FormatMoney(cf)))
			fmt.Printf("  %-3s %s %s\n", m, cli.RenderSignedBar(cf, maxAbs, flagBarWidth), amount)
		}
		fmt.Println()
	}

	total := pipeline.Totals(rows)
	fmt.Printf("  %d of %d months negative, net %s\n\n",
		total.NegativeMonths, total.Months, cli.FormatMoney(total.CashFlow))
	return nil
}
