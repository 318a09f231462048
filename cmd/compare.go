package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Revenue vs expense per year",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	sel, rows, err := loadReport(cmd)
	if err != nil {
		return err
	}

	printHeader("REVENUE VS EXPENSE", sel)
	if len(rows) == 0 {
		printEmpty()
		return nil
	}

	revStyle := lipgloss.NewStyle().Foreground(cli.ColorBlue)
	expStyle := lipgloss.NewStyle().Foreground(cli.ColorRed)

	summaries := pipeline.Summarize(rows)
	var maxTotal int64
	for _, ys := range summaries {
		maxTotal = max(maxTotal, ys.Revenue, ys.Expense)
	}
	for _, ys := range summaries {
		fmt.Printf("  %d  Revenue %14s %s\n", ys.Year, cli.FormatMoney(ys.Revenue),
			cli.RenderHorizontalBar(ys.Revenue, maxTotal, 30, cli.ColorBlue))
		fmt.Printf("        Expense %14s %s\n", cli.FormatMoney(ys.Expense),
			cli.RenderHorizontalBar(ys.Expense, maxTotal, 30, cli.ColorRed))
	}
	fmt.Println()

	for _, s := range pipeline.SeriesByYear(rows) {
		tableRows := make([][]string, len(s.Months))
		signs := make([]model.SignClass, len(s.Months))
		for i, m := range s.Months {
			tableRows[i] = []string{
				m.String(),
				cli.FormatMoney(s.Revenue[i]),
				cli.FormatMoney(s.Expense[i]),
				cli.FormatMoney(s.CashFlow[i]),
			}
			signs[i] = model.ClassifySign(s.CashFlow[i])
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Title:    fmt.Sprintf("%d", s.Year),
			Headers:  []string{"Month", "Revenue", "Expense", "Difference"},
			Rows:     tableRows,
			Signs:    signs,
			SignCols: []int{3},
		}))
		fmt.Printf("  Revenue  %s\n", revStyle.Render(cli.RenderSparkline(s.Revenue)))
		fmt.Printf("  Expense  %s\n", expStyle.Render(cli.RenderSparkline(s.Expense)))
		fmt.Println()
	}
	return nil
}
