package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-year totals, margins and best/worst months",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	sel, rows, err := loadReport(cmd)
	if err != nil {
		return err
	}

	printHeader("CASH FLOW SUMMARY", sel)
	if len(rows) == 0 {
		printEmpty()
		return nil
	}

	summaries := pipeline.Summarize(rows)
	fmt.Print(cli.RenderTable(summaryTable(summaries, pipeline.Totals(rows))))
	fmt.Println()

	for i := 1; i < len(summaries); i++ {
		cur, prev := summaries[i], summaries[i-1]
		fmt.Printf("  %d vs %d: %s cash flow\n", cur.Year, prev.Year, cli.FormatDelta(cur.CashFlow, prev.CashFlow))
	}
	if len(summaries) > 1 {
		fmt.Println()
	}
	return nil
}

func summaryTable(summaries []model.YearSummary, total model.YearSummary) cli.Table {
	out := make([][]string, 0, len(summaries)+2)
	signs := make([]model.SignClass, 0, len(summaries)+2)
	for _, s := range summaries {
		out = append(out, summaryCells(strconv.Itoa(s.Year), s))
		signs = append(signs, model.ClassifySign(s.CashFlow))
	}
	if len(summaries) > 1 {
		out = append(out, []string{"---"}, summaryCells("Total", total))
		signs = append(signs, model.SignNonNegative, model.ClassifySign(total.CashFlow))
	}

	return cli.Table{
		Headers:  []string{"Year", "Months", "Revenue", "Expense", "Cash Flow", "Avg/Month", "Margin", "Best", "Worst", "Neg"},
		Rows:     out,
		Signs:    signs,
		SignCols: []int{4, 5},
	}
}

func summaryCells(label string, s model.YearSummary) []string {
	best, worst := "", ""
	if s.Year != 0 {
		best = fmt.Sprintf("%s %s", s.BestMonth, cli.FormatCompact(s.BestCashFlow))
		worst = fmt.Sprintf("%s %s", s.WorstMonth, cli.FormatCompact(s.WorstCashFlow))
	}
	return []string{
		label,
		strconv.Itoa(s.Months),
		cli.FormatMoney(s.Revenue),
		cli.FormatMoney(s.Expense),
		cli.FormatMoney(s.CashFlow),
		cli.FormatDecimalMoney(s.AverageCashFlow),
		cli.FormatMargin(s.Margin),
		best,
		worst,
		strconv.Itoa(s.NegativeMonths),
	}
}
