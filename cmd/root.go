package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/config"
	"github.com/theirongolddev/cashflow/internal/generator"
	"github.com/theirongolddev/cashflow/internal/logger"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/pipeline"
	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

var (
	flagYears    int
	flagMonths   []string
	flagYearSel  []int
	flagSeed     int64
	flagQuiet    bool
	flagVerbose  bool
	flagConfig   string
	flagNoDotenv bool
)

// Loaded by the root PersistentPreRunE before any command runs.
var (
	cfg    = config.DefaultConfig()
	cmdLog = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:               "cashflow",
	Short:             "Synthetic cash-flow dashboard",
	Long:              "Generate monthly revenue and expense figures, filter them by month and year, and explore cash flow as tables, charts, a TUI or an HTTP API.",
	PersistentPreRunE: loadConfig,
	RunE:              runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagYears, "years", "n", 1, "Number of years to generate, starting at 2023")
	rootCmd.PersistentFlags().StringSliceVarP(&flagMonths, "month", "m", nil, "Months to include (repeatable or comma list, default all)")
	rootCmd.PersistentFlags().IntSliceVarP(&flagYearSel, "year", "y", nil, "Years to include (repeatable, default every generated year)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for a reproducible draw")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default $XDG_CONFIG_HOME/cashflow/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoDotenv, "no-dotenv", false, "Skip loading .env from the working directory")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	cmdLog = logger.New(logger.LevelFor(flagQuiet, flagVerbose))

	if !flagNoDotenv {
		if err := config.LoadEnv(); err != nil {
			return err
		}
	}
	config.SetPath(flagConfig)

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", config.Path(), err)
	}
	if err := cli.SetMoneyFormat(loaded.Appearance.Locale, loaded.Appearance.CurrencySymbol); err != nil {
		return err
	}
	theme.SetActive(loaded.Appearance.Theme)

	cfg = loaded
	cmdLog.Debug().Str(logger.FieldPath, config.Path()).Bool("exists", config.Exists()).Msg("config loaded")
	return nil
}

// selection is the resolved report request: flags win over the config file.
type selection struct {
	Years         int
	Months        []model.Month
	SelectedYears []int // nil means every generated year
	Seed          *int64
}

// FilterYears returns the years the report keeps.
func (s selection) FilterYears() []int {
	if s.SelectedYears == nil {
		return pipeline.GeneratedYears(s.Years)
	}
	return s.SelectedYears
}

// resolveSelection merges the persistent flags over c. changed reports
// whether a flag was set on the command line.
func resolveSelection(c config.Config, changed func(name string) bool) (selection, error) {
	sel := selection{
		Years: c.General.Years,
		Seed:  c.Generator.Seed,
	}
	if changed("years") {
		sel.Years = flagYears
	}
	if err := c.CheckYears(sel.Years); err != nil {
		return sel, err
	}

	if changed("month") {
		months, err := model.ParseMonths(flagMonths)
		if err != nil {
			return sel, err
		}
		sel.Months = months
	} else {
		months, err := c.MonthSelection()
		if err != nil {
			return sel, err
		}
		sel.Months = months
	}
	if sel.Months == nil {
		sel.Months = []model.Month{}
	}

	switch {
	case changed("year"):
		sel.SelectedYears = append([]int{}, flagYearSel...)
	case len(c.General.SelectedYears) > 0:
		sel.SelectedYears = append([]int{}, c.General.SelectedYears...)
	}

	if changed("seed") {
		seed := flagSeed
		sel.Seed = &seed
	}
	return sel, nil
}

// buildReport runs the pipeline for sel.
func buildReport(sel selection) ([]model.ReportRow, error) {
	ev := cmdLog.Debug().
		Int(logger.FieldYears, sel.Years).
		Str(logger.FieldMonths, cli.FormatMonths(sel.Months)).
		Ints(logger.FieldYear, sel.FilterYears())
	if sel.Seed != nil {
		ev = ev.Int64(logger.FieldSeed, *sel.Seed)
	}
	ev.Msg("building report")

	rows, err := pipeline.BuildReport(sel.Years, sel.Months, sel.FilterYears(), generator.NewSource(sel.Seed))
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}
	cmdLog.Debug().Int(logger.FieldRows, len(rows)).Msg("report built")
	return rows, nil
}

// loadReport resolves the selection for cmd and builds its report.
func loadReport(cmd *cobra.Command) (selection, []model.ReportRow, error) {
	sel, err := resolveSelection(cfg, cmd.Flags().Changed)
	if err != nil {
		return sel, nil, err
	}
	rows, err := buildReport(sel)
	return sel, rows, err
}

func printHeader(title string, sel selection) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println(cli.RenderSubtitle(fmt.Sprintf("Years %s  |  %s",
		cli.FormatYears(sel.FilterYears()), cli.FormatMonths(sel.Months))))
	fmt.Println()
}

func printEmpty() {
	fmt.Println("  No rows for the current selection.")
	fmt.Println("  Widen it with --month / --year, or drop them to see everything.")
	fmt.Println()
}
