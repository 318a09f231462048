package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	months, err := cfg.MonthSelection()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Years:          %d (max %d)\n", cfg.General.Years, cfg.General.MaxYears)
	fmt.Printf("    Months:         %s\n", cli.FormatMonths(months))
	if len(cfg.General.SelectedYears) > 0 {
		fmt.Printf("    Selected years: %s\n", cli.FormatYears(cfg.General.SelectedYears))
	} else {
		fmt.Println("    Selected years: every generated year")
	}
	fmt.Println()

	fmt.Println("  [Generator]")
	if cfg.Generator.Seed != nil {
		fmt.Printf("    Seed: %d\n", *cfg.Generator.Seed)
	} else {
		fmt.Println("    Seed: not set (fresh draw every run)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Locale:   %s\n", cfg.Appearance.Locale)
	fmt.Printf("    Currency: %s (e.g. %s)\n", cfg.Appearance.CurrencySymbol, cli.FormatMoney(15000))
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:             %s\n", cfg.Server.Addr)
	fmt.Printf("    Read header timeout: %ds\n", cfg.Server.ReadHeaderTimeoutSec)
	fmt.Println()

	printEnvOverrides()

	fmt.Println("  Run `cashflow setup` to reconfigure.")
	return nil
}

func printEnvOverrides() {
	var set []string
	for _, k := range []string{config.EnvYears, config.EnvSeed, config.EnvAddr, config.EnvLocale, config.EnvTheme} {
		if v := os.Getenv(k); v != "" {
			set = append(set, fmt.Sprintf("%s=%s", k, v))
		}
	}
	if len(set) == 0 {
		return
	}
	fmt.Println("  [Environment overrides]")
	for _, s := range set {
		fmt.Printf("    %s\n", s)
	}
	fmt.Println()
}
