package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/config"
	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues is bound to the setup form's fields.
type setupValues struct {
	years    int
	maxYears string
	months   []model.Month
	seed     string
	theme    string
	locale   string
	currency string
}

func runSetup(_ *cobra.Command, _ []string) error {
	saved, err := config.LoadFile()
	if err != nil {
		return err
	}
	vals, err := newSetupValues(saved)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  Welcome to cashflow!")
	fmt.Println()

	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	next, err := applySetup(saved, vals)
	if err != nil {
		return err
	}
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `cashflow setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func newSetupValues(c config.Config) (setupValues, error) {
	months, err := c.MonthSelection()
	if err != nil {
		return setupValues{}, err
	}
	v := setupValues{
		years:    c.General.Years,
		maxYears: strconv.Itoa(c.General.MaxYears),
		months:   months,
		theme:    c.Appearance.Theme,
		locale:   c.Appearance.Locale,
		currency: c.Appearance.CurrencySymbol,
	}
	if c.Generator.Seed != nil {
		v.seed = strconv.FormatInt(*c.Generator.Seed, 10)
	}
	return v, nil
}

func newSetupForm(v *setupValues) *huh.Form {
	yearOpts := make([]huh.Option[int], 0, 10)
	for n := 1; n <= 10; n++ {
		yearOpts = append(yearOpts, huh.NewOption(fmt.Sprintf("%d (%d-%d)", n, model.FirstYear, model.FirstYear+n-1), n))
	}

	monthOpts := make([]huh.Option[model.Month], len(model.Months))
	for i, m := range model.Months {
		monthOpts[i] = huh.NewOption(m.String(), m).Selected(slices.Contains(v.months, m))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default years to generate").
				Options(yearOpts...).
				Value(&v.years),
			huh.NewInput().
				Title("Maximum years").
				Description("Upper bound for --years and the TUI slider").
				Value(&v.maxYears).
				Validate(validatePositiveInt),
			huh.NewMultiSelect[model.Month]().
				Title("Default months").
				Options(monthOpts...).
				Height(14).
				Validate(validateMonths).
				Value(&v.months),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Seed").
				Description("Leave empty for a fresh draw every run").
				Value(&v.seed).
				Validate(validateOptionalInt),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
			huh.NewInput().
				Title("Locale").
				Description("Digit grouping, e.g. en or pt-BR").
				Value(&v.locale),
			huh.NewInput().
				Title("Currency symbol").
				Value(&v.currency),
		),
	)
}

// applySetup copies the form values onto c and validates the result.
func applySetup(c config.Config, v setupValues) (config.Config, error) {
	maxYears, err := strconv.Atoi(strings.TrimSpace(v.maxYears))
	if err != nil {
		return c, fmt.Errorf("%w: max years %q", model.ErrInvalidArgument, v.maxYears)
	}
	c.General.MaxYears = maxYears
	c.General.Years = v.years

	if err := validateMonths(v.months); err != nil {
		return c, fmt.Errorf("%w: %v", model.ErrInvalidArgument, err)
	}
	c.General.Months = nil
	if len(v.months) < len(model.Months) {
		c.General.Months = make([]string, 0, len(v.months))
		for _, m := range model.Months {
			if slices.Contains(v.months, m) {
				c.General.Months = append(c.General.Months, m.String())
			}
		}
	}

	c.Generator.Seed = nil
	if s := strings.TrimSpace(v.seed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed %q", model.ErrInvalidArgument, v.seed)
		}
		c.Generator.Seed = &seed
	}

	c.Appearance.Theme = v.theme
	c.Appearance.Locale = strings.TrimSpace(v.locale)
	c.Appearance.CurrencySymbol = v.currency

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// validateMonths rejects an empty selection, which the config file cannot
// tell apart from every month.
func validateMonths(months []model.Month) error {
	if len(months) == 0 {
		return errors.New("pick at least one month")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return errors.New("enter a whole number or leave empty")
	}
	return nil
}
