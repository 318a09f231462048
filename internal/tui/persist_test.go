package tui

import (
	"slices"
	"testing"

	"github.com/theirongolddev/cashflow/internal/config"
	"github.com/theirongolddev/cashflow/internal/model"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{config.EnvYears, config.EnvSeed, config.EnvAddr, config.EnvLocale, config.EnvTheme} {
		t.Setenv(k, "")
	}
	config.SetPath("")
	t.Cleanup(func() { config.SetPath("") })
}

func reloadApp(t *testing.T) App {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	months, err := cfg.MonthSelection()
	if err != nil {
		t.Fatalf("MonthSelection: %v", err)
	}
	return newTestApp(Options{
		Years:         cfg.General.Years,
		MaxYears:      cfg.General.MaxYears,
		Months:        months,
		SelectedYears: cfg.General.SelectedYears,
	})
}

func TestSaveSelection_SkipsEnvOverrides(t *testing.T) {
	useTempConfig(t)
	t.Setenv(config.EnvSeed, "99")
	t.Setenv(config.EnvAddr, "0.0.0.0:9000")

	a := newTestApp(Options{Years: 2, Persist: true})
	a.applyFilter(filterValues{months: []model.Month{model.Jan}, years: []int{2023, 2024}})

	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvAddr, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.Seed != nil {
		t.Errorf("Seed = %d, want nil", *cfg.Generator.Seed)
	}
	if cfg.Server.Addr != config.DefaultConfig().Server.Addr {
		t.Errorf("Addr = %q, want default", cfg.Server.Addr)
	}
	if !slices.Equal(cfg.General.Months, []string{"Jan"}) {
		t.Errorf("Months = %v, want [Jan]", cfg.General.Months)
	}
}

func TestSaveSelection_ReloadMatches(t *testing.T) {
	useTempConfig(t)

	a := newTestApp(Options{Years: 2, Persist: true})
	a.applyFilter(filterValues{months: []model.Month{model.Mar, model.Jan}, years: []int{2024}})

	b := reloadApp(t)
	if !slices.Equal(b.months, a.months) {
		t.Errorf("months = %v, want %v", b.months, a.months)
	}
	if !slices.Equal(b.selectedYears, []int{2024}) {
		t.Errorf("selectedYears = %v, want [2024]", b.selectedYears)
	}
	if len(b.rows) != len(a.rows) {
		t.Errorf("rows = %d, want %d", len(b.rows), len(a.rows))
	}
}

func TestSaveSelection_EmptyFilterKeepsSaved(t *testing.T) {
	useTempConfig(t)

	a := newTestApp(Options{Years: 2, Persist: true})
	a.applyFilter(filterValues{months: []model.Month{model.Jan, model.Mar}, years: []int{2024}})
	a.applyFilter(filterValues{months: []model.Month{}, years: []int{2024}})
	if len(a.rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(a.rows))
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cfg.General.Months, []string{"Jan", "Mar"}) {
		t.Errorf("Months = %v, want the previous [Jan Mar]", cfg.General.Months)
	}

	b := reloadApp(t)
	if len(b.rows) != 2 {
		t.Errorf("reloaded rows = %d, want 2", len(b.rows))
	}

	a.applyFilter(filterValues{months: model.Months, years: []int{}})
	cfg, err = config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cfg.General.SelectedYears, []int{2024}) {
		t.Errorf("SelectedYears = %v, want the previous [2024]", cfg.General.SelectedYears)
	}
}

func TestNewApp_EmptyVersusNilSelection(t *testing.T) {
	all := newTestApp(Options{Years: 2})
	if len(all.rows) != 24 {
		t.Errorf("nil selection rows = %d, want 24", len(all.rows))
	}

	noMonths := newTestApp(Options{Years: 2, Months: []model.Month{}})
	if len(noMonths.rows) != 0 {
		t.Errorf("empty months rows = %d, want 0", len(noMonths.rows))
	}

	noYears := newTestApp(Options{Years: 2, SelectedYears: []int{}})
	if len(noYears.rows) != 0 {
		t.Errorf("empty years rows = %d, want 0", len(noYears.rows))
	}
}
