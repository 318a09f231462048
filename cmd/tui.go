package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/config"
	"github.com/theirongolddev/cashflow/internal/logger"
	"github.com/theirongolddev/cashflow/internal/tui"
)

var flagNoSave bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not save filter changes to the config file")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	sel, err := resolveSelection(cfg, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	// The alt screen owns stderr, so logs go to a file when asked for
	log := zerolog.Nop()
	if flagVerbose {
		f, err := openTUILog()
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		log = logger.NewWithWriter(f, zerolog.DebugLevel)
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Years:         sel.Years,
		MaxYears:      cfg.General.MaxYears,
		Months:        sel.Months,
		SelectedYears: sel.SelectedYears,
		Seed:          sel.Seed,
		Persist:       !flagNoSave,
		Logger:        log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func openTUILog() (*os.File, error) {
	path := filepath.Join(config.Dir(), "tui.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600) //nolint:gosec // path under the user's config dir
	if err != nil {
		return nil, fmt.Errorf("opening tui log: %w", err)
	}
	return f, nil
}
