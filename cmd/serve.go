package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reports as JSON over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config, 127.0.0.1:8788)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Query parameters override these per request
	sel, err := resolveSelection(cfg, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	svc := server.New(server.Config{
		Addr:              addr,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSec) * time.Second,
		Years:             sel.Years,
		MaxYears:          cfg.General.MaxYears,
		Months:            sel.Months,
		SelectedYears:     sel.SelectedYears,
		Seed:              sel.Seed,
		Logger:            cmdLog,
	})

	fmt.Printf("  cashflow listening on http://%s\n", addr)
	fmt.Printf("  Try: curl 'http://%s/v1/report?years=2&month=Jan,Feb'\n", addr)
	fmt.Println("  Stop with Ctrl+C")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
