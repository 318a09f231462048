package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/cli"
	"github.com/theirongolddev/cashflow/internal/client"
)

var flagStatusAddr string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of a running cashflow server",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&flagStatusAddr, "addr", "", "Server address (default from config)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	addr := cfg.Server.Addr
	if flagStatusAddr != "" {
		addr = flagStatusAddr
	}

	c, err := client.New(addr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fmt.Printf("  Address: http://%s\n", addr)

	st, err := c.Status(ctx)
	if errors.Is(err, client.ErrUnavailable) {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("  API status: ok")
	fmt.Printf("  Started:   %s (up %s)\n", st.StartedAt.Local().Format(time.DateTime), time.Duration(st.UptimeSec)*time.Second)
	fmt.Printf("  Max years: %d\n", st.MaxYears)
	fmt.Printf("  Requests:  %s\n", cli.FormatNumber(st.RequestCount))
	fmt.Printf("  Reports:   %s\n", cli.FormatNumber(st.ReportCount))
	if st.LastReportID != "" {
		fmt.Printf("  Last report: %s\n", st.LastReportID)
	}
	if st.LastError != "" {
		fmt.Printf("  Last error:  %s\n", st.LastError)
	}
	return nil
}
