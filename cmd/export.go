package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashflow/internal/export"
	"github.com/theirongolddev/cashflow/internal/logger"
	"github.com/theirongolddev/cashflow/internal/model"
)

var (
	flagExportFormat string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the report as xlsx, csv or json",
	Example: `  cashflow export -o report.xlsx
  cashflow export --format csv --month Jan,Feb -n 2
  cashflow export --format json --seed 7 > report.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "", "Output format: xlsx, csv or json (default from --output extension, json for stdout)")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "-", "Output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := exportFormat(flagExportFormat, flagExportOutput)
	if err != nil {
		return err
	}

	sel, rows, err := loadReport(cmd)
	if err != nil {
		return err
	}
	rep := export.NewReport(sel.Years, sel.Months, sel.FilterYears(), rows, time.Now())

	if flagExportOutput == "-" {
		return export.Write(os.Stdout, format, rep)
	}

	if err := writeExportFile(flagExportOutput, format, rep); err != nil {
		return err
	}
	cmdLog.Info().
		Str(logger.FieldPath, flagExportOutput).
		Str(logger.FieldFormat, string(format)).
		Int(logger.FieldRows, len(rows)).
		Msg("report exported")
	return nil
}

// exportFormat picks the explicit format, else the output file's extension,
// else json.
func exportFormat(explicit, output string) (export.Format, error) {
	if explicit != "" {
		return export.ParseFormat(explicit)
	}
	if output == "-" || output == "" {
		return export.FormatJSON, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: cannot infer format from %q, pass --format", model.ErrInvalidArgument, output)
	}
	return export.ParseFormat(ext)
}

func writeExportFile(path string, format export.Format, rep export.Report) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the local user
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, closeFile(f, path))
	}()
	return export.Write(f, format, rep)
}

func closeFile(c io.Closer, path string) error {
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
