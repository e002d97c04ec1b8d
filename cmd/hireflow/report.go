package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/export"
	"github.com/jonathan/hireflow/internal/observability"
	"github.com/jonathan/hireflow/internal/types"
)

const dateLayout = "2006-01-02"

var (
	reportFrom       string
	reportTo         string
	reportDepartment string
	exportOut        string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the hiring analytics workbook (.xlsx)",
	Long: `Compute every analytics view over the configured backend and write them to an
Excel workbook, one sheet per view. With the memory backend the sample fixture is
loaded first.`,
	RunE: runExport,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print hiring metrics as text",
	Long: `Compute the hiring metrics, funnel, department rollup and recruitment efficiency
over the configured backend and print them. With the memory backend the sample fixture
is loaded first.`,
	RunE: runReport,
}

func init() {
	for _, c := range []*cobra.Command{exportCmd, reportCmd} {
		c.Flags().StringVar(&reportFrom, "from", "", "Only include records on or after this date (YYYY-MM-DD)")
		c.Flags().StringVar(&reportTo, "to", "", "Only include records on or before this date (YYYY-MM-DD)")
		c.Flags().StringVar(&reportDepartment, "department", "", "Only include jobs of this department")
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "hiring-report.xlsx", "Output path")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
}

// reportFilters turns the --from/--to/--department flags into analytics filters.
// --to covers the whole named day.
func reportFilters() (types.AnalyticsFilters, error) {
	f := types.AnalyticsFilters{Department: reportDepartment}
	if reportFrom != "" {
		from, err := time.Parse(dateLayout, reportFrom)
		if err != nil {
			return f, fmt.Errorf("invalid --from %q: want YYYY-MM-DD", reportFrom)
		}
		f.DateFrom = &from
	}
	if reportTo != "" {
		to, err := time.Parse(dateLayout, reportTo)
		if err != nil {
			return f, fmt.Errorf("invalid --to %q: want YYYY-MM-DD", reportTo)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		f.DateTo = &to
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return f, fmt.Errorf("--to %s is before --from %s", reportTo, reportFrom)
	}
	return f, nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	filters, err := reportFilters()
	if err != nil {
		return err
	}

	svc, closeStore, err := openService(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := svc.GetAnalyticsReport(cmd.Context(), filters)
	if err != nil {
		return err
	}
	data, err := export.Workbook(report)
	if err != nil {
		return fmt.Errorf("failed to render workbook: %w", err)
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", exportOut, len(data))
	return nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	filters, err := reportFilters()
	if err != nil {
		return err
	}

	svc, closeStore, err := openService(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := svc.GetAnalyticsReport(cmd.Context(), filters)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
	return nil
}
