package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Show stored compliance reports",
	Long: `Shows a stored compliance report by run ID, or lists all stored
reports newest first when no run ID is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	ctx := cmd.Context()

	if len(args) == 0 {
		return listReports(cmd)
	}

	report, err := reportService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("getting report: %w", err)
	}

	if reportJSON {
		return outputReportJSON(cmd, report)
	}
	outputReportSummary(cmd, report)
	return nil
}

func listReports(cmd *cobra.Command) error {
	listings, err := reportService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}

	if len(listings) == 0 {
		cmd.Println("No stored reports.")
		return nil
	}

	cmd.Println("Stored reports:")
	for _, l := range listings {
		cmd.Printf("  %s  %-14s %-13s %.1f\n", l.RunID, l.TransactionType, l.SummaryStatus, l.Score)
	}
	return nil
}
