package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recent practice grouped by day",
		Long: `Report lists entries and timer sessions grouped by day within the specified window.

Examples:
  meditary report
  meditary report --last 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if last < 1 {
				return fmt.Errorf("--last must be at least 1, got %d", last)
			}
			return withService(cmd, func(_ context.Context, svc *app.Service) error {
				until := svc.Today()
				since := until.AddDays(-(last - 1))
				result := svc.Report(since, until)
				return output.Render(result, func() {
					renderReport(printer(svc, false), result, last)
				})
			})
		},
	}

	cmd.Flags().IntVar(&last, "last", 7, "Number of days to include, ending today.")
	topLevel.AddCommand(cmd)
}

func renderReport(pp printers.PrettyPrint, result app.ReportResult, days int) {
	fmt.Printf("Report · last %d days (%s → %s) · %s\n", days, result.Since, result.Until, timeutil.FormatMinutes(result.Minutes))

	if len(result.Days) == 0 {
		fmt.Println("  No practice recorded in this window.")
		fmt.Println()
		return
	}

	f := color.New(color.Faint)
	for _, day := range result.Days {
		fmt.Println()
		pp.TitleWithCount(day.Date, len(day.Entries), "entry", "entries")
		if len(day.Entries) > 0 {
			pp.Entries(day.Entries...)
		}
		if len(day.Sessions) > 0 {
			parts := make([]string, 0, len(day.Sessions))
			for _, s := range day.Sessions {
				parts = append(parts, timeutil.FormatMinutes(s.DurationMinutes))
			}
			_, _ = f.Printf("  timer: %s\n", strings.Join(parts, ", "))
		}
	}
	fmt.Println()
}
