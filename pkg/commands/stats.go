package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/runner/progress"
	"tableflip.dev/meditary/pkg/stats"
)

const clearScreen = "\x1b[H\x1b[2J"

func addStats(topLevel *cobra.Command) {
	n := progress.Stats{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"progress"},
		Short:   "Show streak, practice time and concentration",
		Example: `
meditary stats
meditary stats --range month --trend
meditary stats --calendar --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				if output.JSON {
					return output.Render(jsonStats(svc, n.Range), nil)
				}
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
				defer stop()
				n.Service = svc
				n.Printer = printer(svc, false)
				n.Log = logs.Logger()
				if n.Follow {
					n.Clear = clearScreen
				}
				return n.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&n.Range, "range", "r", "", "Add a chart: week, month or year.")
	cmd.Flags().BoolVar(&n.Trend, "trend", false, "Add the seven-day concentration trend.")
	cmd.Flags().BoolVar(&n.Calendar, "calendar", false, "Add this month's calendar.")
	cmd.Flags().BoolVarP(&n.Follow, "follow", "f", false, "Keep running and refresh when the journal changes.")

	topLevel.AddCommand(cmd)
}

type statsOutput struct {
	Summary stats.Summary      `json:"summary"`
	Range   *stats.RangeReport `json:"range,omitempty"`
	Trend   []stats.TrendPoint `json:"trend"`
}

func jsonStats(svc *app.Service, raw string) statsOutput {
	out := statsOutput{Summary: svc.Summary(), Trend: svc.ConcentrationTrend()}
	if r, err := stats.ParseRange(raw); err == nil && raw != "" {
		report := svc.Progress(r)
		out.Range = &report
	}
	return out
}
