package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/commands/options"
	"tableflip.dev/meditary/pkg/runner/sessions"
)

func addSession(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sessions", "timer"},
		Short:   "Record and list timer sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSessionAdd(cmd)
	addSessionList(cmd)

	topLevel.AddCommand(cmd)
}

func addSessionAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "add <duration>",
		Short: "Record a finished timer session",
		Example: `
meditary session add 20m
meditary session add 1h --on yesterday
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				date, err := on.GetOn(svc.Now())
				if err != nil {
					return err
				}
				n := sessions.Add{
					Service:  svc,
					Printer:  printer(svc, true),
					Date:     date,
					Duration: args[0],
				}
				return n.Do(ctx)
			})
		},
	}

	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}

func addSessionList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List timer sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				if output.JSON {
					return output.Render(svc.Sessions(), nil)
				}
				n := sessions.List{
					Service: svc,
					Printer: printer(svc, io.ShowID),
					Month:   mo.Month,
				}
				return n.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
