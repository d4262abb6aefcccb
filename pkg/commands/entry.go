package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/commands/options"
	"tableflip.dev/meditary/pkg/runner/entries"
	"tableflip.dev/meditary/pkg/runner/questions"
)

func addEntry(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"entries", "e"},
		Short:   "Write, read and edit journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEntryAdd(cmd)
	addEntryList(cmd)
	addEntryShow(cmd)
	addEntryEdit(cmd)
	addEntryDelete(cmd)

	topLevel.AddCommand(cmd)
}

func answerCompletions(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	svc, _, err := loadService(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids := questions.Completions(svc, toComplete)
	for i := range ids {
		ids[i] += "="
	}
	return ids, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}

func addEntryAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	on := &options.OnOptions{}
	var session string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		Example: `
meditary entry add -a concentration=4 -a sleepy=no --duration 20m
meditary entry add --on yesterday -a sensation="warmth in hands" -n "noisy street"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				date, err := on.GetOn(svc.Now())
				if err != nil {
					return err
				}
				n := entries.Add{
					Service:   svc,
					Printer:   printer(svc, false),
					Date:      date,
					Answers:   ao.Answers,
					Notes:     ao.Notes,
					Duration:  ao.Duration,
					SessionID: session,
				}
				return n.Do(ctx)
			})
		},
	}

	options.AddEntryArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	cmd.Flags().StringVar(&session, "session", "", "Timer session this entry reflects on.")
	_ = cmd.RegisterFlagCompletionFunc("answer", answerCompletions)

	topLevel.AddCommand(cmd)
}

func addEntryList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MonthOptions{}
	var last int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Example: `
meditary entry list
meditary entry list --month 2025-12
meditary entry list --last 5 --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				if output.JSON {
					return output.Render(svc.Entries(), nil)
				}
				n := entries.List{
					Service: svc,
					Printer: printer(svc, io.ShowID),
					Month:   mo.Month,
					Last:    last,
				}
				return n.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddMonthArgs(cmd, mo)
	cmd.Flags().IntVar(&last, "last", 0, "Only show the newest N entries.")

	topLevel.AddCommand(cmd)
}

func addEntryShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show entries in full, by id or by day (default today)",
		Example: `
meditary entry show
meditary entry show --on 2025-12-19
meditary entry show 3f0c...
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				date, err := on.GetOn(svc.Now())
				if err != nil {
					return err
				}
				n := entries.Show{
					Service: svc,
					Printer: printer(svc, io.ShowID),
					Date:    date,
				}
				if len(args) == 1 {
					n.ID = strings.TrimSpace(args[0])
				}
				if output.JSON {
					if n.ID != "" {
						e, ok := svc.Entry(n.ID)
						if !ok {
							return n.Do(ctx)
						}
						return output.Render(e, nil)
					}
					if date == "" {
						date = svc.Today().String()
					}
					return output.Render(svc.EntriesByDate(date), nil)
				}
				return n.Do(ctx)
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}

func addEntryEdit(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change answers, notes, duration or date of an entry",
		Example: `
meditary entry edit 3f0c... -a concentration=5
meditary entry edit 3f0c... --duration ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := entries.Edit{
					Service: svc,
					Printer: printer(svc, false),
					ID:      args[0],
					Answers: ao.Answers,
				}
				if cmd.Flags().Changed("on") {
					date, err := on.GetOn(svc.Now())
					if err != nil {
						return err
					}
					n.Date = &date
				}
				if cmd.Flags().Changed("notes") {
					n.Notes = &ao.Notes
				}
				if cmd.Flags().Changed("duration") {
					n.Duration = &ao.Duration
				}
				return n.Do(ctx)
			})
		},
	}

	options.AddEntryArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	_ = cmd.RegisterFlagCompletionFunc("answer", answerCompletions)

	topLevel.AddCommand(cmd)
}

func addEntryDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := entries.Delete{Service: svc, ID: args[0]}
				return n.Do(ctx)
			})
		},
	}

	topLevel.AddCommand(cmd)
}
