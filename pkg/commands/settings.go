package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/runner/prefs"
	"tableflip.dev/meditary/pkg/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Show or change language and reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSettingsGet(cmd)
	addSettingsSet(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := prefs.Get{Service: svc}
				return output.Render(svc.Settings(), func() { _ = n.Do(ctx) })
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	var language, reminder string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Example: `
meditary settings set --language pt
meditary settings set --reminder 06:30
meditary settings set --reminder off
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := prefs.Set{Service: svc}
				if cmd.Flags().Changed("language") {
					n.Language = &language
				}
				if cmd.Flags().Changed("reminder") {
					n.Reminder = &reminder
				}
				return n.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Display language: "+joinLanguages()+".")
	cmd.Flags().StringVar(&reminder, "reminder", "", "Daily reminder: HH:MM, on or off.")

	topLevel.AddCommand(cmd)
}

func joinLanguages() string {
	out := ""
	for i, l := range settings.Languages() {
		if i > 0 {
			out += " or "
		}
		out += l
	}
	return out
}
