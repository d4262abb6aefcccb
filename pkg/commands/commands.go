package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/commands/options"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/store"
)

var (
	output = &options.OutputOptions{}
	logs   = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "meditary",
		Short: base.Wrap80("A meditation journal on the command line."),
		Long: base.Wrap80("Record how each sit went by answering your questions, " +
			"log timer sessions, and follow your streak and practice time."),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddLogArgs(cmd, logs)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addEntry(topLevel)
	addSession(topLevel)
	addQuestion(topLevel)
	addStats(topLevel)
	addReport(topLevel)
	addSettings(topLevel)
	addExport(topLevel)
	addReset(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService opens the configured store and loads every collection.
func loadService(ctx context.Context) (*app.Service, store.KeyValue, error) {
	kv, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	svc := app.New(kv, app.WithLogger(logs.Logger()))
	if err := svc.Load(ctx); err != nil {
		return nil, nil, err
	}
	return svc, kv, nil
}

// withService runs fn against a loaded service and routes errors through the
// output options.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc *app.Service) error) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, _, err := loadService(ctx)
	if err != nil {
		return output.HandleError(err)
	}
	return output.HandleError(fn(ctx, svc))
}

func printer(svc *app.Service, showID bool) printers.PrettyPrint {
	return printers.PrettyPrint{ShowID: showID, Language: svc.Settings().Language}
}
