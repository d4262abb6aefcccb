package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var format, file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole journal as JSON or YAML",
		Example: `
meditary export > backup.json
meditary export -o yaml --file journal.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				n := export.Export{Service: svc, Format: format}
				if file != "" {
					f, err := os.Create(file)
					if err != nil {
						return err
					}
					defer f.Close()
					n.Out = f
				}
				return n.Do(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", export.FormatJSON, "Output format. One of 'json' or 'yaml'.")
	cmd.Flags().StringVar(&file, "file", "", "Write to a file instead of stdout.")

	topLevel.AddCommand(cmd)
}
