package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/runner/info"
	"tableflip.dev/meditary/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the journal is stored.",
		Example: `
meditary info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			svc, kv, err := loadService(context.Background())
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
				KV:      kv,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
