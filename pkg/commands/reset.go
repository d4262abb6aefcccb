package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/app"
)

func addReset(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every entry, session, question and setting",
		Long:  "Reset erases all stored data and re-resolves the device id. Hosts with a native machine id keep it; others get a fresh random id. It cannot be undone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return output.HandleError(errors.New("refusing to erase the journal without --yes"))
			}
			return withService(cmd, func(ctx context.Context, svc *app.Service) error {
				if err := svc.Reset(ctx); err != nil {
					return err
				}
				fmt.Println("journal erased")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset.")

	topLevel.AddCommand(cmd)
}
