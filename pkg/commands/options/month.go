package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions selects a calendar month.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Only show a month, example: --month=2025-12.`)
}
