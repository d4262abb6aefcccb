package options

import (
	"github.com/spf13/cobra"
)

// AddOptions carries the answer flags shared by entry add and entry edit.
type AddOptions struct {
	Answers  map[string]string
	Notes    string
	Duration string
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringToStringVarP(&o.Answers, "answer", "a", nil,
		`Answer a question by id, example: -a concentration=4 -a sleepy=no.`)
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes.")
	cmd.Flags().StringVarP(&o.Duration, "duration", "d", "",
		`Meditation length, example: --duration=20m or --duration=1h15m.`)
}
