package options

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log storage activity to stderr.")
}

// Logger returns a development logger when verbose, otherwise a no-op one.
func (o *LogOptions) Logger() *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
