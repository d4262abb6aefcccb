package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-12-19", --on="12/19" or --on=yesterday.`)
}

// GetOn returns the selected day as YYYY-MM-DD, or "" when unset.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	v := strings.ToLower(strings.TrimSpace(o.OnString))
	today := timeutil.Today(now)
	switch v {
	case "":
		return "", nil
	case "today":
		return today.String(), nil
	case "yesterday":
		return today.AddDays(-1).String(), nil
	}
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, v)
		if err != nil {
			return "", errs.Validationf("invalid date %q", o.OnString)
		}
		d := timeutil.Date{Year: today.Year, Month: t.Month(), Day: t.Day()}
		// Journals look back: 12/30 said on 1/2 means last year.
		if d.After(today) {
			d.Year--
		}
		return d.String(), nil
	}
	return timeutil.DateOf(t).String(), nil
}
