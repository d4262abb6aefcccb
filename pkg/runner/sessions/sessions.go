// Package sessions runs the timer session commands.
package sessions

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/timeutil"
)

var errNoService = errors.New("sessions: no service")

// Add records a finished timer run.
type Add struct {
	Service  *app.Service
	Printer  printers.PrettyPrint
	Date     string
	Duration string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	minutes, err := timeutil.ParseMinutes(n.Duration)
	if err != nil {
		return errs.Validationf("duration: %v", err)
	}
	s, err := n.Service.AddSession(ctx, session.Input{Date: n.Date, DurationMinutes: minutes})
	if err != nil {
		return err
	}
	n.Printer.Title("Session recorded")
	n.Printer.Sessions(s)
	return nil
}

type List struct {
	Service *app.Service
	Printer printers.PrettyPrint
	Month   string
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	title := "Sessions"
	all := n.Service.Sessions()
	if n.Month != "" {
		year, month, err := timeutil.ParseMonth(n.Month)
		if err != nil {
			return errs.Validationf("%v", err)
		}
		all = n.Service.SessionsForMonth(year, month)
		title = fmt.Sprintf("%s %d", month, year)
	}
	n.Printer.TitleWithCount(title, len(all), "session", "sessions")
	n.Printer.Sessions(all...)
	return nil
}
