// Package progress renders statistics, optionally re-rendering whenever the
// store changes on disk.
package progress

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/printers"
	"tableflip.dev/meditary/pkg/stats"
	"tableflip.dev/meditary/pkg/timeutil"
)

var errNoService = errors.New("progress: no service")

type Stats struct {
	Service *app.Service
	Printer printers.PrettyPrint
	Log     *zap.Logger

	// Range adds a chart for week, month or year when set.
	Range string
	// Trend adds the seven-day concentration trend.
	Trend bool
	// Calendar adds the current month grid.
	Calendar bool
	// Follow keeps running and re-renders after every store change.
	Follow bool
	// Clear is written before each re-render in follow mode.
	Clear string
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	var r stats.Range
	if n.Range != "" {
		var err error
		if r, err = stats.ParseRange(n.Range); err != nil {
			return errs.Validationf("%v", err)
		}
	}
	if n.Log == nil {
		n.Log = zap.NewNop()
	}

	n.render(r)
	if !n.Follow {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			n.Log.Debug("store changed", zap.String("key", ev.Key))
			if err := n.Service.Reload(ctx); err != nil {
				n.Log.Warn("reload failed", zap.Error(err))
				continue
			}
			if n.Clear != "" {
				fmt.Print(n.Clear)
			}
			n.render(r)
		}
	}
}

func (n *Stats) render(r stats.Range) {
	n.Printer.Language = n.Service.Settings().Language
	n.Printer.Summary(n.Service.Summary())
	if r != "" {
		n.Printer.Range(n.Service.Progress(r))
	}
	if n.Trend {
		n.Printer.Trend(n.Service.ConcentrationTrend())
	}
	if n.Calendar {
		today := n.Service.Today()
		n.Printer.Calendar(today, MonthCounts(n.Service, today))
	}
}

// MonthCounts returns entries per day for the month containing d.
func MonthCounts(svc *app.Service, d timeutil.Date) []int {
	count := make([]int, printers.DaysIn(d))
	for _, e := range svc.EntriesForMonth(d.Year, d.Month) {
		if day, ok := e.Day(); ok && day.Day <= len(count) {
			count[day.Day-1]++
		}
	}
	return count
}
