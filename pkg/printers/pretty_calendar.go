package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/meditary/pkg/glyph"
	"tableflip.dev/meditary/pkg/stats"
	"tableflip.dev/meditary/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

const barWidth = 30

// Summary prints the headline statistics followed by the last seven days.
func (pp *PrettyPrint) Summary(s stats.Summary) {
	pp.Title("Progress")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Current streak", days(s.CurrentStreak))
	tbl.AddRow("Longest streak", days(s.LongestStreak))
	tbl.AddRow("Entries", s.TotalEntries)
	tbl.AddRow("Timer sessions", s.TotalSessions)
	tbl.AddRow("Practice time", timeutil.FormatMinutes(s.TotalMinutes))
	tbl.AddRow("This month", s.MonthCount)
	if s.AverageConcentration > 0 {
		tbl.AddRow("Concentration", fmt.Sprintf("%s %.1f", glyph.Rating(s.AverageConcentration), s.AverageConcentration))
	} else {
		tbl.AddRow("Concentration", "-")
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Week(s.Week)
}

// Week prints minutes per day as horizontal bars.
func (pp *PrettyPrint) Week(buckets []stats.DayBucket) {
	pp.Title("Last 7 days")
	max := 0
	for _, b := range buckets {
		if b.Minutes > max {
			max = b.Minutes
		}
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, b := range buckets {
		label := b.Date
		if d, err := timeutil.ParseDate(b.Date); err == nil {
			label = d.Weekday().String()[:3] + " " + b.Date
		}
		tbl.AddRow(label, bar(b.Minutes, max), timeutil.FormatMinutes(b.Minutes))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Range prints a progress chart of entry counts.
func (pp *PrettyPrint) Range(r stats.RangeReport) {
	pp.TitleWithCount(fmt.Sprintf("%s %s → %s", rangeTitle(r.Range), r.Start, r.End), r.Entries, "entry", "entries")
	max := 0
	for _, p := range r.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range r.Points {
		tbl.AddRow(p.Label, bar(p.Value, max), p.Value)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Trend prints daily concentration averages.
func (pp *PrettyPrint) Trend(points []stats.TrendPoint) {
	pp.Title("Concentration")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range points {
		value := "-"
		if p.Value > 0 {
			value = fmt.Sprintf("%.1f", p.Value)
		}
		tbl.AddRow(p.Label, p.Date, glyph.Rating(p.Value), value)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func rangeTitle(r stats.Range) string {
	switch r {
	case stats.RangeMonth:
		return "Month"
	case stats.RangeYear:
		return "Year"
	}
	return "Week"
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func bar(v, max int) string {
	if max <= 0 || v <= 0 {
		return ""
	}
	n := v * barWidth / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Calendar prints a month grid with practiced days in bold. count[i] is the
// number of entries on day i+1.
func (pp *PrettyPrint) Calendar(month timeutil.Date, count []int) {
	first := month.FirstOfMonth()
	d := first.Weekday()

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", first.Month, first.Year)
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(first)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(pp.out(), "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// DaysIn returns the number of days in the month containing d.
func DaysIn(d timeutil.Date) int {
	return d.FirstOfMonth().AddMonths(1).AddDays(-1).Day
}
