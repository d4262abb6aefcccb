package stats

import (
	"fmt"
	"strings"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/timeutil"
)

// Range selects the window of a progress chart.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// ParseRange converts a string to a Range.
func ParseRange(raw string) (Range, error) {
	switch r := Range(strings.ToLower(strings.TrimSpace(raw))); r {
	case "":
		return RangeWeek, nil
	case RangeWeek, RangeMonth, RangeYear:
		return r, nil
	}
	return "", fmt.Errorf("stats: unknown range %q", raw)
}

// Point is one bar of a progress chart.
type Point struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// TrendPoint is one day of the concentration trend.
type TrendPoint struct {
	Label string  `json:"label"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// RangeReport is the chart data for one Range ending at End.
type RangeReport struct {
	Range   Range   `json:"range"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Entries int     `json:"entries"`
	Points  []Point `json:"points"`
}

var (
	dayNames = map[string][7]string{
		question.LangPrimary:   {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		question.LangSecondary: {"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
	}
	dayInitials = map[string][7]string{
		question.LangPrimary:   {"S", "M", "T", "W", "T", "F", "S"},
		question.LangSecondary: {"D", "S", "T", "Q", "Q", "S", "S"},
	}
	monthNames = map[string][12]string{
		question.LangPrimary:   {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		question.LangSecondary: {"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"},
	}
	weekLabel = map[string]string{
		question.LangPrimary:   "Wk",
		question.LangSecondary: "Sem",
	}
)

func lang(l string) string {
	if l == question.LangSecondary {
		return l
	}
	return question.LangPrimary
}

// RangeStart returns the first day covered by r when the chart ends at ref:
// six days back for a week, 29 for a month, and the first of the month
// eleven months back for a year.
func RangeStart(r Range, ref timeutil.Date) timeutil.Date {
	switch r {
	case RangeMonth:
		return ref.AddDays(-29)
	case RangeYear:
		return ref.FirstOfMonth().AddMonths(-11)
	}
	return ref.AddDays(-6)
}

// RangeSummary builds chart points for r ending at ref: daily counts for a
// week, four seven-day counts for a month, monthly counts for a year.
func RangeSummary(entries []entry.Entry, ref timeutil.Date, r Range, language string) RangeReport {
	language = lang(language)
	start := RangeStart(r, ref)

	var days []timeutil.Date
	for _, e := range entries {
		if d, ok := e.Day(); ok && d.Between(start, ref) {
			days = append(days, d)
		}
	}
	count := func(from, to timeutil.Date) int {
		n := 0
		for _, d := range days {
			if d.Between(from, to) {
				n++
			}
		}
		return n
	}

	report := RangeReport{Range: r, Start: start.String(), End: ref.String(), Entries: len(days)}
	switch r {
	case RangeMonth:
		for week := 3; week >= 0; week-- {
			end := ref.AddDays(-7 * week)
			from := end.AddDays(-6)
			report.Points = append(report.Points, Point{
				Label: fmt.Sprintf("%s %d", weekLabel[language], 4-week),
				Date:  from.String(),
				Value: count(from, end),
			})
		}
	case RangeYear:
		for i := 11; i >= 0; i-- {
			m := ref.FirstOfMonth().AddMonths(-i)
			n := 0
			for _, d := range days {
				if d.InMonth(m.Year, m.Month) {
					n++
				}
			}
			report.Points = append(report.Points, Point{
				Label: monthNames[language][m.Month-1],
				Date:  fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
				Value: n,
			})
		}
	default:
		report.Range = RangeWeek
		for i := 6; i >= 0; i-- {
			d := ref.AddDays(-i)
			report.Points = append(report.Points, Point{
				Label: dayNames[language][d.Weekday()],
				Date:  d.String(),
				Value: count(d, d),
			})
		}
	}
	return report
}

// ConcentrationTrend returns the daily average concentration rating for ref
// and the six days before it, oldest first. Days without ratings are 0.
func ConcentrationTrend(entries []entry.Entry, ref timeutil.Date, language string) []TrendPoint {
	language = lang(language)
	byDay := make(map[timeutil.Date][]entry.Entry)
	for _, e := range entries {
		if d, ok := e.Day(); ok {
			byDay[d] = append(byDay[d], e)
		}
	}
	out := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		d := ref.AddDays(-i)
		out = append(out, TrendPoint{
			Label: dayInitials[language][d.Weekday()],
			Date:  d.String(),
			Value: AverageConcentration(byDay[d]),
		})
	}
	return out
}
