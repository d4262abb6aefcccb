// Package stats derives streaks and aggregates from entry and session
// snapshots. Every function is pure and recomputes from scratch.
package stats

import (
	"math"
	"time"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/timeutil"
)

// entryDays returns the set of valid entry dates. Malformed dates are skipped.
func entryDays(entries []entry.Entry) map[timeutil.Date]bool {
	days := make(map[timeutil.Date]bool, len(entries))
	for _, e := range entries {
		if d, ok := e.Day(); ok {
			days[d] = true
		}
	}
	return days
}

// CurrentStreak counts consecutive days with at least one entry, ending today
// or, when today has none yet, yesterday.
func CurrentStreak(entries []entry.Entry, today timeutil.Date) int {
	days := entryDays(entries)
	anchor := today
	if !days[anchor] {
		anchor = today.AddDays(-1)
		if !days[anchor] {
			return 0
		}
	}
	streak := 0
	for d := anchor; days[d]; d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive days with an entry.
func LongestStreak(entries []entry.Entry) int {
	days := entryDays(entries)
	longest := 0
	for d := range days {
		if days[d.AddDays(-1)] {
			continue // not the start of a run
		}
		run := 0
		for cur := d; days[cur]; cur = cur.AddDays(1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// TotalMinutes sums entry durations (absent counts as zero) and session
// durations.
func TotalMinutes(entries []entry.Entry, sessions []session.Session) int {
	total := 0
	for _, e := range entries {
		total += e.Minutes()
	}
	for _, s := range sessions {
		total += s.DurationMinutes
	}
	return total
}

// AverageConcentration is the mean numeric answer to the built-in
// concentration question, or 0 when there is none.
func AverageConcentration(entries []entry.Entry) float64 {
	return AverageRating(entries, question.ConcentrationID)
}

// AverageRating is the mean numeric answer to questionID across entries.
// Non-numeric answers are skipped.
func AverageRating(entries []entry.Entry, questionID string) float64 {
	sum, n := 0.0, 0
	for _, e := range entries {
		v, ok := e.Answer(questionID)
		if !ok {
			continue
		}
		num, ok := v.Number()
		if !ok || math.IsNaN(num) || math.IsInf(num, 0) {
			continue
		}
		sum += num
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MonthlyCount counts entries dated in year/month on the local calendar.
func MonthlyCount(entries []entry.Entry, year int, month time.Month) int {
	n := 0
	for _, e := range entries {
		if d, ok := e.Day(); ok && d.InMonth(year, month) {
			n++
		}
	}
	return n
}

// DayBucket aggregates one calendar day across entries and sessions.
type DayBucket struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Count   int    `json:"count"`
}

// WeeklyBuckets returns seven buckets, oldest first, covering ref and the six
// days before it.
func WeeklyBuckets(entries []entry.Entry, sessions []session.Session, ref timeutil.Date) []DayBucket {
	start := ref.AddDays(-6)
	buckets := make([]DayBucket, 7)
	index := make(map[timeutil.Date]int, 7)
	for i := range buckets {
		d := start.AddDays(i)
		buckets[i].Date = d.String()
		index[d] = i
	}
	for _, e := range entries {
		d, ok := e.Day()
		if !ok {
			continue
		}
		if i, ok := index[d]; ok {
			buckets[i].Minutes += e.Minutes()
			buckets[i].Count++
		}
	}
	for _, s := range sessions {
		d, ok := s.Day()
		if !ok {
			continue
		}
		if i, ok := index[d]; ok {
			buckets[i].Minutes += s.DurationMinutes
			buckets[i].Count++
		}
	}
	return buckets
}

// Summary bundles the headline numbers shown on the progress view.
type Summary struct {
	Today                string      `json:"today"`
	CurrentStreak        int         `json:"currentStreak"`
	LongestStreak        int         `json:"longestStreak"`
	TotalEntries         int         `json:"totalEntries"`
	TotalSessions        int         `json:"totalSessions"`
	TotalMinutes         int         `json:"totalMinutes"`
	AverageConcentration float64     `json:"averageConcentration"`
	MonthCount           int         `json:"monthCount"`
	Week                 []DayBucket `json:"week"`
}

// Summarize computes a Summary as of today.
func Summarize(entries []entry.Entry, sessions []session.Session, today timeutil.Date) Summary {
	return Summary{
		Today:                today.String(),
		CurrentStreak:        CurrentStreak(entries, today),
		LongestStreak:        LongestStreak(entries),
		TotalEntries:         len(entries),
		TotalSessions:        len(sessions),
		TotalMinutes:         TotalMinutes(entries, sessions),
		AverageConcentration: AverageConcentration(entries),
		MonthCount:           MonthlyCount(entries, today.Year, today.Month),
		Week:                 WeeklyBuckets(entries, sessions, today),
	}
}
