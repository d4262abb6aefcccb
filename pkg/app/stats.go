package app

import (
	"time"

	"tableflip.dev/meditary/pkg/stats"
	"tableflip.dev/meditary/pkg/timeutil"
)

// Now is the current local time according to the service clock.
func (s *Service) Now() time.Time {
	return s.today()
}

// Today is the current local calendar day according to the service clock.
func (s *Service) Today() timeutil.Date {
	return timeutil.DateOf(s.today())
}

// Streak is the current run of consecutive days with an entry.
func (s *Service) Streak() int {
	return stats.CurrentStreak(s.Entries(), s.Today())
}

// MonthCount counts entries in year/month.
func (s *Service) MonthCount(year int, month time.Month) int {
	return stats.MonthlyCount(s.Entries(), year, month)
}

// TotalMinutes sums entry and session minutes.
func (s *Service) TotalMinutes() int {
	return stats.TotalMinutes(s.Entries(), s.Sessions())
}

// AverageConcentration averages the concentration rating.
func (s *Service) AverageConcentration() float64 {
	return stats.AverageConcentration(s.Entries())
}

// WeeklyStats buckets the last seven days ending today.
func (s *Service) WeeklyStats() []stats.DayBucket {
	return stats.WeeklyBuckets(s.Entries(), s.Sessions(), s.Today())
}

// Summary computes every headline statistic from a single snapshot.
func (s *Service) Summary() stats.Summary {
	s.mu.RLock()
	entries, sessions := s.entries.List(), s.sessions.List()
	s.mu.RUnlock()
	return stats.Summarize(entries, sessions, s.Today())
}

// Progress builds the chart for r ending today, labelled in the configured
// language.
func (s *Service) Progress(r stats.Range) stats.RangeReport {
	return stats.RangeSummary(s.Entries(), s.Today(), r, s.Settings().Language)
}

// ConcentrationTrend returns the seven-day concentration averages.
func (s *Service) ConcentrationTrend() []stats.TrendPoint {
	return stats.ConcentrationTrend(s.Entries(), s.Today(), s.Settings().Language)
}
