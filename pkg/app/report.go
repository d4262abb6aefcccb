package app

import (
	"sort"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/timeutil"
)

// ReportDay groups the practice recorded on one calendar day.
type ReportDay struct {
	Date     string            `json:"date"`
	Entries  []entry.Entry     `json:"entries"`
	Sessions []session.Session `json:"sessions"`
	Minutes  int               `json:"minutes"`
}

// ReportResult covers every day in [Since, Until] that has practice.
type ReportResult struct {
	Since   string      `json:"since"`
	Until   string      `json:"until"`
	Days    []ReportDay `json:"days"`
	Minutes int         `json:"minutes"`
}

// Report groups entries and sessions by day between the provided bounds,
// newest day first. Records with malformed dates are left out.
func (s *Service) Report(since, until timeutil.Date) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	s.mu.RLock()
	entries, sessions := s.entries.List(), s.sessions.List()
	s.mu.RUnlock()

	grouped := make(map[timeutil.Date]*ReportDay)
	ensure := func(d timeutil.Date) *ReportDay {
		day, ok := grouped[d]
		if !ok {
			day = &ReportDay{Date: d.String()}
			grouped[d] = day
		}
		return day
	}

	total := 0
	for _, e := range entries {
		d, ok := e.Day()
		if !ok || !d.Between(since, until) {
			continue
		}
		day := ensure(d)
		day.Entries = append(day.Entries, e)
		day.Minutes += e.Minutes()
		total += e.Minutes()
	}
	for _, v := range sessions {
		d, ok := v.Day()
		if !ok || !d.Between(since, until) {
			continue
		}
		day := ensure(d)
		day.Sessions = append(day.Sessions, v)
		day.Minutes += v.DurationMinutes
		total += v.DurationMinutes
	}

	days := make([]timeutil.Date, 0, len(grouped))
	for d := range grouped {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	result := ReportResult{Since: since.String(), Until: until.String(), Minutes: total}
	for _, d := range days {
		result.Days = append(result.Days, *grouped[d])
	}
	return result
}
