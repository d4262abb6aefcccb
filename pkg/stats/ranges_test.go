package stats

import (
	"testing"

	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/question"
)

func TestParseRange(t *testing.T) {
	for in, want := range map[string]Range{"": RangeWeek, "Week": RangeWeek, "month": RangeMonth, "year": RangeYear} {
		got, err := ParseRange(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseRange("decade"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRangeSummaryWeek(t *testing.T) {
	entries := dated(daysAgo(0), daysAgo(0), daysAgo(6), daysAgo(7))
	r := RangeSummary(entries, today, RangeWeek, "en")
	if r.Entries != 3 || len(r.Points) != 7 || r.Start != "2025-12-13" || r.End != "2025-12-19" {
		t.Fatalf("unexpected report %+v", r)
	}
	// 2025-12-19 is a Friday.
	last := r.Points[6]
	if last.Label != "Fri" || last.Value != 2 || last.Date != "2025-12-19" {
		t.Fatalf("unexpected last point %+v", last)
	}
	if r.Points[0].Value != 1 {
		t.Fatalf("unexpected first point %+v", r.Points[0])
	}
	pt := RangeSummary(entries, today, RangeWeek, "pt")
	if pt.Points[6].Label != "Sex" {
		t.Fatalf("expected portuguese label, got %s", pt.Points[6].Label)
	}
}

func TestRangeSummaryMonth(t *testing.T) {
	entries := dated(daysAgo(0), daysAgo(7), daysAgo(27), daysAgo(29), daysAgo(30))
	r := RangeSummary(entries, today, RangeMonth, "en")
	if r.Entries != 4 || len(r.Points) != 4 {
		t.Fatalf("unexpected report %+v", r)
	}
	values := []int{r.Points[0].Value, r.Points[1].Value, r.Points[2].Value, r.Points[3].Value}
	if values[0] != 1 || values[2] != 1 || values[3] != 1 || values[1] != 0 {
		t.Fatalf("unexpected weekly values %v", values)
	}
	if r.Points[0].Label != "Wk 1" || r.Points[3].Label != "Wk 4" {
		t.Fatalf("unexpected labels %+v", r.Points)
	}
}

func TestRangeSummaryYear(t *testing.T) {
	entries := dated("2025-12-01", "2025-12-19", "2025-01-05", "2024-12-31")
	r := RangeSummary(entries, today, RangeYear, "pt")
	if r.Start != "2025-01-01" || len(r.Points) != 12 || r.Entries != 3 {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Points[0].Date != "2025-01" || r.Points[0].Value != 1 || r.Points[11].Label != "Dez" || r.Points[11].Value != 2 {
		t.Fatalf("unexpected points %+v", r.Points)
	}
}

func TestConcentrationTrend(t *testing.T) {
	entries := []entry.Entry{
		{Date: daysAgo(0), Answers: []entry.Answer{{QuestionID: question.ConcentrationID, Value: entry.Rating(5)}}},
		{Date: daysAgo(0), Answers: []entry.Answer{{QuestionID: question.ConcentrationID, Value: entry.Rating(3)}}},
		{Date: daysAgo(2), Answers: []entry.Answer{{QuestionID: question.ConcentrationID, Value: entry.Rating(2)}}},
	}
	trend := ConcentrationTrend(entries, today, "en")
	if len(trend) != 7 {
		t.Fatalf("expected 7 points, got %d", len(trend))
	}
	if trend[6].Value != 4 || trend[4].Value != 2 || trend[5].Value != 0 || trend[6].Label != "F" {
		t.Fatalf("unexpected trend %+v", trend)
	}
}
