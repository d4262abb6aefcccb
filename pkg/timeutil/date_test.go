package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2025 || d.Month != time.December || d.Day != 19 {
		t.Fatalf("unexpected date: %+v", d)
	}
	if d.String() != "2025-12-19" {
		t.Fatalf("unexpected string: %s", d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "2025-13-01", "19/12/2025", "2025-12-19T10:00:00Z"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestAddDaysCrossesBoundaries(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2025-01-01", -1, "2024-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-02-28", 1, "2025-03-01"},
		// US and EU daylight-saving transitions.
		{"2025-03-10", -1, "2025-03-09"},
		{"2025-03-31", -1, "2025-03-30"},
		{"2025-11-03", -2, "2025-11-01"},
	}
	for _, tt := range tests {
		got := MustDate(tt.from).AddDays(tt.n).String()
		if got != tt.want {
			t.Fatalf("%s %+d: expected %s, got %s", tt.from, tt.n, tt.want, got)
		}
	}
}

func TestAddDaysAcrossDSTInLocalZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2025-03-09 is 23 hours long in New York.
	now := time.Date(2025, time.March, 10, 0, 30, 0, 0, loc)
	today := DateOf(now)
	if got := today.AddDays(-1).String(); got != "2025-03-09" {
		t.Fatalf("expected 2025-03-09, got %s", got)
	}
	// Subtracting a fixed 24h would land on the 8th.
	if got := DateOf(now.Add(-48 * time.Hour)).String(); got != "2025-03-07" {
		t.Fatalf("sanity check failed: %s", got)
	}
}

func TestAddMonths(t *testing.T) {
	if got := MustDate("2025-01-15").AddMonths(-11).String(); got != "2024-02-15" {
		t.Fatalf("unexpected: %s", got)
	}
	if got := MustDate("2025-12-01").AddMonths(1).String(); got != "2026-01-01" {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestCompareAndBetween(t *testing.T) {
	a := MustDate("2025-11-30")
	b := MustDate("2025-12-01")
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Fatalf("ordering broken for %s / %s", a, b)
	}
	if !a.Between(a, b) || !b.Between(a, b) {
		t.Fatalf("between must be inclusive")
	}
	if MustDate("2025-12-02").Between(a, b) {
		t.Fatalf("date after range reported inside")
	}
}

func TestInMonth(t *testing.T) {
	d := MustDate("2025-12-31")
	if !d.InMonth(2025, time.December) {
		t.Fatalf("expected december 2025")
	}
	if d.InMonth(2024, time.December) || d.InMonth(2025, time.November) {
		t.Fatalf("unexpected month match")
	}
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth(" 2025-12 ")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if y != 2025 || m != time.December {
		t.Errorf("got %d-%v", y, m)
	}
	for _, bad := range []string{"", "2025-13", "12/2025", "2025-12-01"} {
		if _, _, err := ParseMonth(bad); err == nil {
			t.Errorf("ParseMonth(%q) should fail", bad)
		}
	}
}
