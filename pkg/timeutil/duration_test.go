package timeutil

import "testing"

func TestParseMinutes(t *testing.T) {
	tests := map[string]int{
		"20":       20,
		"20m":      20,
		"1h":       60,
		"1h15m":    75,
		" 2 hours": 120,
		"90 min":   90,
	}
	for in, want := range tests {
		got, err := ParseMinutes(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %d, got %d", in, want, got)
		}
	}
}

func TestParseMinutesInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "0", "0m", "5d"} {
		if _, err := ParseMinutes(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{0: "0m", 5: "5m", 60: "1h", 75: "1h15m"}
	for in, want := range tests {
		if got := FormatMinutes(in); got != want {
			t.Fatalf("%d: expected %s, got %s", in, want, got)
		}
	}
}
