package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWeek_ISOYearBoundaries(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		// 2024-12-30 is a Monday that belongs to week 1 of 2025.
		{date(2024, time.December, 30), "2025-W01"},
		{date(2024, time.December, 31), "2025-W01"},
		{date(2025, time.January, 1), "2025-W01"},
		// 2027-01-01 is a Friday in the last week of 2026.
		{date(2027, time.January, 1), "2026-W53"},
		{date(2026, time.August, 31), "2026-W36"},
		// Plain mid-year day.
		{date(2026, time.June, 10), "2026-W24"},
	}
	for _, c := range cases {
		if got := Week(c.in); got != c.want {
			t.Fatalf("Week(%s) = %q, want %q", Day(c.in), got, c.want)
		}
	}
}

func TestWeekOfDay_FallsBackToNowOnBadInput(t *testing.T) {
	now := date(2026, time.August, 31)
	if got := WeekOfDay("2026-06-10", now); got != "2026-W24" {
		t.Fatalf("WeekOfDay valid = %q", got)
	}
	if got := WeekOfDay("not-a-day", now); got != "2026-W36" {
		t.Fatalf("WeekOfDay fallback = %q", got)
	}
}

func TestValidDay(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-08-31", true},
		{"2026-02-29", false}, // not a leap year
		{"2024-02-29", true},
		{"2026-13-01", false},
		{"2026-8-31", false}, // not zero-padded
		{"26-08-31", false},
		{"", false},
		{"2026-08-31T00:00:00Z", false},
	}
	for _, c := range cases {
		if got := ValidDay(c.in); got != c.want {
			t.Fatalf("ValidDay(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"12:60", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidTime(c.in); got != c.want {
			t.Fatalf("ValidTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidWeek(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-W01", true},
		{"2026-W53", true},
		{"2026-w01", false},
		{"2026-W1", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidWeek(c.in); got != c.want {
			t.Fatalf("ValidWeek(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
