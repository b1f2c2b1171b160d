package cli

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func TestResolvePlan(t *testing.T) {
	cases := []struct {
		name     string
		day      string
		week     string
		wantDay  string
		wantWeek string
		wantErr  bool
	}{
		{"empty is unscheduled", "", "", "", "", false},
		{"explicit day implies its week", "2026-09-03", "", "2026-09-03", "2026-W36", false},
		{"today alias", "today", "", "2026-08-31", "2026-W36", false},
		{"day wins over week", "2026-09-03", "2026-W40", "2026-09-03", "2026-W36", false},
		{"week bucket only", "", "2026-W40", "", "2026-W40", false},
		{"current alias", "", "current", "", "2026-W36", false},
		{"bad day", "next tuesday", "", "", "", true},
		{"bad week", "", "week 40", "", "", true},
	}
	for _, c := range cases {
		plan, err := resolvePlan(c.day, c.week, testNow)
		if (err != nil) != c.wantErr {
			t.Fatalf("%s: err = %v", c.name, err)
		}
		if c.wantErr {
			continue
		}
		gotDay, gotWeek := "", ""
		if plan.Day != nil {
			gotDay = *plan.Day
		}
		if plan.Week != nil {
			gotWeek = *plan.Week
		}
		if gotDay != c.wantDay || gotWeek != c.wantWeek {
			t.Fatalf("%s: plan = (%q, %q), want (%q, %q)", c.name, gotDay, gotWeek, c.wantDay, c.wantWeek)
		}
	}
}
