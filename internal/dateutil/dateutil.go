// Package dateutil holds the date and ISO-week string conventions the
// scheduling logic is built on. Days are YYYY-MM-DD and weeks YYYY-Www;
// both are zero-padded and fixed-width, so plain lexicographic comparison
// orders them correctly.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

const dayLayout = "2006-01-02"

var (
	reDay  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	reWeek = regexp.MustCompile(`^\d{4}-W\d{2}$`)
)

// Day formats t as YYYY-MM-DD.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

// Week returns the ISO-8601 week identifier for t (Monday-start, week 1 =
// week of the year's first Thursday). Late-December days can belong to week
// 1 of the next year and early-January days to week 52/53 of the previous
// one; time.Time.ISOWeek covers those.
func Week(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekOfDay returns the ISO week of a YYYY-MM-DD string, or the week of now
// when the string does not parse.
func WeekOfDay(day string, now time.Time) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return Week(now)
	}
	return Week(t)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(dayLayout, day)
}

func ValidDay(s string) bool {
	if !reDay.MatchString(s) {
		return false
	}
	_, err := time.Parse(dayLayout, s)
	return err == nil
}

func ValidTime(s string) bool {
	return reTime.MatchString(s)
}

func ValidWeek(s string) bool {
	return reWeek.MatchString(s)
}

// FormatDuration renders accumulated seconds as h:mm:ss, or m:ss under an
// hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
