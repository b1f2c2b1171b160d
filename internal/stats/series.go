package stats

import (
	"sort"
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
)

// Bucket is one bar of a chart series: completed work only, keyed by a
// calendar unit (day, ISO week, month or year identifier).
type Bucket struct {
	Key            string `json:"key"`
	Completed      int    `json:"completed"`
	TimeSpent      int    `json:"timeSpent"`
	FrogsCompleted int    `json:"frogsCompleted"`
}

type Unit string

const (
	UnitDaily   Unit = "daily"
	UnitWeekly  Unit = "weekly"
	UnitMonthly Unit = "monthly"
	UnitYearly  Unit = "yearly"
)

func KnownUnit(u string) bool {
	switch Unit(u) {
	case UnitDaily, UnitWeekly, UnitMonthly, UnitYearly:
		return true
	}
	return false
}

// Series buckets completed tasks by their completion (updatedAt) calendar
// unit. Fixed windows keep charts stable: daily covers now's ISO week,
// weekly covers now's month, monthly covers now's year, yearly covers
// everything ever completed.
func Series(tasks []model.Task, unit Unit, now time.Time) []Bucket {
	switch unit {
	case UnitWeekly:
		return fixedSeries(tasks, monthWeekKeys(now), weekKeyOf)
	case UnitMonthly:
		return fixedSeries(tasks, yearMonthKeys(now), func(t time.Time) string { return t.Format("2006-01") })
	case UnitYearly:
		return openSeries(tasks, func(t time.Time) string { return t.Format("2006") })
	default:
		return fixedSeries(tasks, isoWeekDayKeys(now), dateutil.Day)
	}
}

// LastNDays is the daily series for a trailing window ending today.
func LastNDays(tasks []model.Task, n int, now time.Time) []Bucket {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, dateutil.Day(now.AddDate(0, 0, -i)))
	}
	return fixedSeries(tasks, keys, dateutil.Day)
}

func fixedSeries(tasks []model.Task, keys []string, keyOf func(time.Time) string) []Bucket {
	byKey := make(map[string]*Bucket, len(keys))
	out := make([]Bucket, len(keys))
	for i, k := range keys {
		out[i] = Bucket{Key: k}
		byKey[k] = &out[i]
	}
	for _, t := range tasks {
		if t.Status != model.TaskDone {
			continue
		}
		if b, ok := byKey[keyOf(t.UpdatedAt)]; ok {
			add(b, t)
		}
	}
	return out
}

func openSeries(tasks []model.Task, keyOf func(time.Time) string) []Bucket {
	byKey := map[string]*Bucket{}
	for _, t := range tasks {
		if t.Status != model.TaskDone {
			continue
		}
		k := keyOf(t.UpdatedAt)
		b, ok := byKey[k]
		if !ok {
			b = &Bucket{Key: k}
			byKey[k] = b
		}
		add(b, t)
	}
	out := make([]Bucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func add(b *Bucket, t model.Task) {
	b.Completed++
	b.TimeSpent += t.TimeSpent
	if t.Frog {
		b.FrogsCompleted++
	}
}

func weekKeyOf(t time.Time) string {
	return dateutil.Week(t)
}

// isoWeekDayKeys returns the Mon-Sun days of now's ISO week.
func isoWeekDayKeys(now time.Time) []string {
	monday := now
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}
	keys := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		keys = append(keys, dateutil.Day(monday.AddDate(0, 0, i)))
	}
	return keys
}

// monthWeekKeys returns the distinct ISO weeks touching now's month,
// in calendar order.
func monthWeekKeys(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keys := []string{}
	seen := map[string]bool{}
	for d := first; d.Month() == now.Month(); d = d.AddDate(0, 0, 1) {
		w := dateutil.Week(d)
		if !seen[w] {
			seen[w] = true
			keys = append(keys, w)
		}
	}
	return keys
}

func yearMonthKeys(now time.Time) []string {
	keys := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		keys = append(keys, time.Date(now.Year(), m, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
	}
	return keys
}
