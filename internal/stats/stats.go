// Package stats computes read-only productivity aggregates over the task
// list. A task counts toward a period if it is planned in that period or was
// completed in it (updatedAt); the two reports of different periods may both
// claim a task, but no task is counted twice within one report.
package stats

import (
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
)

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

func KnownPeriod(p string) bool {
	switch Period(p) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

type Summary struct {
	Period         Period `json:"period"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	TodoTasks      int    `json:"todoTasks"`
	// TotalTimeSpent sums timeSpent seconds across completed tasks.
	TotalTimeSpent int `json:"totalTimeSpent"`
	FrogsPlanned   int `json:"frogsPlanned"`
	FrogsCompleted int `json:"frogsCompleted"`
}

// ForPeriod aggregates the tasks that fall into the given period at now.
func ForPeriod(tasks []model.Task, p Period, now time.Time) Summary {
	in := inPeriodFn(p, now)
	sum := Summary{Period: p}
	for _, t := range tasks {
		if !in(t) {
			continue
		}
		sum.TotalTasks++
		if t.Frog {
			sum.FrogsPlanned++
		}
		if t.Status == model.TaskDone {
			sum.CompletedTasks++
			sum.TotalTimeSpent += t.TimeSpent
			if t.Frog {
				sum.FrogsCompleted++
			}
		} else {
			sum.TodoTasks++
		}
	}
	return sum
}

func inPeriodFn(p Period, now time.Time) func(model.Task) bool {
	switch p {
	case PeriodWeek:
		week := dateutil.Week(now)
		days := weekDays(now)
		return func(t model.Task) bool {
			if t.Plan.Week != nil && *t.Plan.Week == week {
				return true
			}
			if t.Plan.Day != nil && days[*t.Plan.Day] {
				return true
			}
			return t.Status == model.TaskDone && days[dateutil.Day(t.UpdatedAt)]
		}
	case PeriodMonth:
		prefix := now.Format("2006-01")
		return prefixMatch(prefix)
	case PeriodYear:
		prefix := now.Format("2006")
		return prefixMatch(prefix)
	case PeriodAll:
		return func(model.Task) bool { return true }
	default: // today
		today := dateutil.Day(now)
		return func(t model.Task) bool {
			if t.Plan.Day != nil && *t.Plan.Day == today {
				return true
			}
			return t.Status == model.TaskDone && dateutil.Day(t.UpdatedAt) == today
		}
	}
}

// prefixMatch counts a task when its plan day or completion day starts with
// the given YYYY or YYYY-MM prefix. Valid because days are zero-padded.
func prefixMatch(prefix string) func(model.Task) bool {
	return func(t model.Task) bool {
		if t.Plan.Day != nil && hasPrefix(*t.Plan.Day, prefix) {
			return true
		}
		return t.Status == model.TaskDone && hasPrefix(dateutil.Day(t.UpdatedAt), prefix)
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// weekDays returns the set of YYYY-MM-DD days in now's ISO week (Mon-Sun).
func weekDays(now time.Time) map[string]bool {
	monday := now
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}
	out := make(map[string]bool, 7)
	for i := 0; i < 7; i++ {
		out[dateutil.Day(monday.AddDate(0, 0, i))] = true
	}
	return out
}
