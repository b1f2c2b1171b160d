package stats

import (
	"fmt"
	"strings"
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
)

// Report renders a markdown productivity report for one period, suitable
// for terminal rendering (glamour) or plain output.
func Report(tasks []model.Task, p Period, now time.Time) string {
	sum := ForPeriod(tasks, p, now)

	var b strings.Builder
	fmt.Fprintf(&b, "# Statistics — %s\n\n", periodLabel(p, now))

	rate := 0
	if sum.TotalTasks > 0 {
		rate = sum.CompletedTasks * 100 / sum.TotalTasks
	}
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Tasks | %d |\n", sum.TotalTasks)
	fmt.Fprintf(&b, "| Completed | %d (%d%%) |\n", sum.CompletedTasks, rate)
	fmt.Fprintf(&b, "| Outstanding | %d |\n", sum.TodoTasks)
	fmt.Fprintf(&b, "| Focused time | %s |\n", dateutil.FormatDuration(sum.TotalTimeSpent))
	fmt.Fprintf(&b, "| Frogs | %d/%d |\n", sum.FrogsCompleted, sum.FrogsPlanned)

	unit := unitForPeriod(p)
	series := Series(tasks, unit, now)
	if p == PeriodToday {
		series = LastNDays(tasks, 7, now)
	}
	if len(series) > 0 {
		fmt.Fprintf(&b, "\n## Completed (%s)\n\n", unit)
		max := 0
		for _, bk := range series {
			if bk.Completed > max {
				max = bk.Completed
			}
		}
		for _, bk := range series {
			bar := ""
			if max > 0 {
				bar = strings.Repeat("█", bk.Completed*20/maxInt(max, 1))
			}
			fmt.Fprintf(&b, "    %-10s %3d  %s\n", bk.Key, bk.Completed, bar)
		}
	}
	return b.String()
}

func unitForPeriod(p Period) Unit {
	switch p {
	case PeriodWeek:
		return UnitDaily
	case PeriodMonth:
		return UnitWeekly
	case PeriodYear:
		return UnitMonthly
	case PeriodAll:
		return UnitYearly
	default:
		return UnitDaily
	}
}

func periodLabel(p Period, now time.Time) string {
	switch p {
	case PeriodWeek:
		return dateutil.Week(now)
	case PeriodMonth:
		return now.Format("January 2006")
	case PeriodYear:
		return now.Format("2006")
	case PeriodAll:
		return "all time"
	default:
		return dateutil.Day(now)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
