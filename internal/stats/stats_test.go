package stats

import (
	"strings"
	"testing"
	"time"

	"monofocus-cli/internal/model"
)

// Monday 2026-08-31; its ISO week (2026-W36) runs through Sunday 2026-09-06.
var testNow = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }

func doneTask(id, day string, updated time.Time, spent int, frog bool) model.Task {
	t := model.Task{ID: id, Title: id, Status: model.TaskDone, UpdatedAt: updated, TimeSpent: spent, Frog: frog}
	if day != "" {
		t.Plan = model.Plan{Day: strp(day)}
	}
	return t
}

func todoTask(id, day string) model.Task {
	t := model.Task{ID: id, Title: id, Status: model.TaskTodo, UpdatedAt: testNow}
	if day != "" {
		t.Plan = model.Plan{Day: strp(day)}
	}
	return t
}

func TestForPeriod_Today(t *testing.T) {
	tasks := []model.Task{
		todoTask("planned-today", "2026-08-31"),
		todoTask("planned-tomorrow", "2026-09-01"),
		// Unplanned but completed today: counts via updatedAt.
		doneTask("done-today", "", testNow, 120, true),
		// Completed last week: out.
		doneTask("done-old", "", testNow.AddDate(0, 0, -7), 60, false),
	}
	sum := ForPeriod(tasks, PeriodToday, testNow)
	if sum.TotalTasks != 2 || sum.CompletedTasks != 1 || sum.TodoTasks != 1 {
		t.Fatalf("today summary: %+v", sum)
	}
	if sum.TotalTimeSpent != 120 {
		t.Fatalf("timeSpent should only sum completed-in-period: %d", sum.TotalTimeSpent)
	}
	if sum.FrogsPlanned != 1 || sum.FrogsCompleted != 1 {
		t.Fatalf("frog counts: %+v", sum)
	}
}

func TestForPeriod_WeekMatchesPlanWeekPlanDayAndCompletion(t *testing.T) {
	weekOnly := model.Task{ID: "week-bucket", Status: model.TaskTodo, Plan: model.Plan{Week: strp("2026-W36")}, UpdatedAt: testNow}
	tasks := []model.Task{
		weekOnly,
		todoTask("sunday", "2026-09-06"),
		todoTask("next-week", "2026-09-07"),
		doneTask("finished-wed", "", testNow.AddDate(0, 0, 2), 30, false),
		doneTask("finished-before", "", testNow.AddDate(0, 0, -1), 30, false),
	}
	sum := ForPeriod(tasks, PeriodWeek, testNow)
	if sum.TotalTasks != 3 {
		t.Fatalf("week summary total = %d (%+v)", sum.TotalTasks, sum)
	}
	if sum.CompletedTasks != 1 || sum.TodoTasks != 2 {
		t.Fatalf("week summary: %+v", sum)
	}
}

func TestForPeriod_MonthAndYearUsePrefixes(t *testing.T) {
	tasks := []model.Task{
		todoTask("aug", "2026-08-01"),
		todoTask("sep", "2026-09-15"),
		doneTask("done-feb", "", time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), 0, false),
		doneTask("done-2025", "", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 0, false),
	}
	if sum := ForPeriod(tasks, PeriodMonth, testNow); sum.TotalTasks != 1 {
		t.Fatalf("month: %+v", sum)
	}
	if sum := ForPeriod(tasks, PeriodYear, testNow); sum.TotalTasks != 3 {
		t.Fatalf("year: %+v", sum)
	}
	if sum := ForPeriod(tasks, PeriodAll, testNow); sum.TotalTasks != 4 {
		t.Fatalf("all: %+v", sum)
	}
}

func TestSeries_DailyCoversCurrentISOWeek(t *testing.T) {
	tasks := []model.Task{
		doneTask("mon", "", testNow, 60, true),
		doneTask("wed", "", testNow.AddDate(0, 0, 2), 30, false),
		doneTask("wed-2", "", testNow.AddDate(0, 0, 2), 30, false),
		doneTask("outside", "", testNow.AddDate(0, 0, -3), 999, false),
		todoTask("not-done", "2026-08-31"),
	}
	got := Series(tasks, UnitDaily, testNow)
	if len(got) != 7 {
		t.Fatalf("daily series length = %d", len(got))
	}
	if got[0].Key != "2026-08-31" || got[6].Key != "2026-09-06" {
		t.Fatalf("window bounds: %s .. %s", got[0].Key, got[6].Key)
	}
	if got[0].Completed != 1 || got[0].TimeSpent != 60 || got[0].FrogsCompleted != 1 {
		t.Fatalf("monday bucket: %+v", got[0])
	}
	if got[2].Completed != 2 || got[2].TimeSpent != 60 {
		t.Fatalf("wednesday bucket: %+v", got[2])
	}
	for _, b := range got {
		if b.TimeSpent == 999 {
			t.Fatalf("out-of-window completion leaked into %+v", b)
		}
	}
}

func TestSeries_YearlyIsOpenEndedAndSorted(t *testing.T) {
	tasks := []model.Task{
		doneTask("a", "", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 10, false),
		doneTask("b", "", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 20, false),
		doneTask("c", "", time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), 30, false),
	}
	got := Series(tasks, UnitYearly, testNow)
	if len(got) != 2 {
		t.Fatalf("yearly buckets: %+v", got)
	}
	if got[0].Key != "2024" || got[0].Completed != 2 || got[0].TimeSpent != 40 {
		t.Fatalf("2024 bucket: %+v", got[0])
	}
	if got[1].Key != "2026" || got[1].Completed != 1 {
		t.Fatalf("2026 bucket: %+v", got[1])
	}
}

func TestSeries_MonthlyCoversWholeYear(t *testing.T) {
	got := Series(nil, UnitMonthly, testNow)
	if len(got) != 12 {
		t.Fatalf("monthly buckets: %d", len(got))
	}
	if got[0].Key != "2026-01" || got[11].Key != "2026-12" {
		t.Fatalf("bounds: %s .. %s", got[0].Key, got[11].Key)
	}
}

func TestLastNDays_WindowEndsToday(t *testing.T) {
	tasks := []model.Task{
		doneTask("today", "", testNow, 10, false),
		doneTask("two-ago", "", testNow.AddDate(0, 0, -2), 20, false),
		doneTask("too-old", "", testNow.AddDate(0, 0, -5), 30, false),
	}
	got := LastNDays(tasks, 3, testNow)
	if len(got) != 3 {
		t.Fatalf("window length = %d", len(got))
	}
	if got[0].Key != "2026-08-29" || got[2].Key != "2026-08-31" {
		t.Fatalf("window: %s .. %s", got[0].Key, got[2].Key)
	}
	if got[0].Completed != 1 || got[1].Completed != 0 || got[2].Completed != 1 {
		t.Fatalf("counts: %+v", got)
	}
}

func TestReport_ContainsSummaryAndChart(t *testing.T) {
	tasks := []model.Task{
		doneTask("a", "2026-08-31", testNow, 3600, true),
		todoTask("b", "2026-08-31"),
	}
	out := Report(tasks, PeriodToday, testNow)
	for _, want := range []string{"Completed", "2026-08-31", "█"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
