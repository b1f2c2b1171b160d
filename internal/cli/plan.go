package cli

import (
	"fmt"
	"strings"
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
)

// resolvePlan turns --day/--week flags into a Plan. A scheduled day implies
// its ISO week; a week alone is a week bucket; both empty means unscheduled.
// Format validation happens here, before dispatch; the reducer does not
// police input.
func resolvePlan(day, week string, now time.Time) (model.Plan, error) {
	day = strings.TrimSpace(day)
	week = strings.TrimSpace(week)

	if day != "" {
		if day == "today" {
			day = dateutil.Day(now)
		}
		if !dateutil.ValidDay(day) {
			return model.Plan{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD or 'today')", day)
		}
		w := dateutil.WeekOfDay(day, now)
		return model.Plan{Day: &day, Week: &w}, nil
	}

	if week != "" {
		if week == "current" {
			week = dateutil.Week(now)
		}
		if !dateutil.ValidWeek(week) {
			return model.Plan{}, fmt.Errorf("invalid week %q (expected YYYY-Www or 'current')", week)
		}
		return model.Plan{Week: &week}, nil
	}

	return model.Plan{}, nil
}
