package reduce

import "monofocus-cli/internal/model"

// DayOrder reconciles the saved order hint for a day against the tasks that
// actually belong to it: saved ids that still match come first (in saved
// order), tasks the hint does not know about are appended in state order.
// The hint itself is never rewritten here; stale ids are simply skipped.
func DayOrder(st model.AppState, day string) []string {
	available := []string{}
	for _, t := range st.Tasks {
		if t.Status == model.TaskTodo && t.Plan.Day != nil && *t.Plan.Day == day {
			available = append(available, t.ID)
		}
	}

	saved := st.TaskOrderByDay[day]
	if len(saved) == 0 {
		return available
	}

	avail := make(map[string]bool, len(available))
	for _, id := range available {
		avail[id] = true
	}

	out := make([]string, 0, len(available))
	seen := make(map[string]bool, len(available))
	for _, id := range saved {
		if avail[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	for _, id := range available {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// DayTasks is DayOrder resolved to tasks.
func DayTasks(st model.AppState, day string) []model.Task {
	ids := DayOrder(st, day)
	out := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := st.FindTask(id); ok {
			out = append(out, *t)
		}
	}
	return out
}
