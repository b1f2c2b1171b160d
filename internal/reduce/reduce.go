// Package reduce implements the pure state-transition function of the
// planner. Apply never fails and never mutates its input: every case returns
// a fresh snapshot, which is what makes fire-and-forget persistence and
// re-rendering safe.
package reduce

import (
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/migrate"
	"monofocus-cli/internal/model"
)

// Apply returns the next state for an action. Unknown or stale-id actions
// are no-ops; the UI is the only action producer and is not expected to
// reference dead ids, but a bad id must not crash the app.
func Apply(st model.AppState, a model.Action, now time.Time) model.AppState {
	switch act := a.(type) {
	case model.InitState:
		return act.Snapshot

	case model.SetView:
		out := st
		out.LastActiveView = act.View
		return out

	case model.AddCapture:
		out := st.Clone()
		c := model.Capture{
			ID:        model.NewID("cap"),
			Text:      act.Text,
			CreatedAt: now,
			Status:    model.CaptureNew,
		}
		out.Captures = append([]model.Capture{c}, out.Captures...)
		return out

	case model.ProcessCapture:
		out := st.Clone()
		for i := range out.Captures {
			if out.Captures[i].ID == act.ID {
				out.Captures[i].Status = act.Status
			}
		}
		return out

	case model.DeleteCapture:
		out := st.Clone()
		out.Captures = filterCaptures(out.Captures, act.ID)
		return out

	case model.AddTask:
		out := st.Clone()
		out.Tasks = append(out.Tasks, act.Task)
		return out

	case model.UpdateTask:
		return applyUpdateTask(st, act.Patch, now)

	case model.DeleteTask:
		out := st.Clone()
		deleteTask(&out, act.ID)
		return out

	case model.AddEvent:
		out := st.Clone()
		out.Events = append(out.Events, act.Event)
		return out

	case model.UpdateEvent:
		return applyUpdateEvent(st, act.Patch, now)

	case model.DeleteEvent:
		out := st.Clone()
		out.Events = filterEvents(out.Events, act.ID)
		if t, ok := st.TaskByEvent(act.ID); ok {
			deleteTask(&out, t.ID)
		}
		return out

	case model.SetActiveTask:
		out := st
		if act.ID == nil {
			out.ActiveTaskID = nil
			out.ActiveTaskStartedAt = nil
			return out
		}
		id := *act.ID
		out.ActiveTaskID = &id
		started := now
		if act.StartedAt != nil {
			started = *act.StartedAt
		}
		out.ActiveTaskStartedAt = &started
		return out

	case model.UpdateTaskOrder:
		out := st.Clone()
		order := make([]string, len(act.Order))
		copy(order, act.Order)
		out.TaskOrderByDay[act.Day] = order
		return out

	case model.ImportData:
		return migrate.Migrate(act.Raw, now)

	case model.ResetData:
		return model.InitialState()
	}

	return st
}

func applyUpdateTask(st model.AppState, p model.TaskPatch, now time.Time) model.AppState {
	out := st.Clone()
	idx := -1
	for i := range out.Tasks {
		if out.Tasks[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out
	}

	t := &out.Tasks[idx]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Plan != nil {
		t.Plan = *p.Plan
	}
	if p.Frog != nil {
		t.Frog = *p.Frog
	}
	if p.ProjectID != nil {
		id := *p.ProjectID
		t.ProjectID = &id
	}
	if p.EventID != nil {
		id := *p.EventID
		t.EventID = &id
	}
	if p.TimeSpent != nil {
		t.TimeSpent = *p.TimeSpent
	}
	t.UpdatedAt = now

	// Substantive edits flow forward into the linked event. Pure status
	// flips do not, so finishing a meeting task leaves the meeting alone.
	// The sync writes event fields only and never re-enters the reducer,
	// which is what rules out edit loops.
	if t.EventID != nil && !p.StatusOnly() {
		for i := range out.Events {
			if out.Events[i].ID != *t.EventID {
				continue
			}
			ev := &out.Events[i]
			if evTime, rest, ok := model.SplitTimeTitle(t.Title); ok {
				ev.Time = evTime
				ev.Title = rest
			}
			if t.Plan.Day != nil {
				ev.Date = *t.Plan.Day
			}
			break
		}
	}
	return out
}

func applyUpdateEvent(st model.AppState, p model.EventPatch, now time.Time) model.AppState {
	out := st.Clone()
	idx := -1
	for i := range out.Events {
		if out.Events[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out
	}

	ev := &out.Events[idx]
	if p.Title != nil {
		ev.Title = *p.Title
	}
	if p.Date != nil {
		ev.Date = *p.Date
	}
	if p.Time != nil {
		ev.Time = *p.Time
	}
	if p.Note != nil {
		note := *p.Note
		ev.Note = &note
	}

	// Event edits always push into the linked task: time-prefixed title and
	// plan re-derived from the event date.
	if t, ok := out.TaskByEvent(ev.ID); ok {
		t.Title = model.EventTitle(ev.Time, ev.Title)
		day := ev.Date
		week := dateutil.WeekOfDay(ev.Date, now)
		t.Plan = model.Plan{Day: &day, Week: &week}
		t.UpdatedAt = now
	}
	return out
}

// deleteTask removes the task in place (out must already be a clone):
// the task itself, its active-task slot, and its id in any day-order list.
func deleteTask(out *model.AppState, id string) {
	tasks := out.Tasks[:0:0]
	for _, t := range out.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	out.Tasks = tasks

	if out.ActiveTaskID != nil && *out.ActiveTaskID == id {
		out.ActiveTaskID = nil
		out.ActiveTaskStartedAt = nil
	}

	for day, ids := range out.TaskOrderByDay {
		kept := ids[:0:0]
		for _, x := range ids {
			if x != id {
				kept = append(kept, x)
			}
		}
		out.TaskOrderByDay[day] = kept
	}
}

func filterCaptures(in []model.Capture, id string) []model.Capture {
	out := in[:0:0]
	for _, c := range in {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func filterEvents(in []model.CalendarEvent, id string) []model.CalendarEvent {
	out := in[:0:0]
	for _, e := range in {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
