// Package migrate normalizes arbitrary persisted or imported JSON into a
// valid current-shape snapshot. It is deliberately paranoid: every field is
// shape-checked and coerced individually, so data written by any earlier
// schema version (retired difficulty field, retired "focus" view, missing
// eventId or order maps) loads without error. Migrate never fails; malformed
// input degrades to defaults.
package migrate

import (
	"encoding/json"
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
)

// MigrateJSON decodes raw bytes and migrates them. Undecodable input yields
// the initial state.
func MigrateJSON(b []byte, now time.Time) model.AppState {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return model.InitialState()
	}
	return Migrate(raw, now)
}

// Migrate normalizes a decoded JSON value (as produced by json.Unmarshal
// into any) into a valid snapshot and applies the carry-over rule: an
// unfinished task scheduled for a past day rolls forward onto today.
func Migrate(raw any, now time.Time) model.AppState {
	st := model.InitialState()
	m, ok := raw.(map[string]any)
	if !ok {
		return st
	}

	for _, c := range asSlice(m["captures"]) {
		st.Captures = append(st.Captures, migrateCapture(c, now))
	}
	for _, t := range asSlice(m["tasks"]) {
		st.Tasks = append(st.Tasks, migrateTask(t, now))
	}
	for _, e := range asSlice(m["events"]) {
		st.Events = append(st.Events, migrateEvent(e, now))
	}

	st.ActiveTaskID = asStringPtr(m["activeTaskId"])
	st.ActiveTaskStartedAt = asTimestamp(m["activeTaskStartedAt"])
	// The pair is non-null together or not at all.
	if st.ActiveTaskID == nil || st.ActiveTaskStartedAt == nil {
		st.ActiveTaskID = nil
		st.ActiveTaskStartedAt = nil
	}

	st.LastActiveView = migrateView(m["lastActiveView"])
	st.TaskOrderByDay = migrateOrderMap(m["taskOrderByDay"])
	st.TaskOrderByWeekBucket = migrateOrderMap(m["taskOrderByWeekBucket"])

	carryOver(&st, now)
	return st
}

// carryOver rewrites todo tasks with a past plan.day onto today. Runs on
// every load and import; rewriting to today makes it idempotent.
func carryOver(st *model.AppState, now time.Time) {
	today := dateutil.Day(now)
	week := dateutil.Week(now)
	for i := range st.Tasks {
		t := &st.Tasks[i]
		if t.Status != model.TaskTodo || t.Plan.Day == nil {
			continue
		}
		if *t.Plan.Day < today {
			d, w := today, week
			t.Plan.Day = &d
			t.Plan.Week = &w
		}
	}
}

func migrateTask(raw any, now time.Time) model.Task {
	m := asMap(raw)
	t := model.Task{
		ID:        stringOr(m["id"], ""),
		Title:     stringOr(m["title"], ""),
		Status:    model.TaskTodo,
		Frog:      m["frog"] == true,
		ProjectID: asStringPtr(m["projectId"]),
		EventID:   asStringPtr(m["eventId"]),
		CreatedAt: timeOr(m["createdAt"], now),
		UpdatedAt: timeOr(m["updatedAt"], now),
	}
	if t.ID == "" {
		t.ID = model.NewID("task")
	}
	if stringOr(m["status"], "") == string(model.TaskDone) {
		t.Status = model.TaskDone
	}

	plan := asMap(m["plan"])
	if d := stringOr(plan["day"], ""); dateutil.ValidDay(d) {
		t.Plan.Day = &d
	}
	if w := stringOr(plan["week"], ""); dateutil.ValidWeek(w) {
		t.Plan.Week = &w
	}

	if n, ok := m["timeSpent"].(float64); ok && n > 0 {
		t.TimeSpent = int(n)
	}
	// Anything else (e.g. the retired difficulty field) is dropped here by
	// construction: only known fields are read.
	return t
}

func migrateCapture(raw any, now time.Time) model.Capture {
	m := asMap(raw)
	c := model.Capture{
		ID:        stringOr(m["id"], ""),
		Text:      stringOr(m["text"], ""),
		CreatedAt: timeOr(m["createdAt"], now),
		Status:    model.CaptureNew,
	}
	if c.ID == "" {
		c.ID = model.NewID("cap")
	}
	switch model.CaptureStatus(stringOr(m["status"], "")) {
	case model.CaptureProcessed:
		c.Status = model.CaptureProcessed
	case model.CaptureArchived:
		c.Status = model.CaptureArchived
	}
	return c
}

func migrateEvent(raw any, now time.Time) model.CalendarEvent {
	m := asMap(raw)
	e := model.CalendarEvent{
		ID:    stringOr(m["id"], ""),
		Title: stringOr(m["title"], ""),
		Date:  stringOr(m["date"], ""),
		Time:  stringOr(m["time"], ""),
		Note:  asStringPtr(m["note"]),
	}
	if e.ID == "" {
		e.ID = model.NewID("evt")
	}
	if !dateutil.ValidDay(e.Date) {
		e.Date = dateutil.Day(now)
	}
	if !dateutil.ValidTime(e.Time) {
		e.Time = "00:00"
	}
	return e
}

func migrateView(raw any) model.View {
	v := stringOr(raw, "")
	// "focus" was folded into the today view.
	if v == "focus" {
		return model.ViewToday
	}
	if model.KnownView(v) {
		return model.View(v)
	}
	return model.ViewToday
}

func migrateOrderMap(raw any) map[string][]string {
	out := map[string][]string{}
	for day, v := range asMap(raw) {
		ids := []string{}
		for _, x := range asSlice(v) {
			if s, ok := x.(string); ok {
				ids = append(ids, s)
			}
		}
		out[day] = ids
	}
	return out
}
