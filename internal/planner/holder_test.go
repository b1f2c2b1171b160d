package planner

import (
	"context"
	"testing"
	"time"

	"monofocus-cli/internal/model"
	"monofocus-cli/internal/store"
)

var testNow = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

func newTestHolder(t *testing.T) *Holder {
	t.Helper()
	h, err := Open(context.Background(), store.Store{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h.Now = func() time.Time { return testNow }
	return h
}

func TestHolder_DispatchAppliesAndPersists(t *testing.T) {
	h := newTestHolder(t)

	st := h.Dispatch(context.Background(), model.AddCapture{Text: "remember the milk"})
	if len(st.Captures) != 1 {
		t.Fatalf("capture not applied: %+v", st.Captures)
	}
	if err := h.LastSaveErr(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A fresh holder over the same dir sees the persisted transition.
	h2, err := Open(context.Background(), h.Store())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := h2.State().Captures; len(got) != 1 || got[0].Text != "remember the milk" {
		t.Fatalf("persisted state: %+v", got)
	}
}

func TestHolder_DispatchWritesHistory(t *testing.T) {
	h := newTestHolder(t)
	h.Dispatch(context.Background(), model.AddCapture{Text: "a"})
	h.Dispatch(context.Background(), model.SetView{View: model.ViewWeek})
	// Boot hydration is not user activity and stays out of the log.
	h.Dispatch(context.Background(), model.InitState{Snapshot: h.State()})

	entries, err := h.Store().ReadHistory(0)
	if err != nil {
		t.Fatalf("ReadHistory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if entries[0].Action != "add_capture" || entries[1].Action != "set_view" {
		t.Fatalf("entries: %+v", entries)
	}
}

func TestActiveElapsed(t *testing.T) {
	st := model.InitialState()
	st.Tasks = append(st.Tasks, model.Task{ID: "task-a", Title: "a", Status: model.TaskTodo, TimeSpent: 100})

	if _, _, ok := ActiveElapsed(st, testNow); ok {
		t.Fatalf("no active task expected")
	}

	id := "task-a"
	started := testNow.Add(-90 * time.Second)
	st.ActiveTaskID = &id
	st.ActiveTaskStartedAt = &started

	tk, elapsed, ok := ActiveElapsed(st, testNow)
	if !ok || tk.ID != "task-a" {
		t.Fatalf("ActiveElapsed: %+v %v", tk, ok)
	}
	if elapsed != 190 {
		t.Fatalf("elapsed = %d, want timeSpent+running = 190", elapsed)
	}

	// Clock skew: a start timestamp in the future never yields a negative span.
	future := testNow.Add(time.Minute)
	st.ActiveTaskStartedAt = &future
	if _, elapsed, _ := ActiveElapsed(st, testNow); elapsed != 100 {
		t.Fatalf("future start: elapsed = %d", elapsed)
	}

	// Dangling active id is treated as no active task.
	gone := "task-gone"
	st.ActiveTaskID = &gone
	st.ActiveTaskStartedAt = &started
	if _, _, ok := ActiveElapsed(st, testNow); ok {
		t.Fatalf("dangling id should not report active")
	}
}

func TestHolder_FocusSessionAccumulatesTimeSpent(t *testing.T) {
	h := newTestHolder(t)
	ctx := context.Background()

	day := "2026-08-31"
	week := "2026-W36"
	task := model.Task{
		ID: "task-a", Title: "deep work", Status: model.TaskTodo,
		Plan:      model.Plan{Day: &day, Week: &week},
		CreatedAt: testNow, UpdatedAt: testNow,
	}
	h.Dispatch(ctx, model.AddTask{Task: task})

	id := "task-a"
	h.Dispatch(ctx, model.SetActiveTask{ID: &id})

	// Stop 10 minutes later: commit elapsed, then clear the timer.
	stop := testNow.Add(10 * time.Minute)
	h.Now = func() time.Time { return stop }
	_, elapsed, ok := ActiveElapsed(h.State(), stop)
	if !ok || elapsed != 600 {
		t.Fatalf("elapsed before stop: %d %v", elapsed, ok)
	}
	h.Dispatch(ctx, model.UpdateTask{Patch: model.TaskPatch{ID: id, TimeSpent: &elapsed}})
	h.Dispatch(ctx, model.SetActiveTask{ID: nil})

	st := h.State()
	if st.ActiveTaskID != nil || st.ActiveTaskStartedAt != nil {
		t.Fatalf("timer not cleared")
	}
	tk, ok := st.FindTask(id)
	if !ok || tk.TimeSpent != 600 {
		t.Fatalf("timeSpent not committed: %+v", tk)
	}
}
