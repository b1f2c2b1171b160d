// Package planner owns the in-memory state between actions. The holder is the
// composition root's replacement for a UI framework store: dispatch runs the
// pure reducer, then persists fire-and-forget. A failed save never rolls
// back the in-memory transition; the app keeps working and the failure is
// logged and surfaced on LastSaveErr.
package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"monofocus-cli/internal/model"
	"monofocus-cli/internal/reduce"
	"monofocus-cli/internal/store"
)

type Holder struct {
	st    store.Store
	state model.AppState

	// Now is the clock; swapped in tests.
	Now func() time.Time

	lastSaveErr error
}

// Open loads (and migrates) the persisted snapshot into a holder.
func Open(ctx context.Context, s store.Store) (*Holder, error) {
	h := &Holder{st: s, Now: time.Now}
	st, err := s.Load(ctx, h.Now())
	if err != nil {
		return nil, err
	}
	h.state = st
	return h, nil
}

// NewWithState builds a holder around an already-valid snapshot.
func NewWithState(s store.Store, st model.AppState) *Holder {
	return &Holder{st: s, state: st, Now: time.Now}
}

func (h *Holder) State() model.AppState {
	return h.state
}

func (h *Holder) Store() store.Store {
	return h.st
}

// Dispatch applies one action and persists the result. Returns the new state.
func (h *Holder) Dispatch(ctx context.Context, a model.Action) model.AppState {
	now := h.Now()
	h.state = reduce.Apply(h.state, a, now)

	if err := h.st.Save(ctx, h.state); err != nil {
		h.lastSaveErr = err
		log.Printf("warning: failed to persist state: %v", err)
	} else {
		h.lastSaveErr = nil
	}

	if name, summary := describe(a); name != "" {
		if err := h.st.AppendHistory(store.HistoryEntry{TS: now, Action: name, Summary: summary}); err != nil {
			log.Printf("warning: failed to append history: %v", err)
		}
	}
	return h.state
}

// LastSaveErr reports whether the most recent dispatch failed to persist.
func (h *Holder) LastSaveErr() error {
	return h.lastSaveErr
}

func describe(a model.Action) (name, summary string) {
	switch act := a.(type) {
	case model.InitState:
		return "", "" // boot hydration, not user activity
	case model.SetView:
		return "set_view", string(act.View)
	case model.AddCapture:
		return "add_capture", act.Text
	case model.ProcessCapture:
		return "process_capture", fmt.Sprintf("%s -> %s", act.ID, act.Status)
	case model.DeleteCapture:
		return "delete_capture", act.ID
	case model.AddTask:
		return "add_task", act.Task.Title
	case model.UpdateTask:
		return "update_task", act.Patch.ID
	case model.DeleteTask:
		return "delete_task", act.ID
	case model.AddEvent:
		return "add_event", act.Event.Title
	case model.UpdateEvent:
		return "update_event", act.Patch.ID
	case model.DeleteEvent:
		return "delete_event", act.ID
	case model.SetActiveTask:
		if act.ID == nil {
			return "focus_stop", ""
		}
		return "focus_start", *act.ID
	case model.UpdateTaskOrder:
		return "reorder", act.Day
	case model.ImportData:
		return "import", ""
	case model.ResetData:
		return "reset", ""
	}
	return "", ""
}
