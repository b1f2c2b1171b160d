package planner

import (
	"time"

	"monofocus-cli/internal/model"
)

// ActiveElapsed returns the active task and its displayed elapsed seconds:
// the committed timeSpent base plus the running span since the timer
// started. Nothing ticks in persisted state; elapsed time is recomputed at
// read time, which is what makes the timer survive restarts for free.
func ActiveElapsed(st model.AppState, now time.Time) (model.Task, int, bool) {
	if st.ActiveTaskID == nil || st.ActiveTaskStartedAt == nil {
		return model.Task{}, 0, false
	}
	t, ok := st.FindTask(*st.ActiveTaskID)
	if !ok {
		return model.Task{}, 0, false
	}
	running := int(now.Sub(*st.ActiveTaskStartedAt) / time.Second)
	if running < 0 {
		running = 0
	}
	return *t, t.TimeSpent + running, true
}
