package cli

import (
	"errors"
	"strings"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
	"monofocus-cli/internal/planner"

	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Work one task at a time with an elapsed timer",
	}
	cmd.AddCommand(newFocusStartCmd(app))
	cmd.AddCommand(newFocusStopCmd(app))
	cmd.AddCommand(newFocusDoneCmd(app))
	cmd.AddCommand(newFocusStatusCmd(app))
	return cmd
}

func newFocusStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id>",
		Short: "Start focusing on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			t, ok := cur.FindTask(id)
			if !ok {
				return writeErr(cmd, errNotFound("task", id))
			}
			if t.Status == model.TaskDone {
				return writeErr(cmd, errors.New("task is already done; reopen it first (tasks undone)"))
			}
			// Switching focus commits nothing for the previous task; pause
			// it explicitly (focus stop) to bank its elapsed time.
			st := h.Dispatch(cmd.Context(), model.SetActiveTask{ID: &id})
			task, elapsed, _ := planner.ActiveElapsed(st, h.Now())
			return writeOut(cmd, app, map[string]any{"data": focusPayload(task, elapsed)})
		},
	}
}

func newFocusStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Pause the focus timer, banking elapsed time into the task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, elapsed, ok := planner.ActiveElapsed(h.State(), h.Now())
			if !ok {
				return writeErr(cmd, errors.New("no active task"))
			}
			h.Dispatch(cmd.Context(), model.UpdateTask{Patch: model.TaskPatch{ID: task.ID, TimeSpent: &elapsed}})
			st := h.Dispatch(cmd.Context(), model.SetActiveTask{ID: nil})
			t, _ := st.FindTask(task.ID)
			return writeOut(cmd, app, map[string]any{"data": focusPayload(*t, t.TimeSpent)})
		},
	}
}

func newFocusDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Complete the active task, banking elapsed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, elapsed, ok := planner.ActiveElapsed(h.State(), h.Now())
			if !ok {
				return writeErr(cmd, errors.New("no active task"))
			}
			done := model.TaskDone
			h.Dispatch(cmd.Context(), model.UpdateTask{Patch: model.TaskPatch{
				ID:        task.ID,
				Status:    &done,
				TimeSpent: &elapsed,
			}})
			st := h.Dispatch(cmd.Context(), model.SetActiveTask{ID: nil})
			t, _ := st.FindTask(task.ID)
			return writeOut(cmd, app, map[string]any{"data": focusPayload(*t, t.TimeSpent)})
		},
	}
}

func newFocusStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active task and its running elapsed time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, elapsed, ok := planner.ActiveElapsed(h.State(), h.Now())
			if !ok {
				return writeOut(cmd, app, map[string]any{"data": nil})
			}
			return writeOut(cmd, app, map[string]any{"data": focusPayload(task, elapsed)})
		},
	}
}

func focusPayload(t model.Task, elapsed int) map[string]any {
	return map[string]any{
		"task":           t,
		"elapsedSeconds": elapsed,
		"elapsed":        dateutil.FormatDuration(elapsed),
	}
}
