package cli

import (
	"errors"
	"strings"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
	"monofocus-cli/internal/reduce"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Create, edit and schedule tasks",
	}
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksUndoneCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksOrderCmd(app))
	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var day, week string
	var frog bool
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return writeErr(cmd, errors.New("task title must not be empty"))
			}
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			now := h.Now()
			plan, err := resolvePlan(day, week, now)
			if err != nil {
				return writeErr(cmd, err)
			}
			task := model.Task{
				ID:        model.NewID("task"),
				Title:     title,
				Status:    model.TaskTodo,
				Plan:      plan,
				Frog:      frog,
				CreatedAt: now,
				UpdatedAt: now,
			}
			st := h.Dispatch(cmd.Context(), model.AddTask{Task: task})
			t, _ := st.FindTask(task.ID)
			hints := []string{"monofocus focus start " + task.ID}
			return writeOut(cmd, app, map[string]any{"data": t, "_hints": hints})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Schedule for a day (YYYY-MM-DD or 'today')")
	cmd.Flags().StringVar(&week, "week", "", "Bucket into a week (YYYY-Www or 'current')")
	cmd.Flags().BoolVar(&frog, "frog", false, "Mark as the day's frog (do first)")
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var day, week, status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			now := h.Now()
			if day == "today" {
				day = dateutil.Day(now)
			}
			if week == "current" {
				week = dateutil.Week(now)
			}

			st := h.State()
			// Day listings respect the saved drag order.
			if day != "" {
				return writeOut(cmd, app, map[string]any{"data": reduce.DayTasks(st, day)})
			}

			out := []model.Task{}
			for _, t := range st.Tasks {
				if status != "all" && string(t.Status) != status {
					continue
				}
				if week != "" && (t.Plan.Week == nil || *t.Plan.Week != week) {
					continue
				}
				out = append(out, t)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Only tasks scheduled for a day (YYYY-MM-DD or 'today'), in saved order")
	cmd.Flags().StringVar(&week, "week", "", "Only tasks in a week (YYYY-Www or 'current')")
	cmd.Flags().StringVar(&status, "status", "todo", "Filter by status (todo|done|all)")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var title, day, week string
	var frog bool
	var clearPlan bool
	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Edit a task's title, plan or frog mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			if _, ok := cur.FindTask(id); !ok {
				return writeErr(cmd, errNotFound("task", id))
			}

			patch := model.TaskPatch{ID: id}
			if cmd.Flags().Changed("title") {
				t := strings.TrimSpace(title)
				if t == "" {
					return writeErr(cmd, errors.New("task title must not be empty"))
				}
				patch.Title = &t
			}
			if cmd.Flags().Changed("frog") {
				f := frog
				patch.Frog = &f
			}
			switch {
			case clearPlan:
				patch.Plan = &model.Plan{}
			case cmd.Flags().Changed("day") || cmd.Flags().Changed("week"):
				plan, err := resolvePlan(day, week, h.Now())
				if err != nil {
					return writeErr(cmd, err)
				}
				patch.Plan = &plan
			}

			st := h.Dispatch(cmd.Context(), model.UpdateTask{Patch: patch})
			t, _ := st.FindTask(id)
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&day, "day", "", "Reschedule to a day (YYYY-MM-DD or 'today')")
	cmd.Flags().StringVar(&week, "week", "", "Rebucket into a week (YYYY-Www or 'current')")
	cmd.Flags().BoolVar(&frog, "frog", false, "Set or clear the frog mark (--frog=false clears)")
	cmd.Flags().BoolVar(&clearPlan, "clear-plan", false, "Unschedule the task")
	return cmd
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  setTaskStatusRunE(app, model.TaskDone),
	}
}

func newTasksUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <task-id>",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE:  setTaskStatusRunE(app, model.TaskTodo),
	}
}

func setTaskStatusRunE(app *App, status model.TaskStatus) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, err := openHolder(cmd, app)
		if err != nil {
			return writeErr(cmd, err)
		}
		id := strings.TrimSpace(args[0])
		cur := h.State()
		if _, ok := cur.FindTask(id); !ok {
			return writeErr(cmd, errNotFound("task", id))
		}
		// Status-only patch: an event-linked task can be completed without
		// rewriting its event.
		s := status
		st := h.Dispatch(cmd.Context(), model.UpdateTask{Patch: model.TaskPatch{ID: id, Status: &s}})
		t, _ := st.FindTask(id)
		return writeOut(cmd, app, map[string]any{"data": t})
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			if _, ok := cur.FindTask(id); !ok {
				return writeErr(cmd, errNotFound("task", id))
			}
			h.Dispatch(cmd.Context(), model.DeleteTask{ID: id})
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
}

func newTasksOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order <day> [task-id ...]",
		Short: "Show or set the task order for a day",
		Long: strings.TrimSpace(`
Show or set the manual task order for one day.

With only a day argument, prints the reconciled order (saved order first,
unknown tasks appended). With task ids, replaces the saved order verbatim;
ids of deleted or rescheduled tasks are tolerated and skipped when reading.
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			day := strings.TrimSpace(args[0])
			if day == "today" {
				day = dateutil.Day(h.Now())
			}
			if !dateutil.ValidDay(day) {
				return writeErr(cmd, errors.New("invalid day: expected YYYY-MM-DD or 'today'"))
			}

			if len(args) == 1 {
				return writeOut(cmd, app, map[string]any{"data": reduce.DayOrder(h.State(), day)})
			}
			st := h.Dispatch(cmd.Context(), model.UpdateTaskOrder{Day: day, Order: args[1:]})
			return writeOut(cmd, app, map[string]any{"data": reduce.DayOrder(st, day)})
		},
	}
	return cmd
}
