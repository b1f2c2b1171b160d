package cli

import (
	"errors"
	"strings"

	"monofocus-cli/internal/model"

	"github.com/spf13/cobra"
)

func newInboxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Capture and triage inbox notes",
	}
	cmd.AddCommand(newInboxAddCmd(app))
	cmd.AddCommand(newInboxListCmd(app))
	cmd.AddCommand(newInboxProcessCmd(app))
	cmd.AddCommand(newInboxArchiveCmd(app))
	cmd.AddCommand(newInboxDeleteCmd(app))
	cmd.AddCommand(newInboxPlanCmd(app))
	return cmd
}

func newInboxAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Capture a note into the inbox",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				// The reducer accepts empty text; rejecting it is this
				// layer's job.
				return writeErr(cmd, errors.New("capture text must not be empty"))
			}
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := h.Dispatch(cmd.Context(), model.AddCapture{Text: text})
			hints := []string{
				"monofocus inbox plan " + st.Captures[0].ID + " --day today",
			}
			return writeOut(cmd, app, map[string]any{"data": st.Captures[0], "_hints": hints})
		},
	}
}

func newInboxListCmd(app *App) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inbox captures",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := []model.Capture{}
			for _, c := range h.State().Captures {
				if status == "all" || string(c.Status) == status {
					out = append(out, c)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().StringVar(&status, "status", "new", "Filter by status (new|processed|archived|all)")
	return cmd
}

func newInboxProcessCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "process <capture-id>",
		Short: "Mark a capture processed",
		Args:  cobra.ExactArgs(1),
		RunE:  setCaptureStatusRunE(app, model.CaptureProcessed),
	}
}

func newInboxArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <capture-id>",
		Short: "Archive a capture without turning it into a task",
		Args:  cobra.ExactArgs(1),
		RunE:  setCaptureStatusRunE(app, model.CaptureArchived),
	}
}

func setCaptureStatusRunE(app *App, status model.CaptureStatus) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, err := openHolder(cmd, app)
		if err != nil {
			return writeErr(cmd, err)
		}
		id := strings.TrimSpace(args[0])
		cur := h.State()
		if _, ok := cur.FindCapture(id); !ok {
			return writeErr(cmd, errNotFound("capture", id))
		}
		st := h.Dispatch(cmd.Context(), model.ProcessCapture{ID: id, Status: status})
		c, _ := st.FindCapture(id)
		return writeOut(cmd, app, map[string]any{"data": c})
	}
}

func newInboxDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <capture-id>",
		Short: "Delete a capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			if _, ok := cur.FindCapture(id); !ok {
				return writeErr(cmd, errNotFound("capture", id))
			}
			h.Dispatch(cmd.Context(), model.DeleteCapture{ID: id})
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
}

// inbox plan converts a capture into a scheduled task and marks the capture
// processed, which is the normal triage path.
func newInboxPlanCmd(app *App) *cobra.Command {
	var day, week string
	cmd := &cobra.Command{
		Use:   "plan <capture-id>",
		Short: "Turn a capture into a task (marks the capture processed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			c, ok := cur.FindCapture(id)
			if !ok {
				return writeErr(cmd, errNotFound("capture", id))
			}
			plan, err := resolvePlan(day, week, h.Now())
			if err != nil {
				return writeErr(cmd, err)
			}

			now := h.Now()
			task := model.Task{
				ID:        model.NewID("task"),
				Title:     c.Text,
				Status:    model.TaskTodo,
				Plan:      plan,
				CreatedAt: now,
				UpdatedAt: now,
			}
			h.Dispatch(cmd.Context(), model.ProcessCapture{ID: id, Status: model.CaptureProcessed})
			st := h.Dispatch(cmd.Context(), model.AddTask{Task: task})
			t, _ := st.FindTask(task.ID)
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Schedule for a day (YYYY-MM-DD or 'today')")
	cmd.Flags().StringVar(&week, "week", "", "Bucket into a week (YYYY-Www or 'current')")
	return cmd
}
