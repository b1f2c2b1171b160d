package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage calendar events (each creates a task copy on its day)",
	}
	cmd.AddCommand(newEventsAddCmd(app))
	cmd.AddCommand(newEventsListCmd(app))
	cmd.AddCommand(newEventsUpdateCmd(app))
	cmd.AddCommand(newEventsDeleteCmd(app))
	return cmd
}

func newEventsAddCmd(app *App) *cobra.Command {
	var date, at, note string
	var noTask bool
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event (and its linked task, unless --no-task)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return writeErr(cmd, errors.New("event title must not be empty"))
			}
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			now := h.Now()
			if date == "" || date == "today" {
				date = dateutil.Day(now)
			}
			if !dateutil.ValidDay(date) {
				return writeErr(cmd, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date))
			}
			if !dateutil.ValidTime(at) {
				return writeErr(cmd, fmt.Errorf("invalid time %q (expected HH:MM)", at))
			}

			ev := model.CalendarEvent{
				ID:    model.NewID("evt"),
				Title: title,
				Date:  date,
				Time:  at,
			}
			if n := strings.TrimSpace(note); n != "" {
				ev.Note = &n
			}
			st := h.Dispatch(cmd.Context(), model.AddEvent{Event: ev})

			if !noTask {
				week := dateutil.WeekOfDay(date, now)
				day := date
				evID := ev.ID
				task := model.Task{
					ID:        model.NewID("task"),
					Title:     model.EventTitle(ev.Time, ev.Title),
					Status:    model.TaskTodo,
					Plan:      model.Plan{Day: &day, Week: &week},
					EventID:   &evID,
					CreatedAt: now,
					UpdatedAt: now,
				}
				st = h.Dispatch(cmd.Context(), model.AddTask{Task: task})
			}

			e, _ := st.FindEvent(ev.ID)
			out := map[string]any{"data": e}
			if t, ok := st.TaskByEvent(ev.ID); ok {
				out["task"] = t
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&at, "time", "09:00", "Event time (HH:MM)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	cmd.Flags().BoolVar(&noTask, "no-task", false, "Do not create the linked task")
	return cmd
}

func newEventsListCmd(app *App) *cobra.Command {
	var past bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, soonest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			today := dateutil.Day(h.Now())

			out := []model.CalendarEvent{}
			for _, e := range h.State().Events {
				if past == (e.Date < today) {
					out = append(out, e)
				}
			}
			sort.Slice(out, func(i, j int) bool {
				if out[i].Date != out[j].Date {
					return out[i].Date < out[j].Date
				}
				return out[i].Time < out[j].Time
			})
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().BoolVar(&past, "past", false, "Show past events instead of upcoming ones")
	return cmd
}

func newEventsUpdateCmd(app *App) *cobra.Command {
	var title, date, at, note string
	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Edit an event (the linked task follows automatically)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			if _, ok := cur.FindEvent(id); !ok {
				return writeErr(cmd, errNotFound("event", id))
			}

			patch := model.EventPatch{ID: id}
			if cmd.Flags().Changed("title") {
				t := strings.TrimSpace(title)
				if t == "" {
					return writeErr(cmd, errors.New("event title must not be empty"))
				}
				patch.Title = &t
			}
			if cmd.Flags().Changed("date") {
				d := date
				if d == "today" {
					d = dateutil.Day(h.Now())
				}
				if !dateutil.ValidDay(d) {
					return writeErr(cmd, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date))
				}
				patch.Date = &d
			}
			if cmd.Flags().Changed("time") {
				if !dateutil.ValidTime(at) {
					return writeErr(cmd, fmt.Errorf("invalid time %q (expected HH:MM)", at))
				}
				patch.Time = &at
			}
			if cmd.Flags().Changed("note") {
				patch.Note = &note
			}

			st := h.Dispatch(cmd.Context(), model.UpdateEvent{Patch: patch})
			e, _ := st.FindEvent(id)
			out := map[string]any{"data": e}
			if t, ok := st.TaskByEvent(id); ok {
				out["task"] = t
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD or 'today')")
	cmd.Flags().StringVar(&at, "time", "", "New time (HH:MM)")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	return cmd
}

func newEventsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event and its linked task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHolder(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			cur := h.State()
			if _, ok := cur.FindEvent(id); !ok {
				return writeErr(cmd, errNotFound("event", id))
			}
			h.Dispatch(cmd.Context(), model.DeleteEvent{ID: id})
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
}
