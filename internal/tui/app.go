// The TUI is the daily driver: today's task list with the focus timer, plus
// quick capture into the inbox. Everything it changes goes through holder
// dispatch, so the snapshot on disk is always in step with the screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"
	"monofocus-cli/internal/planner"
	"monofocus-cli/internal/reduce"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type appModel struct {
	holder *planner.Holder
	styles styleSet

	tasks   list.Model
	capture textinput.Model

	capturing bool
	width     int
	height    int
	now       time.Time
}

func Run(h *planner.Holder) error {
	m := newAppModel(h)
	// Restoring the last view is the web app's habit; the TUI owns only the
	// today view, so it records that.
	h.Dispatch(context.Background(), model.SetView{View: model.ViewToday})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newAppModel(h *planner.Holder) appModel {
	styles := newStyles()

	ti := textinput.New()
	ti.Placeholder = "capture a thought…"
	ti.CharLimit = 500

	l := list.New([]list.Item{}, taskDelegate{styles: styles}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	m := appModel{
		holder:  h,
		styles:  styles,
		tasks:   l,
		capture: ti,
		now:     h.Now(),
	}
	m.reload()
	return m
}

func (m *appModel) reload() {
	st := m.holder.State()
	today := dateutil.Day(m.now)

	var items []list.Item
	for _, t := range reduce.DayTasks(st, today) {
		active := st.ActiveTaskID != nil && *st.ActiveTaskID == t.ID
		items = append(items, taskItem{task: t, active: active})
	}
	m.tasks.SetItems(items)
}

func (m appModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tasks.SetSize(msg.Width, max(4, msg.Height-6))
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		if m.capturing {
			return m.updateCapture(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	return m, cmd
}

func (m appModel) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.capturing = false
		m.capture.Reset()
		m.capture.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.capture.Value())
		if text != "" {
			m.holder.Dispatch(context.Background(), model.AddCapture{Text: text})
		}
		m.capturing = false
		m.capture.Reset()
		m.capture.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.capture, cmd = m.capture.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "c":
		m.capturing = true
		m.capture.Focus()
		return m, textinput.Blink

	case "enter", "s":
		if it, ok := m.selected(); ok {
			st := m.holder.State()
			if st.ActiveTaskID != nil && *st.ActiveTaskID == it.task.ID {
				m.pauseActive(ctx)
			} else if it.task.Status == model.TaskTodo {
				m.holder.Dispatch(ctx, model.SetActiveTask{ID: &it.task.ID})
			}
			m.reload()
		}
		return m, nil

	case "p":
		m.pauseActive(ctx)
		m.reload()
		return m, nil

	case "d":
		if it, ok := m.selected(); ok {
			m.completeTask(ctx, it.task)
			m.reload()
		}
		return m, nil

	case "f":
		if it, ok := m.selected(); ok {
			frog := !it.task.Frog
			m.holder.Dispatch(ctx, model.UpdateTask{Patch: model.TaskPatch{ID: it.task.ID, Frog: &frog}})
			m.reload()
		}
		return m, nil

	case "x":
		if it, ok := m.selected(); ok {
			m.holder.Dispatch(ctx, model.DeleteTask{ID: it.task.ID})
			m.reload()
		}
		return m, nil

	case "K", "J":
		if it, ok := m.selected(); ok {
			m.moveTask(ctx, it.task.ID, msg.String() == "K")
			m.reload()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	return m, cmd
}

func (m *appModel) selected() (taskItem, bool) {
	it, ok := m.tasks.SelectedItem().(taskItem)
	return it, ok
}

// pauseActive banks the computed elapsed seconds into the task and clears
// the timer, the only point where elapsed time is committed.
func (m *appModel) pauseActive(ctx context.Context) {
	task, elapsed, ok := planner.ActiveElapsed(m.holder.State(), m.now)
	if !ok {
		return
	}
	m.holder.Dispatch(ctx, model.UpdateTask{Patch: model.TaskPatch{ID: task.ID, TimeSpent: &elapsed}})
	m.holder.Dispatch(ctx, model.SetActiveTask{ID: nil})
}

func (m *appModel) completeTask(ctx context.Context, t model.Task) {
	st := m.holder.State()
	done := model.TaskDone
	patch := model.TaskPatch{ID: t.ID, Status: &done}
	if st.ActiveTaskID != nil && *st.ActiveTaskID == t.ID {
		if _, elapsed, ok := planner.ActiveElapsed(st, m.now); ok {
			patch.TimeSpent = &elapsed
		}
		m.holder.Dispatch(ctx, model.UpdateTask{Patch: patch})
		m.holder.Dispatch(ctx, model.SetActiveTask{ID: nil})
		return
	}
	m.holder.Dispatch(ctx, model.UpdateTask{Patch: patch})
}

// moveTask shifts the task one position in today's order and saves the new
// order verbatim.
func (m *appModel) moveTask(ctx context.Context, id string, up bool) {
	today := dateutil.Day(m.now)
	order := reduce.DayOrder(m.holder.State(), today)
	idx := -1
	for i, x := range order {
		if x == id {
			idx = i
			break
		}
	}
	j := idx + 1
	if up {
		j = idx - 1
	}
	if idx < 0 || j < 0 || j >= len(order) {
		return
	}
	order[idx], order[j] = order[j], order[idx]
	m.holder.Dispatch(ctx, model.UpdateTaskOrder{Day: today, Order: order})
}

func (m appModel) View() string {
	st := m.holder.State()
	var b strings.Builder

	header := "MonoFocus — " + dateutil.Day(m.now)
	b.WriteString(m.styles.Title.Render(header))
	b.WriteString("\n\n")

	if task, elapsed, ok := planner.ActiveElapsed(st, m.now); ok {
		b.WriteString(m.styles.Active.Render("▶ "+task.Title) + "  " +
			m.styles.Timer.Render(dateutil.FormatDuration(elapsed)))
	} else {
		b.WriteString(m.styles.Dim.Render("no active task"))
	}
	b.WriteString("\n\n")

	if len(m.tasks.Items()) == 0 {
		b.WriteString(m.styles.Dim.Render("nothing planned for today"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.tasks.View())
		b.WriteString("\n")
	}

	if m.capturing {
		b.WriteString("\n" + m.capture.View() + "\n")
	}

	if err := m.holder.LastSaveErr(); err != nil {
		b.WriteString("\n" + m.styles.Error.Render(fmt.Sprintf("save failed: %v (changes kept in memory)", err)) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render("enter/s focus · p pause · d done · f frog · c capture · J/K move · x delete · q quit"))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
