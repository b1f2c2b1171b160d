package tui

import (
	"fmt"
	"io"

	"monofocus-cli/internal/dateutil"
	"monofocus-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type taskItem struct {
	task   model.Task
	active bool
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.task.Title }

// taskDelegate renders one task per row: frog marker, title, banked time.
type taskDelegate struct {
	styles styleSet
}

func (d taskDelegate) Height() int                             { return 1 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	marker := "  "
	if it.task.Frog {
		marker = d.styles.Frog.Render("! ")
	}
	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	title := it.task.Title
	if it.active {
		title = d.styles.Active.Render(title + " ●")
	} else if index == m.Index() {
		title = d.styles.Selected.Render(title)
	}

	suffix := ""
	if it.task.TimeSpent > 0 {
		suffix = d.styles.Dim.Render(fmt.Sprintf("  (%s)", dateutil.FormatDuration(it.task.TimeSpent)))
	}

	line := cursor + marker + title + suffix
	if width := m.Width(); width > 0 && xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width-1) + "…"
	}
	fmt.Fprint(w, line)
}
