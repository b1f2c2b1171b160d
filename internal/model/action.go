package model

import "time"

// Action is the closed vocabulary of state transitions the reducer accepts.
// The UI and CLI are the only producers; the reducer is total over these and
// never fails for a well-formed action.
type Action interface {
	isAction()
}

// InitState replaces the whole state with a pre-migrated snapshot.
type InitState struct {
	Snapshot AppState
}

type SetView struct {
	View View
}

type AddCapture struct {
	Text string
}

type ProcessCapture struct {
	ID     string
	Status CaptureStatus
}

type DeleteCapture struct {
	ID string
}

type AddTask struct {
	Task Task
}

// UpdateTask shallow-merges the patch into the matching task. A patch that
// touches anything beyond Status also pushes title/date back into a linked
// event (see reduce.Apply).
type UpdateTask struct {
	Patch TaskPatch
}

type DeleteTask struct {
	ID string
}

type AddEvent struct {
	Event CalendarEvent
}

type UpdateEvent struct {
	Patch EventPatch
}

type DeleteEvent struct {
	ID string
}

// SetActiveTask starts or stops the focus timer. A nil ID clears both the
// active task and its start timestamp; a non-nil ID records StartedAt (or
// now when absent).
type SetActiveTask struct {
	ID        *string
	StartedAt *time.Time
}

// UpdateTaskOrder replaces the ordered id list for one day. Stale or
// duplicate ids are accepted as-is; readers reconcile.
type UpdateTaskOrder struct {
	Day   string
	Order []string
}

// ImportData replaces the state with the migration of an arbitrary decoded
// JSON value. Malformed input degrades to defaults, never to failure.
type ImportData struct {
	Raw any
}

type ResetData struct{}

// TaskPatch carries the fields of an UpdateTask. Nil means "leave as is".
type TaskPatch struct {
	ID        string
	Title     *string
	Status    *TaskStatus
	Plan      *Plan
	Frog      *bool
	ProjectID *string
	EventID   *string
	TimeSpent *int
}

// StatusOnly reports whether the patch is purely a status flip. Status-only
// edits never perturb a linked event, so completing a meeting-derived task
// does not rewrite the meeting.
func (p TaskPatch) StatusOnly() bool {
	return p.Status != nil &&
		p.Title == nil && p.Plan == nil && p.Frog == nil &&
		p.ProjectID == nil && p.EventID == nil && p.TimeSpent == nil
}

type EventPatch struct {
	ID    string
	Title *string
	Date  *string
	Time  *string
	Note  *string
}

func (InitState) isAction()       {}
func (SetView) isAction()         {}
func (AddCapture) isAction()      {}
func (ProcessCapture) isAction()  {}
func (DeleteCapture) isAction()   {}
func (AddTask) isAction()         {}
func (UpdateTask) isAction()      {}
func (DeleteTask) isAction()      {}
func (AddEvent) isAction()        {}
func (UpdateEvent) isAction()     {}
func (DeleteEvent) isAction()     {}
func (SetActiveTask) isAction()   {}
func (UpdateTaskOrder) isAction() {}
func (ImportData) isAction()      {}
func (ResetData) isAction()       {}
