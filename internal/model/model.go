package model

import "time"

// View names the screen the UI last had open. Persisted so the app can
// restore it on the next launch.
type View string

const (
	ViewToday      View = "today"
	ViewWeek       View = "week"
	ViewInbox      View = "inbox"
	ViewEvents     View = "events"
	ViewSettings   View = "settings"
	ViewDone       View = "done"
	ViewStatistics View = "statistics"
)

func KnownView(v string) bool {
	switch View(v) {
	case ViewToday, ViewWeek, ViewInbox, ViewEvents, ViewSettings, ViewDone, ViewStatistics:
		return true
	}
	return false
}

type CaptureStatus string

const (
	CaptureNew       CaptureStatus = "new"
	CaptureProcessed CaptureStatus = "processed"
	CaptureArchived  CaptureStatus = "archived"
)

// Capture is an unprocessed inbox note awaiting triage into a task.
type Capture struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	CreatedAt time.Time     `json:"createdAt"`
	Status    CaptureStatus `json:"status"`
}

type TaskStatus string

const (
	TaskTodo TaskStatus = "todo"
	TaskDone TaskStatus = "done"
)

// Plan schedules a task. Day set means day-scheduled (Week carries the
// day's ISO week for cross-view consistency); Week alone means bucketed to
// a week without a specific day; both nil means unscheduled.
type Plan struct {
	Day  *string `json:"day"`  // YYYY-MM-DD
	Week *string `json:"week"` // YYYY-Www
}

type Task struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
	Plan   Plan       `json:"plan"`

	// Frog marks the single "eat this first" task of the day.
	Frog bool `json:"frog"`

	ProjectID *string `json:"projectId"`
	// EventID links back to the CalendarEvent this task was spawned from.
	// Event edits propagate into the task and vice versa (see reduce).
	EventID *string `json:"eventId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// TimeSpent is accumulated focused-work seconds, committed when the
	// focus timer stops.
	TimeSpent int `json:"timeSpent,omitempty"`
}

// CalendarEvent is a fixed date+time appointment.
type CalendarEvent struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Date  string  `json:"date"` // YYYY-MM-DD
	Time  string  `json:"time"` // HH:MM
	Note  *string `json:"note"`
}

// AppState is the whole persisted snapshot. It round-trips through JSON
// verbatim; the store treats it as a single opaque value.
type AppState struct {
	Captures []Capture       `json:"captures"`
	Tasks    []Task          `json:"tasks"`
	Events   []CalendarEvent `json:"events"`

	ActiveTaskID        *string    `json:"activeTaskId"`
	ActiveTaskStartedAt *time.Time `json:"activeTaskStartedAt"`

	LastActiveView View `json:"lastActiveView"`

	// TaskOrderByDay maps YYYY-MM-DD to an ordered task-id list. Stale ids
	// are tolerated on read and filtered out at render time.
	TaskOrderByDay map[string][]string `json:"taskOrderByDay"`
	// TaskOrderByWeekBucket is carried for forward compatibility; nothing
	// consumes it yet.
	TaskOrderByWeekBucket map[string][]string `json:"taskOrderByWeekBucket"`
}

func InitialState() AppState {
	return AppState{
		Captures:              []Capture{},
		Tasks:                 []Task{},
		Events:                []CalendarEvent{},
		ActiveTaskID:          nil,
		ActiveTaskStartedAt:   nil,
		LastActiveView:        ViewToday,
		TaskOrderByDay:        map[string][]string{},
		TaskOrderByWeekBucket: map[string][]string{},
	}
}

func (s *AppState) FindTask(id string) (*Task, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}

func (s *AppState) FindCapture(id string) (*Capture, bool) {
	for i := range s.Captures {
		if s.Captures[i].ID == id {
			return &s.Captures[i], true
		}
	}
	return nil, false
}

func (s *AppState) FindEvent(id string) (*CalendarEvent, bool) {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i], true
		}
	}
	return nil, false
}

// TaskByEvent returns the task linked to the given event, if any.
// The link is unique: at most one task points at an event.
func (s *AppState) TaskByEvent(eventID string) (*Task, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].EventID != nil && *s.Tasks[i].EventID == eventID {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}
