package model

// Clone returns a copy of the state with fresh slice and map storage, so the
// reducer can build the next state without touching the previous one.
// Pointer-typed fields are shared between copies; mutators must replace
// pointers, never write through them.
func (s AppState) Clone() AppState {
	out := s

	out.Captures = make([]Capture, len(s.Captures))
	copy(out.Captures, s.Captures)

	out.Tasks = make([]Task, len(s.Tasks))
	copy(out.Tasks, s.Tasks)

	out.Events = make([]CalendarEvent, len(s.Events))
	copy(out.Events, s.Events)

	out.TaskOrderByDay = cloneOrder(s.TaskOrderByDay)
	out.TaskOrderByWeekBucket = cloneOrder(s.TaskOrderByWeekBucket)
	return out
}

func cloneOrder(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, ids := range m {
		cp := make([]string, len(ids))
		copy(cp, ids)
		out[k] = cp
	}
	return out
}
