package model

import "regexp"

// Tasks spawned from events carry the event time as a "HH:MM " title prefix.
// This is a textual convention, not a schema field: a user task whose title
// happens to start with a time-like pattern is indistinguishable from an
// event-derived one. The split below preserves the observable behavior
// anyway (no prefix means "only the date propagates").
var timePrefixRe = regexp.MustCompile(`^([0-2]\d:[0-5]\d)\s+(.*)$`)

// EventTitle builds the linked-task title for an event.
func EventTitle(eventTime, title string) string {
	return eventTime + " " + title
}

// SplitTimeTitle splits a leading HH:MM prefix off a task title. ok is false
// when the title has no such prefix.
func SplitTimeTitle(title string) (eventTime, rest string, ok bool) {
	m := timePrefixRe.FindStringSubmatch(title)
	if m == nil {
		return "", title, false
	}
	return m[1], m[2], true
}
