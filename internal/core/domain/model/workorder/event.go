package workorder

import (
	"time"
)

// EventType classifies entries in a work order's event log.
type EventType int

const (
	// UnknownEvent represents an invalid or undefined event type.
	UnknownEvent EventType = iota

	// EventCreated is appended once when the work order is created.
	EventCreated

	// EventStarted is appended on every transition into InProgress from
	// Draft or Pending.
	EventStarted

	// EventPaused is appended when the run pauses; notes carry the reason.
	EventPaused

	// EventResumed is appended when a paused run resumes.
	EventResumed

	// EventCompleted is appended when the run completes.
	EventCompleted

	// EventCanceled is appended when the work order is canceled.
	EventCanceled

	// EventError records a failure surfaced during execution.
	EventError
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		UnknownEvent:   "unknown",
		EventCreated:   "created",
		EventStarted:   "started",
		EventPaused:    "paused",
		EventResumed:   "resumed",
		EventCompleted: "completed",
		EventCanceled:  "canceled",
		EventError:     "error",
	}
}

// String returns the lower-case wire form of the event type.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Event is one immutable entry in a work order's append-only audit log.
// The log is history, distinct from the mutable current-state projection of
// the work order: entries are only ever appended, never rewritten or removed.
type Event struct {
	Type     EventType
	At       time.Time
	Operator string
	Notes    string
}
