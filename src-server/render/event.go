package render

import (
	"time"
)

// Event is the read-only view of a stored event that the grid builder and
// renderers work with. Several grid cells may point at the same *Event; the
// pointer identity is what decides whether its summary was already shown.
type Event struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time

	// Mask marks the event as an "in progress" span; its cells get the
	// mask-start/mask/mask-end decoration classes.
	Mask bool
	// Classes holds extra CSS classes, emitted on the event's start cell.
	Classes string
}

// EventSet wraps an ordered event list and answers slot-overlap queries.
// The order of the underlying slice is preserved; the grid builder's
// first-match policy depends on it.
type EventSet struct {
	events []*Event
}

func NewEventSet(events []*Event) *EventSet {
	return &EventSet{events: events}
}

// Overlapping returns every event overlapping [start, end). Boundaries are
// inclusive-start, exclusive-end: an event ending exactly at `start` or
// beginning exactly at `end` does not match.
func (s *EventSet) Overlapping(start, end time.Time) []*Event {
	var matches []*Event
	for _, event := range s.events {
		if event.Start.Before(end) && event.End.After(start) {
			matches = append(matches, event)
		}
	}
	return matches
}

// OnDate returns every event overlapping the calendar date of t, in the
// set's stable order. Used by the month view.
func (s *EventSet) OnDate(t time.Time) []*Event {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return s.Overlapping(dayStart, dayStart.AddDate(0, 0, 1))
}
