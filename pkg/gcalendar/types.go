package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Status      string
	HTMLLink    string
	Start       *time.Time        // Nil for all-day events (date without time)
	End         *time.Time        // Nil for all-day events
	Private     map[string]string // extendedProperties.private
}

// EventPayload is the writable subset of an event used by insert and patch.
type EventPayload struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Private     map[string]string // extendedProperties.private to store on the event
}

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are always expanded to single instances, ordered by
// start time.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
