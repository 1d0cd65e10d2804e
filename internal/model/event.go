package model

import "time"

// EventStatus mirrors the calendar store's event status field.
type EventStatus string

const (
	StatusConfirmed EventStatus = "confirmed"
	StatusTentative EventStatus = "tentative"
	StatusCancelled EventStatus = "cancelled"
)

// SourceEvent is a meeting read from the calendar store. The planner never
// mutates source events; it only derives drive blocks from them.
type SourceEvent struct {
	ID       string      // Calendar event id
	Summary  string      // Meeting title
	Location string      // Free-text location, may be empty or a meeting URL
	Start    *time.Time  // Nil for all-day / no-time events
	Status   EventStatus // confirmed, tentative, cancelled
	HTMLLink string      // Web link to the event

	// DriveForEventID is set when this entry is itself a drive block owned
	// by the planner (the value of its private ownership tag). Scans skip
	// such entries instead of deriving blocks from them.
	DriveForEventID string
}

// Cancelled reports whether the source event has been cancelled.
func (e SourceEvent) Cancelled() bool {
	return e.Status == StatusCancelled
}

// DriveBlock is a derived calendar entry owned exclusively by the planner.
// The private extended property carrying SourceEventID is the sole
// authoritative link back to the source event.
type DriveBlock struct {
	EventID       string // Id of the block's own calendar entry, empty before insert
	SourceEventID string
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
}
