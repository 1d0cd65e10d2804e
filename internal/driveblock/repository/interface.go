package repository

import (
	"context"
	"time"

	"drive-time-planner/internal/model"
)

// PropDriveForEventID is the private extended property linking a drive
// block to its source event. It is the sole authoritative ownership tag:
// the planner never touches calendar entries that lack it.
const PropDriveForEventID = "driveForEventId"

// ListOptions bounds a calendar listing.
type ListOptions struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// CalendarRepository is the calendar store consumed by the drive block
// domain. The store offers no transactions; callers rely on
// locate-before-write for idempotence.
type CalendarRepository interface {
	// ListSourceEvents lists events in the window, single-instance expanded
	// and ordered by start time.
	ListSourceEvents(ctx context.Context, opts ListOptions) ([]model.SourceEvent, error)

	// GetSourceEvent fetches one event by id.
	GetSourceEvent(ctx context.Context, calendarID, eventID string) (model.SourceEvent, error)

	// ListDriveBlocks lists the entries in the window that carry the
	// ownership tag. Untagged entries are filtered out here, whatever
	// their title looks like.
	ListDriveBlocks(ctx context.Context, opts ListOptions) ([]model.DriveBlock, error)

	// InsertDriveBlock creates a new tagged drive block entry.
	InsertDriveBlock(ctx context.Context, calendarID string, block model.DriveBlock) (model.DriveBlock, error)

	// PatchDriveBlock patches the block addressed by its own event id.
	PatchDriveBlock(ctx context.Context, calendarID string, block model.DriveBlock) (model.DriveBlock, error)

	// DeleteDriveBlock deletes the block's calendar entry by id.
	DeleteDriveBlock(ctx context.Context, calendarID, eventID string) error
}
