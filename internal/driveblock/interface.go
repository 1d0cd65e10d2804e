package driveblock

import (
	"context"

	"drive-time-planner/internal/model"
)

// UseCase is the reconciliation engine for drive blocks. It is stateless
// across invocations: every call re-derives the desired state from the
// calendar store, so the poll schedulers and the push-notification handler
// can both call it without coordination.
type UseCase interface {
	// ScanAll lists upcoming source events on every configured calendar and
	// reconciles each one. One calendar's or one event's failure never
	// aborts the rest of the batch.
	ScanAll(ctx context.Context) (ScanOutput, error)

	// ReconcileEvent brings the drive block for one source event in line
	// with its desired state: create, patch, delete or leave alone.
	ReconcileEvent(ctx context.Context, calendarID string, event model.SourceEvent) (ReconcileOutput, error)

	// HandleEventByID fetches a single event by id and reconciles it. Used
	// by change-notification dispatch.
	HandleEventByID(ctx context.Context, calendarID, eventID string) (ReconcileOutput, error)
}
