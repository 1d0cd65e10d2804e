package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"drive-time-planner/internal/driveblock"
	"drive-time-planner/internal/driveblock/repository"
)

// ScanAll reconciles every upcoming source event on every configured
// calendar. Calendars and events fail independently: a broken calendar or a
// single bad event is logged and counted, never aborts the batch.
func (uc *implUseCase) ScanAll(ctx context.Context) (driveblock.ScanOutput, error) {
	out := driveblock.ScanOutput{}

	calendarIDs := parseCalendarIDs(uc.planner.CalendarIDs)
	if len(calendarIDs) == 0 {
		return out, driveblock.ErrNoCalendars
	}

	runID := uuid.NewString()[:8]
	now := time.Now()
	lookahead := time.Duration(uc.scan.LookaheadHours) * time.Hour

	uc.l.Infof(ctx, "scan %s: starting, %d calendar(s), lookahead %v", runID, len(calendarIDs), lookahead)

	for _, calendarID := range calendarIDs {
		events, err := uc.repo.ListSourceEvents(ctx, repository.ListOptions{
			CalendarID: calendarID,
			TimeMin:    now,
			TimeMax:    now.Add(lookahead),
			MaxResults: uc.scan.PageSize,
		})
		if err != nil {
			uc.l.Errorf(ctx, "scan %s: failed to list calendar %s: %v", runID, calendarID, err)
			out.Failed++
			continue
		}
		out.Calendars++

		for _, ev := range events {
			// Drive blocks show up in the listing too; they are output,
			// not input.
			if ev.DriveForEventID != "" {
				continue
			}
			out.Events++

			res, err := uc.ReconcileEvent(ctx, calendarID, ev)
			if err != nil {
				uc.l.Errorf(ctx, "scan %s: failed to reconcile event %s on %s: %v", runID, ev.ID, calendarID, err)
				out.Failed++
				continue
			}
			out.Record(res)
		}
	}

	uc.l.Infof(ctx, "scan %s: done, %d event(s): %d created, %d patched, %d deleted, %d unchanged, %d skipped, %d failed",
		runID, out.Events, out.Created, out.Patched, out.Deleted, out.Unchanged, out.Skipped, out.Failed)
	return out, nil
}

// HandleEventByID fetches one event and reconciles it. Change-notification
// dispatch lands here; the logic is exactly the scan path's, so polling and
// push stay interchangeable.
func (uc *implUseCase) HandleEventByID(ctx context.Context, calendarID, eventID string) (driveblock.ReconcileOutput, error) {
	if eventID == "" {
		return driveblock.ReconcileOutput{}, driveblock.ErrEventIDRequired
	}

	ev, err := uc.repo.GetSourceEvent(ctx, calendarID, eventID)
	if err != nil {
		return driveblock.ReconcileOutput{}, err
	}

	if ev.DriveForEventID != "" {
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "event is a drive block"}, nil
	}

	return uc.ReconcileEvent(ctx, calendarID, ev)
}
