package usecase

import (
	"context"
	"strings"
	"time"

	"drive-time-planner/internal/driveblock"
	"drive-time-planner/internal/model"
)

// ReconcileEvent decides, for one source event, whether its drive block
// should exist, be created, be patched, or be deleted, and applies that
// decision. It re-derives everything from the calendar store, so repeated
// calls on an unchanged event converge to a no-op.
func (uc *implUseCase) ReconcileEvent(ctx context.Context, calendarID string, ev model.SourceEvent) (driveblock.ReconcileOutput, error) {
	if ev.ID == "" {
		return driveblock.ReconcileOutput{}, driveblock.ErrEventIDRequired
	}

	// Cancelled meetings lose their block.
	if ev.Cancelled() {
		deleted, err := uc.deleteBlocksFor(ctx, calendarID, ev.ID)
		if err != nil {
			return driveblock.ReconcileOutput{}, err
		}
		if deleted > 0 {
			return driveblock.ReconcileOutput{Action: driveblock.ActionDeleted}, nil
		}
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "cancelled, no block"}, nil
	}

	// All-day and no-time events have no drive: leave whatever exists alone.
	if ev.Start == nil {
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "no start time"}, nil
	}

	if uc.planner.HomeAddress == "" || uc.estimator == nil {
		uc.l.Warnf(ctx, "driveblock: home address or route credential not configured, skipping event %s", ev.ID)
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "missing configuration"}, nil
	}

	// Blank location or a meeting link means the meeting moved online: the
	// block, if any, goes away.
	location := strings.TrimSpace(ev.Location)
	if location == "" || isOnlineLocation(location) {
		deleted, err := uc.deleteBlocksFor(ctx, calendarID, ev.ID)
		if err != nil {
			return driveblock.ReconcileOutput{}, err
		}
		if deleted > 0 {
			return driveblock.ReconcileOutput{Action: driveblock.ActionDeleted}, nil
		}
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "no physical location"}, nil
	}

	// Desired window: the drive ends bufferMinutes before the meeting and
	// lasts the estimated driving duration.
	driveEnd := ev.Start.Add(-time.Duration(uc.planner.BufferMinutes) * time.Minute)
	duration, err := uc.estimator.DrivingDuration(ctx, uc.planner.HomeAddress, location, driveEnd)
	if err != nil {
		// Unknown duration: preserve the prior state rather than guess.
		uc.l.Warnf(ctx, "driveblock: duration unavailable for event %s (%s): %v", ev.ID, location, err)
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "duration unavailable"}, nil
	}
	driveStart := driveEnd.Add(-duration)
	if !driveStart.Before(driveEnd) {
		uc.l.Warnf(ctx, "driveblock: degenerate drive window for event %s (duration %v), skipping", ev.ID, duration)
		return driveblock.ReconcileOutput{Action: driveblock.ActionSkipped, Reason: "degenerate duration"}, nil
	}

	desired := model.DriveBlock{
		SourceEventID: ev.ID,
		Summary:       blockSummary(location, ev.Summary),
		Description:   blockDescription(ev, uc.planner.HomeAddress),
		Start:         driveStart,
		End:           driveEnd,
	}

	existing, err := uc.locateBlocks(ctx, calendarID, ev.ID, time.Time{}, time.Time{})
	if err != nil {
		return driveblock.ReconcileOutput{}, err
	}

	if len(existing) == 0 {
		created, err := uc.repo.InsertDriveBlock(ctx, calendarID, desired)
		if err != nil {
			return driveblock.ReconcileOutput{}, err
		}
		uc.l.Infof(ctx, "driveblock: created block %s for event %s (%v drive)", created.EventID, ev.ID, duration)
		return driveblock.ReconcileOutput{Action: driveblock.ActionCreated, Block: &created}, nil
	}

	// Keep the first block, collapse any duplicates that slipped in through
	// a race or manual copy.
	current := existing[0]
	for _, dup := range existing[1:] {
		if err := uc.repo.DeleteDriveBlock(ctx, calendarID, dup.EventID); err != nil {
			uc.l.Errorf(ctx, "driveblock: failed to collapse duplicate block %s for event %s: %v", dup.EventID, ev.ID, err)
			continue
		}
		uc.l.Warnf(ctx, "driveblock: collapsed duplicate block %s for event %s", dup.EventID, ev.ID)
	}

	if !strings.HasPrefix(current.Summary, summaryPrefix) {
		uc.l.Warnf(ctx, "driveblock: block %s is tagged for event %s but renamed to %q", current.EventID, ev.ID, current.Summary)
	}

	if equivalent(current, desired) {
		return driveblock.ReconcileOutput{Action: driveblock.ActionUnchanged, Block: &current}, nil
	}

	desired.EventID = current.EventID
	patched, err := uc.repo.PatchDriveBlock(ctx, calendarID, desired)
	if err != nil {
		return driveblock.ReconcileOutput{}, err
	}
	uc.l.Infof(ctx, "driveblock: patched block %s for event %s (%v drive)", patched.EventID, ev.ID, duration)
	return driveblock.ReconcileOutput{Action: driveblock.ActionPatched, Block: &patched}, nil
}
