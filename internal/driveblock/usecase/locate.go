package usecase

import (
	"context"
	"fmt"
	"time"

	"drive-time-planner/internal/driveblock/repository"
	"drive-time-planner/internal/model"
)

// Default window a locate scans when the caller has no better bound: a day
// back (blocks start before their meeting) to a week ahead.
const (
	locateWindowBack  = 24 * time.Hour
	locateWindowAhead = 168 * time.Hour
)

// locateBlocks returns every tagged drive block for the source event inside
// the window. Zero windowStart/windowEnd fall back to the default window
// around now. At most one block should exist per source event; callers
// collapse anything beyond that.
func (uc *implUseCase) locateBlocks(ctx context.Context, calendarID, sourceEventID string, windowStart, windowEnd time.Time) ([]model.DriveBlock, error) {
	now := time.Now()
	if windowStart.IsZero() {
		windowStart = now.Add(-locateWindowBack)
	}
	if windowEnd.IsZero() {
		windowEnd = now.Add(locateWindowAhead)
	}

	tagged, err := uc.repo.ListDriveBlocks(ctx, repository.ListOptions{
		CalendarID: calendarID,
		TimeMin:    windowStart,
		TimeMax:    windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("locate drive blocks: %w", err)
	}

	var matches []model.DriveBlock
	for _, block := range tagged {
		if block.SourceEventID == sourceEventID {
			matches = append(matches, block)
		}
	}
	return matches, nil
}

// deleteBlocksFor removes every tagged block for the source event and
// returns how many were deleted. The tag is re-checked before each delete
// even though the locator already filtered on it.
func (uc *implUseCase) deleteBlocksFor(ctx context.Context, calendarID, sourceEventID string) (int, error) {
	blocks, err := uc.locateBlocks(ctx, calendarID, sourceEventID, time.Time{}, time.Time{})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, block := range blocks {
		if block.SourceEventID != sourceEventID {
			continue
		}
		if err := uc.repo.DeleteDriveBlock(ctx, calendarID, block.EventID); err != nil {
			return deleted, err
		}
		uc.l.Infof(ctx, "driveblock: deleted block %s for event %s", block.EventID, sourceEventID)
		deleted++
	}
	return deleted, nil
}
