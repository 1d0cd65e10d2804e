package gcal

import (
	"context"
	"fmt"

	"drive-time-planner/internal/driveblock/repository"
	"drive-time-planner/internal/model"
	"drive-time-planner/pkg/gcalendar"
)

// ListSourceEvents lists events in the window, single-instance expanded and
// ordered by start time.
func (r *implRepository) ListSourceEvents(ctx context.Context, opts repository.ListOptions) ([]model.SourceEvent, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: opts.CalendarID,
		TimeMin:    opts.TimeMin,
		TimeMax:    opts.TimeMax,
		MaxResults: opts.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("list source events: %w", err)
	}

	result := make([]model.SourceEvent, 0, len(events))
	for _, ev := range events {
		result = append(result, toSourceEvent(ev))
	}
	return result, nil
}

// GetSourceEvent fetches one event by id.
func (r *implRepository) GetSourceEvent(ctx context.Context, calendarID, eventID string) (model.SourceEvent, error) {
	ev, err := r.client.GetEvent(ctx, calendarID, eventID)
	if err != nil {
		return model.SourceEvent{}, fmt.Errorf("get source event: %w", err)
	}
	return toSourceEvent(ev), nil
}

// ListDriveBlocks lists window entries carrying the ownership tag.
func (r *implRepository) ListDriveBlocks(ctx context.Context, opts repository.ListOptions) ([]model.DriveBlock, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: opts.CalendarID,
		TimeMin:    opts.TimeMin,
		TimeMax:    opts.TimeMax,
		MaxResults: opts.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("list drive blocks: %w", err)
	}

	var blocks []model.DriveBlock
	for _, ev := range events {
		sourceID := ev.Private[repository.PropDriveForEventID]
		if sourceID == "" || ev.Start == nil || ev.End == nil {
			continue
		}
		blocks = append(blocks, model.DriveBlock{
			EventID:       ev.ID,
			SourceEventID: sourceID,
			Summary:       ev.Summary,
			Description:   ev.Description,
			Start:         *ev.Start,
			End:           *ev.End,
		})
	}
	return blocks, nil
}

// InsertDriveBlock creates a new tagged drive block entry.
func (r *implRepository) InsertDriveBlock(ctx context.Context, calendarID string, block model.DriveBlock) (model.DriveBlock, error) {
	created, err := r.client.InsertEvent(ctx, calendarID, toPayload(block))
	if err != nil {
		return model.DriveBlock{}, fmt.Errorf("insert drive block: %w", err)
	}
	block.EventID = created.ID
	return block, nil
}

// PatchDriveBlock patches the block addressed by its own event id, never
// re-resolved by search.
func (r *implRepository) PatchDriveBlock(ctx context.Context, calendarID string, block model.DriveBlock) (model.DriveBlock, error) {
	if block.EventID == "" {
		return model.DriveBlock{}, fmt.Errorf("patch drive block: missing event id")
	}
	if _, err := r.client.PatchEvent(ctx, calendarID, block.EventID, toPayload(block)); err != nil {
		return model.DriveBlock{}, fmt.Errorf("patch drive block: %w", err)
	}
	return block, nil
}

// DeleteDriveBlock deletes the block's calendar entry by id.
func (r *implRepository) DeleteDriveBlock(ctx context.Context, calendarID, eventID string) error {
	if err := r.client.DeleteEvent(ctx, calendarID, eventID); err != nil {
		return fmt.Errorf("delete drive block: %w", err)
	}
	return nil
}

func toSourceEvent(ev *gcalendar.Event) model.SourceEvent {
	return model.SourceEvent{
		ID:              ev.ID,
		Summary:         ev.Summary,
		Location:        ev.Location,
		Start:           ev.Start,
		Status:          model.EventStatus(ev.Status),
		HTMLLink:        ev.HTMLLink,
		DriveForEventID: ev.Private[repository.PropDriveForEventID],
	}
}

func toPayload(block model.DriveBlock) gcalendar.EventPayload {
	return gcalendar.EventPayload{
		Summary:     block.Summary,
		Description: block.Description,
		Start:       block.Start,
		End:         block.End,
		Private: map[string]string{
			repository.PropDriveForEventID: block.SourceEventID,
		},
	}
}
