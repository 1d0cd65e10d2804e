package usecase

import (
	"context"
	"fmt"
	"time"

	"drive-time-planner/internal/driveblock/repository"
	"drive-time-planner/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockEstimator returns a fixed duration or a canned error.
type mockEstimator struct {
	duration time.Duration
	err      error
	calls    int
}

func (m *mockEstimator) DrivingDuration(ctx context.Context, origin, destination string, driveEnd time.Time) (time.Duration, error) {
	m.calls++
	return m.duration, m.err
}

// fakeStore is an in-memory CalendarRepository. It keeps drive blocks in
// insertion order and counts writes, so idempotence and at-most-one
// assertions stay simple.
type fakeStore struct {
	sources []model.SourceEvent
	blocks  []model.DriveBlock
	nextID  int

	insertCalls int
	patchCalls  int
	deleteCalls int

	// Optional per-call overrides
	listSourceErr error
	insertErr     func(block model.DriveBlock) error
}

func (f *fakeStore) ListSourceEvents(ctx context.Context, opts repository.ListOptions) ([]model.SourceEvent, error) {
	if f.listSourceErr != nil {
		return nil, f.listSourceErr
	}
	return f.sources, nil
}

func (f *fakeStore) GetSourceEvent(ctx context.Context, calendarID, eventID string) (model.SourceEvent, error) {
	for _, ev := range f.sources {
		if ev.ID == eventID {
			return ev, nil
		}
	}
	return model.SourceEvent{}, fmt.Errorf("event %s not found", eventID)
}

func (f *fakeStore) ListDriveBlocks(ctx context.Context, opts repository.ListOptions) ([]model.DriveBlock, error) {
	out := make([]model.DriveBlock, len(f.blocks))
	copy(out, f.blocks)
	return out, nil
}

func (f *fakeStore) InsertDriveBlock(ctx context.Context, calendarID string, block model.DriveBlock) (model.DriveBlock, error) {
	f.insertCalls++
	if f.insertErr != nil {
		if err := f.insertErr(block); err != nil {
			return model.DriveBlock{}, err
		}
	}
	f.nextID++
	block.EventID = fmt.Sprintf("block-%d", f.nextID)
	f.blocks = append(f.blocks, block)
	return block, nil
}

func (f *fakeStore) PatchDriveBlock(ctx context.Context, calendarID string, block model.DriveBlock) (model.DriveBlock, error) {
	f.patchCalls++
	for i, existing := range f.blocks {
		if existing.EventID == block.EventID {
			f.blocks[i] = block
			return block, nil
		}
	}
	return model.DriveBlock{}, fmt.Errorf("block %s not found", block.EventID)
}

func (f *fakeStore) DeleteDriveBlock(ctx context.Context, calendarID, eventID string) error {
	f.deleteCalls++
	for i, existing := range f.blocks {
		if existing.EventID == eventID {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("block %s not found", eventID)
}

func (f *fakeStore) blocksFor(sourceEventID string) []model.DriveBlock {
	var out []model.DriveBlock
	for _, block := range f.blocks {
		if block.SourceEventID == sourceEventID {
			out = append(out, block)
		}
	}
	return out
}
