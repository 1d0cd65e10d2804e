package scheduler_test

import (
	"context"
	"testing"

	"drive-time-planner/config"
	"drive-time-planner/internal/driveblock"
	"drive-time-planner/internal/scheduler"
)

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

type mockScanner struct {
	scans int
}

func (m *mockScanner) ScanAll(ctx context.Context) (driveblock.ScanOutput, error) {
	m.scans++
	return driveblock.ScanOutput{}, nil
}

func TestScheduler(t *testing.T) {
	cfg := config.ScanConfig{
		PollCron:   "*/10 * * * *",
		BackupCron: "7 */6 * * *",
	}

	t.Run("Start And Repeated Reset", func(t *testing.T) {
		s := scheduler.New(&mockLogger{}, &mockScanner{}, cfg)
		if err := s.Start(); err != nil {
			t.Fatalf("start failed: %v", err)
		}
		defer s.Stop()

		// Reset must be safe to call any number of times.
		for i := 0; i < 3; i++ {
			if err := s.Reset(); err != nil {
				t.Fatalf("reset %d failed: %v", i, err)
			}
		}
	})

	t.Run("Invalid Poll Spec", func(t *testing.T) {
		bad := cfg
		bad.PollCron = "not a cron spec"
		s := scheduler.New(&mockLogger{}, &mockScanner{}, bad)
		if err := s.Start(); err == nil {
			t.Errorf("expected error for invalid cron spec")
		}
	})

	t.Run("Stop Without Start", func(t *testing.T) {
		s := scheduler.New(&mockLogger{}, &mockScanner{}, cfg)
		s.Stop() // must not panic
	})
}
