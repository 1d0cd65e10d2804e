package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"drive-time-planner/config"
	"drive-time-planner/internal/driveblock"
	dbHTTP "drive-time-planner/internal/driveblock/delivery/http"
	"drive-time-planner/internal/model"
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

type mockUseCase struct {
	mu        sync.Mutex
	scanCalls int

	scanFunc   func() (driveblock.ScanOutput, error)
	handleFunc func(calendarID, eventID string) (driveblock.ReconcileOutput, error)
}

func (m *mockUseCase) ScanAll(ctx context.Context) (driveblock.ScanOutput, error) {
	m.mu.Lock()
	m.scanCalls++
	m.mu.Unlock()
	if m.scanFunc != nil {
		return m.scanFunc()
	}
	return driveblock.ScanOutput{}, nil
}

func (m *mockUseCase) ReconcileEvent(ctx context.Context, calendarID string, event model.SourceEvent) (driveblock.ReconcileOutput, error) {
	return driveblock.ReconcileOutput{}, nil
}

func (m *mockUseCase) HandleEventByID(ctx context.Context, calendarID, eventID string) (driveblock.ReconcileOutput, error) {
	if m.handleFunc != nil {
		return m.handleFunc(calendarID, eventID)
	}
	return driveblock.ReconcileOutput{Action: driveblock.ActionUnchanged}, nil
}

func (m *mockUseCase) scans() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scanCalls
}

type mockScheduler struct {
	resets int
	err    error
}

func (m *mockScheduler) Reset() error {
	m.resets++
	return m.err
}

func newRouter(h dbHTTP.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/scan", h.ScanNow)
	r.POST("/calendars/:calendarId/events/:eventId/reconcile", h.ReconcileEvent)
	r.POST("/notifications/calendar", h.HandleCalendarNotification)
	r.POST("/scheduler/reset", h.ResetScheduler)
	return r
}

func TestScanNow(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			scanFunc: func() (driveblock.ScanOutput, error) {
				return driveblock.ScanOutput{Events: 3, Created: 1}, nil
			},
		}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, config.NotificationConfig{})
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scan", nil))

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Scan Failure", func(t *testing.T) {
		uc := &mockUseCase{
			scanFunc: func() (driveblock.ScanOutput, error) {
				return driveblock.ScanOutput{}, driveblock.ErrNoCalendars
			},
		}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, config.NotificationConfig{})
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scan", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestReconcileEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			handleFunc: func(calendarID, eventID string) (driveblock.ReconcileOutput, error) {
				if calendarID != "primary" || eventID != "e1" {
					t.Errorf("unexpected route params: %s %s", calendarID, eventID)
				}
				return driveblock.ReconcileOutput{Action: driveblock.ActionCreated}, nil
			},
		}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, config.NotificationConfig{})
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendars/primary/events/e1/reconcile", nil))

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Repository Failure", func(t *testing.T) {
		uc := &mockUseCase{
			handleFunc: func(calendarID, eventID string) (driveblock.ReconcileOutput, error) {
				return driveblock.ReconcileOutput{}, errors.New("store down")
			},
		}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, config.NotificationConfig{})
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendars/primary/events/e1/reconcile", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestHandleCalendarNotification(t *testing.T) {
	cfg := config.NotificationConfig{ChannelToken: "secret", RateLimitPerMin: 60}

	t.Run("Bad Channel Token", func(t *testing.T) {
		uc := &mockUseCase{}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, cfg)
		req := httptest.NewRequest(http.MethodPost, "/notifications/calendar", nil)
		req.Header.Set("X-Goog-Channel-Token", "wrong")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if uc.scans() != 0 {
			t.Errorf("rejected notification must not trigger a scan")
		}
	})

	t.Run("Sync Message Acknowledged Without Scan", func(t *testing.T) {
		uc := &mockUseCase{}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, cfg)
		req := httptest.NewRequest(http.MethodPost, "/notifications/calendar", nil)
		req.Header.Set("X-Goog-Channel-Token", "secret")
		req.Header.Set("X-Goog-Channel-ID", "chan-1")
		req.Header.Set("X-Goog-Resource-State", "sync")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if uc.scans() != 0 {
			t.Errorf("sync message must not trigger a scan")
		}
	})

	t.Run("Change Notification Triggers Background Scan", func(t *testing.T) {
		uc := &mockUseCase{}
		h := dbHTTP.New(&mockLogger{}, uc, &mockScheduler{}, cfg)
		req := httptest.NewRequest(http.MethodPost, "/notifications/calendar", nil)
		req.Header.Set("X-Goog-Channel-Token", "secret")
		req.Header.Set("X-Goog-Channel-ID", "chan-1")
		req.Header.Set("X-Goog-Resource-State", "exists")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected immediate ack, got %d", w.Code)
		}

		deadline := time.Now().Add(time.Second)
		for uc.scans() == 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		if uc.scans() != 1 {
			t.Errorf("expected one background scan, got %d", uc.scans())
		}
	})
}

func TestResetScheduler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sched := &mockScheduler{}
		h := dbHTTP.New(&mockLogger{}, &mockUseCase{}, sched, config.NotificationConfig{})
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scheduler/reset", nil))

		if w.Code != http.StatusOK || sched.resets != 1 {
			t.Errorf("expected one reset with 200, got code=%d resets=%d", w.Code, sched.resets)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		sched := &mockScheduler{err: errors.New("bad cron spec")}
		h := dbHTTP.New(&mockLogger{}, &mockUseCase{}, sched, config.NotificationConfig{})
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/scheduler/reset", nil))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}
