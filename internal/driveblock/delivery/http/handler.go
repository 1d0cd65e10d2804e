package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"drive-time-planner/internal/driveblock"
	pkgResponse "drive-time-planner/pkg/response"
)

// Google push channel headers.
const (
	headerChannelID     = "X-Goog-Channel-ID"
	headerChannelToken  = "X-Goog-Channel-Token"
	headerResourceState = "X-Goog-Resource-State"
)

// ScanNow runs a full scan and returns its summary.
// @Summary Run a full scan
// @Description Reconcile drive blocks for all upcoming events on every configured calendar
// @Tags Scan
// @Produce json
// @Success 200 {object} driveblock.ScanOutput
// @Router /scan [post]
func (h *handler) ScanNow(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ScanAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "http: scan failed: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}
	pkgResponse.OK(c, out)
}

// ReconcileEvent reconciles one event addressed by id.
// @Summary Reconcile a single event
// @Tags Scan
// @Produce json
// @Param calendarId path string true "Calendar id"
// @Param eventId path string true "Source event id"
// @Router /calendars/{calendarId}/events/{eventId}/reconcile [post]
func (h *handler) ReconcileEvent(c *gin.Context) {
	ctx := c.Request.Context()
	calendarID := c.Param("calendarId")
	eventID := c.Param("eventId")

	out, err := h.uc.HandleEventByID(ctx, calendarID, eventID)
	if err != nil {
		if errors.Is(err, driveblock.ErrEventIDRequired) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "http: reconcile event %s on %s failed: %v", eventID, calendarID, err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, out)
}

// HandleCalendarNotification processes Google Calendar push callbacks. The
// channel token is checked when configured, the callback is acknowledged
// immediately and the scan runs in the background, since the notification
// only says "something changed", not which event.
// @Summary Calendar change notification callback
// @Tags Notifications
// @Produce json
// @Router /notifications/calendar [post]
func (h *handler) HandleCalendarNotification(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.ChannelToken != "" && c.GetHeader(headerChannelToken) != h.cfg.ChannelToken {
		h.l.Warnf(ctx, "http: notification with bad channel token from %s", c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	channelID := c.GetHeader(headerChannelID)
	if err := h.limiter.Allow(channelID); err != nil {
		h.l.Warnf(ctx, "http: notification throttled: %v", err)
		pkgResponse.OK(c, map[string]string{"status": "throttled"})
		return
	}

	// The initial sync message confirms channel setup, nothing changed yet.
	if c.GetHeader(headerResourceState) == "sync" {
		pkgResponse.OK(c, map[string]string{"status": "sync acknowledged"})
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(bgCtx, "http: notification scan panicked: %v", r)
			}
		}()

		if _, err := h.uc.ScanAll(bgCtx); err != nil {
			h.l.Errorf(bgCtx, "http: notification scan failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// ResetScheduler re-installs the poll schedules. Safe to call repeatedly.
// @Summary Reset the poll schedules
// @Tags Scheduler
// @Produce json
// @Router /scheduler/reset [post]
func (h *handler) ResetScheduler(c *gin.Context) {
	ctx := c.Request.Context()

	if h.scheduler == nil {
		pkgResponse.Error(c, errors.New("scheduler is not configured"), nil)
		return
	}
	if err := h.scheduler.Reset(); err != nil {
		h.l.Errorf(ctx, "http: scheduler reset failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, map[string]string{"status": "rescheduled"})
}
