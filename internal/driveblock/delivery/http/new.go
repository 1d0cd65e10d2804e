package http

import (
	"github.com/gin-gonic/gin"

	"drive-time-planner/config"
	"drive-time-planner/internal/driveblock"
	pkgLog "drive-time-planner/pkg/log"
)

// Handler exposes the operator entry points over HTTP.
type Handler interface {
	// ScanNow runs a full scan immediately and returns its summary.
	ScanNow(c *gin.Context)

	// ReconcileEvent reconciles a single event addressed by id.
	ReconcileEvent(c *gin.Context)

	// HandleCalendarNotification receives Google Calendar push channel
	// callbacks and triggers a scan in the background.
	HandleCalendarNotification(c *gin.Context)

	// ResetScheduler re-installs the poll schedules idempotently.
	ResetScheduler(c *gin.Context)
}

// Scheduler is the slice of the cron scheduler the handler needs.
type Scheduler interface {
	Reset() error
}

type handler struct {
	l         pkgLog.Logger
	uc        driveblock.UseCase
	scheduler Scheduler
	cfg       config.NotificationConfig
	limiter   *notifyLimiter
}

// New creates the HTTP handler for the drive block domain.
func New(l pkgLog.Logger, uc driveblock.UseCase, scheduler Scheduler, cfg config.NotificationConfig) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		scheduler: scheduler,
		cfg:       cfg,
		limiter:   newNotifyLimiter(cfg.RateLimitPerMin),
	}
}
