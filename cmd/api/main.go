package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"drive-time-planner/config"
	_ "drive-time-planner/docs" // Swagger docs
	dbHTTP "drive-time-planner/internal/driveblock/delivery/http"
	gcalRepo "drive-time-planner/internal/driveblock/repository/gcal"
	"drive-time-planner/internal/driveblock/usecase"
	"drive-time-planner/internal/eta"
	"drive-time-planner/internal/httpserver"
	"drive-time-planner/internal/scheduler"
	"drive-time-planner/pkg/distancematrix"
	"drive-time-planner/pkg/gcalendar"
	"drive-time-planner/pkg/log"
)

// @title       Drive-Time Planner API
// @description Keeps "Drive to …" blocks on Google Calendar in sync with upcoming located meetings, sized by traffic-aware estimates.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting drive-time planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendars: %s", cfg.Planner.CalendarIDs)

	// 3. Google Calendar client (required)
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "GOOGLE_CALENDAR_CREDENTIALS is required")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar: ", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	repo := gcalRepo.New(calendarClient, logger)

	// 4. Route estimator (optional: without it, located events are skipped
	// with a warning instead of getting drive blocks)
	var estimator eta.Estimator
	if cfg.Maps.APIKey != "" {
		dmClient, dmErr := distancematrix.New(cfg.Maps.APIKey)
		if dmErr != nil {
			logger.Warnf(ctx, "Distance Matrix not available (optional): %v", dmErr)
		} else {
			estimator = eta.NewCachedEstimator(dmClient, logger)
			logger.Infof(ctx, "Distance Matrix initialized (key %s)", dmClient.MaskedKey())
		}
	} else {
		logger.Warn(ctx, "MAPS_API_KEY is missing, drive durations will be unavailable")
	}
	if cfg.Planner.HomeAddress == "" {
		logger.Warn(ctx, "HOME_ADDRESS is missing, located events will be skipped")
	}

	// 5. UseCase
	uc := usecase.New(logger, repo, estimator, cfg.Planner, cfg.Scan)

	// 6. Poll scheduler (frequent + backup cadence)
	sched := scheduler.New(logger, uc, cfg.Scan)
	if err := sched.Start(); err != nil {
		logger.Error(ctx, "Failed to start scheduler: ", err)
		return
	}
	defer sched.Stop()

	// 7. HTTP server
	handler := dbHTTP.New(logger, uc, sched, cfg.Notification)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		DriveBlockHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
