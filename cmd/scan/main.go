package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"drive-time-planner/config"
	gcalRepo "drive-time-planner/internal/driveblock/repository/gcal"
	"drive-time-planner/internal/driveblock/usecase"
	"drive-time-planner/internal/eta"
	"drive-time-planner/pkg/distancematrix"
	"drive-time-planner/pkg/gcalendar"
	"drive-time-planner/pkg/log"
)

// main runs a single full scan and exits. Useful for operators ("scan now")
// and for external cron setups that do not want the long-running service.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create the UseCase
//  3. ScanAll once, report, exit non-zero on hard failure
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "GOOGLE_CALENDAR_CREDENTIALS is required")
		os.Exit(1)
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar: ", err)
		os.Exit(1)
	}
	repo := gcalRepo.New(calendarClient, logger)

	var estimator eta.Estimator
	if cfg.Maps.APIKey != "" {
		dmClient, dmErr := distancematrix.New(cfg.Maps.APIKey)
		if dmErr != nil {
			logger.Warnf(ctx, "Distance Matrix not available: %v", dmErr)
		} else {
			estimator = eta.NewCachedEstimator(dmClient, logger)
		}
	}

	uc := usecase.New(logger, repo, estimator, cfg.Planner, cfg.Scan)

	out, err := uc.ScanAll(ctx)
	if err != nil {
		logger.Error(ctx, "Scan failed: ", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "Scan complete: %d created, %d patched, %d deleted, %d unchanged, %d skipped, %d failed",
		out.Created, out.Patched, out.Deleted, out.Unchanged, out.Skipped, out.Failed)
}
