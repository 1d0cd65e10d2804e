package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"drive-time-planner/config"
	"drive-time-planner/internal/driveblock"
	pkgLog "drive-time-planner/pkg/log"
)

// scanTimeout bounds a single scheduled scan.
const scanTimeout = 5 * time.Minute

// Scanner is the slice of the drive block UseCase the scheduler drives.
type Scanner interface {
	ScanAll(ctx context.Context) (driveblock.ScanOutput, error)
}

// Scheduler runs the two poll cadences: a frequent poll that keeps blocks
// fresh and a slower backup poll that catches anything the frequent one or
// the push channel missed. Overlapping runs are tolerated; the
// reconciliation is idempotent.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	l       pkgLog.Logger
	scanner Scanner
	cfg     config.ScanConfig
}

// New creates a stopped scheduler; call Start or Reset to install the jobs.
func New(l pkgLog.Logger, scanner Scanner, cfg config.ScanConfig) *Scheduler {
	return &Scheduler{
		l:       l,
		scanner: scanner,
		cfg:     cfg,
	}
}

// Start installs the poll entries and starts the cron loop.
func (s *Scheduler) Start() error {
	return s.Reset()
}

// Reset (re)installs the poll entries from config. Idempotent: any running
// cron is stopped first, so repeated resets converge to exactly one pair of
// entries.
func (s *Scheduler) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.PollCron, func() { s.runScan("poll") }); err != nil {
		return fmt.Errorf("add poll schedule %q: %w", s.cfg.PollCron, err)
	}
	if _, err := c.AddFunc(s.cfg.BackupCron, func() { s.runScan("backup") }); err != nil {
		return fmt.Errorf("add backup schedule %q: %w", s.cfg.BackupCron, err)
	}

	c.Start()
	s.cron = c
	s.l.Infof(context.Background(), "scheduler: running (poll %q, backup %q)", s.cfg.PollCron, s.cfg.BackupCron)
	return nil
}

// Stop halts the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	s.l.Info(context.Background(), "scheduler: stopped")
}

// runScan is the top-level dispatch for a scheduled scan: failures and
// panics are logged and swallowed so the next tick is unaffected.
func (s *Scheduler) runScan(cadence string) {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "scheduler: %s scan panicked: %v", cadence, r)
		}
	}()

	if _, err := s.scanner.ScanAll(ctx); err != nil {
		s.l.Errorf(ctx, "scheduler: %s scan failed: %v", cadence, err)
	}
}
