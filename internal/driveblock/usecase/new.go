package usecase

import (
	"drive-time-planner/config"
	"drive-time-planner/internal/driveblock/repository"
	"drive-time-planner/internal/eta"
	pkgLog "drive-time-planner/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.CalendarRepository
	estimator eta.Estimator // Nil when no route credential is configured
	planner   config.PlannerConfig
	scan      config.ScanConfig
}

// New creates the drive block UseCase. The estimator may be nil when the
// route service credential is missing; reconciliation then skips located
// events with a warning instead of failing.
func New(
	l pkgLog.Logger,
	repo repository.CalendarRepository,
	estimator eta.Estimator,
	planner config.PlannerConfig,
	scan config.ScanConfig,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		estimator: estimator,
		planner:   planner,
		scan:      scan,
	}
}
