package eta

import (
	"context"
	"time"
)

// RouteClient issues a single origin/destination duration query against the
// route estimation service. Implemented by pkg/distancematrix.
type RouteClient interface {
	// Estimate returns the driving duration leaving at departure. With
	// useTraffic the estimate is traffic-adjusted for that departure time.
	Estimate(ctx context.Context, origin, destination string, departure time.Time, useTraffic bool) (time.Duration, error)
}

// Estimator yields driving durations for a trip that must end at driveEnd.
type Estimator interface {
	DrivingDuration(ctx context.Context, origin, destination string, driveEnd time.Time) (time.Duration, error)
}
