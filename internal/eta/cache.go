package eta

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "drive-time-planner/pkg/log"
)

const (
	// cacheTTL bounds how long an estimate is reused before the traffic
	// picture is refreshed.
	cacheTTL = time.Hour

	// cacheSize caps distinct (origin, destination, hour) routes held at once.
	cacheSize = 512
)

// CachedEstimator is a read-through cache over a RouteClient. Entries are
// keyed by origin, destination and the hour-of-day of the drive's end, so
// estimates refresh hourly while still being shared across dates that hit
// the same route at the same time of day.
type CachedEstimator struct {
	routes RouteClient
	cache  *expirable.LRU[string, time.Duration]
	l      pkgLog.Logger
}

// NewCachedEstimator creates the estimator cache over the given route client.
func NewCachedEstimator(routes RouteClient, l pkgLog.Logger) *CachedEstimator {
	return &CachedEstimator{
		routes: routes,
		cache:  expirable.NewLRU[string, time.Duration](cacheSize, nil, cacheTTL),
		l:      l,
	}
}

// DrivingDuration returns the driving duration for a trip ending at driveEnd.
//
// On a miss it issues two calls: a base (traffic-free) estimate to find the
// tentative departure time, then a traffic-adjusted estimate departing at
// that time. Traffic wins when available; the base estimate failing fails
// the whole lookup.
func (c *CachedEstimator) DrivingDuration(ctx context.Context, origin, destination string, driveEnd time.Time) (time.Duration, error) {
	key := cacheKey(origin, destination, driveEnd)

	if cached, ok := c.cache.Get(key); ok {
		c.l.Debugf(ctx, "eta: cache hit %s -> %v", key, cached)
		return cached, nil
	}

	base, err := c.routes.Estimate(ctx, origin, destination, driveEnd, false)
	if err != nil {
		return 0, fmt.Errorf("base estimate: %w", err)
	}

	// Traffic is evaluated at the time the driver would actually leave,
	// not at scan time.
	departure := driveEnd.Add(-base)
	chosen := base
	if traffic, trafficErr := c.routes.Estimate(ctx, origin, destination, departure, true); trafficErr == nil {
		chosen = traffic
	} else {
		c.l.Warnf(ctx, "eta: traffic estimate unavailable, using base %v: %v", base, trafficErr)
	}

	c.cache.Add(key, chosen)
	c.l.Debugf(ctx, "eta: cached %s -> %v", key, chosen)
	return chosen, nil
}

// cacheKey buckets by hour-of-day rather than calendar date on purpose: the
// traffic pattern at 08:00 is reusable tomorrow, but not at 17:00 today.
func cacheKey(origin, destination string, driveEnd time.Time) string {
	return fmt.Sprintf("%s|%s|%02d", origin, destination, driveEnd.Hour())
}
