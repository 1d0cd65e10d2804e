package http

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// notifyLimiter rate-limits notification callbacks per channel with
// auto-expiring per-channel limiters.
type notifyLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newNotifyLimiter(requestsPerMin int) *notifyLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &notifyLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max distinct channels tracked
			nil,           // No eviction callback
			time.Minute*5, // TTL per idle channel
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (nl *notifyLimiter) Allow(channelID string) error {
	limiter, ok := nl.limiters.Get(channelID)
	if !ok {
		limiter = rate.NewLimiter(nl.rate, nl.burst)
		nl.limiters.Add(channelID, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for channel %s", channelID)
	}
	return nil
}
