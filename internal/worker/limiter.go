package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter caps batch scan throughput. Useful when batch output feeds a
// shared downstream (log aggregation, review queue) that should not be
// flooded. A nil Limiter means unthrottled.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing scansPerSecond with the given
// burst. Returns nil when scansPerSecond <= 0, disabling throttling.
func NewLimiter(scansPerSecond float64, burst int) *Limiter {
	if scansPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(scansPerSecond), burst)}
}

// Wait blocks until the next scan is allowed or the context is cancelled
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a scan may proceed without waiting
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
