// Package ratelimit paces outgoing requests to the upstream site. It wraps
// Uber's token bucket limiter behind a small interface so the pace can be
// adjusted at runtime and faked in tests.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
)

// Rate specifies how many operations are allowed within an interval.
type Rate struct {
	// Limit is the maximum number of operations per Interval.
	Limit int

	// Interval is the time window over which Limit applies.
	Interval time.Duration
}

// RateLimiter controls the pace of operations. Wait must be called before
// each rate-limited operation.
type RateLimiter interface {
	// Wait blocks until an operation is permitted or the context is
	// cancelled.
	Wait(ctx context.Context) error

	// SetLimit replaces the rate configuration at runtime.
	SetLimit(rate Rate) error
}

// uberLimiter implements RateLimiter over go.uber.org/ratelimit.
type uberLimiter struct {
	limiter ratelimit.Limiter
	rate    Rate
}

// NewTokenBucketLimiter creates a token bucket limiter for the given rate.
// The rate is converted to operations per second as required by the
// underlying implementation.
func NewTokenBucketLimiter(rate Rate) RateLimiter {
	rps := float64(rate.Limit) / rate.Interval.Seconds()
	return &uberLimiter{
		limiter: ratelimit.New(int(rps)),
		rate:    rate,
	}
}

// Wait implements RateLimiter.
func (l *uberLimiter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limit wait cancelled: %w", ctx.Err())
	default:
		l.limiter.Take()
		return nil
	}
}

// SetLimit implements RateLimiter.
func (l *uberLimiter) SetLimit(rate Rate) error {
	if rate.Limit <= 0 || rate.Interval <= 0 {
		return fmt.Errorf("invalid rate limit: %+v", rate)
	}
	rps := float64(rate.Limit) / rate.Interval.Seconds()
	l.limiter = ratelimit.New(int(rps))
	l.rate = rate
	return nil
}
