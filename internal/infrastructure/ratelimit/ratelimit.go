package ratelimit

import (
	"context"
	"time"
)

// Limits caps the number of attempts an identifier may make inside each
// sliding window. A zero limit disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
}

// LoginLimiter throttles authentication attempts per identifier (client IP
// or email). Shared Redis state keeps the limit correct when multiple
// instances serve traffic.
type LoginLimiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
	Remaining(ctx context.Context, identifier string, window time.Duration) (int64, error)
	Reset(ctx context.Context, identifier string) error
}
