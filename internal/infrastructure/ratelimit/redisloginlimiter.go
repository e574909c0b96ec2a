package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLoginLimiter implements LoginLimiter with a sliding-window counter
// backed by a Redis sorted set per identifier and window. Each attempt is
// recorded with its nanosecond timestamp as score; entries older than the
// window are trimmed before counting.
type RedisLoginLimiter struct {
	client *redis.Client
	limits Limits
}

func NewRedisLoginLimiter(client *redis.Client, limits Limits) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		client: client,
		limits: limits,
	}
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	now := time.Now()

	windows := []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, l.limits.PerMinute},
		{time.Hour, l.limits.PerHour},
	}

	for _, window := range windows {
		if window.limit <= 0 {
			continue
		}

		allowed, err := l.checkWindow(ctx, identifier, window.duration, window.limit, now)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func (l *RedisLoginLimiter) checkWindow(ctx context.Context, identifier string, window time.Duration, limit int, now time.Time) (bool, error) {
	key := l.key(identifier, window)
	windowStart := now.Add(-window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, key, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check login window: %w", err)
	}

	// zcard counted attempts before this one was added.
	return zcard.Val() < int64(limit), nil
}

func (l *RedisLoginLimiter) Remaining(ctx context.Context, identifier string, window time.Duration) (int64, error) {
	key := l.key(identifier, window)
	windowStart := time.Now().Add(-window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count login attempts: %w", err)
	}

	return zcard.Val(), nil
}

// Reset clears all recorded attempts for an identifier, e.g. after a
// successful password change.
func (l *RedisLoginLimiter) Reset(ctx context.Context, identifier string) error {
	keys := []string{
		l.key(identifier, time.Minute),
		l.key(identifier, time.Hour),
	}
	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

func (l *RedisLoginLimiter) key(identifier string, window time.Duration) string {
	return fmt.Sprintf("loginlimit:%s:%s", identifier, window.String())
}
