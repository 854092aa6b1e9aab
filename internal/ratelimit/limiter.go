package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	redisclient "github.com/p2p-kyc/verify-sub000/internal/clients/redis"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Limiter throttles write requests per user using a Redis sliding
// window. Without Redis all requests are allowed, reads are never
// throttled.
type Limiter struct {
	cache  *redisclient.Client
	limit  int
	window time.Duration
	logger *observability.Logger
}

// NewLimiter creates a limiter allowing limit requests per window
func NewLimiter(cache *redisclient.Client, limit int, window time.Duration, logger *observability.Logger) *Limiter {
	return &Limiter{
		cache:  cache,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

func limitKey(userID uuid.UUID) string {
	return fmt.Sprintf("rl:user:%s", userID)
}

// Allow records a request for the user and reports whether it fits
// inside the current window
func (l *Limiter) Allow(ctx context.Context, userID uuid.UUID) (Result, error) {
	client := l.cache.GetClient()
	if client == nil {
		return Result{Allowed: true, Limit: l.limit, Remaining: l.limit}, nil
	}

	// Sliding window over a Redis sorted set keyed by user.
	// Members are request timestamps in milliseconds.
	key := limitKey(userID)
	now := time.Now()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-l.window).UnixMilli()

	// Drop entries that fell out of the window
	if err := client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= l.limit {
		oldest, err := client.ZRange(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return Result{
				Allowed:      false,
				Limit:        l.limit,
				Remaining:    0,
				ResetAt:      now.Add(l.window),
				RetryAfterMs: int(l.window.Milliseconds()),
			}, nil
		}

		var oldestTs int64
		fmt.Sscanf(oldest[0], "%d", &oldestTs)
		resetAt := time.UnixMilli(oldestTs).Add(l.window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return Result{
			Allowed:      false,
			Limit:        l.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	err = client.ZAdd(ctx, key, redis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d", nowMs),
	}).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}

	// Expire the key past the window so idle users cost nothing
	if err := client.Expire(ctx, key, 2*l.window).Err(); err != nil {
		l.logger.Warn(ctx, fmt.Sprintf("failed to set expiration on rate limit key: %v", err))
	}

	return Result{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - int(count) - 1,
		ResetAt:   now.Add(l.window),
	}, nil
}

// Status reports the user's current window usage without recording a
// request
func (l *Limiter) Status(ctx context.Context, userID uuid.UUID) (Result, error) {
	client := l.cache.GetClient()
	if client == nil {
		return Result{Allowed: true, Limit: l.limit, Remaining: l.limit}, nil
	}

	now := time.Now()
	count, err := client.ZCount(ctx, limitKey(userID),
		fmt.Sprintf("%d", now.Add(-l.window).UnixMilli()),
		fmt.Sprintf("%d", now.UnixMilli())).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   int(count) < l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   now.Add(l.window),
	}, nil
}
