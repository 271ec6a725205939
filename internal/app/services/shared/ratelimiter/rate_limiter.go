package ratelimiter

import (
	"context"
	"fmt"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptLimiter counts attempts per key in fixed Redis windows, so every
// instance of the service shares the same budget.
type AttemptLimiter struct {
	redis       contracts.RedisCounter
	group       string
	window      time.Duration
	maxAttempts int
	now         func() time.Time
	log         *zap.Logger
}

// Decision is the outcome of one attempt.
type Decision struct {
	Allowed    bool
	Attempts   int
	RetryAfter time.Duration
}

// RetryAfterSeconds is RetryAfter in whole seconds.
func (d Decision) RetryAfterSeconds() int {
	return int(d.RetryAfter / time.Second)
}

// NewAttemptLimiter returns a limiter that admits maxAttempts per window.
// A non-positive maxAttempts disables it.
func NewAttemptLimiter(redis contracts.RedisCounter, group string, window time.Duration, maxAttempts int, log *zap.Logger) *AttemptLimiter {
	if window < time.Second {
		window = time.Minute
	}
	return &AttemptLimiter{
		redis:       redis,
		group:       strings.ToUpper(strings.TrimSpace(group)),
		window:      window,
		maxAttempts: maxAttempts,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log,
	}
}

// Hit records one attempt for key. Keys are case-insensitive.
func (l *AttemptLimiter) Hit(ctx context.Context, key string) (Decision, error) {
	if l.maxAttempts <= 0 {
		return Decision{Allowed: true}, nil
	}

	key = strings.ToLower(strings.TrimSpace(key))
	windowSec := int64(l.window / time.Second)
	if key == "" {
		return Decision{RetryAfter: l.window}, nil
	}

	now := l.now()
	windowID := now.Unix() / windowSec
	redisKey := fmt.Sprintf("%s:%s:%d", l.group, key, windowID)

	attempts, err := l.redis.IncrementWithTTL(ctx, redisKey, l.window+time.Second)
	if err != nil {
		l.log.Error("AttemptLimiter.Hit increment failed",
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return Decision{}, err
	}

	if attempts > l.maxAttempts {
		nextWindow := (windowID + 1) * windowSec
		return Decision{
			Attempts:   attempts,
			RetryAfter: time.Duration(nextWindow-now.Unix()+1) * time.Second,
		}, nil
	}
	return Decision{Allowed: true, Attempts: attempts}, nil
}
