package ratelimiter

import (
	"context"
	"errors"
	"hospital-service/internal/app/services/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLimiterAt(t *testing.T, maxAttempts int, at *time.Time) *AttemptLimiter {
	t.Helper()
	limiter := NewAttemptLimiter(testutil.NewRedisRepository(), "login", time.Minute, maxAttempts, zap.NewNop())
	limiter.now = func() time.Time { return *at }
	return limiter
}

func TestAttemptLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 10, 0, time.UTC)
	limiter := newLimiterAt(t, 2, &now)

	for i := 1; i <= 2; i++ {
		decision, err := limiter.Hit(context.Background(), "Alice@Hospital.test")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, i, decision.Attempts)
	}

	decision, err := limiter.Hit(context.Background(), "alice@hospital.test ")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 51, decision.RetryAfterSeconds())

	decision, err = limiter.Hit(context.Background(), "bob@hospital.test")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	now = now.Add(time.Minute)
	decision, err = limiter.Hit(context.Background(), "alice@hospital.test")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Attempts)
}

func TestAttemptLimiter_Edges(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	decision, err := newLimiterAt(t, 0, &now).Hit(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = newLimiterAt(t, 1, &now).Hit(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, time.Minute, decision.RetryAfter)
}

type failingCounter struct{}

func (failingCounter) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 0, errors.New("redis down")
}

func TestAttemptLimiter_CounterFailure(t *testing.T) {
	limiter := NewAttemptLimiter(failingCounter{}, "login", time.Minute, 3, zap.NewNop())

	decision, err := limiter.Hit(context.Background(), "alice")

	require.Error(t, err)
	assert.False(t, decision.Allowed)
}
