package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxFailures   = 10
)

// LoginLimiter counts failed login attempts per username in Redis.
// Key format: login_failures:<username>, expiring after attemptWindow.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow reports whether username is still under the failure threshold.
func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limit check: %w", err)
	}
	return n < maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	return l.client.Expire(ctx, key, attemptWindow).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_failures:" + username
}
