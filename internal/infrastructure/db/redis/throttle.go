package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per username in Redis.
// Key format: login:fail:<username>, expiring after the configured window so
// a quiet account unblocks itself.
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginThrottle creates a throttle allowing maxFailures failed attempts
// per username within window.
func NewLoginThrottle(client *redis.Client, maxFailures int64, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, maxFailures: maxFailures, window: window}
}

// TooMany reports whether username has exhausted its failure budget.
func (t *LoginThrottle) TooMany(ctx context.Context, username string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(username)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// NoteFailure records one failed attempt. The expiry window restarts on every
// failure, so a sustained attack stays blocked.
func (t *LoginThrottle) NoteFailure(ctx context.Context, username string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.key(username))
	pipe.Expire(ctx, t.key(username), t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle update: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(username string) string {
	return "login:fail:" + username
}
