// Package redislock implements storage.Locker with a single Redis key, so that
// several server processes can share one store.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mmynk/fintrack/internal/storage"
)

// Ensure Locker implements storage.Locker
var _ storage.Locker = (*Locker)(nil)

// ErrTimeout is returned when the lock could not be acquired in time.
var ErrTimeout = errors.New("timed out waiting for lock")

const retryInterval = 25 * time.Millisecond

// unlockScript deletes the key only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	client  redis.UniversalClient
	key     string
	ttl     time.Duration
	timeout time.Duration
}

// New returns a Locker on key. ttl bounds how long a crashed holder can keep
// the lock; timeout bounds how long Lock waits.
func New(client redis.UniversalClient, key string, ttl, timeout time.Duration) *Locker {
	return &Locker{client: client, key: key, ttl: ttl, timeout: timeout}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

func (l *Locker) Lock(ctx context.Context) (func(), error) {
	token := uuid.New().String()
	deadline := time.Now().Add(l.timeout)

	for {
		ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to set lock key: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return func() {
		// Release even if the request context is already cancelled.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := unlockScript.Run(ctx, l.client, []string{l.key}, token).Err(); err != nil {
			slog.Error("Failed to release store lock", "key", l.key, "error", err)
		}
	}, nil
}
