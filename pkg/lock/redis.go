package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrNotAcquired = errors.New("lock not acquired")
	ErrNotOwned    = errors.New("lock not owned")
)

// Handle is a held lock that can be released.
type Handle interface {
	Release(ctx context.Context) error
}

// Manager hands out mutual-exclusion scopes keyed by resource.
type Manager interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Handle, error)
	AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (Handle, error)
}

type redisLock struct {
	client *redis.Client
	key    string
	value  string
}

// RedisManager implements Manager on a single redis instance via SETNX.
type RedisManager struct {
	client *redis.Client
}

func NewRedisManager(client *redis.Client) *RedisManager {
	return &RedisManager{client: client}
}

func (m *RedisManager) Acquire(ctx context.Context, key string, ttl time.Duration) (Handle, error) {
	lockKey := fmt.Sprintf("lock:%s", key)
	lockValue := uuid.New().String()

	// SetNX: only the first caller for this key gets the lock
	ok, err := m.client.SetNX(ctx, lockKey, lockValue, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	return &redisLock{client: m.client, key: lockKey, value: lockValue}, nil
}

func (m *RedisManager) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (Handle, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		handle, err := m.Acquire(ctx, key, ttl)
		if err == nil {
			return handle, nil
		}
		lastErr = err
		if !errors.Is(err, ErrNotAcquired) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, lastErr
}

// Release deletes the key only if this holder still owns it.
func (l *redisLock) Release(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`
	result, err := l.client.Eval(ctx, script, []string{l.key}, l.value).Int()
	if err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	if result == 0 {
		return ErrNotOwned
	}
	return nil
}
