package lock

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skip("Redis not available")
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisManagerAcquire(t *testing.T) {
	ctx := context.Background()
	manager := NewRedisManager(testClient(t))

	t.Run("acquires a free lock", func(t *testing.T) {
		handle, err := manager.Acquire(ctx, "test-room-1", 5*time.Second)
		require.NoError(t, err)
		require.NotNil(t, handle)
		defer handle.Release(ctx)
	})

	t.Run("second acquire on the same key fails", func(t *testing.T) {
		first, err := manager.Acquire(ctx, "test-room-2", 5*time.Second)
		require.NoError(t, err)
		defer first.Release(ctx)

		second, err := manager.Acquire(ctx, "test-room-2", 5*time.Second)
		assert.ErrorIs(t, err, ErrNotAcquired)
		assert.Nil(t, second)
	})

	t.Run("released lock can be reacquired", func(t *testing.T) {
		first, err := manager.Acquire(ctx, "test-room-3", 5*time.Second)
		require.NoError(t, err)
		require.NoError(t, first.Release(ctx))

		second, err := manager.Acquire(ctx, "test-room-3", 5*time.Second)
		require.NoError(t, err)
		defer second.Release(ctx)
	})

	t.Run("double release reports lost ownership", func(t *testing.T) {
		handle, err := manager.Acquire(ctx, "test-room-4", 5*time.Second)
		require.NoError(t, err)
		require.NoError(t, handle.Release(ctx))
		assert.ErrorIs(t, handle.Release(ctx), ErrNotOwned)
	})
}

func TestRedisManagerAcquireWithRetry(t *testing.T) {
	ctx := context.Background()
	manager := NewRedisManager(testClient(t))

	held, err := manager.Acquire(ctx, "test-room-5", 200*time.Millisecond)
	require.NoError(t, err)

	// The holder's TTL expires while we retry, so the second caller wins.
	handle, err := manager.AcquireWithRetry(ctx, "test-room-5", 5*time.Second, 10, 100*time.Millisecond)
	require.NoError(t, err)
	defer handle.Release(ctx)

	// The expired holder no longer owns the key.
	assert.ErrorIs(t, held.Release(ctx), ErrNotOwned)
}
