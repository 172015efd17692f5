package redis_test

import (
	"context"
	"testing"
	"time"

	"karla-connector/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRateLimitStore_Allow(t *testing.T) {
	mr, client := newTestClient(t)
	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "10.0.0.1:webhook", 3, time.Hour)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:webhook", 3, time.Hour)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.2:webhook", 5, time.Hour)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("window key expires", func(t *testing.T) {
		_, err := store.Allow(ctx, "10.0.0.3:webhook", 1, time.Minute)
		require.NoError(t, err)

		keys := mr.Keys()
		var windowKey string
		for _, k := range keys {
			if len(k) > len("karla:ratelimit:10.0.0.3") && k[:len("karla:ratelimit:10.0.0.3")] == "karla:ratelimit:10.0.0.3" {
				windowKey = k
			}
		}
		require.NotEmpty(t, windowKey)
		assert.Equal(t, 61*time.Second, mr.TTL(windowKey))

		mr.FastForward(62 * time.Second)
		assert.False(t, mr.Exists(windowKey))
	})

	t.Run("reset is in the future", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.4:webhook", 10, time.Minute)
		require.NoError(t, err)
		assert.Greater(t, result.ResetAt, time.Now().Unix()-1)
	})

	t.Run("store failure is reported", func(t *testing.T) {
		mr.SetError("LOADING")
		defer mr.SetError("")

		_, err := store.Allow(ctx, "10.0.0.5:webhook", 10, time.Minute)
		assert.Error(t, err)
	})
}
