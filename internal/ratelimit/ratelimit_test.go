package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_FixedWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 5, 0, time.UTC)
	m := NewMemory(3, time.Minute)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := m.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, _ := m.Allow(ctx, "1.2.3.4")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 1, 0, 0, time.UTC), res.ResetAt)

	other, _ := m.Allow(ctx, "5.6.7.8")
	assert.True(t, other.Allowed, "keys are counted independently")

	now = now.Add(time.Minute)
	res, _ = m.Allow(ctx, "1.2.3.4")
	assert.True(t, res.Allowed, "a new window resets the count")
}

func TestMemory_PurgesExpired(t *testing.T) {
	now := time.Now()
	m := NewMemory(1, time.Second)
	m.now = func() time.Time { return now }
	_, _ = m.Allow(context.Background(), "a")

	now = now.Add(purgeInterval + time.Second)
	_, _ = m.Allow(context.Background(), "b")

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.NotContains(t, m.entries, "a")
	assert.Contains(t, m.entries, "b")
}

func TestRedis_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	now := time.Date(2025, 1, 1, 10, 0, 5, 0, time.UTC)
	l := NewRedis(rdb, 2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	r1, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	r2, _ := l.Allow(ctx, "ip")
	r3, _ := l.Allow(ctx, "ip")
	assert.True(t, r1.Allowed)
	assert.True(t, r2.Allowed)
	assert.False(t, r3.Allowed)

	key := "ratelimit:ip:" + "1735725600"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	now = now.Add(time.Minute)
	r4, _ := l.Allow(ctx, "ip")
	assert.True(t, r4.Allowed)
}

func TestRedis_ErrorIsReturned(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	_, err := NewRedis(rdb, 1, time.Minute).Allow(context.Background(), "ip")
	assert.Error(t, err)
}
