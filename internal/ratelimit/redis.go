package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis shares counters across replicas. Each window is its own key, created
// by INCR and expired with the window so Redis does the cleanup.
type Redis struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedis(rdb *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{rdb: rdb, limit: limit, window: window, prefix: "ratelimit", now: time.Now}
}

func (r *Redis) Allow(ctx context.Context, key string) (Result, error) {
	start := windowStart(r.now(), r.window)
	redisKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, start.Unix())

	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, r.window)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis: %w", err)
	}
	return result(incr.Val(), r.limit, start.Add(r.window)), nil
}
