package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/infra"
)

// profileCache keeps projected profiles under user:{id}. Every method is
// best effort: a nil client or a Redis failure just means a cache miss.
// Reads and writes are skipped while the breaker is open; invalidations are
// always attempted so a recovered Redis never serves a stale profile.
type profileCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	breaker *infra.Breaker
}

func newProfileCache(rdb *redis.Client, ttl time.Duration) *profileCache {
	return &profileCache{rdb: rdb, ttl: ttl, breaker: infra.NewBreaker(infra.DefaultBreakerConfig())}
}

func profileKey(id string) string { return "user:" + id }

func (c *profileCache) get(ctx context.Context, id string) (*dto.UserResponse, bool) {
	if c.rdb == nil {
		return nil, false
	}
	if c.breaker.State() == infra.BreakerOpen {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.breaker.Record(nil)
		return nil, false
	}
	c.breaker.Record(err)
	if err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
		return nil, false
	}
	var resp dto.UserResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *profileCache) set(ctx context.Context, resp *dto.UserResponse) {
	if c.rdb == nil || c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	err = c.breaker.Do(func() error {
		return c.rdb.Set(ctx, profileKey(resp.ID), raw, c.ttl).Err()
	})
	if err != nil && !errors.Is(err, infra.ErrBreakerOpen) {
		log.Warn().Err(err).Str("user_id", resp.ID).Msg("profile cache write failed")
	}
}

func (c *profileCache) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	err := c.rdb.Del(ctx, profileKey(id)).Err()
	c.breaker.Record(err)
	if err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
	}
}
