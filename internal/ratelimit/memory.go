package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

type entry struct {
	count     int64
	windowEnd time.Time
}

// Memory is a per-process limiter. Counts are lost on restart and not shared
// between replicas.
type Memory struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*entry
	lastPurge time.Time
}

func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

func (m *Memory) Allow(_ context.Context, key string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.purgeLocked(now)

	e, ok := m.entries[key]
	if !ok || !now.Before(e.windowEnd) {
		e = &entry{windowEnd: windowStart(now, m.window).Add(m.window)}
		m.entries[key] = e
	}
	e.count++
	return result(e.count, m.limit, e.windowEnd), nil
}

// purgeLocked drops expired windows so clients that never return do not
// accumulate. Runs at most once per purgeInterval.
func (m *Memory) purgeLocked(now time.Time) {
	if now.Sub(m.lastPurge) < purgeInterval {
		return
	}
	m.lastPurge = now
	purged := 0
	for k, e := range m.entries {
		if !now.Before(e.windowEnd) {
			delete(m.entries, k)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(m.entries)).Msg("rate limiter entries purged")
	}
}
