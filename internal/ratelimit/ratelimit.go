// Package ratelimit implements a fixed-window request counter keyed by
// client, backed by Redis when available and by process memory otherwise.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the state of a key's current window after counting one hit.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts one hit for key and reports whether it fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// windowStart truncates now to the beginning of its fixed window.
func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}

func result(count int64, limit int, reset time.Time) Result {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   reset,
	}
}
