// Package ratelimit throttles chat traffic per client key using a fixed
// window counter.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// SentinelKey buckets every request whose client address could not be
// derived. All unidentifiable clients share this one window.
const SentinelKey = "unknown"

// Limiter reports whether a client may send another request right now.
// A zero retryAfter means the request is allowed.
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (allowed bool, retryAfter time.Duration)
}

type window struct {
	count     int
	startedAt time.Time
}

// FixedWindow is an in-process limiter: a mutex-guarded map of per-client
// windows, swept periodically so idle clients do not accumulate forever.
type FixedWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
}

func NewFixedWindow(limit int, period time.Duration) *FixedWindow {
	rl := &FixedWindow{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}

	// Cleanup goroutine
	go func() {
		for {
			time.Sleep(period)
			rl.mu.Lock()
			for key, w := range rl.windows {
				if rl.now().Sub(w.startedAt) > period {
					delete(rl.windows, key)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

func (rl *FixedWindow) Allow(_ context.Context, clientKey string) (bool, time.Duration) {
	if clientKey == "" {
		clientKey = SentinelKey
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, exists := rl.windows[clientKey]
	if !exists || now.Sub(w.startedAt) > rl.period {
		rl.windows[clientKey] = &window{count: 1, startedAt: now}
		return true, 0
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.period - now.Sub(w.startedAt)
	}
	return true, 0
}
