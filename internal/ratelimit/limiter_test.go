package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestFixedWindow_AllowsUpToLimit(t *testing.T) {
	rl := NewFixedWindow(10, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		allowed, _ := rl.Allow(ctx, "1.2.3.4")
		if !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	allowed, retryAfter := rl.Allow(ctx, "1.2.3.4")
	if allowed {
		t.Fatal("11th request in the same window should be rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("expected retry-after within the window, got %v", retryAfter)
	}
}

func TestFixedWindow_WindowRollover(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rl := NewFixedWindow(2, time.Minute)
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	rl.Allow(ctx, "fan")
	rl.Allow(ctx, "fan")
	if allowed, _ := rl.Allow(ctx, "fan"); allowed {
		t.Fatal("3rd request should be rejected")
	}

	// Advance past the window; the counter must reset.
	now = now.Add(61 * time.Second)
	if allowed, _ := rl.Allow(ctx, "fan"); !allowed {
		t.Fatal("request after window rollover should be allowed")
	}
}

func TestFixedWindow_IndependentClients(t *testing.T) {
	rl := NewFixedWindow(1, time.Minute)
	ctx := context.Background()

	rl.Allow(ctx, "a")
	if allowed, _ := rl.Allow(ctx, "a"); allowed {
		t.Fatal("client a should be throttled")
	}
	if allowed, _ := rl.Allow(ctx, "b"); !allowed {
		t.Fatal("client b has its own window")
	}
}

func TestFixedWindow_EmptyKeyUsesSentinel(t *testing.T) {
	rl := NewFixedWindow(1, time.Minute)
	ctx := context.Background()

	rl.Allow(ctx, "")
	if allowed, _ := rl.Allow(ctx, ""); allowed {
		t.Fatal("unidentifiable clients share the sentinel bucket")
	}

	rl.mu.Lock()
	_, ok := rl.windows[SentinelKey]
	rl.mu.Unlock()
	if !ok {
		t.Fatal("expected sentinel key in the window map")
	}
}
