package ratelimit

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindow is the multi-instance variant: an atomic INCR with the
// window applied as key expiry, so every instance sees one shared count.
type RedisWindow struct {
	client *redis.Client
	limit  int
	period time.Duration
}

func NewRedisWindow(client *redis.Client, limit int, period time.Duration) *RedisWindow {
	return &RedisWindow{client: client, limit: limit, period: period}
}

func (rl *RedisWindow) Allow(ctx context.Context, clientKey string) (bool, time.Duration) {
	if clientKey == "" {
		clientKey = SentinelKey
	}
	key := "chat:rl:" + clientKey

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		// Fail open: throttling is protection, not a feature the fan
		// should ever see break.
		log.Printf("redis rate limiter incr failed: %v", err)
		return true, 0
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.period).Err(); err != nil {
			log.Printf("redis rate limiter expire failed: %v", err)
		}
	}

	if count > int64(rl.limit) {
		ttl, err := rl.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = rl.period
		}
		return false, ttl
	}
	return true, 0
}
