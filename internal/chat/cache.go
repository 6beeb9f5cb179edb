package chat

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores computed replies keyed by the raw message text.
// Implemented in memory for single-instance deployments and on Redis
// when instances must share state.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, response string)
}

type cacheEntry struct {
	response  string
	createdAt time.Time
}

// MemoryCache is a mutex-guarded map with per-entry TTL and a capacity
// bound. When full, the oldest entry is evicted.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	ttl      time.Duration
	maxItems int
	now      func() time.Time
}

func NewMemoryCache(ttl time.Duration, maxItems int) *MemoryCache {
	return &MemoryCache{
		entries:  make(map[string]*cacheEntry),
		ttl:      ttl,
		maxItems: maxItems,
		now:      time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(entry.createdAt) >= c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return entry.response, true
}

func (c *MemoryCache) Put(_ context.Context, key, response string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxItems {
		c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{response: response, createdAt: c.now()}
}

func (c *MemoryCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.createdAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.createdAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// RedisCache keeps entries in Redis with the TTL applied by the server.
// Failures degrade to cache misses; the gateway recomputes the reply.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, "chat:cache:"+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("redis cache get failed: %v", err)
		return "", false
	}
	return val, true
}

func (c *RedisCache) Put(ctx context.Context, key, response string) {
	if err := c.client.Set(ctx, "chat:cache:"+key, response, c.ttl).Err(); err != nil {
		log.Printf("redis cache put failed: %v", err)
	}
}
