package chat

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"fanhub-backend/internal/models"
)

// RedisPublisher pushes fan notifications through Redis pub/sub; the
// WebSocket hub relays them to connected fans.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, n models.FanNotification) {
	data, _ := json.Marshal(n)
	p.client.Publish(ctx, "fan_updates:"+n.Topic, string(data))
}
