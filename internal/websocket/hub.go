package websocket

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var validTopics = map[string]bool{
	"matches": true,
	"streams": true,
}

// Hub relays live-event notifications from Redis pub/sub to connected
// fans, grouped by topic.
type Hub struct {
	mu          sync.RWMutex
	connections map[string][]*websocket.Conn
	redisClient *redis.Client
	cancelFuncs map[string]context.CancelFunc
}

func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		connections: make(map[string][]*websocket.Conn),
		redisClient: redisClient,
		cancelFuncs: make(map[string]context.CancelFunc),
	}
}

// HandleWebSocket subscribes the connection to the requested topics
// (?topics=matches,streams), defaulting to all of them.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	topics := []string{"matches", "streams"}
	if param := r.URL.Query().Get("topics"); param != "" {
		topics = topics[:0]
		for _, topic := range strings.Split(param, ",") {
			topic = strings.TrimSpace(topic)
			if validTopics[topic] {
				topics = append(topics, topic)
			}
		}
	}
	if len(topics) == 0 {
		http.Error(w, "no valid topics requested", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	for _, topic := range topics {
		h.registerConnection(topic, conn)
	}

	// Keep connection alive and handle disconnect
	go func() {
		defer func() {
			for _, topic := range topics {
				h.unregisterConnection(topic, conn)
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) registerConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[topic] = append(h.connections[topic], conn)

	// Start pub/sub subscription on the topic's first connection
	if len(h.connections[topic]) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancelFuncs[topic] = cancel
		go h.subscribeToPubSub(ctx, topic)
	}

	log.Printf("WebSocket connected: topic %s (total: %d)", topic, len(h.connections[topic]))
}

func (h *Hub) unregisterConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()

	conns := h.connections[topic]
	for i, c := range conns {
		if c == conn {
			h.connections[topic] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	// If the topic has no listeners left, cancel its subscription
	if len(h.connections[topic]) == 0 {
		delete(h.connections, topic)
		if cancel, ok := h.cancelFuncs[topic]; ok {
			cancel()
			delete(h.cancelFuncs, topic)
		}
	}

	log.Printf("WebSocket disconnected: topic %s", topic)
}

func (h *Hub) subscribeToPubSub(ctx context.Context, topic string) {
	channel := "fan_updates:" + topic
	pubsub := h.redisClient.Subscribe(ctx, channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(topic, []byte(msg.Payload))
		}
	}
}

func (h *Hub) broadcast(topic string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.connections[topic] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
