package websocket

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"hotel-paraiso-be/internal/pkg/logger"
)

const redisChannel = "hotel:admin:notifications"

// Hub fans ticket notifications out to every connected admin dashboard.
// With Redis configured the payload goes through a pub/sub channel so all
// instances deliver it; without Redis delivery is local only.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		rdb:        rdb,
		logger:     log,
	}
}

// Broadcast queues one notification for every connected client.
func (h *Hub) Broadcast(ctx context.Context, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if h.rdb != nil {
		return h.rdb.Publish(ctx, redisChannel, data).Err()
	}
	h.broadcast <- data
	return nil
}

// Run owns the client set. It must run on its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.relayFromRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("Hub", "admin client connected", map[string]interface{}{"clients": len(h.clients)})
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("Hub", "admin client disconnected", map[string]interface{}{"clients": len(h.clients)})
			}
		case data := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) relayFromRedis(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, redisChannel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			h.broadcast <- []byte(msg.Payload)
		}
	}
}
