package server

import (
	"log/slog"

	"github.com/gorilla/websocket"
)

// Subscriber abstracts a live-feed client.
type Subscriber interface {
	Send([]byte) error
	Close()
}

// Hub fans dataset updates out to live subscribers.
type Hub struct {
	clients   map[Subscriber]struct{}
	register  chan Subscriber
	unreg     chan Subscriber
	broadcast chan []byte
}

// NewHub creates a running hub.
func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[Subscriber]struct{}),
		register:  make(chan Subscriber),
		unreg:     make(chan Subscriber),
		broadcast: make(chan []byte),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unreg:
			delete(h.clients, c)
		case payload := <-h.broadcast:
			for c := range h.clients {
				if err := c.Send(payload); err != nil {
					c.Close()
					delete(h.clients, c)
				}
			}
		}
	}
}

// Register adds a subscriber to the feed.
func (h *Hub) Register(c Subscriber) { h.register <- c }

// Unregister removes a subscriber.
func (h *Hub) Unregister(c Subscriber) { h.unreg <- c }

// Broadcast sends payload to every subscriber.
func (h *Hub) Broadcast(payload []byte) { h.broadcast <- payload }

// wsClient adapts a websocket connection to the Subscriber interface.
type wsClient struct {
	conn *websocket.Conn
}

func (c *wsClient) Send(payload []byte) error {
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		slog.Warn("live send failed", "err", err)
		_ = c.conn.Close()
		return err
	}
	return nil
}

func (c *wsClient) Close() {
	_ = c.conn.Close()
}
