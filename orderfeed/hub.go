// Package orderfeed pushes order lifecycle events to connected admin
// dashboards over WebSocket, so the back office sees new orders and
// status changes without polling.
package orderfeed

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"sartor/models"
)

type Client struct {
	Send chan []byte
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// add registers a client, reporting false once the hub has stopped so
// a connection arriving during shutdown does not block forever.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish fans an order event out to every connected dashboard.
func (h *Hub) Publish(event models.OrderEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("orderfeed: marshal error:", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}
