package ws

import (
	"encoding/json"
	"sync"
)

// Client represents a single WebSocket connection with client context.
type Client struct {
	ClientID string
	Send     chan []byte
	hub      *Hub
	mu       sync.Mutex
	closed   bool
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// Hub maintains the set of live dashboard connections, keyed by client id.
// One client can hold several connections (multiple tabs).
type Hub struct {
	mu       sync.RWMutex
	byClient map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{byClient: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	if h.byClient[c.ClientID] == nil {
		h.byClient[c.ClientID] = make(map[*Client]struct{})
	}
	h.byClient[c.ClientID][c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.byClient[c.ClientID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.byClient, c.ClientID)
		}
	}
}

// NotifyClient pushes refresh events to every connection the client holds.
// Slow connections are skipped rather than blocked on.
func (h *Hub) NotifyClient(clientID string, events ...string) {
	data, _ := json.Marshal(map[string]interface{}{"type": "refresh", "events": events})
	h.mu.RLock()
	m := h.byClient[clientID]
	conns := make([]*Client, 0, len(m))
	for c := range m {
		conns = append(conns, c)
	}
	h.mu.RUnlock()
	for _, c := range conns {
		select {
		case c.Send <- data:
		default:
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, m := range h.byClient {
		n += len(m)
	}
	return n
}
