package web

import "sync"

// Hub tracks active WebSocket clients so shutdown can close them all.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
	closed  bool
}

// NewHub creates a client registry.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

// Register adds a client. It reports false when the hub has already been
// stopped; the caller must then drop the connection without starting pumps.
func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = true
	return true
}

// Unregister removes a client after its read pump ends. This is the only
// place the send channel closes: the read pump has already exited, so no
// goroutine can still be sending on it.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// Stop closes every connected client's network connection. Each read pump
// then errors out and unregisters its own client, which closes its send
// channel from the safe side.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		_ = c.conn.Close()
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
