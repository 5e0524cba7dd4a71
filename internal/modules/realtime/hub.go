package realtime

import (
	"sync"
	"time"

	"pictgram/internal/metrics"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type client struct {
	conn Conn
	mu   sync.Mutex // gorilla connections allow one writer at a time
}

// write fails instead of blocking once timeout passes, so a client that stopped
// reading cannot stall the broadcaster.
func (c *client) write(message interface{}, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(message)
}

// Hub tracks one live connection per user and fans out feed events.
type Hub struct {
	connections  map[int64]*client
	mutex        sync.RWMutex
	writeTimeout time.Duration
}

func NewHub() *Hub {
	return &Hub{
		connections:  make(map[int64]*client),
		writeTimeout: writeWait,
	}
}

// Register replaces any previous connection of userID.
func (h *Hub) Register(userID int64, conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists {
		_ = old.conn.Close()
	} else {
		metrics.RealtimeConnections.Inc()
	}

	h.connections[userID] = &client{conn: conn}
}

// Unregister closes conn if it is still the registered connection of userID.
func (h *Hub) Unregister(userID int64, conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[userID]; exists && c.conn == conn {
		_ = c.conn.Close()
		delete(h.connections, userID)
		metrics.RealtimeConnections.Dec()
	}
}

func (h *Hub) sendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	c, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists {
		return false
	}

	if err := c.write(message, h.writeTimeout); err != nil {
		h.Unregister(userID, c.conn)
		return false
	}

	return true
}

// Broadcast sends message to every connected user and returns how many
// received it.
func (h *Hub) Broadcast(message interface{}) int {
	h.mutex.RLock()
	userIDs := make([]int64, 0, len(h.connections))
	for id := range h.connections {
		userIDs = append(userIDs, id)
	}
	h.mutex.RUnlock()

	delivered := 0
	for _, id := range userIDs {
		if h.sendToUser(id, message) {
			delivered++
		}
	}
	return delivered
}

func (h *Hub) GetOnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.connections {
		_ = c.conn.Close()
		delete(h.connections, userID)
		metrics.RealtimeConnections.Dec()
	}
}
