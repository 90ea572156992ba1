package websocket

import (
	"sync"
	"time"

	"ride-booking/internal/general/logger"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Hub stores active WebSocket subscriptions keyed by ride ID. A ride may have
// several watchers (the passenger and the driver at least).
type Hub struct {
	mu     sync.RWMutex
	byRide map[string]map[*websocket.Conn]struct{}
	logger *logger.Logger
}

// NewHub constructs an empty Hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		byRide: make(map[string]map[*websocket.Conn]struct{}),
		logger: log,
	}
}

// Subscribe registers a connection as a watcher of one ride.
func (h *Hub) Subscribe(rideID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.byRide[rideID]
	if !ok {
		conns = make(map[*websocket.Conn]struct{})
		h.byRide[rideID] = conns
	}
	conns[conn] = struct{}{}
}

// Unsubscribe removes and closes a connection.
func (h *Hub) Unsubscribe(rideID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.byRide[rideID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.byRide, rideID)
		}
	}
	_ = conn.Close()
}

// Broadcast sends a JSON message to every watcher of a ride. Connections that
// fail to accept the write are dropped.
func (h *Hub) Broadcast(rideID string, msg any) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.byRide[rideID]))
	for conn := range h.byRide[rideID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			h.Unsubscribe(rideID, conn)
		}
	}
}

// Watchers returns the number of open subscriptions for a ride.
func (h *Hub) Watchers(rideID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byRide[rideID])
}
