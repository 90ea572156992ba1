package websocket

import (
	"net/http"
	"strings"

	"ride-booking/internal/general/jwt"
	"ride-booking/internal/general/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Feed serves the per-ride status stream. The handshake authenticates itself
// (browsers cannot set an Authorization header on a WebSocket request, so the
// token may arrive as a query parameter).
type Feed struct {
	hub    *Hub
	jwtMgr *jwt.Manager
	logger *logger.Logger
}

// NewFeed wires a Feed around the hub and token manager.
func NewFeed(hub *Hub, jwtMgr *jwt.Manager, log *logger.Logger) *Feed {
	return &Feed{hub: hub, jwtMgr: jwtMgr, logger: log}
}

// Hub exposes the underlying hub for broadcasters.
func (f *Feed) Hub() *Hub {
	return f.hub
}

// ServeRide handles GET /ws/rides/{ride_id}: validates the token, upgrades,
// and keeps the subscription open until the client goes away.
func (f *Feed) ServeRide(w http.ResponseWriter, r *http.Request) {
	rideID := strings.TrimSpace(r.PathValue("ride_id"))
	if rideID == "" {
		http.Error(w, "ride_id is required", http.StatusBadRequest)
		return
	}

	raw, err := jwt.FromAuthorization(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	claims, err := f.jwtMgr.ParseAndValidate(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error(r.Context(), "ws_upgrade_failed", "Failed to upgrade to WebSocket", err, nil)
		return
	}

	f.hub.Subscribe(rideID, conn)
	f.logger.Info(r.Context(), "ws_subscribed", "Client subscribed to ride feed",
		map[string]any{"ride_id": rideID, "username": claims.Username(), "watchers": f.hub.Watchers(rideID)})

	// read loop: the feed is one-way, inbound frames are discarded; a read
	// error means the client is gone
	go func() {
		defer f.hub.Unsubscribe(rideID, conn)
		conn.SetReadLimit(1 << 10)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
