package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is a journal change notification pushed to connected dashboards.
type Event struct {
	Type    string      `json:"type"`
	UserID  uint        `json:"user_id"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventTradeCreated   = "trade.created"
	EventTradeUpdated   = "trade.updated"
	EventTradeDeleted   = "trade.deleted"
	EventProfileUpdated = "profile.updated"
)

// Hub fans journal events out to websocket clients. Each client only
// receives events for its own user id.
type Hub struct {
	clients   map[*websocket.Conn]uint
	broadcast chan Event
	lock      sync.Mutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]uint),
		broadcast: make(chan Event, 64),
	}
}

// Run delivers broadcast events until the channel is closed. Call it in
// its own goroutine.
func (h *Hub) Run() {
	for event := range h.broadcast {
		msg, err := json.Marshal(event)
		if err != nil {
			continue
		}
		h.lock.Lock()
		for conn, userID := range h.clients {
			if userID != event.UserID {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.lock.Unlock()
	}
}

// Publish queues an event for delivery; it never blocks the caller.
func (h *Hub) Publish(event Event) {
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[Events] dropping event %s for user %d: queue full", event.Type, event.UserID)
	}
}

// ServeWS upgrades an authenticated request to a websocket subscription
// for the given user.
func (h *Hub) ServeWS(c *gin.Context, userID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[Events] websocket upgrade failed: %v", err)
		return
	}

	h.lock.Lock()
	h.clients[conn] = userID
	h.lock.Unlock()

	// Drain reads so pings and close frames are processed; drop the
	// client on any read error.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.lock.Lock()
				delete(h.clients, conn)
				h.lock.Unlock()
				conn.Close()
				return
			}
		}
	}()
}
