package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is a websocket event pushed to connected kitchen and waiter
// clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Notifier is a websocket hub. Clients connect through Handle; order
// handlers push events through Broadcast. A nil Notifier drops every
// broadcast, which keeps handlers testable without a hub.
type Notifier struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewNotifier() *Notifier {
	return &Notifier{clients: make(map[*websocket.Conn]bool)}
}

// Handle upgrades the request and keeps the connection registered until
// the client goes away.
func (n *Notifier) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade", "error", err)
			return
		}
		defer conn.Close()

		n.mu.Lock()
		n.clients[conn] = true
		n.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				n.mu.Lock()
				delete(n.clients, conn)
				n.mu.Unlock()
				break
			}
		}
	}
}

func (n *Notifier) Broadcast(event string, payload interface{}) {
	if n == nil {
		return
	}
	message, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		slog.Error("marshal notification", "event", event, "error", err)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for client := range n.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(n.clients, client)
		}
	}
}
