package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades HTTP requests to realtime connections.
// There is no auth handshake on this route: any client that connects
// can send and receive on behalf of any account it claims. That gap is
// inherited from the client contract this backend serves.
type WebSocketHandler struct {
	hub    *Hub
	logger *WebSocketLogger
}

// NewWebSocketHandler creates a new realtime connection handler.
func NewWebSocketHandler(hub *Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: NewWebSocketLogger(),
	}
}

// Handle upgrades HTTP to WebSocket and registers the connection.
func (h *WebSocketHandler) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "", err)
		return
	}

	clientID := uuid.New().String()
	client := NewClient(h.hub, conn, clientID, h.logger)

	h.hub.register <- client
}
