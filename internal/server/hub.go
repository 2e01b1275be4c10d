package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"school-chat/internal/domain/message"
	"school-chat/internal/repository"
)

// Hub maintains the set of open realtime connections and broadcasts
// events to all of them. It is the only owner of the connection
// registry: clients are added on register and dropped on unregister,
// and broadcast reads a snapshot of the set at emit time. A connection
// added mid-broadcast may or may not receive that message.
type Hub struct {
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	broadcast   chan []byte
	messageRepo repository.MessageRepository
	logger      *WebSocketLogger
	mu          sync.RWMutex
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// NewHub creates a new Hub backed by the given message store.
func NewHub(messageRepo repository.MessageRepository) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client, 256),
		unregister:  make(chan *Client, 256),
		broadcast:   make(chan []byte, 256),
		messageRepo: messageRepo,
		logger:      NewWebSocketLogger(),
		stopChan:    make(chan struct{}),
	}
}

// Run starts the Hub loop. It returns when Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case data := <-h.broadcast:
			h.handleBroadcast(data)

		case <-h.stopChan:
			return
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	h.logger.Info("client connected", client.clientID)

	go client.writePump()
	go client.readPump()
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		h.removeClient(client)
		h.logger.Info("client disconnected", client.clientID)
	}
}

func (h *Hub) removeClient(client *Client) {
	close(client.send)
	client.conn.Close()
}

// handleBroadcast delivers data to every currently connected client,
// including the one that produced it.
func (h *Hub) handleBroadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("client send buffer full", client.clientID)
		}
	}
}

// SendMessage persists an inbound message and then broadcasts the
// resulting receiveMessage event to all connected clients. When
// persistence fails the event is not broadcast and nothing is surfaced
// to the sending client; the failure is only logged.
func (h *Hub) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, content string) {
	m := &message.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	if err := h.messageRepo.Create(ctx, m); err != nil {
		h.logger.Error("message persistence failed", "", err)
		return
	}

	data, err := json.Marshal(ReceiveMessageEvent{
		Type:       EventReceiveMessage,
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		Content:    m.Content,
		Timestamp:  m.CreatedAt,
	})
	if err != nil {
		h.logger.Error("event marshal failed", "", err)
		return
	}

	h.broadcast <- data
}

// ClientCount reports how many connections are currently registered.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Stop shuts down the Hub and closes every open connection.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)

		h.mu.Lock()
		defer h.mu.Unlock()

		for client := range h.clients {
			h.removeClient(client)
		}
		h.clients = make(map[*Client]bool)
	})
}
