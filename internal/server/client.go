package server

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

var (
	newline = []byte{'\n'}
	space   = []byte{' '}
)

// Client represents a single realtime connection. A client has no
// authenticated identity: sender and receiver ids arrive on each
// sendMessage frame and are taken at face value.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	clientID string
	logger   *WebSocketLogger
}

func NewClient(hub *Hub, conn *websocket.Conn, clientID string, logger *WebSocketLogger) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, 256),
		clientID: clientID,
		logger:   logger,
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("websocket unexpected close", c.clientID, err)
			}
			break
		}

		data = bytes.TrimSpace(bytes.Replace(data, newline, space, -1))
		if err := c.handleEvent(data); err != nil {
			c.logger.Error("websocket handle event failed", c.clientID, err)
		}
	}
}

func (c *Client) handleEvent(data []byte) error {
	var evt ClientEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return err
	}

	switch evt.Type {
	case EventSendMessage:
		return c.handleSendMessage(evt)
	default:
		c.logger.Warn("unknown event type", c.clientID, zap.String("event_type", evt.Type))
		return nil
	}
}

func (c *Client) handleSendMessage(evt ClientEvent) error {
	senderID, err := uuid.Parse(evt.SenderID)
	if err != nil {
		return err
	}
	receiverID, err := uuid.Parse(evt.ReceiverID)
	if err != nil {
		return err
	}

	c.hub.SendMessage(context.Background(), senderID, receiverID, evt.Content)
	return nil
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write(newline)
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
