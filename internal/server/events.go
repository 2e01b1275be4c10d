package server

import "time"

// Realtime channel event names.
const (
	EventSendMessage    = "sendMessage"
	EventReceiveMessage = "receiveMessage"
)

// ClientEvent is an inbound frame from a connected client. SenderID
// and ReceiverID are whatever the client claims; the channel carries
// no auth handshake, so claims are not verified.
type ClientEvent struct {
	Type       string `json:"type"`
	SenderID   string `json:"senderId,omitempty"`
	ReceiverID string `json:"receiverId,omitempty"`
	Content    string `json:"content,omitempty"`
}

// ReceiveMessageEvent is broadcast to every connected client after a
// message is persisted, regardless of the intended receiver.
type ReceiveMessageEvent struct {
	Type       string    `json:"type"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
