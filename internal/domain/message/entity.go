// Package message defines the chat message entity.
package message

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message between two accounts. Messages are
// immutable once stored. Sender and receiver reference existing accounts
// but the reference is not enforced beyond the type.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
