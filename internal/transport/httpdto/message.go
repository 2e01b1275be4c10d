package httpdto

import "time"

// ParticipantDTO is the name projection attached to each side of a
// conversation message.
type ParticipantDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ConversationMessageDTO is one entry of the conversation history
// between two users.
type ConversationMessageDTO struct {
	ID        string         `json:"id"`
	Sender    ParticipantDTO `json:"sender"`
	Receiver  ParticipantDTO `json:"receiver"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
}
