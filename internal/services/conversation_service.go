package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"school-chat/internal/domain/account"
	"school-chat/internal/domain/message"
	"school-chat/internal/repository"
	chat_errors "school-chat/pkg/errors"
)

// ConversationService retrieves the bidirectional message history
// between two accounts.
type ConversationService struct {
	accountRepo repository.AccountRepository
	messageRepo repository.MessageRepository
}

func NewConversationService(
	accountRepo repository.AccountRepository,
	messageRepo repository.MessageRepository,
) *ConversationService {
	return &ConversationService{
		accountRepo: accountRepo,
		messageRepo: messageRepo,
	}
}

// Participant is the sender/receiver projection attached to each
// conversation message.
type Participant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ConversationMessage is a message with its sender and receiver
// expanded to name projections.
type ConversationMessage struct {
	ID        uuid.UUID   `json:"id"`
	Sender    Participant `json:"sender"`
	Receiver  Participant `json:"receiver"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// GetMessages returns the union of messages sent in either direction
// between the two accounts, in the store's insertion order. The result
// is symmetric: GetMessages(a, b) and GetMessages(b, a) contain the
// same messages. Messages are not re-sorted beyond the key order.
func (s *ConversationService) GetMessages(ctx context.Context, currentUserID, otherUserID uuid.UUID) ([]ConversationMessage, error) {
	msgs, err := s.messageRepo.ListBetween(ctx, currentUserID, otherUserID)
	if err != nil {
		return nil, err
	}

	participants := map[uuid.UUID]Participant{
		currentUserID: s.lookupParticipant(ctx, currentUserID),
		otherUserID:   s.lookupParticipant(ctx, otherUserID),
	}

	return lo.Map(msgs, func(m message.Message, _ int) ConversationMessage {
		return ConversationMessage{
			ID:        m.ID,
			Sender:    participants[m.SenderID],
			Receiver:  participants[m.ReceiverID],
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		}
	}), nil
}

// lookupParticipant resolves an account to its name projection. A
// dangling reference expands to an empty projection rather than
// failing the whole history fetch.
func (s *ConversationService) lookupParticipant(ctx context.Context, id uuid.UUID) Participant {
	a, err := s.accountRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, chat_errors.ErrNotFound) {
		return Participant{}
	}
	return toParticipant(a)
}

func toParticipant(a account.Account) Participant {
	return Participant{
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
