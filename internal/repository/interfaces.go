package repository

import (
	"context"

	"github.com/google/uuid"

	"school-chat/internal/domain/account"
	"school-chat/internal/domain/message"
)

// AccountRepository owns all account documents in the store.
type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (account.Account, error)
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	List(ctx context.Context) ([]account.Account, error)
	ListByRole(ctx context.Context, role account.Role) ([]account.Account, error)
}

// MessageRepository owns all message documents in the store.
type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	ListBetween(ctx context.Context, userA, userB uuid.UUID) ([]message.Message, error)
}
