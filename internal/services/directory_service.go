package services

import (
	"context"

	"school-chat/internal/domain/account"
	"school-chat/internal/repository"
)

// DirectoryService lists accounts, optionally filtered by role.
type DirectoryService struct {
	accountRepo repository.AccountRepository
}

func NewDirectoryService(accountRepo repository.AccountRepository) *DirectoryService {
	return &DirectoryService{accountRepo: accountRepo}
}

// ListAllUsers returns every account in store-natural order.
func (s *DirectoryService) ListAllUsers(ctx context.Context) ([]account.Account, error) {
	return s.accountRepo.List(ctx)
}

// ListByRole returns accounts whose role exactly equals role. No
// pagination, no sorting beyond the store's natural order.
func (s *DirectoryService) ListByRole(ctx context.Context, role account.Role) ([]account.Account, error) {
	return s.accountRepo.ListByRole(ctx, role)
}
