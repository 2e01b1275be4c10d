package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"school-chat/internal/domain/account"
	"school-chat/internal/repository"
	chat_errors "school-chat/pkg/errors"
	"school-chat/pkg/logger"
)

type AuthService struct {
	accountRepo  repository.AccountRepository
	seedPassword string
	logger       *logger.Logger
}

func NewAuthService(accountRepo repository.AccountRepository, seedPassword string, l *logger.Logger) *AuthService {
	return &AuthService{
		accountRepo:  accountRepo,
		seedPassword: seedPassword,
		logger:       l,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      account.Role
}

type LoginInput struct {
	Email    string
	Password string
}

// seedAccounts is the fixed list of default accounts provisioned at
// startup.
var seedAccounts = []struct {
	FirstName string
	LastName  string
	Email     string
	Role      account.Role
}{
	{"System", "Admin", "admin@school.com", account.RoleAdmin},
	{"Default", "Teacher", "teacher@school.com", account.RoleTeacher},
	{"Default", "Parent", "parent@school.com", account.RoleParent},
}

// Signup validates input, hashes the password, and persists a new
// account. No sensitive data is echoed back.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	if err := validateSignup(in); err != nil {
		return err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return err
	}

	newAccount := &account.Account{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}

	return s.accountRepo.Create(ctx, newAccount)
}

// Login looks the account up by lowercased email and compares the
// password hash. On success it returns the full account record,
// including the hash. That mirrors the behavior of the client this
// backend was built against; the hash leak is a known flaw kept on
// purpose, not an oversight.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (account.Account, error) {
	if in.Email == "" || in.Password == "" {
		return account.Account{}, chat_errors.ErrInvalidCredentials
	}

	a, err := s.accountRepo.GetByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		if errors.Is(err, chat_errors.ErrNotFound) {
			return account.Account{}, chat_errors.ErrInvalidCredentials
		}
		return account.Account{}, err
	}

	if err := comparePassword(a.PasswordHash, in.Password); err != nil {
		return account.Account{}, chat_errors.ErrInvalidCredentials
	}

	return a, nil
}

// SeedDefaults provisions the fixed default accounts, creating each one
// only if absent. Running it repeatedly never duplicates or overwrites.
func (s *AuthService) SeedDefaults(ctx context.Context) error {
	hash, err := hashPassword(s.seedPassword)
	if err != nil {
		return err
	}

	for _, seed := range seedAccounts {
		_, err := s.accountRepo.GetByEmail(ctx, seed.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, chat_errors.ErrNotFound) {
			return err
		}

		newAccount := &account.Account{
			FirstName:    seed.FirstName,
			LastName:     seed.LastName,
			Email:        seed.Email,
			PasswordHash: hash,
			Role:         seed.Role,
		}
		if err := s.accountRepo.Create(ctx, newAccount); err != nil {
			if errors.Is(err, chat_errors.ErrDuplicateEmail) {
				continue
			}
			return err
		}
		if s.logger != nil {
			s.logger.Infof("seeded default account %s (%s)", seed.Email, seed.Role)
		}
	}

	return nil
}

func validateSignup(in SignupInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return chat_errors.ErrInvalidInput
	}
	if !in.Role.Valid() {
		return chat_errors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
