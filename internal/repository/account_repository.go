package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"school-chat/internal/domain/account"
	chat_errors "school-chat/pkg/errors"
)

const (
	accountKeyPrefix = "acct:id:"
	emailIndexPrefix = "acct:email:"
)

type BadgerAccountRepository struct {
	db *badger.DB
}

func NewAccountRepository(db *badger.DB) AccountRepository {
	return &BadgerAccountRepository{db: db}
}

func accountKey(id uuid.UUID) []byte {
	return []byte(accountKeyPrefix + id.String())
}

// emailIndexKey lowercases the email so lookups are case-insensitive
// regardless of the casing stored on the document itself.
func emailIndexKey(email string) []byte {
	return []byte(emailIndexPrefix + strings.ToLower(email))
}

// Create persists a new account and its email index entry in a single
// transaction. The email index doubles as the uniqueness check.
func (r *BadgerAccountRepository) Create(ctx context.Context, a *account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	doc, err := json.Marshal(a)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		indexKey := emailIndexKey(a.Email)
		if _, err := txn.Get(indexKey); err == nil {
			return chat_errors.ErrDuplicateEmail
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(indexKey, []byte(a.ID.String())); err != nil {
			return err
		}
		return txn.Set(accountKey(a.ID), doc)
	})
}

func (r *BadgerAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}

	var a account.Account
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(accountKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &a)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return account.Account{}, chat_errors.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

// GetByEmail resolves the account through the lowercased email index.
func (r *BadgerAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	if err := ctx.Err(); err != nil {
		return account.Account{}, err
	}

	var a account.Account
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailIndexKey(email))
		if err != nil {
			return err
		}
		var rawID []byte
		if err := item.Value(func(val []byte) error {
			rawID = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}
		id, err := uuid.Parse(string(rawID))
		if err != nil {
			return err
		}
		doc, err := txn.Get(accountKey(id))
		if err != nil {
			return err
		}
		return doc.Value(func(val []byte) error {
			return json.Unmarshal(val, &a)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return account.Account{}, chat_errors.ErrNotFound
		}
		return account.Account{}, err
	}
	return a, nil
}

// List returns every account in store-natural (key) order.
func (r *BadgerAccountRepository) List(ctx context.Context) ([]account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accounts := []account.Account{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(accountKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var a account.Account
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &a)
			}); err != nil {
				return err
			}
			accounts = append(accounts, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListByRole filters accounts whose role field exactly equals role.
func (r *BadgerAccountRepository) ListByRole(ctx context.Context, role account.Role) ([]account.Account, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []account.Account{}
	for _, a := range all {
		if a.Role == role {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
