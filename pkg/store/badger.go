// Package store manages the BadgerDB document store used for accounts
// and messages.
package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	chat_errors "school-chat/pkg/errors"
)

// Open opens (or creates) the document store at dir.
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", dir, err)
	}
	return db, nil
}

// HealthCheck verifies the store is responsive by running an empty
// read transaction.
func HealthCheck(db *badger.DB) error {
	if db == nil || db.IsClosed() {
		return chat_errors.ErrStoreUnavailable
	}
	if err := db.View(func(txn *badger.Txn) error { return nil }); err != nil {
		return fmt.Errorf("%w: %s", chat_errors.ErrStoreUnavailable, err)
	}
	return nil
}
