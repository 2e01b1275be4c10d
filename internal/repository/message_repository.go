package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"school-chat/internal/domain/message"
)

const messageKeyPrefix = "msg:"

type BadgerMessageRepository struct {
	db *badger.DB
}

func NewMessageRepository(db *badger.DB) MessageRepository {
	return &BadgerMessageRepository{db: db}
}

// messageKey formats keys as "msg:{timestamp_padded}:{uuid}" so a
// forward prefix scan yields messages in chronological order. The 19
// digit zero padding keeps lexicographic and numeric order aligned,
// and the uuid disambiguates two messages stored in the same
// nanosecond.
func messageKey(m *message.Message) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", messageKeyPrefix, m.CreatedAt.UnixNano(), m.ID))
}

// Create persists a message, assigning the identifier and the
// store-generated timestamp when unset.
func (r *BadgerMessageRepository) Create(ctx context.Context, m *message.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(m), doc)
	})
}

// ListBetween returns the union of messages sent userA→userB and
// userB→userA in key (insertion) order. The result is symmetric in its
// arguments.
func (r *BadgerMessageRepository) ListBetween(ctx context.Context, userA, userB uuid.UUID) ([]message.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	messages := []message.Message{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(messageKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m message.Message
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return err
			}
			if (m.SenderID == userA && m.ReceiverID == userB) ||
				(m.SenderID == userB && m.ReceiverID == userA) {
				messages = append(messages, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
