package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"school-chat/internal/domain/message"
)

func Test_Message_Create_Assigns_ID_And_Timestamp(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestStore(t))

	m := &message.Message{
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
		Content:    "hello",
	}
	req.NoError(repo.Create(context.Background(), m))
	req.NotEqual(uuid.Nil, m.ID)
	req.False(m.CreatedAt.IsZero())
}

func Test_Message_ListBetween_Union_And_Symmetry(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestStore(t))
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	at := time.Now().UTC()
	stored := []*message.Message{
		{SenderID: alice, ReceiverID: bob, Content: "hi bob", CreatedAt: at},
		{SenderID: bob, ReceiverID: alice, Content: "hi alice", CreatedAt: at.Add(time.Second)},
		{SenderID: alice, ReceiverID: carol, Content: "hi carol", CreatedAt: at.Add(2 * time.Second)},
		{SenderID: alice, ReceiverID: bob, Content: "still there?", CreatedAt: at.Add(3 * time.Second)},
	}
	for _, m := range stored {
		req.NoError(repo.Create(ctx, m))
	}

	ab, err := repo.ListBetween(ctx, alice, bob)
	req.NoError(err)
	req.Len(ab, 3)
	req.Equal("hi bob", ab[0].Content)
	req.Equal("hi alice", ab[1].Content)
	req.Equal("still there?", ab[2].Content)

	ba, err := repo.ListBetween(ctx, bob, alice)
	req.NoError(err)
	req.Equal(ab, ba)
}

func Test_Message_ListBetween_Empty(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestStore(t))

	msgs, err := repo.ListBetween(context.Background(), uuid.New(), uuid.New())
	req.NoError(err)
	req.NotNil(msgs)
	req.Empty(msgs)
}

func Test_Message_Insertion_Order_Preserved(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(openTestStore(t))
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	for i, content := range []string{"one", "two", "three"} {
		m := &message.Message{
			SenderID:   alice,
			ReceiverID: bob,
			Content:    content,
			CreatedAt:  time.Now().UTC().Add(time.Duration(i) * time.Millisecond),
		}
		req.NoError(repo.Create(ctx, m))
	}

	msgs, err := repo.ListBetween(ctx, alice, bob)
	req.NoError(err)
	req.Len(msgs, 3)
	req.Equal("one", msgs[0].Content)
	req.Equal("two", msgs[1].Content)
	req.Equal("three", msgs[2].Content)
}
