package server

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"school-chat/internal/domain/message"
	"school-chat/internal/repository"
)

func newHubTestServer(t *testing.T, messageRepo repository.MessageRepository) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(messageRepo)
	go hub.Run()
	t.Cleanup(hub.Stop)

	engine := gin.New()
	engine.GET("/ws", NewWebSocketHandler(hub).Handle)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialWebSocket(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func openMessageRepo(t *testing.T) repository.MessageRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewMessageRepository(db)
}

func Test_SendMessage_Broadcasts_To_All_Clients(t *testing.T) {
	req := require.New(t)
	messageRepo := openMessageRepo(t)
	hub, srv := newHubTestServer(t, messageRepo)

	sender := dialWebSocket(t, srv)
	observer := dialWebSocket(t, srv)

	req.Eventually(func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	senderID := uuid.New()
	receiverID := uuid.New()
	req.NoError(sender.WriteJSON(ClientEvent{
		Type:       EventSendMessage,
		SenderID:   senderID.String(),
		ReceiverID: receiverID.String(),
		Content:    "hello everyone",
	}))

	// Every connected client receives the event, the sender included.
	for _, conn := range []*websocket.Conn{sender, observer} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var evt ReceiveMessageEvent
		req.NoError(conn.ReadJSON(&evt))
		req.Equal(EventReceiveMessage, evt.Type)
		req.Equal(senderID.String(), evt.SenderID)
		req.Equal(receiverID.String(), evt.ReceiverID)
		req.Equal("hello everyone", evt.Content)
		req.False(evt.Timestamp.IsZero())
	}

	// The message is durably stored and retrievable as history.
	msgs, err := messageRepo.ListBetween(context.Background(), senderID, receiverID)
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal("hello everyone", msgs[0].Content)
}

func Test_Disconnect_Removes_Client(t *testing.T) {
	req := require.New(t)
	hub, srv := newHubTestServer(t, openMessageRepo(t))

	conn := dialWebSocket(t, srv)
	req.Eventually(func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	req.Eventually(func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

type failingMessageRepo struct{}

func (failingMessageRepo) Create(context.Context, *message.Message) error {
	return errors.New("store down")
}

func (failingMessageRepo) ListBetween(context.Context, uuid.UUID, uuid.UUID) ([]message.Message, error) {
	return nil, errors.New("store down")
}

func Test_Persistence_Failure_Suppresses_Broadcast(t *testing.T) {
	req := require.New(t)
	hub, srv := newHubTestServer(t, failingMessageRepo{})

	conn := dialWebSocket(t, srv)
	req.Eventually(func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	req.NoError(conn.WriteJSON(ClientEvent{
		Type:       EventSendMessage,
		SenderID:   uuid.NewString(),
		ReceiverID: uuid.NewString(),
		Content:    "lost to the void",
	}))

	// Nothing is broadcast and no error is surfaced to the sender:
	// the read deadline expires with no frame delivered.
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var evt ReceiveMessageEvent
	err := conn.ReadJSON(&evt)
	req.Error(err)
	req.True(strings.Contains(err.Error(), "timeout") || websocket.IsUnexpectedCloseError(err))
}

func Test_Unknown_Event_Type_Is_Ignored(t *testing.T) {
	req := require.New(t)
	hub, srv := newHubTestServer(t, openMessageRepo(t))

	conn := dialWebSocket(t, srv)
	req.Eventually(func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	req.NoError(conn.WriteJSON(ClientEvent{Type: "typing"}))

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var evt ReceiveMessageEvent
	req.Error(conn.ReadJSON(&evt))

	// The connection survives the unknown frame.
	req.Equal(1, hub.ClientCount())
}
