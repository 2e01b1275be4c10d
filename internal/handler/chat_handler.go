package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"school-chat/internal/domain/account"
	"school-chat/internal/services"
	"school-chat/internal/transport/httpdto"
	chat_errors "school-chat/pkg/errors"
	"school-chat/pkg/logger"
)

// ChatHandler handles the user directory and conversation endpoints.
type ChatHandler struct {
	directory    *services.DirectoryService
	conversation *services.ConversationService
	logger       *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(
	directory *services.DirectoryService,
	conversation *services.ConversationService,
	l *logger.Logger,
) *ChatHandler {
	return &ChatHandler{
		directory:    directory,
		conversation: conversation,
		logger:       l,
	}
}

// Users lists all accounts projected to the directory shape.
func (h *ChatHandler) Users(c *gin.Context) {
	accounts, err := h.directory.ListAllUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(accounts, func(a account.Account, _ int) httpdto.UserDTO {
		return httpdto.UserDTO{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Role:      string(a.Role),
		}
	}))
}

// Teachers lists all accounts with the Teacher role.
func (h *ChatHandler) Teachers(c *gin.Context) {
	h.listByRole(c, account.RoleTeacher)
}

// Parents lists all accounts with the Parent role.
func (h *ChatHandler) Parents(c *gin.Context) {
	h.listByRole(c, account.RoleParent)
}

func (h *ChatHandler) listByRole(c *gin.Context, role account.Role) {
	accounts, err := h.directory.ListByRole(c.Request.Context(), role)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(accounts, func(a account.Account, _ int) httpdto.AccountDTO {
		return httpdto.AccountDTO{
			ID:        a.ID.String(),
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Role:      string(a.Role),
		}
	}))
}

// Messages returns the conversation history between the current user
// and the user named in the path.
func (h *ChatHandler) Messages(c *gin.Context) {
	otherUserID, err := uuid.Parse(c.Param("otherUserId"))
	if err != nil {
		writeError(c, h.logger, chat_errors.ErrInvalidInput)
		return
	}

	currentUserID, err := uuid.Parse(c.Query("currentUserId"))
	if err != nil {
		writeError(c, h.logger, chat_errors.ErrInvalidInput)
		return
	}

	msgs, err := h.conversation.GetMessages(c.Request.Context(), currentUserID, otherUserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(msgs, func(m services.ConversationMessage, _ int) httpdto.ConversationMessageDTO {
		return httpdto.ConversationMessageDTO{
			ID:        m.ID.String(),
			Sender:    httpdto.ParticipantDTO{FirstName: m.Sender.FirstName, LastName: m.Sender.LastName},
			Receiver:  httpdto.ParticipantDTO{FirstName: m.Receiver.FirstName, LastName: m.Receiver.LastName},
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}))
}
