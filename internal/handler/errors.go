package handler

import (
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"

	"school-chat/internal/transport/httpdto"
	chat_errors "school-chat/pkg/errors"
	"school-chat/pkg/logger"
)

// writeError converts a service error into its HTTP response. Expected
// errors keep their message; anything else becomes a logged 500 with a
// static body.
func writeError(c *gin.Context, l *logger.Logger, err error) {
	status := chat_errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		if l != nil {
			l.Errorf("request failed: %s", err)
		}
		c.JSON(status, httpdto.MessageResponse{Message: "Internal server error"})
		return
	}
	c.JSON(status, httpdto.MessageResponse{Message: capitalize(err.Error())})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
