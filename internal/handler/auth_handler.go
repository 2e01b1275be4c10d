// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-chat/internal/domain/account"
	"school-chat/internal/services"
	"school-chat/internal/transport/httpdto"
	"school-chat/pkg/logger"
)

// AuthHandler handles signup and login HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "Invalid request body"})
		return
	}

	err := h.service.Signup(c.Request.Context(), services.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      account.Role(req.Role),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.MessageResponse{Message: "User registered successfully"})
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.MessageResponse{Message: "Invalid request body"})
		return
	}

	a, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Message: "Login successful",
		User: httpdto.LoginUserDTO{
			ID:           a.ID.String(),
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			Email:        a.Email,
			PasswordHash: a.PasswordHash,
			Role:         string(a.Role),
		},
	})
}

