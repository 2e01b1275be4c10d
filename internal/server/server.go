package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"

	"school-chat/internal/config"
	"school-chat/internal/handler"
	"school-chat/internal/middleware"
	"school-chat/internal/transport/httpdto"
	"school-chat/pkg/logger"
	"school-chat/pkg/store"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	db         *badger.DB
	hub        *Hub
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth *handler.AuthHandler
	Chat *handler.ChatHandler
}

func New(cfg *config.Config, l *logger.Logger, db *badger.DB, hub *Hub) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
		db:     db,
		hub:    hub,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.AllowedOrigin))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "pong"})
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := store.HealthCheck(s.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.MessageResponse{Message: "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "healthy"})
	})

	s.engine.POST("/signup", handlers.Auth.Signup)
	s.engine.POST("/login", handlers.Auth.Login)

	chat := s.engine.Group("/chat")
	{
		chat.GET("/users", handlers.Chat.Users)
		chat.GET("/teachers", handlers.Chat.Teachers)
		chat.GET("/parents", handlers.Chat.Parents)
		chat.GET("/messages/:otherUserId", handlers.Chat.Messages)
	}

	wsHandler := NewWebSocketHandler(s.hub)
	s.engine.GET("/ws", wsHandler.Handle)
}

// Start runs the HTTP server and the realtime hub, then blocks until a
// termination signal arrives and everything is shut down.
func (s *Server) Start() error {
	go s.hub.Run()

	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	s.hub.Stop()
	return nil
}
