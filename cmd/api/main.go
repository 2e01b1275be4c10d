package main

import (
	"context"
	"log"

	"school-chat/internal/config"
	"school-chat/internal/handler"
	"school-chat/internal/repository"
	"school-chat/internal/server"
	"school-chat/internal/services"
	"school-chat/pkg/logger"
	"school-chat/pkg/store"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	db, err := store.Open(cfg.StoreDir)
	if err != nil {
		log.Fatalf("Failed to open the document store: %v", err)
	}
	defer db.Close()

	accountRepo := repository.NewAccountRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := services.NewAuthService(accountRepo, cfg.SeedPassword, l)
	directoryService := services.NewDirectoryService(accountRepo)
	conversationService := services.NewConversationService(accountRepo, messageRepo)

	if err := authService.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed default accounts: %v", err)
	}

	hub := server.NewHub(messageRepo)

	srv := server.New(cfg, l, db, hub)
	srv.SetupRoutes(&server.Handlers{
		Auth: handler.NewAuthHandler(authService, l),
		Chat: handler.NewChatHandler(directoryService, conversationService, l),
	})

	if err := srv.Start(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
