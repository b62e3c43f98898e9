package main

import (
	"github.com/sirupsen/logrus"

	"github.com/swarmwrapped/wrapped-backend-go/internal/api"
	"github.com/swarmwrapped/wrapped-backend-go/internal/config"
	"github.com/swarmwrapped/wrapped-backend-go/internal/database"
	"github.com/swarmwrapped/wrapped-backend-go/internal/foursquare"
	"github.com/swarmwrapped/wrapped-backend-go/internal/handler"
	"github.com/swarmwrapped/wrapped-backend-go/internal/logger"
	"github.com/swarmwrapped/wrapped-backend-go/internal/repository"
	"github.com/swarmwrapped/wrapped-backend-go/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogFile)

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	sessions := repository.NewSessionRepository(db)
	if n, err := sessions.DeleteExpired(); err == nil && n > 0 {
		logrus.Infof("[Main] Cleaned up %d expired sessions", n)
	}

	client := foursquare.NewClient()
	wrappedService := service.NewWrappedService(client, cfg.WrappedYear)

	authHandler := handler.NewAuthHandler(cfg, foursquare.OAuthConfig(cfg), sessions)
	wrappedHandler := handler.NewWrappedHandler(wrappedService)

	router := api.SetupRouter(cfg, sessions, authHandler, wrappedHandler)

	logrus.Infof("Server starting on port %s (wrapped year %d)", cfg.Port, cfg.WrappedYear)
	if err := router.Run(cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
