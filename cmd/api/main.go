package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-console/internal/config"
	"github.com/namefreezers/weather-console/internal/handlers"
	"github.com/namefreezers/weather-console/internal/repository"
	"github.com/namefreezers/weather-console/internal/services"
	"github.com/namefreezers/weather-console/internal/weather"
)

func main() {
	// 1) Load configuration from environment (API key may come from .env)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// 2) Initialize structured logger
	logger, err := config.NewLogger(cfg.LogLevel, "info")
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("api server stopped", zap.Error(err))
	}
}

// run owns the database handle so it is closed on every return path.
func run(cfg *config.Config, logger *zap.Logger) error {
	// 3) Connect to Postgres
	db, err := repository.OpenDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4) Build the weather fetcher (optionally Redis-cached)
	weatherFetcher, err := weather.BuildFetcher(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize weather fetcher: %w", err)
	}

	// 5) Wire up the lookup service
	lookupRepo := repository.NewLookupRepository(db, logger)
	lookupSvc := services.NewLookupService(weatherFetcher, lookupRepo, logger)

	// 6) Set up Gin router and handlers
	router := handlers.NewRouter(lookupSvc, gin.Logger(), gin.Recovery())

	// 7) Start HTTP server
	addr := ":" + cfg.Port
	logger.Info("starting API server", zap.String("address", addr))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
