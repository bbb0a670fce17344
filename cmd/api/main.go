package main

import (
	"log"
	"time"

	"github.com/Darshan-Yash/Periodic-table/config"
	"github.com/Darshan-Yash/Periodic-table/internal/catalog"
	"github.com/Darshan-Yash/Periodic-table/internal/handler"
	"github.com/Darshan-Yash/Periodic-table/internal/metrics"
	"github.com/Darshan-Yash/Periodic-table/internal/openrouter"
	"github.com/Darshan-Yash/Periodic-table/internal/repository"
	"github.com/Darshan-Yash/Periodic-table/internal/server"
	"github.com/Darshan-Yash/Periodic-table/internal/services"
	"github.com/Darshan-Yash/Periodic-table/pkg/database"
	"github.com/Darshan-Yash/Periodic-table/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.ApplyRawMigrations("migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load element catalog: %v", err)
	}
	l.Infof("Loaded %d elements", len(cat.All()))

	userRepo := repository.NewUserRepository(database.DB)
	authService := services.NewAuthService(userRepo, cfg)

	chatClient := openrouter.NewClient(openrouter.ClientConfig{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
		Model:   cfg.OpenRouterModel,
		Referer: cfg.OpenRouterReferer,
		Title:   cfg.OpenRouterTitle,
		Timeout: time.Duration(cfg.AskTimeoutSec) * time.Second,
	})
	askService := services.NewAskService(cat, chatClient)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Element: handler.NewElementHandler(cat),
		Ask:     handler.NewAskHandler(askService),
	}, authService, registry, collector)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
