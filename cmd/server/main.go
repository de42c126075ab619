package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "rentalhub-backend/internal/api/http"
	"rentalhub-backend/internal/assistant"
	"rentalhub-backend/internal/config"
	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/repository/postgres"
	"rentalhub-backend/internal/security"
	"rentalhub-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentalhub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.Session.Secret)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager, cfg.Session.CookieName, cfg.Session.LoginURL)

	itemSvc := service.NewRentalItemService(store.RentalItemRepository, store.RentalRepository, store.BlackoutRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.RentalItemRepository)
	blackoutSvc := service.NewBlackoutService(store.BlackoutRepository, store.RentalItemRepository)
	dashboardSvc := service.NewDashboardService(store.RentalItemRepository, store.RentalRepository)
	registry := assistant.NewRentalsRegistry(itemSvc, rentalSvc)

	router := httpapi.NewRouter(
		authMiddleware,
		httpapi.NewDashboardHandler(dashboardSvc),
		httpapi.NewItemHandler(itemSvc),
		httpapi.NewRentalHandler(rentalSvc),
		httpapi.NewBlackoutHandler(blackoutSvc),
		httpapi.NewAssistantHandler(registry),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
