package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "seatsafe-backend/internal/api/http"
	"seatsafe-backend/internal/config"
	"seatsafe-backend/internal/logger"
	"seatsafe-backend/internal/pricing"
	"seatsafe-backend/internal/repository/postgres"
	"seatsafe-backend/internal/security"
	"seatsafe-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SeatSafe Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Pricing
	feeCalculator := pricing.NewFeeCalculator(cfg.Pricing.RateTable())

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.SendGrid)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	providerSvc := service.NewProviderService(store.ProviderRepository, store.ServiceRepository, store.UserRepository)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	ledgerSvc := service.NewLedgerService(store.LedgerRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	rentalSvc := service.NewRentalService(
		store.ReservationRepository,
		store.EquipmentRepository,
		store.ProviderRepository,
		store.UserRepository,
		store.LedgerRepository,
		store.NotificationRepository,
		emailSvc,
		feeCalculator,
	)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ServiceRepository,
		store.ProviderRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		cfg.Booking.SlotStepMinutes,
	)

	// Initialize HTTP handlers and router
	handler := httpapi.NewHandler(authSvc, rentalSvc, bookingSvc, providerSvc, equipmentSvc, ledgerSvc, noteSvc, tokenManager)
	router := handler.NewRouter()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
