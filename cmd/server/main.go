package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/panjf2000/ants/v2"

	"github.com/ueberstunden/overtime-ledger/internal/config"
	"github.com/ueberstunden/overtime-ledger/internal/data/mongo"
	"github.com/ueberstunden/overtime-ledger/internal/data/postgres"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/service"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/session"
	"github.com/ueberstunden/overtime-ledger/internal/logger"
	"github.com/ueberstunden/overtime-ledger/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("server")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize databases with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	mongoDB, err := persistence.NewMongoDB(appCtx, log, &cfg.MongoDB)
	if err != nil {
		log.Error("Failed to initialize MongoDB", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	settingsRepo := postgres.NewSettingsRepository(log, postgresDB)
	credentialRepo := postgres.NewCredentialRepository(log, postgresDB)
	transactionRepo := mongo.NewTransactionRepository(log, mongoDB.Database())

	// Worker pool shared by CSV imports
	importPool, err := ants.NewPool(cfg.Import.WorkerPoolSize)
	if err != nil {
		log.Error("Failed to initialize import worker pool", "error", err)
		os.Exit(1)
	}

	// Initialize services
	sessions := session.NewManager(cfg.Auth.SessionTTL)
	transactionService := service.NewTransactionService(log, transactionRepo)
	importService := service.NewImportService(log, transactionRepo, importPool)
	authService := service.NewAuthService(log, credentialRepo, cfg.Auth.InitialPassword)
	settingsService := service.NewSettingsService(log, settingsRepo)

	// Seed the credential row on first start
	if err := authService.EnsureCredential(appCtx); err != nil {
		log.Error("Failed to seed credential", "error", err)
		os.Exit(1)
	}

	// Initialize REST server
	server := httpapi.NewServer(log, cfg, sessions, transactionService, importService, authService, settingsService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first so no new imports arrive
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Drain the import worker pool
	importPool.Release()

	// Shutdown postgres connection pool
	postgresDB.Close()

	if err = mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Error closing MongoDB connection", "error", err)
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
