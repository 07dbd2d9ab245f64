package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/advance-ledger/internal/api"
	"github.com/advance-ledger/internal/api/service"
	"github.com/advance-ledger/internal/config"
	"github.com/advance-ledger/internal/data/postgres"
	"github.com/advance-ledger/internal/logger"
	"github.com/advance-ledger/internal/platform/persistence"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("api")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize database with app context
	postgresDB, err := persistence.NewPostgresDB(appCtx, log, &cfg.Postgres)
	if err != nil {
		log.Error("Failed to initialize PostgreSQL", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	billRepo := postgres.NewBillRepository(log, postgresDB)
	fundingRepo := postgres.NewFundingRepository(log, postgresDB)
	settlementRepo := postgres.NewSettlementRepository(log, postgresDB)

	// Initialize services
	billService := service.NewBillService(postgresDB, billRepo, settlementRepo, log)
	fundingService := service.NewFundingService(fundingRepo, log)
	settlementService := service.NewSettlementService(postgresDB, billRepo, fundingRepo, settlementRepo, log)
	dashboardService := service.NewDashboardService(billRepo, fundingRepo, cfg.Classification.Sets(), log)

	// Initialize REST server
	server := api.NewServer(log, cfg, billService, fundingService, settlementService, dashboardService)
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

	// Shutdown HTTP server first so no request observes a closed pool
	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Shutdown postgres connection pool
	postgresDB.Close()

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
