package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LoneWanderer_Go/internal/config"
	"github.com/osse101/LoneWanderer_Go/internal/database"
	"github.com/osse101/LoneWanderer_Go/internal/database/postgres"
	"github.com/osse101/LoneWanderer_Go/internal/generation"
	"github.com/osse101/LoneWanderer_Go/internal/handler"
	"github.com/osse101/LoneWanderer_Go/internal/inventory"
	"github.com/osse101/LoneWanderer_Go/internal/journal"
	"github.com/osse101/LoneWanderer_Go/internal/llm"
	"github.com/osse101/LoneWanderer_Go/internal/logger"
	"github.com/osse101/LoneWanderer_Go/internal/server"
	"github.com/osse101/LoneWanderer_Go/internal/stats"
	"github.com/osse101/LoneWanderer_Go/internal/wizard"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev",
	))

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 10, 30*time.Minute, time.Hour)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.ApplySchema(context.Background(), dbPool); err != nil {
		slog.Error("Schema setup failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	journalRepo := postgres.NewJournalRepository(dbPool)
	inventoryRepo := postgres.NewInventoryRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	// LLM client shared by generation and wizard chat
	llmClient := llm.NewOpenAIClient(
		cfg.LLMAPIKey,
		cfg.LLMModel,
		cfg.LLMBaseURL,
		time.Duration(cfg.LLMTimeoutSecs)*time.Second,
	)

	// Services
	generationService := generation.NewService(llmClient)
	wizardService := wizard.NewService(llmClient)
	statsService := stats.NewService(statsRepo)
	inventoryService := inventory.NewService(inventoryRepo)
	journalService := journal.NewService(journalRepo, inventoryRepo, statsService)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		cfg.CORSAllowedOrigins,
		dbPool,
		generationService,
		wizardService,
		journalService,
		inventoryService,
		statsService,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}
