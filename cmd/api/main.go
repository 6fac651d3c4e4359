package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"weatherapp/internal/config"
	"weatherapp/internal/forecast"

	_ "weatherapp/docs" // Import generated docs
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	store, err := forecast.NewMongoStore(ctx, cfg.MongoDB, logger)
	if err != nil {
		logger.Error("failed to connect to mongodb", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("failed to close mongodb client", "error", err)
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to create indexes", "error", err)
		log.Fatal(err)
	}

	// Create app
	forecastService := forecast.NewForecastService(cfg, store, logger)
	app := NewApp(cfg, logger, forecastService)
	app.SetReadinessCheck(store.Ping)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(ctx, cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
