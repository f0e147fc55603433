package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/ai"
	"github.com/emberwick/storefront-api/internal/api"
	"github.com/emberwick/storefront-api/internal/config"
	"github.com/emberwick/storefront-api/internal/recipe"
	"github.com/emberwick/storefront-api/internal/repository/postgres"
	"github.com/emberwick/storefront-api/internal/secrets"
	"github.com/emberwick/storefront-api/internal/service"
	"github.com/emberwick/storefront-api/internal/shopify"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting storefront API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Initialize database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	repos := postgres.NewRepositories(db, logger)

	// Credentials resolve lazily on the first pipeline invocation, not here:
	// the server starts fine without them and fails fast per request.
	loader := secrets.NewLoader(secrets.EnvStore{}, logger)

	generator := ai.NewGeminiGenerator(loader, cfg.Gemini, logger)
	shopifyClient := shopify.NewClient(loader, cfg.Shopify, logger)

	magic := service.NewMagicRequestService(loader, generator, recipe.PatternNameExtractor{}, shopifyClient, repos, logger)
	checkout := service.NewCheckoutService(shopifyClient, logger)

	// Initialize router
	router := api.NewRouter(cfg, magic, checkout, repos, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // magic requests wait on two generation calls
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
