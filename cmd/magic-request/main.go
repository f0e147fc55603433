package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/ai"
	"github.com/emberwick/storefront-api/internal/config"
	"github.com/emberwick/storefront-api/internal/recipe"
	"github.com/emberwick/storefront-api/internal/repository"
	"github.com/emberwick/storefront-api/internal/secrets"
	"github.com/emberwick/storefront-api/internal/service"
	"github.com/emberwick/storefront-api/internal/shopify"
)

// Runs the magic-request pipeline once from the command line. Useful for
// trying prompts against the live generation model without the HTTP server or
// a database; state lives in memory for the duration of the run.
func main() {
	prompt := flag.String("prompt", "", "scent profile prompt (required)")
	size := flag.String("size", "Medium 8oz", "candle size")
	flag.Parse()

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: magic-request -prompt \"a quiet library on a rainy afternoon\" [-size \"Medium 8oz\"]")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	loader := secrets.NewLoader(secrets.EnvStore{}, logger)
	generator := ai.NewGeminiGenerator(loader, cfg.Gemini, logger)
	shopifyClient := shopify.NewClient(loader, cfg.Shopify, logger)
	repos := repository.NewInMemoryRepositories()

	svc := service.NewMagicRequestService(loader, generator, recipe.PatternNameExtractor{}, shopifyClient, repos, logger)

	result, err := svc.Submit(context.Background(), service.MagicRequestSubmission{
		Prompt: *prompt,
		Size:   *size,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Request ID:  %s\n", result.RequestID)
	fmt.Printf("Candle name: %s\n\n", result.CandleName)
	fmt.Println(result.Description)
}
