package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/emberwick/storefront-api/internal/config"
	"github.com/emberwick/storefront-api/internal/secrets"
	"github.com/emberwick/storefront-api/pkg/errors"
)

// Generator issues the two generation calls of the magic-request pipeline and
// returns raw text for each. Both calls use the same model and have no
// ordering dependency between them.
type Generator interface {
	GenerateDescription(ctx context.Context, prompt, size string) (string, error)
	GenerateRecipe(ctx context.Context, prompt, size string) (string, error)
}

const (
	descriptionTemperature = float32(0.8)
	recipeTemperature      = float32(0.2)
)

// GeminiGenerator is the Gemini-backed Generator. The underlying client is
// created lazily on first use so the API key resolves through the secrets
// loader, not at construction time.
type GeminiGenerator struct {
	loader  *secrets.Loader
	model   string
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiGenerator creates a new Gemini-backed generator
func NewGeminiGenerator(loader *secrets.Loader, cfg config.GeminiConfig, logger *zap.Logger) *GeminiGenerator {
	return &GeminiGenerator{
		loader:  loader,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (g *GeminiGenerator) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	creds, err := g.loader.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  creds.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}

	g.client = client
	return client, nil
}

// GenerateDescription issues Call A: evocative free text containing the
// quoted candle name and the fragrance notes.
func (g *GeminiGenerator) GenerateDescription(ctx context.Context, prompt, size string) (string, error) {
	return g.generate(ctx, "description", DescriptionPrompt(prompt, size), descriptionTemperature)
}

// GenerateRecipe issues Call B: a strict JSON recipe object.
func (g *GeminiGenerator) GenerateRecipe(ctx context.Context, prompt, size string) (string, error) {
	return g.generate(ctx, "recipe", RecipePrompt(prompt, size), recipeTemperature)
}

func (g *GeminiGenerator) generate(ctx context.Context, call, prompt string, temperature float32) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	})
	if err != nil {
		g.logger.Error("Gemini generation failed", zap.String("call", call), zap.Error(err))
		return "", &errors.ErrUpstreamAI{Call: call, Err: err}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &errors.ErrUpstreamAI{Call: call, Err: fmt.Errorf("empty response")}
	}
	return text, nil
}
