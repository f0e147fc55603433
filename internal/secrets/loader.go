package secrets

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/pkg/errors"
)

// Logical secret names resolved at first pipeline invocation.
const (
	KeyGeminiAPIKey       = "GEMINI_API_KEY"
	KeyShopifyAccessToken = "SHOPIFY_ACCESS_TOKEN"
	KeyShopifyShopDomain  = "SHOPIFY_SHOP_DOMAIN"
)

// Store resolves a secret by its logical name. The default store reads the
// process environment; a managed secret store can be swapped in behind this.
type Store interface {
	FetchSecret(ctx context.Context, name string) (string, error)
}

// EnvStore resolves secrets from environment variables.
type EnvStore struct{}

func (EnvStore) FetchSecret(_ context.Context, name string) (string, error) {
	return strings.TrimSpace(os.Getenv(name)), nil
}

// Credentials is the memoized triple the pipelines depend on.
type Credentials struct {
	GeminiAPIKey       string
	ShopifyAccessToken string
	ShopifyShopDomain  string
}

// Loader lazily resolves and memoizes the three pipeline secrets. All three
// fetches run concurrently; caching is all-or-nothing, so a failed load leaves
// the loader ready to try again on the next call.
type Loader struct {
	store  Store
	logger *zap.Logger

	mu    sync.Mutex
	creds *Credentials
}

// NewLoader creates a new secrets loader
func NewLoader(store Store, logger *zap.Logger) *Loader {
	return &Loader{
		store:  store,
		logger: logger,
	}
}

// EnsureLoaded resolves the three secrets on first call and is a no-op once a
// load has succeeded. Any missing or empty secret returns ErrConfiguration and
// nothing is cached; the caller must abort before any external call.
func (l *Loader) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.creds != nil {
		return nil
	}

	names := []string{KeyGeminiAPIKey, KeyShopifyAccessToken, KeyShopifyShopDomain}
	values := make([]string, len(names))
	fetchErrs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			values[i], fetchErrs[i] = l.store.FetchSecret(ctx, name)
		}(i, name)
	}
	wg.Wait()

	for i, name := range names {
		if fetchErrs[i] != nil {
			l.logger.Error("Failed to fetch secret", zap.String("name", name), zap.Error(fetchErrs[i]))
			return &errors.ErrConfiguration{Name: name}
		}
		if values[i] == "" {
			return &errors.ErrConfiguration{Name: name}
		}
	}

	l.creds = &Credentials{
		GeminiAPIKey:       values[0],
		ShopifyAccessToken: values[1],
		ShopifyShopDomain:  values[2],
	}
	l.logger.Info("Secrets loaded")
	return nil
}

// Credentials ensures the secrets are loaded and returns them.
func (l *Loader) Credentials(ctx context.Context) (Credentials, error) {
	if err := l.EnsureLoaded(ctx); err != nil {
		return Credentials{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.creds, nil
}
