package secrets

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/emberwick/storefront-api/pkg/errors"
)

type countingStore struct {
	values  map[string]string
	errs    map[string]error
	fetches int64
}

func (s *countingStore) FetchSecret(_ context.Context, name string) (string, error) {
	atomic.AddInt64(&s.fetches, 1)
	if err := s.errs[name]; err != nil {
		return "", err
	}
	return s.values[name], nil
}

func fullStore() *countingStore {
	return &countingStore{values: map[string]string{
		KeyGeminiAPIKey:       "key",
		KeyShopifyAccessToken: "token",
		KeyShopifyShopDomain:  "shop.myshopify.com",
	}}
}

func TestLoader_EnsureLoaded(t *testing.T) {
	store := fullStore()
	loader := NewLoader(store, zap.NewNop())

	if err := loader.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	creds, err := loader.Credentials(context.Background())
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	if creds.GeminiAPIKey != "key" || creds.ShopifyAccessToken != "token" || creds.ShopifyShopDomain != "shop.myshopify.com" {
		t.Errorf("credentials = %+v", creds)
	}
}

func TestLoader_Memoizes(t *testing.T) {
	store := fullStore()
	loader := NewLoader(store, zap.NewNop())

	for i := 0; i < 5; i++ {
		if err := loader.EnsureLoaded(context.Background()); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	// One fetch per secret; later calls are served from the cache.
	if got := atomic.LoadInt64(&store.fetches); got != 3 {
		t.Errorf("store fetches = %d, want 3", got)
	}
}

func TestLoader_MissingSecret(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "missing gemini key", missing: KeyGeminiAPIKey},
		{name: "missing access token", missing: KeyShopifyAccessToken},
		{name: "missing shop domain", missing: KeyShopifyShopDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := fullStore()
			store.values[tt.missing] = ""
			loader := NewLoader(store, zap.NewNop())

			err := loader.EnsureLoaded(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			cfgErr, ok := err.(*apperrors.ErrConfiguration)
			if !ok {
				t.Fatalf("error = %T, want *errors.ErrConfiguration", err)
			}
			if cfgErr.Name != tt.missing {
				t.Errorf("error names %q, want %q", cfgErr.Name, tt.missing)
			}
		})
	}
}

func TestLoader_FetchErrorIsNotCached(t *testing.T) {
	store := fullStore()
	store.errs = map[string]error{KeyShopifyShopDomain: fmt.Errorf("store unavailable")}
	loader := NewLoader(store, zap.NewNop())

	if err := loader.EnsureLoaded(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}

	// Failure is all-or-nothing: once the store recovers, loading succeeds.
	store.errs = nil
	if err := loader.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("retry after recovery: %v", err)
	}
}

func TestLoader_ConcurrentCallers(t *testing.T) {
	store := fullStore()
	loader := NewLoader(store, zap.NewNop())

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = loader.Credentials(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("caller %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt64(&store.fetches); got != 3 {
		t.Errorf("store fetches = %d, want 3 (single load under contention)", got)
	}
}
