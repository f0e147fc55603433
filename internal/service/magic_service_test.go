package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/internal/recipe"
	"github.com/emberwick/storefront-api/internal/repository"
	"github.com/emberwick/storefront-api/internal/secrets"
	"github.com/emberwick/storefront-api/internal/shopify"
	apperrors "github.com/emberwick/storefront-api/pkg/errors"
)

type fakeStore map[string]string

func (s fakeStore) FetchSecret(_ context.Context, name string) (string, error) {
	return s[name], nil
}

func fullFakeStore() fakeStore {
	return fakeStore{
		secrets.KeyGeminiAPIKey:       "key",
		secrets.KeyShopifyAccessToken: "token",
		secrets.KeyShopifyShopDomain:  "shop.myshopify.com",
	}
}

type fakeGenerator struct {
	descriptionText string
	descriptionErr  error
	recipeText      string
	recipeErr       error
	calls           int
}

func (g *fakeGenerator) GenerateDescription(_ context.Context, _, _ string) (string, error) {
	g.calls++
	return g.descriptionText, g.descriptionErr
}

func (g *fakeGenerator) GenerateRecipe(_ context.Context, _, _ string) (string, error) {
	g.calls++
	return g.recipeText, g.recipeErr
}

type fakeOrderCreator struct {
	calls    int
	gotDraft shopify.DraftOrder
	result   *shopify.DraftOrderResult
	err      error
}

func (f *fakeOrderCreator) CreateDraftOrder(_ context.Context, draft shopify.DraftOrder) (*shopify.DraftOrderResult, error) {
	f.calls++
	f.gotDraft = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

const scholarDescription = `In the hush between downpours... **Candle Name:** "The Scholar's Study" — top notes of rain on stone, a heart of old paper.`

const scholarRecipeJSON = "```json\n{\"essences\":[\"Sandalwood: 3 parts\",\"Rain Fragrance Oil: 2 parts\"],\"waxType\":\"Soy Wax\",\"wickType\":\"Cotton Wick\"}\n```"

// spyRequestRepo records the id of the last created request so failure tests
// can inspect the persisted record.
type spyRequestRepo struct {
	repository.MagicRequestRepository
	lastID uuid.UUID
}

func (s *spyRequestRepo) Create(ctx context.Context, request *domain.MagicRequest) error {
	err := s.MagicRequestRepository.Create(ctx, request)
	s.lastID = request.ID
	return err
}

func newTestService(store secrets.Store, gen *fakeGenerator, orders *fakeOrderCreator) (*MagicRequestService, *repository.Repositories, *spyRequestRepo) {
	logger := zap.NewNop()
	repos := repository.NewInMemoryRepositories()
	spy := &spyRequestRepo{MagicRequestRepository: repos.MagicRequest}
	repos.MagicRequest = spy
	loader := secrets.NewLoader(store, logger)
	svc := NewMagicRequestService(loader, gen, recipe.PatternNameExtractor{}, orders, repos, logger)
	return svc, repos, spy
}

func assertFailedRequest(t *testing.T, repos *repository.Repositories, id uuid.UUID) {
	t.Helper()
	stored, err := repos.MagicRequest.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("stored request: %v", err)
	}
	if stored.Status != domain.StatusFailed {
		t.Errorf("stored status = %s, want FAILED", stored.Status)
	}
	if stored.ErrorMessage == nil || *stored.ErrorMessage == "" {
		t.Error("expected stored error message")
	}
}

func TestMagicRequestService_Submit(t *testing.T) {
	gen := &fakeGenerator{descriptionText: scholarDescription, recipeText: scholarRecipeJSON}
	orders := &fakeOrderCreator{result: &shopify.DraftOrderResult{ID: 1042, InvoiceURL: "https://shop/invoice"}}
	svc, repos, _ := newTestService(fullFakeStore(), gen, orders)

	result, err := svc.Submit(context.Background(), MagicRequestSubmission{
		Prompt: "a quiet library on a rainy afternoon",
		Size:   "Medium 8oz",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CandleName != "The Scholar's Study" {
		t.Errorf("candle name = %q", result.CandleName)
	}
	if result.Description != scholarDescription {
		t.Errorf("description = %q", result.Description)
	}
	if orders.calls != 1 {
		t.Errorf("order submissions = %d, want 1", orders.calls)
	}

	// The submitted draft matches the deterministic mapping.
	item := orders.gotDraft.LineItems[0]
	if item.Title != "Magic Request: The Scholar's Study" || item.Price != "35.00" {
		t.Errorf("submitted line item = %+v", item)
	}
	if orders.gotDraft.Note != "Recipe: Wax - Soy Wax, Wick - Cotton Wick" {
		t.Errorf("submitted note = %q", orders.gotDraft.Note)
	}

	// The persisted record reached the terminal success state.
	requestID, err := uuid.Parse(result.RequestID)
	if err != nil {
		t.Fatalf("request id not a uuid: %v", err)
	}
	stored, err := repos.MagicRequest.GetByID(context.Background(), requestID)
	if err != nil {
		t.Fatalf("stored request: %v", err)
	}
	if stored.Status != domain.StatusDone {
		t.Errorf("stored status = %s, want DONE", stored.Status)
	}
	if stored.DraftOrderID == nil || *stored.DraftOrderID != 1042 {
		t.Errorf("stored draft order id = %v, want 1042", stored.DraftOrderID)
	}
}

func TestMagicRequestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input MagicRequestSubmission
	}{
		{name: "empty prompt", input: MagicRequestSubmission{Prompt: "", Size: "Medium 8oz"}},
		{name: "blank prompt", input: MagicRequestSubmission{Prompt: "   ", Size: "Medium 8oz"}},
		{name: "empty size", input: MagicRequestSubmission{Prompt: "warm hearth", Size: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			orders := &fakeOrderCreator{}
			svc, _, _ := newTestService(fullFakeStore(), gen, orders)

			_, err := svc.Submit(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if _, ok := err.(*apperrors.ErrValidation); !ok {
				t.Errorf("error = %T, want *errors.ErrValidation", err)
			}
			if gen.calls != 0 {
				t.Errorf("generator calls = %d, want 0", gen.calls)
			}
			if orders.calls != 0 {
				t.Errorf("order submissions = %d, want 0", orders.calls)
			}
		})
	}
}

func TestMagicRequestService_Submit_UnparseableRecipe(t *testing.T) {
	gen := &fakeGenerator{
		descriptionText: scholarDescription,
		recipeText:      "Sure! For this candle I'd suggest sandalwood and rain.",
	}
	orders := &fakeOrderCreator{result: &shopify.DraftOrderResult{ID: 1}}
	svc, repos, spy := newTestService(fullFakeStore(), gen, orders)

	_, err := svc.Submit(context.Background(), MagicRequestSubmission{Prompt: "rainy library", Size: "Medium 8oz"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := err.(*apperrors.ErrRecipeParse); !ok {
		t.Fatalf("error = %T, want *errors.ErrRecipeParse", err)
	}
	if orders.calls != 0 {
		t.Errorf("order submissions = %d, want 0 (no order from a guessed recipe)", orders.calls)
	}

	// The persisted record is FAILED with the parse message.
	assertFailedRequest(t, repos, spy.lastID)
}

func TestMagicRequestService_Submit_MissingSecret(t *testing.T) {
	store := fakeStore{
		secrets.KeyShopifyAccessToken: "token",
		secrets.KeyShopifyShopDomain:  "shop.myshopify.com",
		// Gemini key deliberately absent.
	}
	gen := &fakeGenerator{descriptionText: scholarDescription, recipeText: scholarRecipeJSON}
	orders := &fakeOrderCreator{result: &shopify.DraftOrderResult{ID: 1}}
	svc, _, _ := newTestService(store, gen, orders)

	_, err := svc.Submit(context.Background(), MagicRequestSubmission{Prompt: "rainy library", Size: "Medium 8oz"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := err.(*apperrors.ErrConfiguration); !ok {
		t.Fatalf("error = %T, want *errors.ErrConfiguration", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0 (abort before any external call)", gen.calls)
	}
	if orders.calls != 0 {
		t.Errorf("order submissions = %d, want 0", orders.calls)
	}
}

func TestMagicRequestService_Submit_UpstreamAIFailure(t *testing.T) {
	gen := &fakeGenerator{
		descriptionText: scholarDescription,
		recipeErr:       &apperrors.ErrUpstreamAI{Call: "recipe", Err: fmt.Errorf("503")},
	}
	orders := &fakeOrderCreator{result: &shopify.DraftOrderResult{ID: 1}}
	svc, _, _ := newTestService(fullFakeStore(), gen, orders)

	_, err := svc.Submit(context.Background(), MagicRequestSubmission{Prompt: "rainy library", Size: "Medium 8oz"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := err.(*apperrors.ErrUpstreamAI); !ok {
		t.Fatalf("error = %T, want *errors.ErrUpstreamAI", err)
	}
	if orders.calls != 0 {
		t.Errorf("order submissions = %d, want 0 (no fabricated recipe)", orders.calls)
	}
}

func TestMagicRequestService_Submit_CommerceFailure(t *testing.T) {
	gen := &fakeGenerator{descriptionText: scholarDescription, recipeText: scholarRecipeJSON}
	orders := &fakeOrderCreator{err: &apperrors.ErrUpstreamCommerce{StatusCode: 500, Body: "upstream"}}
	svc, repos, spy := newTestService(fullFakeStore(), gen, orders)

	_, err := svc.Submit(context.Background(), MagicRequestSubmission{Prompt: "rainy library", Size: "Medium 8oz"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := err.(*apperrors.ErrUpstreamCommerce); !ok {
		t.Fatalf("error = %T, want *errors.ErrUpstreamCommerce", err)
	}
	if orders.calls != 1 {
		t.Errorf("order submissions = %d, want 1 (single attempt, no retry)", orders.calls)
	}
	assertFailedRequest(t, repos, spy.lastID)
}

func TestMagicRequestService_GetStatus(t *testing.T) {
	gen := &fakeGenerator{descriptionText: scholarDescription, recipeText: scholarRecipeJSON}
	orders := &fakeOrderCreator{result: &shopify.DraftOrderResult{ID: 7}}
	svc, _, _ := newTestService(fullFakeStore(), gen, orders)

	result, err := svc.Submit(context.Background(), MagicRequestSubmission{Prompt: "rainy library", Size: "Medium 8oz"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	id := uuid.MustParse(result.RequestID)
	status, err := svc.GetStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if status.Status != string(domain.StatusDone) {
		t.Errorf("status = %q, want DONE", status.Status)
	}
	if status.CandleName != "The Scholar's Study" {
		t.Errorf("candle name = %q", status.CandleName)
	}

	if _, err := svc.GetStatus(context.Background(), uuid.New()); err == nil {
		t.Error("expected not-found error for unknown id")
	}
}
