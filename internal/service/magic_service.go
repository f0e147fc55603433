package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/ai"
	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/internal/recipe"
	"github.com/emberwick/storefront-api/internal/repository"
	"github.com/emberwick/storefront-api/internal/secrets"
	"github.com/emberwick/storefront-api/internal/shopify"
	"github.com/emberwick/storefront-api/pkg/errors"
)

// DraftOrderCreator is the order-submission dependency of both pipelines.
// Satisfied by *shopify.Client.
type DraftOrderCreator interface {
	CreateDraftOrder(ctx context.Context, draft shopify.DraftOrder) (*shopify.DraftOrderResult, error)
}

// MagicRequestService runs the magic-request pipeline:
// RECEIVED → VALIDATED → GENERATING → PARSING → MAPPING → SUBMITTING → DONE,
// with FAILED reachable from any state. Transitions are strictly sequential
// and there is no retry transition.
type MagicRequestService struct {
	loader    *secrets.Loader
	generator ai.Generator
	names     recipe.NameExtractor
	orders    DraftOrderCreator
	repos     *repository.Repositories
	logger    *zap.Logger
}

// NewMagicRequestService creates a new magic request service
func NewMagicRequestService(
	loader *secrets.Loader,
	generator ai.Generator,
	names recipe.NameExtractor,
	orders DraftOrderCreator,
	repos *repository.Repositories,
	logger *zap.Logger,
) *MagicRequestService {
	return &MagicRequestService{
		loader:    loader,
		generator: generator,
		names:     names,
		orders:    orders,
		repos:     repos,
		logger:    logger,
	}
}

// Submit runs one end-to-end pipeline invocation. Every failure is recorded on
// the persisted request before the typed error is returned to the handler.
func (s *MagicRequestService) Submit(ctx context.Context, in MagicRequestSubmission) (*MagicRequestResult, error) {
	prompt := strings.TrimSpace(in.Prompt)
	size := strings.TrimSpace(in.Size)
	if prompt == "" || size == "" {
		return nil, &errors.ErrValidation{Message: "prompt and size are required"}
	}

	request := &domain.MagicRequest{
		ID:     uuid.New(),
		Prompt: prompt,
		Size:   size,
		Status: domain.StatusReceived,
	}
	if err := s.repos.MagicRequest.Create(ctx, request); err != nil {
		return nil, err
	}

	s.advance(ctx, request, domain.StatusValidated)

	// Secrets must be resolved before any external call is attempted.
	if err := s.loader.EnsureLoaded(ctx); err != nil {
		s.fail(ctx, request, err)
		return nil, err
	}

	s.advance(ctx, request, domain.StatusGenerating)

	// The two generation calls are independent, so they run concurrently.
	var descriptionText, recipeText string
	var descriptionErr, recipeErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		descriptionText, descriptionErr = s.generator.GenerateDescription(ctx, prompt, size)
	}()
	go func() {
		defer wg.Done()
		recipeText, recipeErr = s.generator.GenerateRecipe(ctx, prompt, size)
	}()
	wg.Wait()

	if descriptionErr != nil {
		s.fail(ctx, request, descriptionErr)
		return nil, descriptionErr
	}
	if recipeErr != nil {
		s.fail(ctx, request, recipeErr)
		return nil, recipeErr
	}

	s.advance(ctx, request, domain.StatusParsing)

	candleName := s.names.ExtractName(descriptionText)
	parsedRecipe, err := recipe.ParseRecipe(recipeText)
	if err != nil {
		s.fail(ctx, request, err)
		return nil, err
	}

	s.advance(ctx, request, domain.StatusMapping)

	draft := BuildMagicDraftOrder(prompt, size, candleName, parsedRecipe)

	s.advance(ctx, request, domain.StatusSubmitting)

	result, err := s.orders.CreateDraftOrder(ctx, draft)
	if err != nil {
		s.fail(ctx, request, err)
		return nil, err
	}

	if err := s.repos.MagicRequest.MarkDone(ctx, request.ID, candleName, descriptionText, result.ID); err != nil {
		s.logger.Warn("Failed to mark magic request done", zap.Error(err))
	}
	s.recordEvent(ctx, request.ID, "draft_order_created", map[string]interface{}{
		"draft_order_id": result.ID,
		"candle_name":    candleName,
	})

	s.logger.Info("Magic request completed",
		zap.String("request_id", request.ID.String()),
		zap.String("candle_name", candleName),
		zap.Int64("draft_order_id", result.ID),
	)

	return &MagicRequestResult{
		RequestID:   request.ID.String(),
		CandleName:  candleName,
		Description: descriptionText,
	}, nil
}

// GetStatus returns the poll-target view of a request.
func (s *MagicRequestService) GetStatus(ctx context.Context, id uuid.UUID) (*MagicRequestStatus, error) {
	request, err := s.repos.MagicRequest.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := &MagicRequestStatus{
		RequestID: request.ID.String(),
		Status:    string(request.Status),
	}
	if request.CandleName != nil {
		status.CandleName = *request.CandleName
	}
	if request.Description != nil {
		status.Description = *request.Description
	}
	if request.ErrorMessage != nil {
		status.Error = *request.ErrorMessage
	}
	return status, nil
}

// advance moves the request to the next status. Audit persistence is
// best-effort: the in-flight pipeline is the source of truth, so a failed
// status write logs a warning and the pipeline continues.
func (s *MagicRequestService) advance(ctx context.Context, request *domain.MagicRequest, to domain.RequestStatus) {
	if !request.Status.CanTransitionTo(to) {
		s.logger.Error("Invalid state transition",
			zap.String("request_id", request.ID.String()),
			zap.String("from", string(request.Status)),
			zap.String("to", string(to)),
		)
		return
	}

	from := request.Status
	request.Status = to
	if err := s.repos.MagicRequest.UpdateStatus(ctx, request.ID, to); err != nil {
		s.logger.Warn("Failed to persist status transition", zap.Error(err))
	}
	s.recordEvent(ctx, request.ID, "status_change", map[string]interface{}{
		"from": from,
		"to":   to,
	})
}

func (s *MagicRequestService) fail(ctx context.Context, request *domain.MagicRequest, cause error) {
	s.logger.Error("Magic request failed",
		zap.String("request_id", request.ID.String()),
		zap.String("stage", string(request.Status)),
		zap.Error(cause),
	)

	from := request.Status
	request.Status = domain.StatusFailed
	if err := s.repos.MagicRequest.MarkFailed(ctx, request.ID, cause.Error()); err != nil {
		s.logger.Warn("Failed to persist failure", zap.Error(err))
	}
	s.recordEvent(ctx, request.ID, "status_change", map[string]interface{}{
		"from":  from,
		"to":    domain.StatusFailed,
		"error": cause.Error(),
	})
}

func (s *MagicRequestService) recordEvent(ctx context.Context, requestID uuid.UUID, eventType string, data map[string]interface{}) {
	event := &domain.RequestEvent{
		MagicRequestID: requestID,
		EventType:      eventType,
		EventData:      data,
	}
	if err := s.repos.RequestEvent.Create(ctx, event); err != nil {
		s.logger.Warn("Failed to record request event", zap.Error(err))
	}
}
