package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/emberwick/storefront-api/internal/domain"
)

// MagicRequestRepository defines magic request data access methods
type MagicRequestRepository interface {
	Create(ctx context.Context, request *domain.MagicRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MagicRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	MarkDone(ctx context.Context, id uuid.UUID, candleName, description string, draftOrderID int64) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

// RequestEventRepository defines request event data access methods
type RequestEventRepository interface {
	Create(ctx context.Context, event *domain.RequestEvent) error
	GetByRequestID(ctx context.Context, requestID uuid.UUID) ([]*domain.RequestEvent, error)
}

// IdempotencyKeyRepository defines idempotency key data access methods
type IdempotencyKeyRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.IdempotencyKey, error)
	Create(ctx context.Context, key *domain.IdempotencyKey) error
}

// Repositories aggregates all repositories
type Repositories struct {
	MagicRequest   MagicRequestRepository
	RequestEvent   RequestEventRepository
	IdempotencyKey IdempotencyKeyRepository
}
