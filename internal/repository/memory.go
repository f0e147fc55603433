package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/pkg/errors"
)

// In-memory repositories back the operator CLI and the tests; the server uses
// the postgres implementations.

type inMemoryMagicRequestRepository struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.MagicRequest
}

// NewInMemoryMagicRequestRepository creates an in-memory magic request repository
func NewInMemoryMagicRequestRepository() MagicRequestRepository {
	return &inMemoryMagicRequestRepository{
		requests: make(map[uuid.UUID]*domain.MagicRequest),
	}
}

func (r *inMemoryMagicRequestRepository) Create(_ context.Context, request *domain.MagicRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now

	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *inMemoryMagicRequestRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.MagicRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "magic request", ID: id.String()}
	}
	clone := *request
	return &clone, nil
}

func (r *inMemoryMagicRequestRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "magic request", ID: id.String()}
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryMagicRequestRepository) MarkDone(_ context.Context, id uuid.UUID, candleName, description string, draftOrderID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "magic request", ID: id.String()}
	}
	request.Status = domain.StatusDone
	request.CandleName = &candleName
	request.Description = &description
	request.DraftOrderID = &draftOrderID
	request.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryMagicRequestRepository) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return &errors.ErrNotFound{Resource: "magic request", ID: id.String()}
	}
	request.Status = domain.StatusFailed
	request.ErrorMessage = &message
	request.UpdatedAt = time.Now()
	return nil
}

type inMemoryRequestEventRepository struct {
	mu     sync.RWMutex
	events map[uuid.UUID][]*domain.RequestEvent
}

// NewInMemoryRequestEventRepository creates an in-memory request event repository
func NewInMemoryRequestEventRepository() RequestEventRepository {
	return &inMemoryRequestEventRepository{
		events: make(map[uuid.UUID][]*domain.RequestEvent),
	}
}

func (r *inMemoryRequestEventRepository) Create(_ context.Context, event *domain.RequestEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	r.events[event.MagicRequestID] = append(r.events[event.MagicRequestID], event)
	return nil
}

func (r *inMemoryRequestEventRepository) GetByRequestID(_ context.Context, requestID uuid.UUID) ([]*domain.RequestEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events[requestID], nil
}

type inMemoryIdempotencyKeyRepository struct {
	mu   sync.RWMutex
	keys map[string]*domain.IdempotencyKey
}

// NewInMemoryIdempotencyKeyRepository creates an in-memory idempotency key repository
func NewInMemoryIdempotencyKeyRepository() IdempotencyKeyRepository {
	return &inMemoryIdempotencyKeyRepository{
		keys: make(map[string]*domain.IdempotencyKey),
	}
}

func (r *inMemoryIdempotencyKeyRepository) GetByKey(_ context.Context, key string) (*domain.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keys[key], nil
}

func (r *inMemoryIdempotencyKeyRepository) Create(_ context.Context, key *domain.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key.CreatedAt.IsZero() {
		key.CreatedAt = time.Now()
	}
	r.keys[key.Key] = key
	return nil
}

// NewInMemoryRepositories creates a full in-memory repository set
func NewInMemoryRepositories() *Repositories {
	return &Repositories{
		MagicRequest:   NewInMemoryMagicRequestRepository(),
		RequestEvent:   NewInMemoryRequestEventRepository(),
		IdempotencyKey: NewInMemoryIdempotencyKeyRepository(),
	}
}
