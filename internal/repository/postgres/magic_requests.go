package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/pkg/errors"
)

type magicRequestRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMagicRequestRepository creates a new magic request repository
func NewMagicRequestRepository(db *sql.DB, logger *zap.Logger) *magicRequestRepository {
	return &magicRequestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *magicRequestRepository) Create(ctx context.Context, request *domain.MagicRequest) error {
	query := `
		INSERT INTO magic_requests (
			id, prompt, size, status, candle_name, description,
			draft_order_id, error_message, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	if request.UpdatedAt.IsZero() {
		request.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, query,
		request.ID,
		request.Prompt,
		request.Size,
		request.Status,
		request.CandleName,
		request.Description,
		request.DraftOrderID,
		request.ErrorMessage,
		request.CreatedAt,
		request.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create magic request", zap.Error(err))
		return err
	}

	return nil
}

func (r *magicRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MagicRequest, error) {
	query := `
		SELECT id, prompt, size, status, candle_name, description,
			draft_order_id, error_message, created_at, updated_at
		FROM magic_requests
		WHERE id = $1
	`

	var request domain.MagicRequest
	var candleName sql.NullString
	var description sql.NullString
	var draftOrderID sql.NullInt64
	var errorMessage sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&request.ID,
		&request.Prompt,
		&request.Size,
		&request.Status,
		&candleName,
		&description,
		&draftOrderID,
		&errorMessage,
		&request.CreatedAt,
		&request.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "magic request", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get magic request", zap.Error(err))
		return nil, err
	}

	if candleName.Valid {
		request.CandleName = &candleName.String
	}
	if description.Valid {
		request.Description = &description.String
	}
	if draftOrderID.Valid {
		request.DraftOrderID = &draftOrderID.Int64
	}
	if errorMessage.Valid {
		request.ErrorMessage = &errorMessage.String
	}

	return &request, nil
}

func (r *magicRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	query := `
		UPDATE magic_requests
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	if err != nil {
		r.logger.Error("Failed to update magic request status", zap.Error(err))
		return err
	}

	return nil
}

func (r *magicRequestRepository) MarkDone(ctx context.Context, id uuid.UUID, candleName, description string, draftOrderID int64) error {
	query := `
		UPDATE magic_requests
		SET status = $2, candle_name = $3, description = $4, draft_order_id = $5, updated_at = $6
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, domain.StatusDone, candleName, description, draftOrderID, time.Now())
	if err != nil {
		r.logger.Error("Failed to mark magic request done", zap.Error(err))
		return err
	}

	return nil
}

func (r *magicRequestRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	query := `
		UPDATE magic_requests
		SET status = $2, error_message = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, domain.StatusFailed, message, time.Now())
	if err != nil {
		r.logger.Error("Failed to mark magic request failed", zap.Error(err))
		return err
	}

	return nil
}
