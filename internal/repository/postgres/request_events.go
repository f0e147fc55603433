package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/domain"
)

type requestEventRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRequestEventRepository creates a new request event repository
func NewRequestEventRepository(db *sql.DB, logger *zap.Logger) *requestEventRepository {
	return &requestEventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *requestEventRepository) Create(ctx context.Context, event *domain.RequestEvent) error {
	query := `
		INSERT INTO request_events (id, magic_request_id, event_type, event_data, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	eventDataJSON, err := json.Marshal(event.EventData)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		event.ID,
		event.MagicRequestID,
		event.EventType,
		eventDataJSON,
		event.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create request event", zap.Error(err))
		return err
	}

	return nil
}

func (r *requestEventRepository) GetByRequestID(ctx context.Context, requestID uuid.UUID) ([]*domain.RequestEvent, error) {
	query := `
		SELECT id, magic_request_id, event_type, event_data, created_at
		FROM request_events
		WHERE magic_request_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		r.logger.Error("Failed to list request events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []*domain.RequestEvent
	for rows.Next() {
		var event domain.RequestEvent
		var eventDataJSON []byte

		if err := rows.Scan(
			&event.ID,
			&event.MagicRequestID,
			&event.EventType,
			&eventDataJSON,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(eventDataJSON) > 0 {
			if err := json.Unmarshal(eventDataJSON, &event.EventData); err != nil {
				return nil, err
			}
		}

		events = append(events, &event)
	}

	return events, rows.Err()
}
