package domain

import (
	"time"

	"github.com/google/uuid"
)

// CandleRecipe is the fulfillment recipe derived from the second generation
// call via strict JSON parse. Essences are "material: parts" strings in the
// order the model emitted them.
type CandleRecipe struct {
	Essences []string `json:"essences"`
	WaxType  string   `json:"waxType"`
	WickType string   `json:"wickType"`
}

// MagicRequest is the persisted record of one magic-request pipeline run.
// Browsers poll its Status until a terminal value is observed.
type MagicRequest struct {
	ID           uuid.UUID
	Prompt       string
	Size         string
	Status       RequestStatus
	CandleName   *string
	Description  *string
	DraftOrderID *int64
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RequestEvent represents an audit event for a magic request
type RequestEvent struct {
	ID             uuid.UUID
	MagicRequestID uuid.UUID
	EventType      string
	EventData      map[string]interface{} // JSONB
	CreatedAt      time.Time
}

// IdempotencyKey stores idempotency information
type IdempotencyKey struct {
	Key            string
	MagicRequestID uuid.UUID
	RequestHash    string
	CreatedAt      time.Time
}
