package errors

import (
	"fmt"

	"github.com/emberwick/storefront-api/internal/domain"
)

// ErrConfiguration is returned when a required secret is missing or empty.
// The pipeline must abort before any external call is attempted.
type ErrConfiguration struct {
	Name string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration error: %s is missing or empty", e.Name)
}

// ErrValidation is returned when caller input is malformed. No external call is made.
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrUpstreamAI is returned when the generation service is unreachable or returns
// a non-success. The pipeline never fabricates a recipe on this failure.
type ErrUpstreamAI struct {
	Call string // "description" or "recipe"
	Err  error
}

func (e *ErrUpstreamAI) Error() string {
	return fmt.Sprintf("ai generation failed (%s call): %v", e.Call, e.Err)
}

func (e *ErrUpstreamAI) Unwrap() error {
	return e.Err
}

// ErrRecipeParse is returned when the recipe response is not valid JSON or is
// missing required keys. Price and fulfillment instructions derive from the
// recipe, so a partial parse must never reach order submission.
type ErrRecipeParse struct {
	Reason string
}

func (e *ErrRecipeParse) Error() string {
	return fmt.Sprintf("recipe parse failed: %s", e.Reason)
}

// ErrUpstreamCommerce is returned when the commerce admin API rejects a call.
// Body is kept for server-side diagnostics and is never echoed to the client.
type ErrUpstreamCommerce struct {
	StatusCode int
	Body       string
}

func (e *ErrUpstreamCommerce) Error() string {
	return fmt.Sprintf("shopify API error: status %d", e.StatusCode)
}

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrConflict is returned when there's a conflict (e.g., idempotency)
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "conflict"
}

// ErrInvalidStateTransition is returned when an invalid state transition is attempted
type ErrInvalidStateTransition struct {
	From domain.RequestStatus
	To   domain.RequestStatus
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
