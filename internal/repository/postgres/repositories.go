package postgres

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/emberwick/storefront-api/internal/repository"
)

// NewRepositories creates a new set of repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		MagicRequest:   NewMagicRequestRepository(db, logger),
		RequestEvent:   NewRequestEventRepository(db, logger),
		IdempotencyKey: NewIdempotencyKeyRepository(db, logger),
	}
}
