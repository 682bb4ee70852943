package repositories

import (
	"context"

	"github.com/google/uuid"
	"pay-ledger.backend/internal/domain/entities"
)

// UserRepository is the read-only view of users this service needs for
// owner lookups when dispatching notifications.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}
