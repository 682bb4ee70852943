package repositories

import (
	"context"

	"github.com/google/uuid"
	"pay-ledger.backend/internal/domain/entities"
)

// MonnifyNotificationRepository archives Monnify webhook deliveries.
type MonnifyNotificationRepository interface {
	Create(ctx context.Context, n *entities.MonnifyNotification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MonnifyNotification, error)
	List(ctx context.Context, limit, offset int) ([]*entities.MonnifyNotification, error)
	Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.MonnifyNotification, error)
	ListUnmatched(ctx context.Context, limit int) ([]*entities.MonnifyNotification, error)
	MarkMatched(ctx context.Context, id uuid.UUID) error
}
