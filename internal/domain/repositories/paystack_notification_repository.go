package repositories

import (
	"context"

	"github.com/google/uuid"
	"pay-ledger.backend/internal/domain/entities"
)

// PaystackNotificationRepository archives Paystack webhook deliveries.
type PaystackNotificationRepository interface {
	Create(ctx context.Context, n *entities.PaystackNotification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PaystackNotification, error)
	List(ctx context.Context, limit, offset int) ([]*entities.PaystackNotification, error)
	Search(ctx context.Context, q entities.NotificationSearch) ([]*entities.PaystackNotification, error)
	ListUnmatched(ctx context.Context, limit int) ([]*entities.PaystackNotification, error)
	MarkMatched(ctx context.Context, id uuid.UUID) error
}
