package repositories

import (
	"context"

	"github.com/google/uuid"
	"pay-ledger.backend/internal/domain/entities"
)

// WalletTransactionRepository defines transaction data operations.
type WalletTransactionRepository interface {
	Create(ctx context.Context, txn *entities.WalletTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletTransaction, error)
	// GetByReference looks a transaction up by its external correlation key.
	// The reference is treated as a natural key; the most recent match wins.
	GetByReference(ctx context.Context, referenceID string) (*entities.WalletTransaction, error)
	Update(ctx context.Context, txn *entities.WalletTransaction) error
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*entities.WalletTransaction, error)
}
