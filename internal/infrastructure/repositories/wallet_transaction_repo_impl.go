package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/infrastructure/models"
)

// WalletTransactionRepositoryImpl implements transaction data operations
type WalletTransactionRepositoryImpl struct {
	db *gorm.DB
}

// NewWalletTransactionRepository creates a new wallet transaction repository
func NewWalletTransactionRepository(db *gorm.DB) *WalletTransactionRepositoryImpl {
	return &WalletTransactionRepositoryImpl{db: db}
}

// Create inserts a new transaction record
func (r *WalletTransactionRepositoryImpl) Create(ctx context.Context, txn *entities.WalletTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	m := r.toModel(txn)

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*txn = *r.toEntity(m)
	return nil
}

// GetByID gets a transaction by ID
func (r *WalletTransactionRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletTransaction, error) {
	var m models.WalletTransaction
	db := applyLock(ctx, GetDB(ctx, r.db))
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByReference finds the most recent transaction carrying the reference
func (r *WalletTransactionRepositoryImpl) GetByReference(ctx context.Context, referenceID string) (*entities.WalletTransaction, error) {
	var m models.WalletTransaction
	db := applyLock(ctx, GetDB(ctx, r.db))
	err := db.WithContext(ctx).
		Where("reference_id = ?", referenceID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists the transaction's mutable fields
func (r *WalletTransactionRepositoryImpl) Update(ctx context.Context, txn *entities.WalletTransaction) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.WalletTransaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]interface{}{
			"amount":       txn.Amount,
			"type":         string(txn.Type),
			"status":       string(txn.Status),
			"reference_id": txn.ReferenceID,
			"description":  txn.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByWalletID lists a wallet's transactions, newest first
func (r *WalletTransactionRepositoryImpl) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*entities.WalletTransaction, error) {
	var ms []models.WalletTransaction
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	txns := make([]*entities.WalletTransaction, 0, len(ms))
	for i := range ms {
		txns = append(txns, r.toEntity(&ms[i]))
	}
	return txns, nil
}

func (r *WalletTransactionRepositoryImpl) toModel(e *entities.WalletTransaction) *models.WalletTransaction {
	return &models.WalletTransaction{
		ID:          e.ID,
		WalletID:    e.WalletID,
		Amount:      e.Amount,
		Type:        string(e.Type),
		Status:      string(e.Status),
		ReferenceID: e.ReferenceID,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *WalletTransactionRepositoryImpl) toEntity(m *models.WalletTransaction) *entities.WalletTransaction {
	return &entities.WalletTransaction{
		ID:          m.ID,
		WalletID:    m.WalletID,
		Amount:      m.Amount,
		Type:        entities.TransactionType(m.Type),
		Status:      entities.TransactionStatus(m.Status),
		ReferenceID: m.ReferenceID,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
