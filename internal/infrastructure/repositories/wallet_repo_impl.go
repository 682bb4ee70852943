package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/infrastructure/models"
)

// WalletRepositoryImpl implements wallet data operations
type WalletRepositoryImpl struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepositoryImpl {
	return &WalletRepositoryImpl{db: db}
}

// Create creates a new wallet. The insert is conflict-safe on user_id: a
// concurrent creation surfaces as ErrAlreadyExists without raising a unique
// violation, so an enclosing transaction stays usable and can re-read the
// winner's row.
func (r *WalletRepositoryImpl) Create(ctx context.Context, wallet *entities.Wallet) error {
	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	if wallet.Currency == "" {
		wallet.Currency = entities.DefaultCurrency
	}
	m := r.toModel(wallet)

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyExists
	}
	*wallet = *r.toEntity(m)
	return nil
}

// GetByID gets a wallet by ID
func (r *WalletRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	db := applyLock(ctx, GetDB(ctx, r.db))
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets the wallet owned by a user
func (r *WalletRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	db := applyLock(ctx, GetDB(ctx, r.db))
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// UpdateBalance writes the new balance and advances the version counter in
// one statement. Callers must hold the wallet row lock via the unit of work.
func (r *WalletRepositoryImpl) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance": balance.Round(entities.BalanceScale),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WalletRepositoryImpl) toModel(e *entities.Wallet) *models.Wallet {
	return &models.Wallet{
		ID:        e.ID,
		UserID:    e.UserID,
		Balance:   e.Balance,
		Currency:  e.Currency,
		Version:   e.Version,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (r *WalletRepositoryImpl) toEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		Currency:  m.Currency,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
