package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
)

func TestWalletRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	wallet := &entities.Wallet{UserID: userID, Balance: decimal.Zero}
	require.NoError(t, repo.Create(ctx, wallet))
	require.NotEqual(t, uuid.Nil, wallet.ID, "ID must be generated")
	require.Equal(t, entities.DefaultCurrency, wallet.Currency, "currency must default")

	byID, err := repo.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	require.Equal(t, userID, byID.UserID)
	require.True(t, byID.Balance.IsZero())

	byUser, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, wallet.ID, byUser.ID)
}

func TestWalletRepository_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWalletRepository_CreateDuplicateUser(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.Wallet{UserID: userID}))

	err := repo.Create(ctx, &entities.Wallet{UserID: userID})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists, "user_id is unique")
}

func TestWalletRepository_CreateDuplicateKeepsTransactionUsable(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	first := &entities.Wallet{UserID: userID}
	require.NoError(t, repo.Create(ctx, first))

	// A duplicate insert inside a transaction must not poison it: the
	// same transaction has to be able to read the existing row afterwards.
	err := uow.Do(ctx, func(txCtx context.Context) error {
		createErr := repo.Create(txCtx, &entities.Wallet{UserID: userID})
		require.ErrorIs(t, createErr, domainerrors.ErrAlreadyExists)

		existing, getErr := repo.GetByUserID(txCtx, userID)
		require.NoError(t, getErr, "transaction must survive the duplicate insert")
		require.Equal(t, first.ID, existing.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestWalletRepository_UpdateBalance(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	wallet := &entities.Wallet{UserID: uuid.New(), Balance: decimal.NewFromInt(10)}
	require.NoError(t, repo.Create(ctx, wallet))

	require.NoError(t, repo.UpdateBalance(ctx, wallet.ID, decimal.RequireFromString("25.12345")))

	got, err := repo.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.RequireFromString("25.1235")),
		"balance must be rounded to 4 places, got %s", got.Balance)
	require.Equal(t, int64(1), got.Version, "version must advance on every balance write")

	require.NoError(t, repo.UpdateBalance(ctx, wallet.ID, decimal.NewFromInt(30)))
	got, err = repo.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
}

func TestWalletRepository_UpdateBalanceNotFound(t *testing.T) {
	db := newTestDB(t)
	createWalletTables(t, db)
	repo := NewWalletRepository(db)

	err := repo.UpdateBalance(context.Background(), uuid.New(), decimal.NewFromInt(5))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
