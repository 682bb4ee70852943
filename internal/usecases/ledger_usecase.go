package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"pay-ledger.backend/internal/domain/entities"
	domainerrors "pay-ledger.backend/internal/domain/errors"
	"pay-ledger.backend/internal/domain/repositories"
)

// LedgerUsecase is the only component allowed to mutate wallet balances and
// transaction statuses. Every mutating operation runs inside a unit of work
// that locks the rows it reads before writing them, so concurrent operations
// against the same wallet serialize and either commit fully or not at all.
type LedgerUsecase struct {
	walletRepo repositories.WalletRepository
	txnRepo    repositories.WalletTransactionRepository
	uow        repositories.UnitOfWork
}

// NewLedgerUsecase creates a new ledger usecase
func NewLedgerUsecase(
	walletRepo repositories.WalletRepository,
	txnRepo repositories.WalletTransactionRepository,
	uow repositories.UnitOfWork,
) *LedgerUsecase {
	return &LedgerUsecase{
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		uow:        uow,
	}
}

// ComputeDelta is the single source of truth for the signed balance change a
// transaction causes once settled:
//
//	CREDIT / REFUND  => +abs(amount)
//	DEBIT            => -abs(amount)
//	TRANSFER / other => amount as given (sign determines direction)
//
// It is always evaluated against a transaction's stored type and amount, never
// against caller input, so what was recorded is exactly what gets applied.
func ComputeDelta(txType entities.TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case entities.TransactionTypeCredit, entities.TransactionTypeRefund:
		return amount.Abs()
	case entities.TransactionTypeDebit:
		return amount.Abs().Neg()
	case entities.TransactionTypeTransfer:
		return amount
	default:
		return amount
	}
}

// GetOrCreateWallet fetches the user's wallet, creating it lazily on first
// reference. The unique index on user_id resolves creation races.
func (u *LedgerUsecase) GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	wallet = &entities.Wallet{
		UserID:   userID,
		Balance:  decimal.Zero,
		Currency: entities.DefaultCurrency,
	}
	if createErr := u.walletRepo.Create(ctx, wallet); createErr != nil {
		// Lost a creation race. The conflict-safe insert leaves the
		// transaction usable, so read the winner's row.
		if errors.Is(createErr, domainerrors.ErrAlreadyExists) {
			return u.walletRepo.GetByUserID(ctx, userID)
		}
		return nil, createErr
	}
	return wallet, nil
}

// CreatePendingTransaction records a transaction in PENDING state without
// touching the balance. Funding happens later when the status moves to
// SUCCESS (typically via reconciliation).
func (u *LedgerUsecase) CreatePendingTransaction(ctx context.Context, userID uuid.UUID, input *entities.CreateTransactionInput) (*entities.WalletTransaction, error) {
	var result *entities.WalletTransaction

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		wallet, err := u.GetOrCreateWallet(lockCtx, userID)
		if err != nil {
			return err
		}

		txn := newTransaction(wallet.ID, input, entities.TransactionStatusPending)
		if err := u.txnRepo.Create(txCtx, txn); err != nil {
			return err
		}

		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTransaction creates and settles a transaction in one unit of work:
// the wallet row is locked, the delta applied, the version bumped, and the
// transaction inserted directly as SUCCESS. Used when no external
// confirmation step exists.
func (u *LedgerUsecase) CreateTransaction(ctx context.Context, userID uuid.UUID, input *entities.CreateTransactionInput) (*entities.WalletTransaction, error) {
	var result *entities.WalletTransaction

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		wallet, err := u.GetOrCreateWallet(lockCtx, userID)
		if err != nil {
			return err
		}

		txn := newTransaction(wallet.ID, input, entities.TransactionStatusSuccess)

		delta := ComputeDelta(txn.Type, txn.Amount)
		newBalance := wallet.Balance.Add(delta)

		if err := u.txnRepo.Create(txCtx, txn); err != nil {
			return err
		}
		if err := u.walletRepo.UpdateBalance(txCtx, wallet.ID, newBalance); err != nil {
			return err
		}

		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateTransactionStatus transitions a transaction to the given status and
// applies or reverses its balance delta as required. Transitioning to the
// current status is an idempotent no-op.
func (u *LedgerUsecase) UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status string) (*entities.WalletTransaction, error) {
	if status == "" {
		return nil, domainerrors.BadRequest("status is required")
	}
	newStatus := entities.NormalizeStatus(status)
	return u.UpdateTransaction(ctx, transactionID, &entities.TransactionUpdate{Status: &newStatus})
}

// UpdateTransaction revises a transaction's fields and/or status inside one
// locked unit of work. The balance adjustment is derived from the stored
// type/amount (oldDelta) and the revised ones (newDelta):
//
//	not-SUCCESS -> SUCCESS : +newDelta
//	SUCCESS -> not-SUCCESS : -oldDelta (full reversal)
//	SUCCESS -> SUCCESS     : newDelta - oldDelta
//	otherwise              : no balance change
func (u *LedgerUsecase) UpdateTransaction(ctx context.Context, transactionID uuid.UUID, updates *entities.TransactionUpdate) (*entities.WalletTransaction, error) {
	var result *entities.WalletTransaction

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		lockCtx := u.uow.WithLock(txCtx)

		txn, err := u.txnRepo.GetByID(lockCtx, transactionID)
		if err != nil {
			return err
		}

		prevStatus := txn.Status
		prevAmount := txn.Amount
		prevType := txn.Type

		newStatus := prevStatus
		if updates.Status != nil {
			newStatus = *updates.Status
		}
		newAmount := prevAmount
		if updates.Amount != nil {
			newAmount = updates.Amount.Round(entities.BalanceScale)
		}
		newType := prevType
		if updates.Type != nil {
			newType = *updates.Type
		}

		// No-op fast path: nothing actually changes.
		if prevStatus == newStatus &&
			prevAmount.Equal(newAmount) &&
			prevType == newType &&
			(updates.ReferenceID == nil || txn.ReferenceID.String == *updates.ReferenceID) &&
			(updates.Description == nil || txn.Description.String == *updates.Description) {
			result = txn
			return nil
		}

		wallet, err := u.walletRepo.GetByID(lockCtx, txn.WalletID)
		if err != nil {
			return err
		}

		oldDelta := ComputeDelta(prevType, prevAmount)
		newDelta := ComputeDelta(newType, newAmount)

		var balanceChange decimal.Decimal
		switch {
		case prevStatus != entities.TransactionStatusSuccess && newStatus == entities.TransactionStatusSuccess:
			balanceChange = newDelta
		case prevStatus == entities.TransactionStatusSuccess && newStatus != entities.TransactionStatusSuccess:
			balanceChange = oldDelta.Neg()
		case prevStatus == entities.TransactionStatusSuccess && newStatus == entities.TransactionStatusSuccess:
			balanceChange = newDelta.Sub(oldDelta)
		}

		if !balanceChange.IsZero() {
			if err := u.walletRepo.UpdateBalance(txCtx, wallet.ID, wallet.Balance.Add(balanceChange)); err != nil {
				return err
			}
		}

		txn.Status = newStatus
		txn.Amount = newAmount
		txn.Type = newType
		if updates.ReferenceID != nil {
			txn.ReferenceID = null.StringFrom(*updates.ReferenceID)
		}
		if updates.Description != nil {
			txn.Description = null.StringFrom(*updates.Description)
		}

		if err := u.txnRepo.Update(txCtx, txn); err != nil {
			return err
		}

		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateTransactionStatusByReference is the reconciliation entry point:
// it locates a transaction by its external correlation key and advances its
// status. An empty reference is rejected before any lock is taken.
func (u *LedgerUsecase) UpdateTransactionStatusByReference(ctx context.Context, referenceID, status string) (*entities.WalletTransaction, error) {
	if referenceID == "" {
		return nil, domainerrors.BadRequest("referenceId is required")
	}
	txn, err := u.txnRepo.GetByReference(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	return u.UpdateTransactionStatus(ctx, txn.ID, status)
}

// FindTransactionByReference looks a transaction up by reference.
func (u *LedgerUsecase) FindTransactionByReference(ctx context.Context, referenceID string) (*entities.WalletTransaction, error) {
	if referenceID == "" {
		return nil, domainerrors.BadRequest("referenceId is required")
	}
	return u.txnRepo.GetByReference(ctx, referenceID)
}

// FindWalletByID fetches a wallet by its ID.
func (u *LedgerUsecase) FindWalletByID(ctx context.Context, walletID uuid.UUID) (*entities.Wallet, error) {
	return u.walletRepo.GetByID(ctx, walletID)
}

// FindWalletByUserID fetches a wallet by its owner.
func (u *LedgerUsecase) FindWalletByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	return u.walletRepo.GetByUserID(ctx, userID)
}

// ListTransactions lists a wallet's transactions, newest first.
func (u *LedgerUsecase) ListTransactions(ctx context.Context, walletID uuid.UUID) ([]*entities.WalletTransaction, error) {
	return u.txnRepo.ListByWalletID(ctx, walletID)
}

func newTransaction(walletID uuid.UUID, input *entities.CreateTransactionInput, status entities.TransactionStatus) *entities.WalletTransaction {
	return &entities.WalletTransaction{
		WalletID:    walletID,
		Amount:      input.Amount.Round(entities.BalanceScale),
		Type:        entities.NormalizeType(input.Type),
		Status:      status,
		ReferenceID: null.NewString(input.ReferenceID, input.ReferenceID != ""),
		Description: null.NewString(input.Description, input.Description != ""),
	}
}
