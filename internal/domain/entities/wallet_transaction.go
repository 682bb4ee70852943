package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// TransactionType determines the sign convention of a transaction's delta.
type TransactionType string

const (
	TransactionTypeDebit    TransactionType = "DEBIT"
	TransactionTypeCredit   TransactionType = "CREDIT"
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypeRefund   TransactionType = "REFUND"
)

// TransactionStatus is PENDING, SUCCESS or FAILED. Reconciliation may pass
// through other uppercased provider tokens; those never move the balance.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// NormalizeStatus uppercases a status token.
func NormalizeStatus(s string) TransactionStatus {
	return TransactionStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeType uppercases a type token.
func NormalizeType(s string) TransactionType {
	return TransactionType(strings.ToUpper(strings.TrimSpace(s)))
}

// WalletTransaction is one ledger operation against a wallet. Created
// PENDING, mutated only through the ledger engine's transition operations,
// never deleted.
type WalletTransaction struct {
	ID          uuid.UUID         `json:"id"`
	WalletID    uuid.UUID         `json:"walletId"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	ReferenceID null.String       `json:"referenceId,omitempty"`
	Description null.String       `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CreateTransactionInput is the caller-facing input for creating a
// transaction against a user's wallet.
type CreateTransactionInput struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	ReferenceID string          `json:"referenceId"`
	Description string          `json:"description"`
}

// TransactionUpdate carries an optional revision of a transaction's fields
// alongside a status change. Nil fields are left untouched.
type TransactionUpdate struct {
	Status      *TransactionStatus
	Amount      *decimal.Decimal
	Type        *TransactionType
	ReferenceID *string
	Description *string
}
