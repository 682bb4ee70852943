package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the deployment-wide wallet currency.
const DefaultCurrency = "USD"

// BalanceScale is the number of fractional digits kept on balances and amounts.
const BalanceScale = 4

// Wallet holds a user's single monetary balance. Balances are only ever
// mutated by the ledger engine inside a locked unit of work.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
