package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// MonnifyNotification is the audit record of one Monnify webhook delivery.
type MonnifyNotification struct {
	ID                   uuid.UUID           `json:"id"`
	EventType            string              `json:"eventType"`
	TransactionReference null.String         `json:"transactionReference,omitempty"`
	PaymentReference     null.String         `json:"paymentReference,omitempty"`
	PaymentStatus        null.String         `json:"paymentStatus,omitempty"`
	AmountPaid           decimal.NullDecimal `json:"amountPaid,omitempty"`
	Currency             null.String         `json:"currency,omitempty"`
	PaidOn               *time.Time          `json:"paidOn,omitempty"`
	EventData            null.String         `json:"eventData,omitempty"`
	Matched              bool                `json:"matched"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
}
