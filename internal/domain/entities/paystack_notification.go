package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// PaystackNotification is the audit record of one Paystack webhook delivery.
// It is persisted regardless of whether a matching ledger transaction was
// found, so provider callbacks can be replayed and debugged.
type PaystackNotification struct {
	ID              uuid.UUID       `json:"id"`
	PaystackID      int64           `json:"paystackId"`
	Event           string          `json:"event"`
	Domain          null.String     `json:"domain,omitempty"`
	Status          string          `json:"status"`
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	GatewayResponse null.String     `json:"gatewayResponse,omitempty"`
	Channel         null.String     `json:"channel,omitempty"`
	IPAddress       null.String     `json:"ipAddress,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	Customer        null.String     `json:"customer,omitempty"`
	Authorization   null.String     `json:"authorization,omitempty"`
	Matched         bool            `json:"matched"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NotificationSearch are the filters for browsing archived notifications.
type NotificationSearch struct {
	Reference string
	Status    string
	Limit     int
	Offset    int
}
