package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type MonnifyNotification struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	EventType            string              `gorm:"type:varchar(50);not null"`
	TransactionReference null.String         `gorm:"type:varchar(100);index"`
	PaymentReference     null.String         `gorm:"type:varchar(100);index"`
	PaymentStatus        null.String         `gorm:"type:varchar(50)"`
	AmountPaid           decimal.NullDecimal `gorm:"type:numeric(19,4)"`
	Currency             null.String         `gorm:"type:varchar(3)"`
	PaidOn               *time.Time
	EventData            null.String `gorm:"type:text"`
	Matched              bool        `gorm:"not null;default:false;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (MonnifyNotification) TableName() string { return "monnify_notifications" }
