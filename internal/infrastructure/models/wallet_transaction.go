package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type WalletTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Status      string          `gorm:"type:varchar(20);not null"`
	ReferenceID null.String     `gorm:"type:varchar(100);index"`
	Description null.String     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Wallet Wallet `gorm:"foreignKey:WalletID;references:ID"`
}

func (WalletTransaction) TableName() string { return "wallet_transactions" }
