package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type PaystackNotification struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaystackID      int64           `gorm:"not null"`
	Event           string          `gorm:"type:varchar(50);not null"`
	Domain          null.String     `gorm:"type:varchar(50)"`
	Status          string          `gorm:"type:varchar(50);not null"`
	Reference       string          `gorm:"type:varchar(100);not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	GatewayResponse null.String     `gorm:"type:varchar(255)"`
	Channel         null.String     `gorm:"type:varchar(50)"`
	IPAddress       null.String     `gorm:"type:varchar(64)"`
	PaidAt          *time.Time
	Customer        null.String `gorm:"type:text"`
	Authorization   null.String `gorm:"type:text"`
	Matched         bool        `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PaystackNotification) TableName() string { return "paystack_notifications" }
