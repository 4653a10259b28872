package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentDone    PaymentStatus = "DONE"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentDone
}

type Sale struct {
	ID       uint           `gorm:"primaryKey"         json:"id"`
	ItemID   uint           `gorm:"not null;index"     json:"item_id"`
	Item     *InventoryItem `json:"item,omitempty"`
	Quantity int            `gorm:"not null"           json:"quantity"`

	// set once at creation, never updated
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`

	PaymentStatus PaymentStatus `gorm:"size:10;not null;default:'PENDING';index" json:"payment_status"`

	CustomerID *uint     `gorm:"index" json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`

	RecordedByID *uint `gorm:"index" json:"recorded_by_id"`
	RecordedBy   *User `gorm:"foreignKey:RecordedByID" json:"recorded_by,omitempty"`

	// item.Cost * Quantity at creation time, frozen thereafter
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`

	UpdatedAt time.Time `json:"updated_at"`
}
