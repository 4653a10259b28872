package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID          uint            `gorm:"primaryKey"                          json:"id"`
	Name        string          `gorm:"size:100;not null"                   json:"name"`
	PhoneNumber string          `gorm:"size:20"                             json:"phone_number"`
	TabLimit    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tab_limit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerTab is the denormalized sum of the customer's PENDING sales. The
// unique index enforces one tab per customer; Amount is only ever written by
// the recompute, never taken from a client.
type CustomerTab struct {
	ID         uint            `gorm:"primaryKey"                          json:"id"`
	CustomerID uint            `gorm:"uniqueIndex;not null"                json:"customer_id"`
	Customer   *Customer       `json:"customer,omitempty"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
