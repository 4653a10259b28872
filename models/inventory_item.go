package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Grace period between a soft delete and the point a hard delete is allowed.
const DeleteGracePeriod = 30 * 24 * time.Hour

type InventoryItem struct {
	ID                    uint            `gorm:"primaryKey"                    json:"id"`
	Name                  string          `gorm:"size:100;not null"             json:"name"`
	Cost                  decimal.Decimal `gorm:"type:decimal(10,2);not null"   json:"cost"`
	Quantity              int             `gorm:"not null;default:0"            json:"quantity"`
	LowInventoryThreshold int             `gorm:"not null;default:10"           json:"low_inventory_threshold"`

	IsDeleted         bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeleteRequestedAt *time.Time `json:"delete_requested_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowInventoryThreshold
}
