package controllers

import (
	"github.com/scothinks/barMan-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adjustStock applies a raw quantity delta inside the caller's transaction.
// It does not enforce quantity >= 0; that policy lives with the callers, and
// the update path deliberately has none.
func adjustStock(tx *gorm.DB, itemID uint, delta int) error {
	if delta == 0 {
		return nil
	}
	res := tx.Model(&models.InventoryItem{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// takeStock decrements only when enough units remain. Check and decrement are
// one conditional UPDATE, so two concurrent sales cannot both pass the check
// and drive the quantity negative.
func takeStock(tx *gorm.DB, item *models.InventoryItem, qty int) error {
	res := tx.Model(&models.InventoryItem{}).
		Where("id = ? AND quantity >= ?", item.ID, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &models.InsufficientInventoryError{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Available: item.Quantity,
			Requested: qty,
		}
	}
	return nil
}

// pendingTotal sums the customer's PENDING sales straight from the sales
// table.
func pendingTotal(tx *gorm.DB, customerID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := tx.Model(&models.Sale{}).
		Where("customer_id = ? AND payment_status = ?", customerID, models.PaymentPending).
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// recomputeTab rewrites the customer's tab from scratch as the sum of their
// PENDING sales. Always a full recompute, never an incremental counter, so
// out-of-order updates cannot leave the tab drifted. The unique index on
// customer_id keeps it one tab per customer; the upsert creates the row when
// absent.
func recomputeTab(tx *gorm.DB, customerID uint) error {
	total, err := pendingTotal(tx, customerID)
	if err != nil {
		return err
	}
	tab := models.CustomerTab{CustomerID: customerID, Amount: total}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&tab).Error
}
