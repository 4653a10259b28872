package controllers

import (
	"errors"

	"github.com/scothinks/barMan-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleInput struct {
	ItemID        uint                 `json:"item_id" binding:"required"`
	Quantity      int                  `json:"quantity" binding:"required,gt=0"`
	CustomerID    *uint                `json:"customer_id"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

type SaleUpdateInput struct {
	Quantity      *int                  `json:"quantity" binding:"omitempty,gt=0"`
	CustomerID    *uint                 `json:"customer_id"` // 0 detaches the customer
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
}

// createSaleCore records one sale: stock guard, tab-limit projection, sale
// insert, inventory decrement and tab recompute, all on the caller's
// transaction. The returned flag reports whether the item ended at or below
// its low-stock threshold.
func createSaleCore(tx *gorm.DB, in SaleInput, recordedBy uint) (*models.Sale, bool, error) {
	// not left to the binding layer; direct callers get the same contract
	if in.Quantity <= 0 {
		return nil, false, &models.InvalidStateTransitionError{Reason: "quantity must be positive"}
	}

	status := in.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}
	if !status.Valid() {
		return nil, false, &models.InvalidStateTransitionError{Reason: "payment_status must be PENDING or DONE"}
	}

	var item models.InventoryItem
	if err := tx.First(&item, in.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, models.ErrItemNotFound
		}
		return nil, false, err
	}
	if item.IsDeleted {
		return nil, false, models.ErrItemNotFound
	}

	// cost * quantity at this instant; frozen afterwards
	total := item.Cost.Mul(decimal.NewFromInt(int64(in.Quantity)))

	// stock sufficiency comes first; the decrement rolls back with the
	// transaction if a later check fails
	if err := takeStock(tx, &item, in.Quantity); err != nil {
		return nil, false, err
	}

	if in.CustomerID != nil {
		var customer models.Customer
		if err := tx.First(&customer, *in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, models.ErrCustomerNotFound
			}
			return nil, false, err
		}

		// only PENDING sales land on the tab, so only they get projected
		if status == models.PaymentPending {
			current, err := pendingTotal(tx, customer.ID)
			if err != nil {
				return nil, false, err
			}
			projected := current.Add(total)
			if projected.GreaterThan(customer.TabLimit) {
				return nil, false, &models.TabLimitExceededError{
					CustomerID:   customer.ID,
					CustomerName: customer.Name,
					TabLimit:     customer.TabLimit,
					Projected:    projected,
				}
			}
		}
	}

	sale := models.Sale{
		ItemID:        item.ID,
		Quantity:      in.Quantity,
		PaymentStatus: status,
		CustomerID:    in.CustomerID,
		RecordedByID:  &recordedBy,
		TotalAmount:   total,
	}
	if err := tx.Create(&sale).Error; err != nil {
		return nil, false, err
	}

	if in.CustomerID != nil {
		if err := recomputeTab(tx, *in.CustomerID); err != nil {
			return nil, false, err
		}
	}

	if err := tx.First(&item, item.ID).Error; err != nil {
		return nil, false, err
	}
	return &sale, item.IsLowStock(), nil
}

// updateSaleCore applies a quantity delta to the item (unguarded; the stock
// may go negative here), moves the sale between customers, and recomputes the
// tab of every customer touched. Timestamp and total_amount stay frozen.
func updateSaleCore(tx *gorm.DB, saleID uint, in SaleUpdateInput) (*models.Sale, bool, error) {
	var sale models.Sale
	if err := tx.First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, models.ErrSaleNotFound
		}
		return nil, false, err
	}

	oldQuantity := sale.Quantity
	oldCustomerID := sale.CustomerID

	newStatus := sale.PaymentStatus
	if in.PaymentStatus != nil {
		if !in.PaymentStatus.Valid() {
			return nil, false, &models.InvalidStateTransitionError{Reason: "payment_status must be PENDING or DONE"}
		}
		newStatus = *in.PaymentStatus
	}

	newQuantity := oldQuantity
	if in.Quantity != nil {
		newQuantity = *in.Quantity
	}

	newCustomerID := oldCustomerID
	if in.CustomerID != nil {
		if *in.CustomerID == 0 {
			newCustomerID = nil
		} else {
			var customer models.Customer
			if err := tx.First(&customer, *in.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, false, models.ErrCustomerNotFound
				}
				return nil, false, err
			}
			newCustomerID = &customer.ID
		}
	}

	delta := newQuantity - oldQuantity
	if delta != 0 {
		if err := adjustStock(tx, sale.ItemID, -delta); err != nil {
			return nil, false, err
		}
	}

	updates := map[string]interface{}{
		"quantity":       newQuantity,
		"payment_status": newStatus,
		"customer_id":    newCustomerID,
	}
	if err := tx.Model(&sale).Updates(updates).Error; err != nil {
		return nil, false, err
	}
	sale.Quantity = newQuantity
	sale.PaymentStatus = newStatus
	sale.CustomerID = newCustomerID

	// full recompute for every customer the sale touched, old and new
	if oldCustomerID != nil {
		if err := recomputeTab(tx, *oldCustomerID); err != nil {
			return nil, false, err
		}
	}
	if newCustomerID != nil && (oldCustomerID == nil || *newCustomerID != *oldCustomerID) {
		if err := recomputeTab(tx, *newCustomerID); err != nil {
			return nil, false, err
		}
	}

	lowStock := false
	if delta != 0 {
		var item models.InventoryItem
		if err := tx.First(&item, sale.ItemID).Error; err != nil {
			return nil, false, err
		}
		lowStock = item.IsLowStock()
	}
	return &sale, lowStock, nil
}

// deleteSaleCore removes the sale, hands its quantity back to the item and
// recomputes the customer's tab, all atomically.
func deleteSaleCore(tx *gorm.DB, saleID uint) error {
	var sale models.Sale
	if err := tx.First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrSaleNotFound
		}
		return err
	}

	if err := adjustStock(tx, sale.ItemID, sale.Quantity); err != nil {
		return err
	}
	if err := tx.Delete(&sale).Error; err != nil {
		return err
	}
	if sale.CustomerID != nil {
		return recomputeTab(tx, *sale.CustomerID)
	}
	return nil
}
