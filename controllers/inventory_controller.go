package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var minItemCost = decimal.NewFromFloat(0.01)

type InventoryItemInput struct {
	Name                  string          `json:"name" binding:"required"`
	Cost                  decimal.Decimal `json:"cost" binding:"required"`
	Quantity              int             `json:"quantity"`
	LowInventoryThreshold *int            `json:"low_inventory_threshold"`
}

func CreateInventoryItem(c *gin.Context) {
	var in InventoryItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if in.Cost.LessThan(minItemCost) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": "cost must be at least 0.01"})
		return
	}

	item := models.InventoryItem{
		Name:                  in.Name,
		Cost:                  in.Cost,
		Quantity:              in.Quantity,
		LowInventoryThreshold: 10,
	}
	if in.LowInventoryThreshold != nil {
		item.LowInventoryThreshold = *in.LowInventoryThreshold
	}

	if err := config.DB.Create(&item).Error; err != nil {
		config.LogError("controllers", "CreateInventoryItem", "create item", in.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item created", "data": item})
}

func GetAllInventoryItems(c *gin.Context) {
	q := config.DB.Order("id")
	if c.Query("include_deleted") != "true" {
		q = q.Where("is_deleted = ?", false)
	}

	var items []models.InventoryItem
	if err := q.Find(&items).Error; err != nil {
		config.LogError("controllers", "GetAllInventoryItems", "list items", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Items fetched", "data": items})
}

func GetInventoryItemByID(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item fetched", "data": item})
}

func UpdateInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var in struct {
		Name                  *string          `json:"name"`
		Cost                  *decimal.Decimal `json:"cost"`
		Quantity              *int             `json:"quantity"`
		LowInventoryThreshold *int             `json:"low_inventory_threshold"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Cost != nil {
		if in.Cost.LessThan(minItemCost) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": "cost must be at least 0.01"})
			return
		}
		updates["cost"] = *in.Cost
	}
	if in.Quantity != nil {
		updates["quantity"] = *in.Quantity
	}
	if in.LowInventoryThreshold != nil {
		updates["low_inventory_threshold"] = *in.LowInventoryThreshold
	}

	if len(updates) > 0 {
		if err := config.DB.Model(item).Updates(updates).Error; err != nil {
			config.LogError("controllers", "UpdateInventoryItem", "update item", item.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update item"})
			return
		}
	}

	config.DB.First(item, item.ID)
	if item.IsLowStock() && LowStockNotifier != nil {
		LowStockNotifier(item)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "data": item})
}

// UpdateInventoryQuantity is the direct stock correction endpoint (recount,
// breakage). Sales never go through here.
func UpdateInventoryQuantity(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var in struct {
		Quantity              *int `json:"quantity"`
		LowInventoryThreshold *int `json:"low_inventory_threshold"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.Quantity != nil {
		updates["quantity"] = *in.Quantity
	}
	if in.LowInventoryThreshold != nil {
		updates["low_inventory_threshold"] = *in.LowInventoryThreshold
	}
	if len(updates) > 0 {
		if err := config.DB.Model(item).Updates(updates).Error; err != nil {
			config.LogError("controllers", "UpdateInventoryQuantity", "update quantity", item.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update quantity"})
			return
		}
	}

	config.DB.First(item, item.ID)
	if item.IsLowStock() && LowStockNotifier != nil {
		LowStockNotifier(item)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "data": item})
}

// SoftDeleteInventoryItem marks the item deleted and starts the 30-day grace
// period. ACTIVE -> SOFT_DELETED.
func SoftDeleteInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	if item.IsDeleted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transition", "error": "item is already soft-deleted"})
		return
	}

	now := time.Now().UTC()
	if err := config.DB.Model(item).Updates(map[string]interface{}{
		"is_deleted":          true,
		"delete_requested_at": now,
	}).Error; err != nil {
		config.LogError("controllers", "SoftDeleteInventoryItem", "soft delete", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete item"})
		return
	}
	item.IsDeleted = true
	item.DeleteRequestedAt = &now
	c.JSON(http.StatusOK, gin.H{"message": "Item soft-deleted", "data": item})
}

// ConfirmDeleteInventoryItem purges a soft-deleted item once the grace period
// has elapsed. The item's sales go with it; tabs of customers on those sales
// are recomputed in the same transaction so no tab keeps charging for rows
// that no longer exist. SOFT_DELETED -> PURGED, terminal.
func ConfirmDeleteInventoryItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	// state checks run inside the transaction, so a racing restore or a
	// second confirm sees the committed row, not a stale pre-read
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrItemNotFound
			}
			return err
		}
		if !item.IsDeleted || item.DeleteRequestedAt == nil {
			return &models.InvalidStateTransitionError{Reason: "item is not soft-deleted"}
		}
		if elapsed := time.Since(*item.DeleteRequestedAt); elapsed < models.DeleteGracePeriod {
			return &models.GracePeriodNotElapsedError{ItemID: item.ID, Remaining: models.DeleteGracePeriod - elapsed}
		}

		var customerIDs []uint
		if err := tx.Model(&models.Sale{}).
			Where("item_id = ? AND customer_id IS NOT NULL", item.ID).
			Distinct().
			Pluck("customer_id", &customerIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.Sale{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.InventoryItem{}, item.ID).Error; err != nil {
			return err
		}
		for _, id := range customerIDs {
			if err := recomputeTab(tx, id); err != nil {
				return err
			}
		}
		return nil
	})

	var invalid *models.InvalidStateTransitionError
	var grace *models.GracePeriodNotElapsedError
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
	case errors.As(err, &invalid), errors.As(err, &grace):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transition", "error": err.Error()})
	default:
		config.LogError("controllers", "ConfirmDeleteInventoryItem", "purge item", itemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete item"})
	}
}

// RestoreInventoryItem clears the soft delete. SOFT_DELETED -> ACTIVE.
func RestoreInventoryItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	if !item.IsDeleted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid transition", "error": "item is not soft-deleted"})
		return
	}

	if err := config.DB.Model(item).Updates(map[string]interface{}{
		"is_deleted":          false,
		"delete_requested_at": nil,
	}).Error; err != nil {
		config.LogError("controllers", "RestoreInventoryItem", "restore", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to restore item"})
		return
	}
	item.IsDeleted = false
	item.DeleteRequestedAt = nil
	c.JSON(http.StatusOK, gin.H{"message": "Item restored", "data": item})
}

func findItem(c *gin.Context) (*models.InventoryItem, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return nil, false
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return nil, false
		}
		config.LogError("controllers", "findItem", "fetch item", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch item"})
		return nil, false
	}
	return &item, true
}
