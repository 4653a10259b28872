package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeSaleError maps core errors onto the API contract: validation failures
// come back as 400 with enough context to explain the rejection, a missing
// sale is 404, anything unexpected is a generic 500 that leaks no internals.
func writeSaleError(c *gin.Context, err error) {
	var insufficient *models.InsufficientInventoryError
	var tabLimit *models.TabLimitExceededError
	var invalid *models.InvalidStateTransitionError

	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Failed to record sale",
			"error":     insufficient.Error(),
			"item_id":   insufficient.ItemID,
			"shortfall": insufficient.Requested - insufficient.Available,
		})
	case errors.As(err, &tabLimit):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":          "Failed to record sale",
			"error":            tabLimit.Error(),
			"customer_id":      tabLimit.CustomerID,
			"tab_limit":        tabLimit.TabLimit,
			"projected_amount": tabLimit.Projected,
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to record sale", "error": invalid.Error()})
	case errors.Is(err, models.ErrItemNotFound), errors.Is(err, models.ErrCustomerNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to record sale", "error": err.Error()})
	case errors.Is(err, models.ErrSaleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
	default:
		config.LogError("controllers", "writeSaleError", "sale mutation", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record sale"})
	}
}

func CreateSale(c *gin.Context) {
	var in SaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "error": err.Error()})
		return
	}

	var sale *models.Sale
	var lowStock bool
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var coreErr error
		sale, lowStock, coreErr = createSaleCore(tx, in, uid)
		return coreErr
	})
	if err != nil {
		writeSaleError(c, err)
		return
	}

	// fire-and-forget, only after the transaction committed
	if lowStock {
		emitLowStock(sale.ItemID)
	}

	// reload failure is logged, not surfaced; the sale is committed either way
	if err := config.DB.Preload("Item").Preload("Customer").First(sale, sale.ID).Error; err != nil {
		config.LogError("controllers", "CreateSale", "reload sale", sale.ID, err)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sale recorded", "data": sale})
}

type BulkSaleInput struct {
	Sales []SaleInput `json:"sales" binding:"required,min=1,dive"`
}

// BulkCreateSales validates and records the whole batch in one transaction;
// the first failing entry rolls back everything. Stock and tab projections
// are cumulative across the batch because each entry runs through the same
// core as a single create.
func BulkCreateSales(c *gin.Context) {
	var in BulkSaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "error": err.Error()})
		return
	}

	created := make([]*models.Sale, 0, len(in.Sales))
	lowStockItems := make(map[uint]bool)
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for i, req := range in.Sales {
			sale, lowStock, coreErr := createSaleCore(tx, req, uid)
			if coreErr != nil {
				return fmt.Errorf("sale %d: %w", i+1, coreErr)
			}
			created = append(created, sale)
			if lowStock {
				lowStockItems[sale.ItemID] = true
			}
		}
		return nil
	})
	if err != nil {
		writeSaleError(c, err)
		return
	}

	for itemID := range lowStockItems {
		emitLowStock(itemID)
	}

	ids := make([]uint, 0, len(created))
	for _, s := range created {
		ids = append(ids, s.ID)
	}
	var sales []models.Sale
	if err := config.DB.Preload("Item").Preload("Customer").Where("id IN ?", ids).Order("id").Find(&sales).Error; err != nil {
		config.LogError("controllers", "BulkCreateSales", "reload sales", ids, err)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sales recorded", "data": sales})
}

func UpdateSale(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var in SaleUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var sale *models.Sale
	var lowStock bool
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var coreErr error
		sale, lowStock, coreErr = updateSaleCore(tx, uint(id64), in)
		return coreErr
	})
	if err != nil {
		writeSaleError(c, err)
		return
	}

	if lowStock {
		emitLowStock(sale.ItemID)
	}

	if err := config.DB.Preload("Item").Preload("Customer").First(sale, sale.ID).Error; err != nil {
		config.LogError("controllers", "UpdateSale", "reload sale", sale.ID, err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale updated", "data": sale})
}

func DeleteSale(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteSaleCore(tx, uint(id64))
	})
	if err != nil {
		writeSaleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetAllSales(c *gin.Context) {
	var sales []models.Sale
	if err := config.DB.Preload("Item").Preload("Customer").Order("id DESC").Find(&sales).Error; err != nil {
		config.LogError("controllers", "GetAllSales", "list sales", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales fetched", "data": sales})
}

func GetSaleByID(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var sale models.Sale
	if err := config.DB.Preload("Item").Preload("Customer").First(&sale, uint(id64)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}
		config.LogError("controllers", "GetSaleByID", "fetch sale", id64, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sale"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale fetched", "data": sale})
}

func SaleSummary(c *gin.Context) {
	var pending, done int64
	if err := config.DB.Model(&models.Sale{}).Where("payment_status = ?", models.PaymentPending).Count(&pending).Error; err != nil {
		config.LogError("controllers", "SaleSummary", "count pending", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch summary"})
		return
	}
	if err := config.DB.Model(&models.Sale{}).Where("payment_status = ?", models.PaymentDone).Count(&done).Error; err != nil {
		config.LogError("controllers", "SaleSummary", "count done", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending_transactions": pending,
		"done_transactions":    done,
	})
}
