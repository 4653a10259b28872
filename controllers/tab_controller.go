package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllTabs(c *gin.Context) {
	var tabs []models.CustomerTab
	if err := config.DB.Preload("Customer").Order("id").Find(&tabs).Error; err != nil {
		config.LogError("controllers", "GetAllTabs", "list tabs", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tabs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tabs fetched", "data": tabs})
}

func GetTabByCustomer(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer id"})
		return
	}

	var tab models.CustomerTab
	if err := config.DB.Preload("Customer").Where("customer_id = ?", customerID).First(&tab).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tab not found"})
			return
		}
		config.LogError("controllers", "GetTabByCustomer", "fetch tab", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tab"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tab fetched", "data": tab})
}

type TabInput struct {
	CustomerID uint `json:"customer_id" binding:"required"`
}

// CreateTab opens a tab for a customer. The amount is never taken from the
// client; it is recomputed from the customer's pending sales, which for a new
// customer is zero.
func CreateTab(c *gin.Context) {
	var in TabInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	tab, err := recomputeTabForCustomer(in.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create tab", "error": err.Error()})
			return
		}
		config.LogError("controllers", "CreateTab", "create tab", in.CustomerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create tab"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tab created", "data": tab})
}

// RecomputeTab forces a recompute for one customer. Useful as a repair path;
// normal mutations keep tabs consistent on their own.
func RecomputeTab(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer id"})
		return
	}

	tab, err := recomputeTabForCustomer(uint(customerID))
	if err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		config.LogError("controllers", "RecomputeTab", "recompute tab", customerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to recompute tab"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tab recomputed", "data": tab})
}

func recomputeTabForCustomer(customerID uint) (*models.CustomerTab, error) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCustomerNotFound
			}
			return err
		}
		return recomputeTab(tx, customerID)
	})
	if err != nil {
		return nil, err
	}

	var tab models.CustomerTab
	if err := config.DB.Preload("Customer").Where("customer_id = ?", customerID).First(&tab).Error; err != nil {
		return nil, err
	}
	return &tab, nil
}
