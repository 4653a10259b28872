package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerInput struct {
	Name        string          `json:"name" binding:"required"`
	PhoneNumber string          `json:"phone_number"`
	TabLimit    decimal.Decimal `json:"tab_limit"`
}

func CreateCustomer(c *gin.Context) {
	var in CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if in.TabLimit.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": "tab_limit must not be negative"})
		return
	}

	customer := models.Customer{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		TabLimit:    in.TabLimit,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		config.LogError("controllers", "CreateCustomer", "create customer", in.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "data": customer})
}

func GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("id").Find(&customers).Error; err != nil {
		config.LogError("controllers", "GetAllCustomers", "list customers", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customers fetched", "data": customers})
}

func GetCustomerByID(c *gin.Context) {
	customer, ok := findCustomer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer fetched", "data": customer})
}

func UpdateCustomer(c *gin.Context) {
	customer, ok := findCustomer(c)
	if !ok {
		return
	}

	var in struct {
		Name        *string          `json:"name"`
		PhoneNumber *string          `json:"phone_number"`
		TabLimit    *decimal.Decimal `json:"tab_limit"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.TabLimit != nil {
		if in.TabLimit.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": "tab_limit must not be negative"})
			return
		}
		updates["tab_limit"] = *in.TabLimit
	}

	if len(updates) > 0 {
		if err := config.DB.Model(customer).Updates(updates).Error; err != nil {
			config.LogError("controllers", "UpdateCustomer", "update customer", customer.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update customer"})
			return
		}
	}

	config.DB.First(customer, customer.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated", "data": customer})
}

// DeleteCustomer detaches the customer's sales (they keep their totals,
// recorded against no one) and removes the tab with the customer row.
func DeleteCustomer(c *gin.Context) {
	customer, ok := findCustomer(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Sale{}).
			Where("customer_id = ?", customer.ID).
			UpdateColumn("customer_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.CustomerTab{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, customer.ID).Error
	})
	if err != nil {
		config.LogError("controllers", "DeleteCustomer", "delete customer", customer.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete customer"})
		return
	}
	c.Status(http.StatusNoContent)
}

func findCustomer(c *gin.Context) (*models.Customer, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return nil, false
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return nil, false
		}
		config.LogError("controllers", "findCustomer", "fetch customer", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch customer"})
		return nil, false
	}
	return &customer, true
}
