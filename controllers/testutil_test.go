package controllers

import (
	"errors"
	"testing"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database. One open
// connection, otherwise each pooled connection would get its own empty
// :memory: db.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.Customer{},
		&models.CustomerTab{},
		&models.Sale{},
	))

	config.DB = db
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name string, cost string, quantity int) *models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name:                  name,
		Cost:                  mustDecimal(t, cost),
		Quantity:              quantity,
		LowInventoryThreshold: 0,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func seedCustomer(t *testing.T, db *gorm.DB, name string, tabLimit string) *models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:     name,
		TabLimit: mustDecimal(t, tabLimit),
	}
	require.NoError(t, db.Create(&customer).Error)
	return &customer
}

func seedRecorder(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{
		Username:       "bartender",
		PasswordHash:   "x",
		IsActive:       true,
		CanReportSales: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func itemQuantity(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var item models.InventoryItem
	require.NoError(t, db.First(&item, itemID).Error)
	return item.Quantity
}

func tabAmount(t *testing.T, db *gorm.DB, customerID uint) decimal.Decimal {
	t.Helper()
	var tab models.CustomerTab
	err := db.Where("customer_id = ?", customerID).First(&tab).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero
	}
	require.NoError(t, err)
	return tab.Amount
}

func createSaleT(t *testing.T, db *gorm.DB, in SaleInput, recordedBy uint) (*models.Sale, error) {
	t.Helper()
	var sale *models.Sale
	err := db.Transaction(func(tx *gorm.DB) error {
		var coreErr error
		sale, _, coreErr = createSaleCore(tx, in, recordedBy)
		return coreErr
	})
	return sale, err
}
