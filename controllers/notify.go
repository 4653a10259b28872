package controllers

import (
	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"

	"github.com/sirupsen/logrus"
)

// LowStockNotifier is the restock alert sink. Best effort: it runs after the
// surrounding transaction committed and a failure to notify never rolls a
// sale back. Swappable for tests or a real channel (mail, chat webhook).
var LowStockNotifier = func(item *models.InventoryItem) {
	config.GetLogger().WithFields(logrus.Fields{
		"item_id":   item.ID,
		"item_name": item.Name,
		"quantity":  item.Quantity,
		"threshold": item.LowInventoryThreshold,
	}).Warn("low stock")
}

func emitLowStock(itemID uint) {
	if LowStockNotifier == nil {
		return
	}
	var item models.InventoryItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		return
	}
	LowStockNotifier(&item)
}
