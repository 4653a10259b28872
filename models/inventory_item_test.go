package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	item := InventoryItem{Quantity: 11, LowInventoryThreshold: 10}
	assert.False(t, item.IsLowStock())

	item.Quantity = 10
	assert.True(t, item.IsLowStock())

	item.Quantity = -3
	assert.True(t, item.IsLowStock())
}
