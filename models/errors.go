package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSaleNotFound     = errors.New("sale not found")
)

// InsufficientInventoryError rejects a sale that asks for more units than the
// item currently has.
type InsufficientInventoryError struct {
	ItemID    uint
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough inventory for %q: have %d, requested %d (short by %d)",
		e.ItemName, e.Available, e.Requested, e.Requested-e.Available)
}

// TabLimitExceededError rejects a pending sale whose total would push the
// customer's tab past their limit.
type TabLimitExceededError struct {
	CustomerID   uint
	CustomerName string
	TabLimit     decimal.Decimal
	Projected    decimal.Decimal
}

func (e *TabLimitExceededError) Error() string {
	return fmt.Sprintf("tab limit exceeded for %q: limit %s, sale would bring tab to %s",
		e.CustomerName, e.TabLimit.StringFixed(2), e.Projected.StringFixed(2))
}

// GracePeriodNotElapsedError rejects a hard delete attempted before the
// 30-day grace window has passed.
type GracePeriodNotElapsedError struct {
	ItemID    uint
	Remaining time.Duration
}

func (e *GracePeriodNotElapsedError) Error() string {
	days := int(e.Remaining.Hours()/24) + 1
	return fmt.Sprintf("grace period not elapsed for item %d: about %d day(s) remaining", e.ItemID, days)
}

// InvalidStateTransitionError covers soft-delete lifecycle misuse (restore of
// an active item, double soft delete, confirm on an active item) and invalid
// sale updates.
type InvalidStateTransitionError struct {
	Reason string
}

func (e *InvalidStateTransitionError) Error() string {
	return e.Reason
}
