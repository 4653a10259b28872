package models

import "time"

// Permission capability codes, one per boolean column on User.
const (
	PermUpdateInventory = "update_inventory"
	PermReportSales     = "report_sales"
	PermCreateCustomers = "create_customers"
	PermCreateTabs      = "create_tabs"
	PermUpdateTabs      = "update_tabs"
	PermManageUsers     = "manage_users"
)

type User struct {
	ID           uint   `gorm:"primaryKey"           json:"id"`
	Username     string `gorm:"uniqueIndex;size:120" json:"username"`
	Email        string `gorm:"size:180"             json:"email"`
	PasswordHash string `gorm:"size:255"             json:"-"`
	IsActive     bool   `gorm:"default:true"         json:"is_active"`

	CanUpdateInventory bool `gorm:"default:false" json:"can_update_inventory"`
	CanReportSales     bool `gorm:"default:false" json:"can_report_sales"`
	CanCreateCustomers bool `gorm:"default:false" json:"can_create_customers"`
	CanCreateTabs      bool `gorm:"default:false" json:"can_create_tabs"`
	CanUpdateTabs      bool `gorm:"default:false" json:"can_update_tabs"`
	CanManageUsers     bool `gorm:"default:false" json:"can_manage_users"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasPermission(code string) bool {
	switch code {
	case PermUpdateInventory:
		return u.CanUpdateInventory
	case PermReportSales:
		return u.CanReportSales
	case PermCreateCustomers:
		return u.CanCreateCustomers
	case PermCreateTabs:
		return u.CanCreateTabs
	case PermUpdateTabs:
		return u.CanUpdateTabs
	case PermManageUsers:
		return u.CanManageUsers
	}
	return false
}
