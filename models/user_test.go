package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	u := User{
		CanReportSales: true,
		CanCreateTabs:  true,
	}

	tests := []struct {
		code string
		want bool
	}{
		{PermReportSales, true},
		{PermCreateTabs, true},
		{PermUpdateInventory, false},
		{PermCreateCustomers, false},
		{PermUpdateTabs, false},
		{PermManageUsers, false},
		{"unknown_code", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, u.HasPermission(tt.code), "code %q", tt.code)
	}
}

func TestHasPermissionAllFlags(t *testing.T) {
	u := User{
		CanUpdateInventory: true,
		CanReportSales:     true,
		CanCreateCustomers: true,
		CanCreateTabs:      true,
		CanUpdateTabs:      true,
		CanManageUsers:     true,
	}
	for _, code := range []string{
		PermUpdateInventory, PermReportSales, PermCreateCustomers,
		PermCreateTabs, PermUpdateTabs, PermManageUsers,
	} {
		assert.True(t, u.HasPermission(code), "code %q", code)
	}
}
