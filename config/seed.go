package config

import (
	"errors"
	"os"

	"github.com/scothinks/barMan-backend/models"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first user with every permission flag set, so a fresh
// deployment can log in and grant the rest. No-op when any user already exists
// or when SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD are unset.
func SeedAdmin() {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var cnt int64
	if err := DB.Model(&models.User{}).Count(&cnt).Error; err != nil || cnt > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		LogError("config", "SeedAdmin", "hash password", nil, err)
		return
	}

	admin := models.User{
		Username:           username,
		Email:              os.Getenv("SEED_ADMIN_EMAIL"),
		PasswordHash:       string(hash),
		IsActive:           true,
		CanUpdateInventory: true,
		CanReportSales:     true,
		CanCreateCustomers: true,
		CanCreateTabs:      true,
		CanUpdateTabs:      true,
		CanManageUsers:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		// two replicas can race the count check; losing the unique index
		// race just means another instance already seeded
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			logg.Infof("admin user %q already seeded", admin.Username)
			return
		}
		LogError("config", "SeedAdmin", "create admin", admin.Username, err)
		return
	}
	logg.Infof("seeded admin user %q", admin.Username)
}
