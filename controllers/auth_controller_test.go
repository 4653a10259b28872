package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/scothinks/barMan-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedLoginUser(t *testing.T, db *gorm.DB, username, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: username, PasswordHash: string(hash), IsActive: active}
	require.NoError(t, db.Create(&user).Error)
	// gorm skips zero-value fields that carry a default tag, so IsActive=false
	// would otherwise be stored as the column default (true)
	require.NoError(t, db.Model(&user).Update("is_active", active).Error)
	return &user
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	seedLoginUser(t, db, "bartender", "opensesame", true)
	seedLoginUser(t, db, "retired", "opensesame", false)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "bartender", "password": "opensesame"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "bartender", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "nobody", "password": "opensesame"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// inactive accounts cannot log in at all
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "retired", "password": "opensesame"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	user := seedLoginUser(t, db, "bartender", "opensesame", true)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", user.ID) })
	r.PUT("/auth/password", ChangePassword)
	r.POST("/auth/login", Login)

	// wrong current password
	w := doJSON(t, r, http.MethodPut, "/auth/password", gin.H{
		"current_password": "wrong", "new_password": "longenough",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// new password too short
	w = doJSON(t, r, http.MethodPut, "/auth/password", gin.H{
		"current_password": "opensesame", "new_password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/auth/password", gin.H{
		"current_password": "opensesame", "new_password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "bartender", "password": "longenough"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "bartender", "password": "opensesame"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
