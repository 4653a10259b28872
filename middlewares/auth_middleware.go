package middlewares

import (
	"net/http"
	"strings"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"
	"github.com/scothinks/barMan-backend/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// jwt numbers decode as float64
		uidF, ok := claims["user_id"].(float64)
		if !ok || uidF <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(uidF))
		c.Set("username", claims["username"])
		c.Next()
	}
}

// RequirePerm loads the current user and checks one capability flag. Must run
// after AuthMiddleware.
func RequirePerm(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID, ok := c.Get("user_id")
		uid, okCast := rawID.(uint)
		if !ok || !okCast || uid == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, uid).Error; err != nil || !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		if !user.HasPermission(code) {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied: " + code})
			c.Abort()
			return
		}

		c.Set("current_user", &user)
		c.Next()
	}
}
