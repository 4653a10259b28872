package main

import (
	"os"

	"github.com/scothinks/barMan-backend/config"
	"github.com/scothinks/barMan-backend/models"
	"github.com/scothinks/barMan-backend/routes"
	"github.com/scothinks/barMan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; deployments set real env vars
	_ = godotenv.Load()

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.Customer{},
		&models.CustomerTab{},
		&models.Sale{},
	); err != nil {
		config.LogError("main", "main", "auto-migrate", nil, err)
		os.Exit(1)
	}

	config.SeedAdmin()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.JWTSecret = []byte(s)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "barMan API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
