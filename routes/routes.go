package routes

import (
	"github.com/scothinks/barMan-backend/controllers"
	"github.com/scothinks/barMan-backend/middlewares"
	"github.com/scothinks/barMan-backend/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		auth := api.Group("/", middlewares.AuthMiddleware())
		{
			auth.GET("/auth/me", controllers.Me)
			auth.PUT("/auth/password", controllers.ChangePassword)

			inventory := auth.Group("/inventory")
			{
				inventory.GET("/", controllers.GetAllInventoryItems)
				inventory.GET("/:id", controllers.GetInventoryItemByID)

				manage := inventory.Group("/", middlewares.RequirePerm(models.PermUpdateInventory))
				{
					manage.POST("/", controllers.CreateInventoryItem)
					manage.PUT("/:id", controllers.UpdateInventoryItem)
					manage.PATCH("/:id/quantity", controllers.UpdateInventoryQuantity)
					manage.DELETE("/:id", controllers.SoftDeleteInventoryItem)
					manage.POST("/:id/soft-delete", controllers.SoftDeleteInventoryItem)
					manage.POST("/:id/confirm-delete", controllers.ConfirmDeleteInventoryItem)
					manage.POST("/:id/restore", controllers.RestoreInventoryItem)
				}
			}

			sales := auth.Group("/sales")
			{
				sales.GET("/", controllers.GetAllSales)
				sales.GET("/summary", controllers.SaleSummary)
				sales.GET("/:id", controllers.GetSaleByID)

				record := sales.Group("/", middlewares.RequirePerm(models.PermReportSales))
				{
					record.POST("/", controllers.CreateSale)
					record.POST("/bulk", controllers.BulkCreateSales)
					record.PUT("/:id", controllers.UpdateSale)
					record.DELETE("/:id", controllers.DeleteSale)
				}
			}

			customers := auth.Group("/customers")
			{
				customers.GET("/", controllers.GetAllCustomers)
				customers.GET("/:id", controllers.GetCustomerByID)
				customers.POST("/", middlewares.RequirePerm(models.PermCreateCustomers), controllers.CreateCustomer)
				customers.PUT("/:id", controllers.UpdateCustomer)
				customers.DELETE("/:id", controllers.DeleteCustomer)
			}

			tabs := auth.Group("/tabs")
			{
				tabs.GET("/", controllers.GetAllTabs)
				tabs.GET("/:customerId", controllers.GetTabByCustomer)
				tabs.POST("/", middlewares.RequirePerm(models.PermCreateTabs), controllers.CreateTab)
				tabs.POST("/:customerId/recompute", middlewares.RequirePerm(models.PermUpdateTabs), controllers.RecomputeTab)
			}
		}
	}
}
