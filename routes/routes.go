package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/si-gho/pijar-pro-inventory/controllers"
	"github.com/si-gho/pijar-pro-inventory/middlewares"
)

func SetupRoutes(r *gin.Engine) {
	r.Use(middlewares.RequestID())

	api := r.Group("/api")
	{
		// master barang
		items := api.Group("/inventory-items")
		{
			items.GET("", controllers.GetAllItems)
			items.POST("", controllers.CreateItem)
		}

		// transaksi (view gabungan barang + user)
		inventory := api.Group("/inventory")
		{
			inventory.GET("", controllers.GetAllTransactions)
			inventory.POST("", controllers.CreateTransaction)
		}

		users := api.Group("/users")
		{
			users.GET("", controllers.GetAllUsers)
			users.POST("", controllers.CreateUser)
		}

		api.GET("/stats", controllers.GetStats)

		reports := api.Group("/reports")
		{
			reports.GET("/csv", controllers.ExportCSV)
			reports.GET("/xlsx", controllers.ExportXLSX)
		}

		api.POST("/seed", controllers.SeedDatabase)
	}
}
