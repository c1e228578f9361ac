package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/si-gho/pijar-pro-inventory/config"
	"github.com/si-gho/pijar-pro-inventory/models"
	"github.com/si-gho/pijar-pro-inventory/routes"
)

func main() {
	_ = godotenv.Load()

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Inventory{},
		&models.Transaction{},
	); err != nil {
		config.GetLogger().Fatalf("auto-migrate gagal: %v", err)
	}

	if os.Getenv("SEED_ON_START") == "true" {
		if err := config.SeedDatabase(context.Background()); err != nil {
			config.GetLogger().Fatalf("seed gagal: %v", err)
		}
	}

	r := gin.Default()
	r.Use(cors.Default())

	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Pijar Pro Inventory API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
