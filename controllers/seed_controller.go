package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/si-gho/pijar-pro-inventory/config"
	"github.com/si-gho/pijar-pro-inventory/utils"
)

// POST /api/seed — bootstrap data contoh untuk lingkungan development.
func SeedDatabase(c *gin.Context) {
	if err := config.SeedDatabase(c.Request.Context()); err != nil {
		config.LogError("controllers", "SeedDatabase", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal seed database", err)
		return
	}
	utils.Success(c, "Seed database selesai", nil)
}
