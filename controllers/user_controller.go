package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/si-gho/pijar-pro-inventory/config"
	"github.com/si-gho/pijar-pro-inventory/service"
	"github.com/si-gho/pijar-pro-inventory/utils"
)

type UserCreateInput struct {
	Username string `json:"username"  binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

func GetAllUsers(c *gin.Context) {
	svc := service.NewService(config.DB)

	users, err := svc.ListUsers(c.Request.Context())
	if err != nil {
		config.LogError("controllers", "GetAllUsers", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data user", err)
		return
	}

	utils.Success(c, "Data user", users)
}

func CreateUser(c *gin.Context) {
	var in UserCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	svc := service.NewService(config.DB)

	user, err := svc.CreateUser(c.Request.Context(), service.CreateUserInput{
		Username: in.Username,
		FullName: in.FullName,
		Role:     in.Role,
	})
	if err != nil {
		config.LogError("controllers", "CreateUser", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan user", err)
		return
	}

	utils.Created(c, "User berhasil ditambahkan", user)
}
