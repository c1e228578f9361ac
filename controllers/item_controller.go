package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/si-gho/pijar-pro-inventory/config"
	"github.com/si-gho/pijar-pro-inventory/models"
	"github.com/si-gho/pijar-pro-inventory/service"
	"github.com/si-gho/pijar-pro-inventory/utils"
)

type ItemCreateInput struct {
	ItemName    string `json:"item_name" binding:"required"`
	Description string `json:"description"`
}

// ItemView adalah master barang plus status stok terhitung.
type ItemView struct {
	models.Inventory
	StockStatus service.StockStatus `json:"stock_status"`
}

func GetAllItems(c *gin.Context) {
	svc := service.NewService(config.DB)

	items, err := svc.ListItems(c.Request.Context())
	if err != nil {
		config.LogError("controllers", "GetAllItems", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data barang", err)
		return
	}

	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, ItemView{
			Inventory:   it,
			StockStatus: service.EvaluateStock(it.StockQty, it.MinStock, it.MaxStock),
		})
	}

	utils.Success(c, "Data barang", views)
}

func CreateItem(c *gin.Context) {
	var in ItemCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	svc := service.NewService(config.DB)

	item, err := svc.CreateMasterItem(c.Request.Context(), service.CreateItemInput{
		ItemName:    in.ItemName,
		Description: in.Description,
	})

	var verr *service.ValidationError
	switch {
	case err == nil:
		utils.Created(c, "Barang berhasil ditambahkan", item)
	case errors.As(err, &verr):
		utils.ErrorDetails(c, http.StatusBadRequest, "Data tidak valid", verr.Fields)
	case errors.Is(err, service.ErrDuplicateItem):
		utils.Error(c, http.StatusBadRequest, "Nama barang sudah digunakan", nil)
	default:
		config.LogError("controllers", "CreateItem", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan barang", err)
	}
}
