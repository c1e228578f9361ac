package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/si-gho/pijar-pro-inventory/config"
	"github.com/si-gho/pijar-pro-inventory/models"
	"github.com/si-gho/pijar-pro-inventory/service"
	"github.com/si-gho/pijar-pro-inventory/utils"
)

type TransactionCreateInput struct {
	Date     string `json:"date"     binding:"required"`
	Name     string `json:"name"     binding:"required"`
	Type     string `json:"type"     binding:"required,oneof=masuk keluar"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Notes    string `json:"notes"`
	Username string `json:"username"`
}

// filterFromQuery membaca parameter filter dari query string; dipakai list
// transaksi dan kedua endpoint laporan.
func filterFromQuery(c *gin.Context) service.TransactionFilter {
	return service.TransactionFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Project:  c.Query("project"),
	}
}

func GetAllTransactions(c *gin.Context) {
	svc := service.NewService(config.DB)

	rows, err := svc.ListTransactions(c.Request.Context())
	if err != nil {
		config.LogError("controllers", "GetAllTransactions", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data transaksi", err)
		return
	}

	rows = service.FilterTransactions(rows, filterFromQuery(c))
	utils.Success(c, "Data transaksi", rows)
}

func CreateTransaction(c *gin.Context) {
	var in TransactionCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	trxDate, err := parseTrxDate(in.Date)
	if err != nil {
		utils.ErrorDetails(c, http.StatusBadRequest, "Data tidak valid",
			gin.H{"date": "Format tanggal tidak dikenal"})
		return
	}

	svc := service.NewService(config.DB)

	view, err := svc.RecordTransaction(c.Request.Context(), service.RecordTransactionInput{
		Name:     in.Name,
		Type:     models.TrxType(in.Type),
		Quantity: in.Quantity,
		Date:     trxDate,
		Notes:    in.Notes,
		Username: in.Username,
	})

	var (
		verr *service.ValidationError
		serr *service.InsufficientStockError
	)
	switch {
	case err == nil:
		utils.Created(c, "Transaksi berhasil dicatat", view)
	case errors.As(err, &verr):
		utils.ErrorDetails(c, http.StatusBadRequest, "Data tidak valid", verr.Fields)
	case errors.As(err, &serr):
		utils.ErrorDetails(c, http.StatusBadRequest, serr.Error(), gin.H{
			"item_name": serr.ItemName,
			"available": serr.Available,
			"requested": serr.Requested,
		})
	case errors.Is(err, service.ErrItemNotFound):
		utils.Error(c, http.StatusBadRequest, "Barang tidak ditemukan", nil)
	case errors.Is(err, service.ErrUserNotFound):
		utils.Error(c, http.StatusBadRequest, "User tidak ditemukan", nil)
	default:
		config.LogError("controllers", "CreateTransaction", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan transaksi", err)
	}
}

func GetStats(c *gin.Context) {
	svc := service.NewService(config.DB)

	rows, err := svc.ListTransactions(c.Request.Context())
	if err != nil {
		config.LogError("controllers", "GetStats", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil statistik", err)
		return
	}

	rows = service.FilterTransactions(rows, filterFromQuery(c))
	utils.Success(c, "Statistik transaksi", service.Aggregate(rows))
}

func parseTrxDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
