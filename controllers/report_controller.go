package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/si-gho/pijar-pro-inventory/config"
	"github.com/si-gho/pijar-pro-inventory/service"
	"github.com/si-gho/pijar-pro-inventory/utils"
)

const reportBasename = "laporan-inventaris"

// GET /api/reports/csv — menerima parameter filter yang sama dengan list
// transaksi (search, type, date_from, date_to, project).
func ExportCSV(c *gin.Context) {
	svc := service.NewService(config.DB)

	rows, err := svc.ListTransactions(c.Request.Context())
	if err != nil {
		config.LogError("controllers", "ExportCSV", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat laporan", err)
		return
	}
	rows = service.FilterTransactions(rows, filterFromQuery(c))

	filename := utils.ReportFilename(reportBasename, "csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(utils.BuildCSV(rows)))
}

// GET /api/reports/xlsx
func ExportXLSX(c *gin.Context) {
	svc := service.NewService(config.DB)

	rows, err := svc.ListTransactions(c.Request.Context())
	if err != nil {
		config.LogError("controllers", "ExportXLSX", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat laporan", err)
		return
	}
	rows = service.FilterTransactions(rows, filterFromQuery(c))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		config.LogError("controllers", "ExportXLSX", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat laporan", err)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range utils.ReportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		values := []interface{}{
			utils.FormatReportDate(row.Date),
			row.Name,
			strings.ToUpper(string(row.Type)),
			row.Quantity,
			row.Notes,
			row.Project,
			row.Supervisor,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	filename := utils.ReportFilename(reportBasename, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		config.LogError("controllers", "ExportXLSX", err)
	}
}
