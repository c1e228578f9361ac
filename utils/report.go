package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/si-gho/pijar-pro-inventory/service"
)

// ReportHeaders adalah kolom laporan transaksi, dipakai CSV maupun XLSX.
var ReportHeaders = []string{"Tanggal/Waktu", "Nama Barang", "Status", "Jumlah", "Catatan", "Proyek", "Pengawas"}

// FormatReportDate menampilkan tanggal gaya id-ID: 28/09/2025, 08.30
func FormatReportDate(t time.Time) string {
	return t.Format("02/01/2006, 15.04")
}

// BuildCSV merender laporan transaksi. Field string dikutip, status (tipe
// transaksi) ditulis huruf besar.
func BuildCSV(rows []service.TransactionView) string {
	var b strings.Builder
	b.WriteString(strings.Join(ReportHeaders, ","))
	b.WriteByte('\n')

	for _, row := range rows {
		fields := []string{
			FormatReportDate(row.Date),
			quote(row.Name),
			strings.ToUpper(string(row.Type)),
			fmt.Sprintf("%d", row.Quantity),
			quote(row.Notes),
			quote(row.Project),
			quote(row.Supervisor),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ReportFilename menghasilkan nama file berakhiran tanggal hari ini,
// misal laporan-inventaris-2026-08-31.csv
func ReportFilename(base, ext string) string {
	return fmt.Sprintf("%s-%s.%s", base, time.Now().Format("2006-01-02"), ext)
}
